/*
 * chem.go, part of gofchk.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import (
	"fmt"

	v3 "github.com/rmera/gofchk/v3"
)

//Atom contains the atoms read except for the coordinates, which will be in a matrix.
type Atom struct {
	Name   string
	Id     int
	Z      int //atomic number
	Mass   float64
	Charge float64 //partial charge, if the source provides one.
	Symbol string
}

//Atom methods

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

/*****Topology type***/

//Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates)
type Topology struct {
	Atoms  []*Atom
	charge int
	multi  int
}

//NewTopology makes a topology with ats atoms, charge charge and
//multiplicity multi. It returns error if the atom slice is nil.
//It doesnt check for consitensy between charge, multiplicity and atoms.
func NewTopology(ats []*Atom, charge, multi int) (*Topology, error) {
	if ats == nil {
		return nil, chemError{"Supplied a nil atom slice", "", []string{"NewTopology"}, true}
	}
	top := new(Topology)
	top.Atoms = ats
	top.charge = charge
	top.multi = multi
	return top, nil
}

/*Topology methods*/

//Charge gets the total charge of the topology
func (T *Topology) Charge() int {
	return T.charge
}

//Multi returns the multiplicity of the topology
func (T *Topology) Multi() int {
	return T.multi
}

//SetCharge sets the total charge of the topology to i
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

//SetMulti sets the multiplicity of the topology to i
func (T *Topology) SetMulti(i int) {
	T.multi = i
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//Masses returns a slice of float64 with the masses of the atoms in the topology, or nil and an error if they have not been calculated
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i := 0; i < T.Len(); i++ {
		thisatom := T.Atom(i)
		if thisatom.Mass == 0 {
			return nil, chemError{fmt.Sprintf("Not all the masses have been obtained: %d %v", i, thisatom), "", []string{"Masses"}, true}
		}
		mass[i] = thisatom.Mass
	}
	return mass, nil
}

/**Type Molecule**/

//Molecule contains all the info for a molecule in many states. The info that is expected to change between states,
//Coordinates is not embedded but included as a slice of *v3.Matrix.
type Molecule struct {
	*Topology
	Coords []*v3.Matrix
}

//NewMolecule makes a molecule with ats atoms and coords coordinates.
//It returns an error if there is a mismatch in the number of atoms
//between the topology and any of the coordinate sets.
func NewMolecule(ats *Topology, coords []*v3.Matrix) (*Molecule, error) {
	if ats == nil || len(coords) == 0 {
		return nil, chemError{"Supplied a nil topology or no coordinates", "", []string{"NewMolecule"}, true}
	}
	mol := &Molecule{Topology: ats, Coords: coords}
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return mol, nil
}

//Corrupted checks whether the molecule is corrupted, i.e. the
//coordinates don't match the number of atoms.
func (M *Molecule) Corrupted() error {
	for i, c := range M.Coords {
		if c == nil {
			return chemError{fmt.Sprintf("Nil coordinates for frame %d", i), "", []string{"Corrupted"}, true}
		}
		if c.NVecs() != M.Len() {
			return chemError{fmt.Sprintf("Inconsistent coordinates/atoms in frame %d: %d/%d", i, c.NVecs(), M.Len()), "", []string{"Corrupted"}, true}
		}
	}
	return nil
}
