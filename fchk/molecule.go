/*
 * molecule.go, part of gofchk.
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

package fchk

import (
	"fmt"

	chem "github.com/rmera/gofchk"
	v3 "github.com/rmera/gofchk/v3"
)

//Molecule returns a chem.Molecule with the real atoms in the file. Coordinates
//are converted to Angstrom. Masses are taken from the file if present, otherwise
//from the element. Atom charges are the Mulliken charges, if present.
func (F *Fields) Molecule() (*chem.Molecule, error) {
	ats := make([]*chem.Atom, F.NAtoms)
	for i, z := range F.Numbers {
		sym, err := chem.Symbol(z)
		if err != nil {
			return nil, errDecorate(chemToFchk(err, F.Title), "Molecule")
		}
		at := &chem.Atom{Name: sym, Id: i + 1, Z: z, Symbol: sym}
		if F.Masses != nil {
			at.Mass = F.Masses[i]
		} else {
			at.Mass = chem.SymbolMass(sym)
		}
		if F.MullikenCharges != nil {
			at.Charge = F.MullikenCharges[i]
		}
		ats[i] = at
	}
	top, err := chem.NewTopology(ats, F.Charge, F.Multiplicity)
	if err != nil {
		return nil, errDecorate(chemToFchk(err, F.Title), "Molecule")
	}
	coords := v3.Zeros(F.NAtoms)
	coords.Scale(chem.Bohr2A, F.Coordinates)
	mol, err := chem.NewMolecule(top, []*v3.Matrix{coords})
	if err != nil {
		return nil, errDecorate(chemToFchk(err, F.Title), "Molecule")
	}
	return mol, nil
}

//chemToFchk wraps an error from the chem package as a validation error.
func chemToFchk(err error, title string) *Error {
	return &Error{kind: ErrValidation, message: fmt.Sprintf("can't build molecule %q: %s", title, err), cause: err}
}
