/*
 * orbitals.go, part of gofchk.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//OrbitalKind tells how the orbitals of a calculation are spin-resolved.
type OrbitalKind int

const (
	Restricted     OrbitalKind = iota //one set of orbitals, doubly occupied
	Unrestricted                      //different alpha and beta orbitals
	RestrictedOpen                    //the same orbitals, different alpha and beta occupations
)

func (k OrbitalKind) String() string {
	switch k {
	case Restricted:
		return "restricted"
	case Unrestricted:
		return "unrestricted"
	case RestrictedOpen:
		return "restricted-open"
	}
	return fmt.Sprintf("OrbitalKind(%d)", int(k))
}

//OrbitalHeader holds the dimensions of an orbital set.
type OrbitalHeader struct {
	NBasis int
	NOrb   int
	Kind   OrbitalKind
}

//OrbitalSet contains the orbitals of one spin channel. Coeffs is NBasis x NOrb,
//each column is one orbital. Occupations are 0 or 1.
type OrbitalSet struct {
	OrbitalHeader
	Coeffs   *mat.Dense
	Energies []float64
	Occs     []float64
}

//NElectrons returns the sum of the occupations.
func (O *OrbitalSet) NElectrons() float64 {
	return floats.Sum(O.Occs)
}

//Copy returns a deep copy of the orbital set. Nothing is shared with the receiver.
func (O *OrbitalSet) Copy() *OrbitalSet {
	ret := &OrbitalSet{OrbitalHeader: O.OrbitalHeader}
	ret.Coeffs = mat.DenseCopyOf(O.Coeffs)
	ret.Energies = append([]float64(nil), O.Energies...)
	ret.Occs = append([]float64(nil), O.Occs...)
	return ret
}

//Orbital returns a copy of the coefficients of the ith orbital.
func (O *OrbitalSet) Orbital(i int) []float64 {
	return mat.Col(nil, i, O.Coeffs)
}

//setOccupations occupies the first nocc orbitals.
func (O *OrbitalSet) setOccupations(nocc int) {
	O.Occs = make([]float64, O.NOrb)
	for i := 0; i < nocc; i++ {
		O.Occs[i] = 1
	}
}

//assembleOrbitals builds one orbital set from the flat coefficient and energy
//arrays. The coefficients of each orbital are contiguous in coeffs, and become
//one column of the matrix.
func (d *decoder) assembleOrbitals(spin string, h OrbitalHeader, coeffs, energies []float64, nocc int) (*OrbitalSet, error) {
	ckey, ekey := spin+suffixCoeffs, spin+suffixEnergies
	mismatch := func(key, format string, args ...interface{}) error {
		e := newError(ErrDimensionMismatch, d.filename, recordName(key), d.line(key), format, args...)
		e.Decorate("assembleOrbitals")
		return e
	}
	if len(coeffs) != h.NBasis*h.NOrb {
		return nil, mismatch(ckey, "%d coefficients, expected %d basis functions x %d orbitals", len(coeffs), h.NBasis, h.NOrb)
	}
	if energies == nil {
		return nil, mismatch(ekey, "%s coefficients present without orbital energies", spin)
	}
	if len(energies) != h.NOrb {
		return nil, mismatch(ekey, "%d orbital energies for %d orbitals", len(energies), h.NOrb)
	}
	if nocc > h.NOrb {
		return nil, mismatch(ckey, "%d occupied orbitals, but only %d orbitals", nocc, h.NOrb)
	}
	O := &OrbitalSet{OrbitalHeader: h}
	O.Coeffs = mat.NewDense(h.NBasis, h.NOrb, nil)
	for k := 0; k < h.NOrb; k++ {
		O.Coeffs.SetCol(k, coeffs[k*h.NBasis:(k+1)*h.NBasis])
	}
	O.Energies = append([]float64(nil), energies...)
	O.setOccupations(nocc)
	return O, nil
}

func (O *OrbitalSet) String() string {
	return fmt.Sprintf("%s orbitals: %d basis functions, %d orbitals, %g electrons", O.Kind, O.NBasis, O.NOrb, O.NElectrons())
}
