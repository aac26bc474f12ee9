/*
 * fields.go, part of gofchk.
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
	"sort"

	v3 "github.com/rmera/gofchk/v3"
	"gonum.org/v1/gonum/mat"
)

//Fields contains everything decoded from a formatted checkpoint file.
//Arrays with one entry per atom only include real atoms: ghost atoms are
//kept only as basis set centers. Fields that were not in the file are left
//at their zero values. The values are not meant to be modified: copy them first.
type Fields struct {
	Title     string
	JobType   string
	Method    string
	BasisName string
	Route     string
	FullTitle string

	NAtoms       int //real atoms
	NGhosts      int
	Charge       int
	Multiplicity int
	NElectrons   int
	NAlpha       int
	NBeta        int
	NBasis       int
	NIndep       int //independent functions, i.e. number of orbitals

	Numbers       []int
	PseudoNumbers []float64 //nuclear charges
	Coordinates   *v3.Matrix
	Masses        []float64

	Energy    float64
	SCFEnergy float64

	Basis     *BasisSet
	OrbAlpha  *OrbitalSet
	OrbBeta   *OrbitalSet
	Densities map[DensityKey]*mat.SymDense

	MullikenCharges []float64
	NPACharges      []float64
	ESPCharges      []float64

	Dipole     []float64     //x, y, z
	Quadrupole []float64     //xx, xy, xz, yy, yz, zz
	Polar      *mat.SymDense //3x3

	//Unknown contains the records whose names were not recognized, by name.
	Unknown map[string]*Record

	values map[string]Value
}

//Get returns the value for a canonical key, and whether it is present.
func (F *Fields) Get(key string) (Value, bool) {
	v, ok := F.values[key]
	return v, ok
}

//Has returns true if the field with the given canonical key is present.
func (F *Fields) Has(key string) bool {
	_, ok := F.values[key]
	return ok
}

//Keys returns the canonical keys of all the fields present, sorted.
func (F *Fields) Keys() []string {
	ret := make([]string, 0, len(F.values))
	for k := range F.values {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Density returns the density matrix of the given kind for the given method
//(case-sensitive, lower case, for instance "scf" or "mp2"), or nil.
func (F *Fields) Density(method string, kind DensityKind) *mat.SymDense {
	return F.Densities[DensityKey{Method: method, Kind: kind}]
}

//DensityKeys returns the keys of the density matrices present, sorted by their
//canonical key.
func (F *Fields) DensityKeys() []DensityKey {
	ret := make([]DensityKey, 0, len(F.Densities))
	for k := range F.Densities {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].String() < ret[j].String() })
	return ret
}

//Restricted returns true if the orbitals are restricted and closed-shell.
func (F *Fields) Restricted() bool {
	return F.OrbAlpha != nil && F.OrbBeta == nil
}

//setValues fills the canonical mapping from the typed fields.
func (F *Fields) setValues(has func(string) bool) {
	v := make(map[string]Value)
	text := map[string]string{KeyTitle: F.Title, KeyJobType: F.JobType, KeyMethod: F.Method, KeyBasisName: F.BasisName, KeyRoute: F.Route, KeyFullTitle: F.FullTitle}
	for k, s := range text {
		if k == KeyTitle || s != "" {
			v[k] = textValue(s)
		}
	}
	ints := map[string]int{KeyNAtom: F.NAtoms + F.NGhosts, KeyCharge: F.Charge, KeyMultiplicity: F.Multiplicity, KeyNElec: F.NElectrons, KeyNAlpha: F.NAlpha, KeyNBeta: F.NBeta, KeyNBasis: F.NBasis, KeyNIndep: F.NIndep}
	for k, i := range ints {
		if has(k) {
			v[k] = intValue(i)
		}
	}
	if has(KeyEnergy) {
		v[KeyEnergy] = realValue(F.Energy)
	}
	if has(KeySCFEnergy) {
		v[KeySCFEnergy] = realValue(F.SCFEnergy)
	}
	v[KeyNumbers] = intsValue(F.Numbers)
	v[KeyCoordinates] = matrixValue(F.Coordinates.Dense)
	vectors := map[string][]float64{KeyPseudoNumbers: F.PseudoNumbers, KeyMasses: F.Masses, KeyMulliken: F.MullikenCharges, KeyNPA: F.NPACharges, KeyESP: F.ESPCharges, KeyDipole: F.Dipole, KeyQuadrupole: F.Quadrupole}
	for k, vec := range vectors {
		if vec != nil {
			v[k] = vectorValue(vec)
		}
	}
	if F.Polar != nil {
		v[KeyPolar] = symMatrixValue(F.Polar)
	}
	if F.Basis != nil {
		v[KeyBasis] = basisValue(F.Basis)
	}
	for spin, o := range map[string]*OrbitalSet{KeyOrbAlpha: F.OrbAlpha, KeyOrbBeta: F.OrbBeta} {
		if o == nil {
			continue
		}
		v[spin] = orbitalsValue(o)
		v[spin+suffixCoeffs] = matrixValue(o.Coeffs)
		v[spin+suffixEnergies] = vectorValue(o.Energies)
		v[spin+suffixOccs] = vectorValue(o.Occs)
	}
	for k, dm := range F.Densities {
		v[k.String()] = symMatrixValue(dm)
	}
	F.values = v
}
