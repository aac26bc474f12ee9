/*
 * density.go, part of gofchk.
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

	"gonum.org/v1/gonum/mat"
)

const densityBase = "dm"

//DensityKind distinguishes total densities from spin densities.
type DensityKind int

const (
	DensityFull DensityKind = iota //alpha + beta
	DensitySpin                    //alpha - beta
)

func (k DensityKind) String() string {
	if k == DensitySpin {
		return "spin"
	}
	return "full"
}

//DensityKey identifies a density matrix by the method that produced it, in
//lower case ("scf", "mp2", "cc"...), and its kind.
type DensityKey struct {
	Method string
	Kind   DensityKind
}

//String returns the canonical key of the density matrix, such as "dm_full_mp2".
func (k DensityKey) String() string {
	return Name{Base: densityBase, Qualifiers: []string{k.Kind.String(), k.Method}}.Key()
}

//densityKeyOf returns the DensityKey for a classified density name.
func densityKeyOf(n Name) DensityKey {
	k := DensityKey{Method: n.Qualifiers[1]}
	if n.Qualifiers[0] == DensitySpin.String() {
		k.Kind = DensitySpin
	}
	return k
}

//unpackTriangle builds an n x n symmetric matrix from its lower triangle,
//stored row by row: (0,0), (1,0), (1,1), (2,0)...
func unpackTriangle(packed []float64, n int) (*mat.SymDense, error) {
	if len(packed) != n*(n+1)/2 {
		return nil, fmt.Errorf("%d elements can't be the lower triangle of a %dx%d matrix", len(packed), n, n)
	}
	ret := mat.NewSymDense(n, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			ret.SetSym(i, j, packed[k])
			k++
		}
	}
	return ret, nil
}

//the file stores the quadrupole as xx, yy, zz, xy, xz, yz.
var quadrupoleOrder = [6]int{0, 3, 4, 1, 5, 2}

//reorderQuadrupole returns the components of the quadrupole moment in the
//order xx, xy, xz, yy, yz, zz.
func reorderQuadrupole(q []float64) []float64 {
	ret := make([]float64, len(quadrupoleOrder))
	for i, j := range quadrupoleOrder {
		ret[i] = q[j]
	}
	return ret
}

//assembleDensities builds every density matrix read, for a basis of nbasis functions.
func (d *decoder) assembleDensities(nbasis int) (map[DensityKey]*mat.SymDense, error) {
	ret := make(map[DensityKey]*mat.SymDense, len(d.densities))
	for key, rec := range d.densities {
		vals, _ := rec.Value.Vector()
		dm, err := unpackTriangle(vals, nbasis)
		if err != nil {
			e := newError(ErrDimensionMismatch, d.filename, rec.Name, rec.Line, "%s", err.Error())
			e.Decorate("assembleDensities")
			return nil, e
		}
		ret[key] = dm
	}
	return ret, nil
}

//assembleMultipoles checks and reshapes the dipole, quadrupole and polarizability.
func (d *decoder) assembleMultipoles(F *Fields) error {
	sizes := []struct {
		key string
		n   int
	}{{KeyDipole, 3}, {KeyQuadrupole, 6}, {KeyPolar, 6}}
	for _, s := range sizes {
		v, ok := d.vector(s.key)
		if !ok {
			continue
		}
		if len(v) != s.n {
			return newError(ErrValidation, d.filename, d.recs[s.key].Name, d.line(s.key), "%d components, expected %d", len(v), s.n)
		}
		switch s.key {
		case KeyDipole:
			F.Dipole = append([]float64(nil), v...)
		case KeyQuadrupole:
			F.Quadrupole = reorderQuadrupole(v)
		case KeyPolar:
			F.Polar, _ = unpackTriangle(v, 3)
		}
	}
	return nil
}
