/*
 * value.go, part of gofchk.
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

//Kind identifies which of the alternatives a Value holds.
type Kind int

const (
	KindInvalid   Kind = iota
	KindInt            //int
	KindReal           //float64
	KindText           //string
	KindBool           //bool
	KindInts           //[]int
	KindVector         //[]float64
	KindMatrix         //*mat.Dense
	KindSymMatrix      //*mat.SymDense
	KindBasis          //*BasisSet
	KindOrbitals       //*OrbitalSet
)

var kindNames = [...]string{"invalid", "int", "real", "text", "bool", "ints", "vector", "matrix", "symmatrix", "basis", "orbitals"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

//Value is a decoded field. It holds one scalar, array, matrix or composite
//structure, identified by its Kind. The zero Value is invalid.
type Value struct {
	kind  Kind
	i     int
	r     float64
	s     string
	b     bool
	ints  []int
	vec   []float64
	dense *mat.Dense
	sym   *mat.SymDense
	basis *BasisSet
	orbs  *OrbitalSet
}

func intValue(i int) Value { return Value{kind: KindInt, i: i} }
func realValue(r float64) Value { return Value{kind: KindReal, r: r} }
func textValue(s string) Value { return Value{kind: KindText, s: s} }
func boolValue(b bool) Value { return Value{kind: KindBool, b: b} }
func intsValue(v []int) Value { return Value{kind: KindInts, ints: v} }
func vectorValue(v []float64) Value { return Value{kind: KindVector, vec: v} }
func matrixValue(m *mat.Dense) Value { return Value{kind: KindMatrix, dense: m} }
func symMatrixValue(m *mat.SymDense) Value { return Value{kind: KindSymMatrix, sym: m} }
func basisValue(b *BasisSet) Value { return Value{kind: KindBasis, basis: b} }
func orbitalsValue(o *OrbitalSet) Value { return Value{kind: KindOrbitals, orbs: o} }

//Kind returns the kind of value held.
func (V Value) Kind() Kind { return V.kind }

//Int returns the integer held, and whether the value is an integer.
func (V Value) Int() (int, bool) { return V.i, V.kind == KindInt }

//Real returns the float held, and whether the value is a float.
//Integers are not converted.
func (V Value) Real() (float64, bool) { return V.r, V.kind == KindReal }

//Text returns the string held, and whether the value is text.
func (V Value) Text() (string, bool) { return V.s, V.kind == KindText }

//Bool returns the logical held, and whether the value is a logical.
func (V Value) Bool() (bool, bool) { return V.b, V.kind == KindBool }

//Ints returns the integer array held, and whether the value is an integer array.
func (V Value) Ints() ([]int, bool) { return V.ints, V.kind == KindInts }

//Vector returns the float array held, and whether the value is a float array.
func (V Value) Vector() ([]float64, bool) { return V.vec, V.kind == KindVector }

//Matrix returns the matrix held, and whether the value is a matrix.
//Both KindMatrix and KindSymMatrix values are returned.
func (V Value) Matrix() (mat.Matrix, bool) {
	switch V.kind {
	case KindMatrix:
		return V.dense, true
	case KindSymMatrix:
		return V.sym, true
	}
	return nil, false
}

//Basis returns the basis set held, and whether the value is a basis set.
func (V Value) Basis() (*BasisSet, bool) { return V.basis, V.kind == KindBasis }

//Orbitals returns the orbital set held, and whether the value is an orbital set.
func (V Value) Orbitals() (*OrbitalSet, bool) { return V.orbs, V.kind == KindOrbitals }

//Len returns the number of elements for array values, rows for matrices, and 1 for
//everything else that is valid.
func (V Value) Len() int {
	switch V.kind {
	case KindInvalid:
		return 0
	case KindInts:
		return len(V.ints)
	case KindVector:
		return len(V.vec)
	case KindMatrix:
		r, _ := V.dense.Dims()
		return r
	case KindSymMatrix:
		return V.sym.SymmetricDim()
	}
	return 1
}

func (V Value) String() string {
	switch V.kind {
	case KindInt:
		return fmt.Sprintf("%d", V.i)
	case KindReal:
		return fmt.Sprintf("%.15e", V.r)
	case KindText:
		return V.s
	case KindBool:
		return fmt.Sprintf("%t", V.b)
	case KindMatrix, KindSymMatrix:
		m, _ := V.Matrix()
		r, c := m.Dims()
		return fmt.Sprintf("%s[%dx%d]", V.kind, r, c)
	case KindInvalid:
		return "invalid"
	}
	return fmt.Sprintf("%s[%d]", V.kind, V.Len())
}
