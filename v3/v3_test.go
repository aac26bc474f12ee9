/*
 * v3_test.go, part of gofchk.
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

package v3

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	require.Equal(Te, 3, A.NVecs())
	View := A.VecView(1)
	View.Set(0, 0, 100)
	require.Equal(Te, 100.0, A.At(1, 0))
	require.Equal(Te, []float64{1, 2, 3, 100, 5, 6, 7, 8, 9}, A.RawMatrix().Data)

	_, err = NewMatrix([]float64{1, 2, 3, 4})
	require.Error(Te, err)
	var verr Error
	require.True(Te, errors.As(err, &verr))
	require.True(Te, verr.Critical())
	_, err = NewMatrix(nil)
	require.Error(Te, err)
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	B := Zeros(3)
	cind := []int{1, 3, 5}
	require.NoError(Te, B.SomeVecsSafe(A, cind))
	require.Equal(Te, []float64{4, 5, 6, 10, 11, 12, 16, 17, 18}, B.RawMatrix().Data)
	B.Set(1, 1, 55)
	require.Equal(Te, 11.0, A.At(3, 1), "SomeVecs must copy, not view")

	C := Zeros(2)
	require.Error(Te, C.SomeVecsSafe(A, cind))
	require.Error(Te, B.SomeVecsSafe(A, []int{0, 1, 6}))
}

func TestString(Te *testing.T) {
	M, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	require.Equal(Te, 2, M.NVecs())
	require.Contains(Te, M.String(), "4.00")
}
