/*
 * pure.go, part of gofchk.
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

package overlap

import (
	"math"

	"github.com/rmera/gofchk/fchk"
	"gonum.org/v1/gonum/mat"
)

//PureOrder returns the m values of the pure functions of angular momentum l,
//in the order used in the file: 0, 1, -1, 2, -2...
func PureOrder(l int) []int {
	ret := []int{0}
	for m := 1; m <= l; m++ {
		ret = append(ret, m, -m)
	}
	return ret
}

//PureTransform returns the (2l+1) x (l+1)(l+2)/2 matrix that transforms the
//normalized Cartesian functions of angular momentum l, in the order of
//fchk.CartesianOrder, into normalized real solid harmonics, in the order of PureOrder.
func PureTransform(l int) *mat.Dense {
	cart := fchk.CartesianOrder(l)
	index := make(map[[3]int]int, len(cart))
	for i, c := range cart {
		index[c] = i
	}
	gram := cartesianGram(cart)
	order := PureOrder(l)
	T := mat.NewDense(len(order), len(cart), nil)
	v := mat.NewVecDense(len(cart), nil)
	for row, m := range order {
		v.Zero()
		for mono, c := range solidHarmonic(l, m) {
			//from the unnormalized monomial to the normalized function
			f := math.Sqrt(doubleFactorial(2*mono[0]-1) * doubleFactorial(2*mono[1]-1) * doubleFactorial(2*mono[2]-1))
			i := index[mono]
			v.SetVec(i, v.AtVec(i)+c*f)
		}
		norm := math.Sqrt(mat.Inner(v, gram, v))
		for i := 0; i < len(cart); i++ {
			T.Set(row, i, v.AtVec(i)/norm)
		}
	}
	return T
}

//solidHarmonic returns the coefficients, up to a normalization constant, of the
//Cartesian monomials in the real solid harmonic with quantum numbers l and m.
func solidHarmonic(l, m int) map[[3]int]float64 {
	am := m
	parity := 0
	if m < 0 {
		am = -m
		parity = 1 //v runs over half-integers
	}
	ret := make(map[[3]int]float64)
	for t := 0; t <= (l-am)/2; t++ {
		for u := 0; u <= t; u++ {
			for k := parity; k <= am; k += 2 { //k = 2v
				c := math.Pow(0.25, float64(t)) * binomial(l, t) * binomial(l-t, am+t) * binomial(t, u) * binomial(am, k)
				if (t+(k-parity)/2)%2 == 1 {
					c = -c
				}
				mono := [3]int{2*t + am - 2*u - k, 2*u + k, l - 2*t - am}
				ret[mono] += c
			}
		}
	}
	return ret
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}

//cartesianGram returns the overlaps between normalized Cartesian functions with
//the same exponent and center.
func cartesianGram(cart [][3]int) *mat.SymDense {
	g := mat.NewSymDense(len(cart), nil)
	for i, a := range cart {
		for j, b := range cart[:i+1] {
			v := 1.0
			for d := 0; d < 3; d++ {
				s := a[d] + b[d]
				if s%2 == 1 {
					v = 0
					break
				}
				v *= doubleFactorial(s-1) / math.Sqrt(doubleFactorial(2*a[d]-1)*doubleFactorial(2*b[d]-1))
			}
			g.SetSym(i, j, v)
		}
	}
	return g
}
