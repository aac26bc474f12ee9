/*
 * overlap.go, part of gofchk.
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
	"fmt"
	"math"

	"github.com/rmera/gofchk/fchk"
	"gonum.org/v1/gonum/mat"
)

//Compute returns the overlap matrix of the basis set B. Functions are in
//the same order as in the file, i.e. the order of the rows of the orbital
//coefficient matrices. Primitives are normalized, contractions are used as given.
func Compute(B *fchk.BasisSet) (*mat.SymDense, error) {
	if B == nil || B.NShells() == 0 {
		return nil, Error{"No basis set given", []string{"Compute"}, true}
	}
	shells := make([]*shell, B.NShells())
	offset := 0
	for i := range shells {
		s, err := newShell(B, i)
		if err != nil {
			return nil, errDecorate(err, "Compute")
		}
		s.offset = offset
		offset += s.nfunc()
		shells[i] = s
	}
	S := mat.NewSymDense(offset, nil)
	for i, si := range shells {
		for _, sj := range shells[:i+1] {
			block := si.overlap(sj)
			r, c := block.Dims()
			for k := 0; k < r; k++ {
				for l := 0; l < c; l++ {
					S.SetSym(si.offset+k, sj.offset+l, block.At(k, l))
				}
			}
		}
	}
	return S, nil
}

//shell is a contracted shell, ready for integral evaluation.
type shell struct {
	center [3]float64
	l      int
	pure   bool
	alphas []float64
	coeffs []float64 //contraction coefficients, for normalized primitives
	cart   [][3]int
	norms  [][]float64 //norms[p][c]: normalization of primitive p, Cartesian component c
	tf     *mat.Dense  //Cartesian to pure transformation, nil for Cartesian shells
	offset int
}

func newShell(B *fchk.BasisSet, i int) (*shell, error) {
	code := B.ShellTypes[i]
	l := fchk.AngularMomentum(code)
	if code == fchk.ShellSP || l > fchk.MaxAngularMomentum {
		return nil, Error{fmt.Sprintf("Shell %d has type code %d, which can't be handled", i, code), []string{"newShell"}, true}
	}
	s := &shell{l: l, pure: B.Pure(i), alphas: B.Alphas[i], coeffs: B.ConCoeffs[i]}
	copy(s.center[:], B.Centers.RawRowView(B.ShellMap[i]))
	s.cart = fchk.CartesianOrder(l)
	s.norms = make([][]float64, len(s.alphas))
	for p, a := range s.alphas {
		s.norms[p] = make([]float64, len(s.cart))
		for c, n := range s.cart {
			s.norms[p][c] = PrimitiveNorm(a, n)
		}
	}
	if s.pure {
		s.tf = PureTransform(l)
	}
	return s, nil
}

func (s *shell) nfunc() int {
	if s.pure {
		return 2*s.l + 1
	}
	return len(s.cart)
}

//overlap returns the block of overlaps between the functions in s and those in o.
func (s *shell) overlap(o *shell) *mat.Dense {
	block := mat.NewDense(len(s.cart), len(o.cart), nil)
	var ox [3][][]float64
	for p, a := range s.alphas {
		for q, b := range o.alphas {
			for d := 0; d < 3; d++ {
				ox[d] = overlap1D(s.l, o.l, a, b, s.center[d], o.center[d])
			}
			cc := s.coeffs[p] * o.coeffs[q]
			for i, ni := range s.cart {
				for j, nj := range o.cart {
					v := cc * s.norms[p][i] * o.norms[q][j]
					v *= ox[0][ni[0]][nj[0]] * ox[1][ni[1]][nj[1]] * ox[2][ni[2]][nj[2]]
					block.Set(i, j, block.At(i, j)+v)
				}
			}
		}
	}
	if s.tf == nil && o.tf == nil {
		return block
	}
	var ret mat.Dense
	switch {
	case s.tf != nil && o.tf != nil:
		var tmp mat.Dense
		tmp.Mul(s.tf, block)
		ret.Mul(&tmp, o.tf.T())
	case s.tf != nil:
		ret.Mul(s.tf, block)
	default:
		ret.Mul(block, o.tf.T())
	}
	return &ret
}

//overlap1D returns the table of one-dimensional overlaps between Gaussians
//with exponents a and b centered at A and B, for powers up to la and lb, with
//the Obara-Saika recurrence.
func overlap1D(la, lb int, a, b, A, B float64) [][]float64 {
	p := a + b
	P := (a*A + b*B) / p
	pa, pb := P-A, P-B
	S := make([][]float64, la+1)
	for i := range S {
		S[i] = make([]float64, lb+1)
	}
	S[0][0] = math.Sqrt(math.Pi/p) * math.Exp(-a*b/p*(A-B)*(A-B))
	for i := 0; i <= la; i++ {
		for j := 0; j <= lb; j++ {
			if i == 0 && j == 0 {
				continue
			}
			var v float64
			if i > 0 {
				v = pa * S[i-1][j]
				if i > 1 {
					v += float64(i-1) / (2 * p) * S[i-2][j]
				}
				if j > 0 {
					v += float64(j) / (2 * p) * S[i-1][j-1]
				}
			} else {
				v = pb * S[i][j-1]
				if j > 1 {
					v += float64(j-1) / (2 * p) * S[i][j-2]
				}
			}
			S[i][j] = v
		}
	}
	return S
}

//doubleFactorial returns n!!, with (-1)!! = 1.
func doubleFactorial(n int) float64 {
	r := 1.0
	for ; n > 1; n -= 2 {
		r *= float64(n)
	}
	return r
}

//PrimitiveNorm returns the normalization constant of the Cartesian Gaussian
//x^n[0] y^n[1] z^n[2] exp(-alpha r^2).
func PrimitiveNorm(alpha float64, n [3]int) float64 {
	l := n[0] + n[1] + n[2]
	ret := math.Pow(2*alpha/math.Pi, 0.75) * math.Pow(4*alpha, float64(l)/2)
	return ret / math.Sqrt(doubleFactorial(2*n[0]-1)*doubleFactorial(2*n[1]-1)*doubleFactorial(2*n[2]-1))
}

//Population returns the trace of the product of the density matrix dm and
//the overlap matrix olp, i.e. the number of electrons the density describes.
func Population(dm, olp mat.Symmetric) float64 {
	n := dm.SymmetricDim()
	ret := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ret += dm.At(i, j) * olp.At(j, i)
		}
	}
	return ret
}

//CheckDensity verifies that the density matrix dm is a valid one for the
//overlap matrix olp: the occupations of its natural orbitals must lie between
//0 and occMax, within eps.
func CheckDensity(dm, olp mat.Symmetric, eps, occMax float64) error {
	n := dm.SymmetricDim()
	if olp.SymmetricDim() != n {
		return Error{fmt.Sprintf("Density matrix is %dx%d, overlap matrix %dx%d", n, n, olp.SymmetricDim(), olp.SymmetricDim()), []string{"CheckDensity"}, true}
	}
	var es mat.EigenSym
	if ok := es.Factorize(olp, true); !ok {
		return Error{"Can't diagonalize the overlap matrix", []string{"CheckDensity"}, true}
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	//S^1/2
	half := mat.NewDense(n, n, nil)
	for i, v := range vals {
		if v <= 0 {
			return Error{fmt.Sprintf("Overlap matrix not positive definite, eigenvalue %g", v), []string{"CheckDensity"}, true}
		}
		half.Set(i, i, math.Sqrt(v))
	}
	var tmp, sqrtS, orth mat.Dense
	tmp.Mul(&vecs, half)
	sqrtS.Mul(&tmp, vecs.T())
	tmp.Mul(&sqrtS, dm)
	orth.Mul(&tmp, &sqrtS)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sym.SetSym(i, j, (orth.At(i, j)+orth.At(j, i))/2)
		}
	}
	if ok := es.Factorize(sym, false); !ok {
		return Error{"Can't diagonalize the density matrix", []string{"CheckDensity"}, true}
	}
	for _, occ := range es.Values(nil) {
		if occ < -eps || occ > occMax+eps {
			return Error{fmt.Sprintf("Natural occupation %g out of [0,%g]", occ, occMax), []string{"CheckDensity"}, true}
		}
	}
	return nil
}
