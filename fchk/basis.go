/*
 * basis.go, part of gofchk.
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

	v3 "github.com/rmera/gofchk/v3"
)

//MaxAngularMomentum is the highest angular momentum a shell code can carry.
const MaxAngularMomentum = 7

//Shell type codes with a special meaning. Codes of 2 and up denote Cartesian
//shells of that angular momentum, codes of -2 and down, pure shells.
const (
	ShellS  = 0
	ShellP  = 1
	ShellSP = -1
)

//BasisSet is a contracted Gaussian basis set. Combined SP shells are split into
//one s and one p shell which share exponents, so every shell here has a single
//angular momentum. Per-shell slices are indexed in the same way.
type BasisSet struct {
	Centers       *v3.Matrix  //all atoms, ghost atoms included
	ShellMap      []int       //0-based index of the center of each shell
	NPrims        []int       //number of primitives in each shell
	ShellTypes    []int       //shell type codes after SP splitting
	Alphas        [][]float64 //exponents of each shell
	ConCoeffs     [][]float64 //contraction coefficients of each shell
	RawShellTypes []int       //shell type codes as found in the file
}

//NShells returns the number of shells, after SP splitting.
func (B *BasisSet) NShells() int {
	return len(B.ShellTypes)
}

//NPrimitives returns the total number of primitives, after SP splitting.
func (B *BasisSet) NPrimitives() int {
	n := 0
	for _, v := range B.NPrims {
		n += v
	}
	return n
}

//NBasis returns the number of basis functions.
func (B *BasisSet) NBasis() int {
	return ShellsToNBasis(B.ShellTypes)
}

//Pure returns true if the ith shell is a pure (spherical) one.
func (B *BasisSet) Pure(i int) bool {
	return B.ShellTypes[i] < ShellSP
}

//AngularMomentum returns the angular momentum of a shell type code.
//The SP code gives 1.
func AngularMomentum(code int) int {
	if code < 0 {
		return -code
	}
	return code
}

func validShell(code int) bool {
	return code <= MaxAngularMomentum && code >= -MaxAngularMomentum
}

//ShellNBasis returns the number of basis functions in a shell of the
//given type code: 2l+1 for pure shells, (l+1)(l+2)/2 for Cartesian ones,
//and 4 for SP shells. It returns 0 for codes that don't denote a shell.
func ShellNBasis(code int) int {
	switch {
	case !validShell(code):
		return 0
	case code == ShellSP:
		return 4
	case code < 0:
		return 2*(-code) + 1
	}
	return (code + 1) * (code + 2) / 2
}

//ShellsToNBasis returns the number of basis functions in a sequence of shells.
func ShellsToNBasis(codes []int) int {
	n := 0
	for _, c := range codes {
		n += ShellNBasis(c)
	}
	return n
}

//CartesianOrder returns the exponents (nx, ny, nz) of the Cartesian functions in
//a shell of angular momentum l, in the order used in the file.
func CartesianOrder(l int) [][3]int {
	switch l {
	case 0:
		return [][3]int{{0, 0, 0}}
	case 1:
		return [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	case 2:
		//xx, yy, zz, xy, xz, yz
		return [][3]int{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}, {1, 1, 0}, {1, 0, 1}, {0, 1, 1}}
	case 3:
		//xxx, yyy, zzz, xyy, xxy, xxz, xzz, yzz, yyz, xyz
		return [][3]int{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}, {1, 2, 0}, {2, 1, 0}, {2, 0, 1}, {1, 0, 2}, {0, 1, 2}, {0, 2, 1}, {1, 1, 1}}
	}
	ret := make([][3]int, 0, (l+1)*(l+2)/2)
	for nx := 0; nx <= l; nx++ {
		for ny := 0; ny <= l-nx; ny++ {
			ret = append(ret, [3]int{nx, ny, l - nx - ny})
		}
	}
	return ret
}

//basisRecords are the raw arrays the basis set is built from.
type basisRecords struct {
	shellTypes, nprims, shellMap []int
	alphas, conCoeffs, spCoeffs  []float64
}

//assembleBasis builds the basis set from the raw records, checking that they
//agree with each other, and with the natom atoms in centers.
func (d *decoder) assembleBasis(raw basisRecords, centers *v3.Matrix) (*BasisSet, error) {
	inconsistent := func(record, format string, args ...interface{}) error {
		e := newError(ErrInconsistentBasis, d.filename, recordName(record), d.line(record), format, args...)
		e.Decorate("assembleBasis")
		return e
	}
	nshell := len(raw.shellTypes)
	if len(raw.nprims) != nshell {
		return nil, inconsistent(keyNPrims, "%d primitive counts for %d shells", len(raw.nprims), nshell)
	}
	if len(raw.shellMap) != nshell {
		return nil, inconsistent(keyShellMap, "%d shell centers for %d shells", len(raw.shellMap), nshell)
	}
	natom := centers.NVecs()
	nprim := 0
	for i, code := range raw.shellTypes {
		if !validShell(code) {
			return nil, inconsistent(keyShellTypes, "shell %d has unknown type code %d", i, code)
		}
		if raw.nprims[i] <= 0 {
			return nil, inconsistent(keyNPrims, "shell %d has %d primitives", i, raw.nprims[i])
		}
		if c := raw.shellMap[i]; c < 1 || c > natom {
			return nil, inconsistent(keyShellMap, "shell %d is on atom %d, out of [1,%d]", i, c, natom)
		}
		if code == ShellSP && raw.spCoeffs == nil {
			return nil, inconsistent(keySPCoeffs, "shell %d is an SP shell, but no P(S=P) coefficients are present", i)
		}
		nprim += raw.nprims[i]
	}
	if nprim != len(raw.alphas) {
		return nil, inconsistent(keyAlphas, "shells declare %d primitives, %d exponents found", nprim, len(raw.alphas))
	}
	if len(raw.conCoeffs) != nprim {
		return nil, inconsistent(keyConCoeffs, "%d contraction coefficients for %d primitives", len(raw.conCoeffs), nprim)
	}
	if raw.spCoeffs != nil && len(raw.spCoeffs) != nprim {
		return nil, inconsistent(keySPCoeffs, "%d P(S=P) contraction coefficients for %d primitives", len(raw.spCoeffs), nprim)
	}
	B := &BasisSet{Centers: v3.Zeros(natom), RawShellTypes: append([]int(nil), raw.shellTypes...)}
	B.Centers.Copy(centers)
	//The slices for each shell are copies, so they don't share storage
	//with the raw records or with each other.
	seg := func(v []float64, from, n int) []float64 {
		return append([]float64(nil), v[from:from+n]...)
	}
	offset := 0
	for i, code := range raw.shellTypes {
		n := raw.nprims[i]
		center := raw.shellMap[i] - 1
		if code == ShellSP {
			B.add(ShellS, center, seg(raw.alphas, offset, n), seg(raw.conCoeffs, offset, n))
			B.add(ShellP, center, seg(raw.alphas, offset, n), seg(raw.spCoeffs, offset, n))
		} else {
			B.add(code, center, seg(raw.alphas, offset, n), seg(raw.conCoeffs, offset, n))
		}
		offset += n
	}
	return B, nil
}

func (B *BasisSet) add(code, center int, alphas, coeffs []float64) {
	B.ShellTypes = append(B.ShellTypes, code)
	B.ShellMap = append(B.ShellMap, center)
	B.NPrims = append(B.NPrims, len(alphas))
	B.Alphas = append(B.Alphas, alphas)
	B.ConCoeffs = append(B.ConCoeffs, coeffs)
}

//rawNPrimitives returns the number of primitives in the unsplit shells, the
//p half of each SP shell is not counted.
func (B *BasisSet) rawNPrimitives() int {
	n, j := 0, 0
	for _, code := range B.RawShellTypes {
		n += B.NPrims[j]
		j++
		if code == ShellSP {
			j++
		}
	}
	return n
}

//checkBasisSummary compares the basis set with the summary scalars the file
//may carry: shell and primitive counts, highest angular momentum, largest
//contraction and the pure/Cartesian flags for d and f shells.
func (d *decoder) checkBasisSummary(B *BasisSet) error {
	maxl, maxc := 0, 0
	for _, code := range B.RawShellTypes {
		if l := AngularMomentum(code); l > maxl {
			maxl = l
		}
	}
	for _, n := range B.NPrims {
		if n > maxc {
			maxc = n
		}
	}
	checks := []struct {
		key  string
		want int
	}{
		{keyNContracted, len(B.RawShellTypes)},
		{keyNPrimitive, B.rawNPrimitives()},
		{keyMaxL, maxl},
		{keyMaxContraction, maxc},
	}
	for _, c := range checks {
		got, ok := d.int(c.key)
		if ok && got != c.want {
			return newError(ErrInconsistentBasis, d.filename, recordName(c.key), d.line(c.key), "file declares %d, basis set has %d", got, c.want)
		}
	}
	//The flags are 0 for pure shells and 1 for Cartesian ones.
	for _, f := range []struct {
		key string
		l   int
	}{{keyPureD, 2}, {keyPureF, 3}} {
		flag, ok := d.int(f.key)
		if !ok {
			continue
		}
		for i, code := range B.ShellTypes {
			if AngularMomentum(code) != f.l {
				continue
			}
			if pure := B.Pure(i); pure != (flag == 0) {
				return newError(ErrInconsistentBasis, d.filename, recordName(f.key), d.line(f.key), "flag is %d, but shell %d has type code %d", flag, i, code)
			}
		}
	}
	return nil
}

func (B *BasisSet) String() string {
	return fmt.Sprintf("basis set: %d shells (%d in file), %d primitives, %d functions, %d centers", B.NShells(), len(B.RawShellTypes), B.NPrimitives(), B.NBasis(), B.Centers.NVecs())
}
