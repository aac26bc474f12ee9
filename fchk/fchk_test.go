/*
 * fchk_test.go, part of gofchk.
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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestLoadNonexistent(Te *testing.T) {
	F, err := Load("../test/fubar_crap.fchk", nil)
	require.Nil(Te, F)
	require.Error(Te, err)
	require.True(Te, errors.Is(err, ErrNotFound))
	var perr *fs.PathError
	require.True(Te, errors.As(err, &perr))
	var fe *Error
	require.True(Te, errors.As(err, &fe))
	require.Equal(Te, "../test/fubar_crap.fchk", fe.FileName())
}

func TestHFSTO3G(Te *testing.T) {
	F, err := Load("../test/hf_sto3g.fchk", nil)
	require.NoError(Te, err)
	require.Equal(Te, "hf_sto3g", F.Title)
	require.Equal(Te, "SP", F.JobType)
	require.Equal(Te, "RHF", F.Method)
	require.Equal(Te, "STO-3G", F.BasisName)

	B := F.Basis
	require.Equal(Te, 4, B.NShells())
	require.Equal(Te, 6, B.NBasis())
	require.Equal(Te, 6, ShellsToNBasis(B.ShellTypes))
	require.Equal(Te, 6, ShellsToNBasis(B.RawShellTypes))
	require.Equal(Te, []int{0, -1, 0}, B.RawShellTypes)
	require.Equal(Te, []int{0, 0, 1, 0}, B.ShellTypes)
	require.Equal(Te, []int{0, 0, 0, 1}, B.ShellMap)
	require.Equal(Te, []int{3, 3, 3, 3}, B.NPrims)
	require.Equal(Te, 12, B.NPrimitives())
	require.Equal(Te, 2, B.Centers.NVecs())
	//the s and p halves of the SP shell share exponents, but not storage.
	require.Equal(Te, B.Alphas[1], B.Alphas[2])
	require.NotSame(Te, &B.Alphas[1][0], &B.Alphas[2][0])
	require.Equal(Te, 1.55916275e-01, B.ConCoeffs[2][0])

	require.Equal(Te, []int{9, 1}, F.Numbers)
	require.Equal(Te, 2, F.Coordinates.NVecs())
	require.Equal(Te, -1.52156583, F.Coordinates.At(1, 2))
	require.Equal(Te, -9.856961609951867e+01, F.Energy)
	require.Equal(Te, F.Energy, F.SCFEnergy)
	require.Equal(Te, []float64{0.45, 4.223}, F.MullikenCharges)
	require.Equal(Te, []float64{3.5, 1.32}, F.NPACharges)
	require.Equal(Te, []float64{0.777, 0.666}, F.ESPCharges)
	require.Equal(Te, []float64{0, 0, -5.12345678e-01}, F.Dipole)
	require.Nil(Te, F.Quadrupole)
	require.Nil(Te, F.Polar)

	require.True(Te, F.Restricted())
	O := F.OrbAlpha
	require.Equal(Te, Restricted, O.Kind)
	require.Equal(Te, 6, O.NBasis)
	require.Equal(Te, 6, O.NOrb)
	require.Equal(Te, 5.0, O.NElectrons())
	require.InDelta(Te, -1.30126815e-01, O.Coeffs.At(1, 0), 1e-12)
	require.Equal(Te, -26.1, O.Energies[0])
	require.Nil(Te, F.OrbBeta)

	dm := F.Density("scf", DensityFull)
	require.NotNil(Te, dm)
	require.Equal(Te, 2.12142228, dm.At(0, 0))
	require.Equal(Te, -0.567266134, dm.At(1, 0))
	require.Equal(Te, dm.At(1, 0), dm.At(0, 1))
	require.Nil(Te, F.Density("scf", DensitySpin))

	//unrecognized records are kept
	for _, name := range []string{"Info1-9", "Int Atom Types", "Virial Ratio"} {
		require.Contains(Te, F.Unknown, name)
	}
	vr, ok := F.Unknown["Virial Ratio"].Value.Real()
	require.True(Te, ok)
	require.Equal(Te, 2.001014568910571, vr)
}

func TestFieldsGet(Te *testing.T) {
	F, err := Load("../test/hf_sto3g.fchk", nil)
	require.NoError(Te, err)
	keys := F.Keys()
	for _, k := range []string{"title", "numbers", "coordinates", "energy", "obasis", "orb_alpha", "orb_alpha_coeffs",
		"orb_alpha_energies", "orb_alpha_occs", "dm_full_scf", "mulliken_charges", "npa_charges", "esp_charges", "dipole_moment", "nbasis"} {
		require.Contains(Te, keys, k)
	}
	require.NotContains(Te, keys, "orb_beta")
	require.NotContains(Te, keys, "polar")
	require.IsIncreasing(Te, keys)

	v, ok := F.Get(KeyEnergy)
	require.True(Te, ok)
	require.Equal(Te, KindReal, v.Kind())
	e, ok := v.Real()
	require.True(Te, ok)
	require.Equal(Te, F.Energy, e)
	_, ok = v.Int()
	require.False(Te, ok)

	v, _ = F.Get(KeyTitle)
	s, _ := v.Text()
	require.Equal(Te, "hf_sto3g", s)

	v, _ = F.Get(KeyBasis)
	B, ok := v.Basis()
	require.True(Te, ok)
	require.Same(Te, F.Basis, B)

	v, _ = F.Get("orb_alpha_coeffs")
	m, ok := v.Matrix()
	require.True(Te, ok)
	r, c := m.Dims()
	require.Equal(Te, 6, r)
	require.Equal(Te, 6, c)

	v, _ = F.Get("dm_full_scf")
	require.Equal(Te, KindSymMatrix, v.Kind())
	require.Equal(Te, 6, v.Len())

	v, _ = F.Get(KeyNumbers)
	nums, _ := v.Ints()
	require.Equal(Te, []int{9, 1}, nums)

	_, ok = F.Get("dm_full_mp2")
	require.False(Te, ok)
	require.True(Te, F.Has(KeyMulliken))
}

func TestHSTO3G(Te *testing.T) {
	F, err := Load("../test/h_sto3g.fchk", nil)
	require.NoError(Te, err)
	require.Equal(Te, "h_sto3g", F.Title)
	require.Equal(Te, 1, F.Basis.NShells())
	require.Equal(Te, 1, ShellsToNBasis(F.Basis.ShellTypes))
	require.Equal(Te, []int{3}, F.Basis.NPrims)
	require.Equal(Te, 1, F.Coordinates.NVecs())
	require.Equal(Te, []int{1}, F.Numbers)
	require.Equal(Te, -4.665818503844346e-01, F.Energy)
	require.Equal(Te, Unrestricted, F.OrbAlpha.Kind)
	require.Equal(Te, 1.0, F.OrbAlpha.NElectrons())
	require.Equal(Te, 0.0, F.OrbBeta.NElectrons())
	require.NotNil(Te, F.Density("scf", DensitySpin))
}

func TestWaterSTO3GG03(Te *testing.T) {
	F, err := Load("../test/water_sto3g_hf_g03.fchk", nil)
	require.NoError(Te, err)
	require.Equal(Te, 5, F.Basis.NShells())
	require.Equal(Te, 7, ShellsToNBasis(F.Basis.ShellTypes))
	require.Equal(Te, 3, F.Coordinates.NVecs())
	require.Len(Te, F.Numbers, 3)
	//"independant" in g03 files.
	require.Equal(Te, 7, F.NIndep)
	O := F.OrbAlpha
	require.Equal(Te, 7, O.NBasis)
	require.Equal(Te, 7, O.NOrb)
	require.InDelta(Te, -2.02333942e+01, O.Energies[0], 1e-7)
	require.InDelta(Te, 7.66134805e-01, O.Energies[len(O.Energies)-1], 1e-7)
	require.InDelta(Te, 1.02420843, O.Coeffs.At(0, 0), 1e-8)
	require.InDelta(Te, -0.143444617, O.Coeffs.At(1, 0), 1e-8)
	require.InDelta(Te, 0.0, O.Coeffs.At(6, 2), 1e-8)
	require.InDelta(Te, 0.147909738, O.Coeffs.At(4, 6), 1e-8)
	require.Equal(Te, 5.0, floats.Sum(O.Occs))
	require.Equal(Te, 0.0, floats.Min(O.Occs))
	require.Equal(Te, 1.0, floats.Max(O.Occs))
	require.Equal(Te, -7.495929232844363e+01, F.Energy)
}

func TestLiH321GUHF(Te *testing.T) {
	F, err := Load("../test/li_h_3-21G_hf_g09.fchk", nil)
	require.NoError(Te, err)
	require.Equal(Te, 7, F.Basis.NShells())
	require.Equal(Te, 11, ShellsToNBasis(F.Basis.ShellTypes))
	require.Len(Te, F.Numbers, 2)
	require.Equal(Te, 1, F.Charge)
	require.Equal(Te, 2, F.Multiplicity)
	A, B := F.OrbAlpha, F.OrbBeta
	require.Equal(Te, Unrestricted, A.Kind)
	require.Equal(Te, Unrestricted, B.Kind)
	require.Equal(Te, 11, A.NBasis)
	require.Equal(Te, 11, B.NOrb)
	require.InDelta(Te, -2.76117, A.Energies[0], 1e-4)
	require.InDelta(Te, -2.76031, B.Energies[0], 1e-4)
	require.Equal(Te, 2.0, floats.Sum(A.Occs))
	require.Equal(Te, 1.0, floats.Sum(B.Occs))
	require.Equal(Te, 0.0, floats.Min(B.Occs))
	require.Equal(Te, 1.0, floats.Max(B.Occs))
	require.Len(Te, A.Occs, A.NOrb)
	//In the file, the beta orbital k is the alpha orbital k+1.
	//This only holds if each orbital became one column.
	for k := 0; k < B.NOrb; k++ {
		for i := 0; i < B.NBasis; i++ {
			require.Equal(Te, A.Coeffs.At(i, (k+1)%A.NOrb), B.Coeffs.At(i, k))
		}
	}
	require.Equal(Te, -0.0679628966, B.Coeffs.At(0, 0))
	require.Equal(Te, []float64{A.Coeffs.At(0, 1)}, B.Orbital(0)[:1])
	require.Equal(Te, -7.687331212191968e+00, F.Energy)
	require.NotNil(Te, F.Density("scf", DensityFull))
	require.NotNil(Te, F.Density("scf", DensitySpin))
}

func TestGhostAtoms(Te *testing.T) {
	F, err := Load("../test/water_dimer_ghost.fchk", nil)
	require.NoError(Te, err)
	natom, nghost := 3, 3
	require.Len(Te, F.Numbers, natom)
	require.Equal(Te, natom, F.Coordinates.NVecs())
	require.Len(Te, F.MullikenCharges, natom)
	require.Equal(Te, natom+nghost, F.Basis.Centers.NVecs())
	require.Equal(Te, natom, F.NAtoms)
	require.Equal(Te, nghost, F.NGhosts)
	require.Equal(Te, []float64{8, 1, 1}, F.PseudoNumbers)
	require.Len(Te, F.Masses, natom)
	require.Equal(Te, F.Basis.Centers.At(2, 0), F.Coordinates.At(2, 0))
	require.Equal(Te, 4.192326, F.Basis.Centers.At(3, 0))
	v, _ := F.Get(KeyNAtom)
	n, _ := v.Int()
	require.Equal(Te, natom+nghost, n)
	require.Equal(Te, 14, F.Basis.NBasis())
}

func TestROHF(Te *testing.T) {
	F, err := Load("../test/ch3_rohf_sto3g_g03.fchk", nil)
	require.NoError(Te, err)
	A, B := F.OrbAlpha, F.OrbBeta
	require.NotNil(Te, B)
	require.Equal(Te, RestrictedOpen, A.Kind)
	require.Equal(Te, A.NOrb, len(A.Occs))
	require.Equal(Te, B.NOrb, len(B.Occs))
	require.Equal(Te, 5.0, floats.Sum(A.Occs))
	require.Equal(Te, 4.0, floats.Sum(B.Occs))
	require.True(Te, mat.Equal(A.Coeffs, B.Coeffs))
	require.Equal(Te, A.Energies, B.Energies)
	require.NotSame(Te, A, B)
	//the beta orbitals can be modified without affecting the alpha ones.
	old := A.Coeffs.At(0, 0)
	B.Coeffs.Set(0, 0, old+1)
	B.Energies[0] += 1
	require.Equal(Te, old, A.Coeffs.At(0, 0))
	require.NotEqual(Te, A.Energies[0], B.Energies[0])
	require.False(Te, F.Has("dm_full_scf"))
	require.Nil(Te, F.Density("scf", DensityFull))
	require.True(Te, F.Has("dm_spin_scf"))
	require.False(Te, F.Restricted())
}

func TestNitrogenDensities(Te *testing.T) {
	F, err := Load("../test/nitrogen.fchk", nil)
	require.NoError(Te, err)
	require.Equal(Te, 9, ShellsToNBasis(F.Basis.ShellTypes))
	cases := []struct {
		method string
		full   [2]float64
		spin   [2]float64
	}{
		{"cc", [2]float64{2.08709209e+00, 3.74723580e-01}, [2]float64{7.25882619e-04, -1.38368575e-02}},
		{"ci", [2]float64{2.08741410e+00, 2.09292886e-01}, [2]float64{7.41998558e-04, -6.67582215e-03}},
		{"mp2", [2]float64{2.08710027e+00, 4.86472609e-01}, [2]float64{7.31802950e-04, -2.00028488e-02}},
		{"mp3", [2]float64{2.08674302e+00, 4.91149023e-01}, [2]float64{7.06941101e-04, -1.96276763e-02}},
	}
	for _, c := range cases {
		full := F.Density(c.method, DensityFull)
		spin := F.Density(c.method, DensitySpin)
		require.NotNil(Te, full, c.method)
		require.NotNil(Te, spin, c.method)
		require.Equal(Te, c.full[0], full.At(0, 0))
		require.Equal(Te, c.full[1], full.At(8, 8))
		require.Equal(Te, c.spin[0], spin.At(0, 0))
		require.Equal(Te, c.spin[1], spin.At(8, 8))
		require.True(Te, F.Has("dm_full_"+c.method))
		require.True(Te, F.Has("dm_spin_"+c.method))
	}
	for _, k := range F.DensityKeys() {
		dm := F.Densities[k]
		n := dm.SymmetricDim()
		require.Equal(Te, 9, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.Equal(Te, dm.At(i, j), dm.At(j, i))
			}
		}
	}
	keys := F.DensityKeys()
	require.Len(Te, keys, 11)
	require.Equal(Te, "dm_full_cc", keys[0].String())
	require.Equal(Te, "dm_full_ci_rho(1)", keys[2].String())
	require.Equal(Te, "dm_spin_scf", keys[10].String())
	//"Total CI Rho(1) Density" has a label with a space in it.
	rho := F.Density("ci_rho(1)", DensityFull)
	require.NotNil(Te, rho)
	require.True(Te, mat.Equal(rho, F.Density("ci", DensityFull)))
	require.Nil(Te, F.Density("ci_rho(1)", DensitySpin))
	require.NotContains(Te, F.Unknown, "Total CI Rho(1) Density")
}

func TestMultipoles(Te *testing.T) {
	F, err := Load("../test/water_hfs_321g.fchk", nil)
	require.NoError(Te, err)
	require.Equal(Te, "Polar", F.JobType)
	require.Equal(Te, "RHFS", F.Method)
	require.Equal(Te, "3-21G", F.BasisName)
	require.Equal(Te, "#p hfs/3-21g polar", F.Route)
	require.Equal(Te, "water_hfs_321g: polarizability of water with the HFS functional", F.FullTitle)
	require.Equal(Te, 13, F.NBasis)
	require.Equal(Te, 7.23806684e+00, F.Polar.At(0, 0))
	require.Equal(Te, 8.04213953e+00, F.Polar.At(1, 1))
	require.Equal(Te, 1.20021770e-10, F.Polar.At(1, 2))
	require.Equal(Te, F.Polar.At(2, 1), F.Polar.At(1, 2))
	require.Equal(Te, []float64{-5.82654324e-17, 0, -8.60777067e-01}, F.Dipole)
	require.Equal(Te, []float64{
		-8.89536026e-01, //xx
		8.28408371e-17,  //xy
		4.89353090e-17,  //xz
		1.14114241e+00,  //yy
		-5.47382213e-48, //yz
		-2.51606382e-01, //zz
	}, F.Quadrupole)
}

func TestCompressed(Te *testing.T) {
	plain, err := Load("../test/hf_sto3g.fchk", nil)
	require.NoError(Te, err)
	gz, err := Load("../test/hf_sto3g.fchk.gz", nil)
	require.NoError(Te, err)
	require.Equal(Te, plain.Energy, gz.Energy)
	require.Equal(Te, plain.Keys(), gz.Keys())
	require.True(Te, mat.Equal(plain.OrbAlpha.Coeffs, gz.OrbAlpha.Coeffs))

	data, err := os.ReadFile("../test/hf_sto3g.fchk")
	require.NoError(Te, err)
	zname := filepath.Join(Te.TempDir(), "hf_sto3g.fchk.zst")
	f, err := os.Create(zname)
	require.NoError(Te, err)
	w, err := zstd.NewWriter(f)
	require.NoError(Te, err)
	_, err = w.Write(data)
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	require.NoError(Te, f.Close())
	zst, err := Load(zname, nil)
	require.NoError(Te, err)
	require.Equal(Te, plain.Energy, zst.Energy)
	require.True(Te, mat.Equal(plain.Density("scf", DensityFull), zst.Density("scf", DensityFull)))

	//not really compressed
	bad := filepath.Join(Te.TempDir(), "bad.fchk.gz")
	require.NoError(Te, os.WriteFile(bad, data, 0644))
	_, err = Load(bad, nil)
	require.True(Te, errors.Is(err, ErrNotFound))
}

func TestStrict(Te *testing.T) {
	f, err := os.Open("../test/hf_sto3g.fchk")
	require.NoError(Te, err)
	defer f.Close()
	F, err := Decode(f, "hf_sto3g.fchk", &Options{Strict: true})
	require.Nil(Te, F)
	require.True(Te, errors.Is(err, ErrValidation))
	var fe *Error
	require.True(Te, errors.As(err, &fe))
	require.Equal(Te, "Info1-9", fe.Record())
	require.Equal(Te, 4, fe.Line())
}

func TestMolecule(Te *testing.T) {
	F, err := Load("../test/hf_sto3g.fchk", nil)
	require.NoError(Te, err)
	mol, err := F.Molecule()
	require.NoError(Te, err)
	require.Equal(Te, 2, mol.Len())
	require.Equal(Te, "F", mol.Atom(0).Symbol)
	require.Equal(Te, "H", mol.Atom(1).Symbol)
	require.Equal(Te, 9, mol.Atom(0).Z)
	require.Equal(Te, 18.9984033, mol.Atom(0).Mass)
	require.Equal(Te, 0.45, mol.Atom(0).Charge)
	require.Equal(Te, 1, mol.Multi())
	require.InDelta(Te, -1.52156583*0.529177, mol.Coords[0].At(1, 2), 1e-5)

	F, err = Load("../test/water_dimer_ghost.fchk", nil)
	require.NoError(Te, err)
	mol, err = F.Molecule()
	require.NoError(Te, err)
	require.Equal(Te, 3, mol.Len())
	require.Equal(Te, 3, mol.Coords[0].NVecs())
}
