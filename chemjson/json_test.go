/*
 * json_test.go, part of gofchk.
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

package chemjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rmera/gofchk/fchk"
	"github.com/stretchr/testify/require"
)

func TestSummary(Te *testing.T) {
	F, err := fchk.Load("../test/li_h_3-21G_hf_g09.fchk", nil)
	require.NoError(Te, err)
	var b bytes.Buffer
	require.Nil(Te, NewSummary(F).Send(&b))
	got := new(Summary)
	require.NoError(Te, json.Unmarshal(b.Bytes(), got))
	require.Equal(Te, "li_h_3-21G_hf", got.Title)
	require.Equal(Te, 2, got.Multiplicity)
	require.Equal(Te, 11, got.NBasis)
	require.Equal(Te, 7, got.NShells)
	require.Equal(Te, "unrestricted", got.Orbitals)
	require.Equal(Te, F.OrbAlpha.Energies[1], got.AlphaHOMO)
	require.Equal(Te, F.OrbBeta.Energies[0], got.BetaHOMO)
	require.Equal(Te, []string{"dm_full_scf", "dm_spin_scf"}, got.Densities)
	require.Contains(Te, got.Keys, "orb_beta_coeffs")
	require.Empty(Te, got.Unknown)

	F, err = fchk.Load("../test/hf_sto3g.fchk", nil)
	require.NoError(Te, err)
	S := NewSummary(F)
	require.Equal(Te, []string{"Info1-9", "Int Atom Types", "Virial Ratio"}, S.Unknown)
	require.Equal(Te, []float64{0, 0, -5.12345678e-01}, S.Dipole)
}

func TestMoleculeRoundTrip(Te *testing.T) {
	F, err := fchk.Load("../test/water_sto3g_hf_g03.fchk", nil)
	require.NoError(Te, err)
	mol, err := F.Molecule()
	require.NoError(Te, err)
	var b bytes.Buffer
	require.Nil(Te, SendMolecule(mol, mol.Coords, &b))
	top, coords, jerr := DecodeMolecule(bufio.NewReader(&b), mol.Len(), 1)
	require.Nil(Te, jerr)
	require.Equal(Te, mol.Len(), top.Len())
	require.Equal(Te, "O", top.Atom(0).Symbol)
	require.Equal(Te, mol.Atom(1).Charge, top.Atom(1).Charge)
	require.Len(Te, coords, 1)
	require.Equal(Te, mol.Coords[0].RawMatrix().Data, coords[0].RawMatrix().Data)

	//a missing frame
	b.Reset()
	require.Nil(Te, SendMolecule(mol, mol.Coords, &b))
	_, _, jerr = DecodeMolecule(bufio.NewReader(&b), mol.Len(), 2)
	require.NotNil(Te, jerr)
	require.True(Te, jerr.InSelections)
}

func TestNewError(Te *testing.T) {
	_, err := fchk.Load("../test/nothere.fchk", nil)
	jerr := NewError("decode", "main", err)
	require.True(Te, jerr.IsError)
	require.True(Te, jerr.InDecoding)
	require.Equal(Te, "NotFound", jerr.Kind)
	require.Equal(Te, "../test/nothere.fchk", jerr.File)
	back := new(Error)
	require.NoError(Te, json.Unmarshal(jerr.Marshal(), back))
	require.Equal(Te, jerr.Message, back.Message)
	require.Equal(Te, []string{"main"}, jerr.Decorate("main"))
}

func TestSendFields(Te *testing.T) {
	for _, c := range []struct {
		file  string
		natom int
	}{{"water_hfs_321g.fchk", 3}, {"water_dimer_ghost.fchk", 3}, {"li_h_3-21G_hf_g09.fchk", 2}} {
		F, err := fchk.Load("../test/"+c.file, nil)
		require.NoError(Te, err)
		var b bytes.Buffer
		require.Nil(Te, SendFields(F, &b), c.file)
		S, top, coords, jerr := ReceiveFields(bufio.NewReader(&b))
		require.Nil(Te, jerr, c.file)
		require.Equal(Te, F.Title, S.Title)
		require.Equal(Te, c.natom, top.Len())
		require.Equal(Te, F.Charge, top.Charge())
		require.Equal(Te, F.Multiplicity, top.Multi())
		require.Len(Te, coords, 1)
		mol, err := F.Molecule()
		require.NoError(Te, err)
		require.Equal(Te, mol.Coords[0].RawMatrix().Data, coords[0].RawMatrix().Data)
		require.Equal(Te, mol.Atom(0).Symbol, top.Atom(0).Symbol)
	}
	F, err := fchk.Load("../test/water_hfs_321g.fchk", nil)
	require.NoError(Te, err)
	require.InDelta(Te, 2.18788, NewSummary(F).DipoleDebye, 1e-5)

	//the molecule is cut short
	var b bytes.Buffer
	require.Nil(Te, SendFields(F, &b))
	short := b.Bytes()[:bytes.LastIndexByte(b.Bytes()[:b.Len()-1], '\n')+1]
	_, _, _, jerr := ReceiveFields(bufio.NewReader(bytes.NewReader(short)))
	require.NotNil(Te, jerr)
	require.True(Te, jerr.InSelections)
	_, _, _, jerr = ReceiveFields(bufio.NewReader(bytes.NewReader([]byte("{not json\n"))))
	require.NotNil(Te, jerr)
}
