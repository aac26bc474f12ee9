/*
 * chem_test.go, part of gofchk.
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

package chem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	v3 "github.com/rmera/gofchk/v3"
)

func water(Te *testing.T) *Molecule {
	ats := make([]*Atom, 3)
	for i, s := range []string{"O", "H", "H"} {
		z, err := AtomicNumber(s)
		if err != nil {
			Te.Fatal(err)
		}
		ats[i] = &Atom{Name: s, Id: i + 1, Z: z, Symbol: s, Mass: SymbolMass(s)}
	}
	top, err := NewTopology(ats, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	coords, err := v3.NewMatrix([]float64{0, 0, 0.117, 0, 0.757, -0.469, 0, -0.757, -0.469})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule(top, []*v3.Matrix{coords})
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestAtomicData(Te *testing.T) {
	for z, s := range map[int]string{1: "H", 6: "C", 8: "O", 17: "Cl", 0: "Gh"} {
		sym, err := Symbol(z)
		if err != nil || sym != s {
			Te.Errorf("Symbol(%d) gave %q, %v. Expected %q", z, sym, err, s)
		}
		if s == "Gh" {
			continue
		}
		if n, err := AtomicNumber(strings.ToLower(s)); err != nil || n != z {
			Te.Errorf("AtomicNumber(%q) gave %d, %v", s, n, err)
		}
	}
	if _, err := Symbol(-3); err == nil {
		Te.Error("Symbol accepted a negative atomic number")
	}
	if _, err := AtomicNumber("Xx"); err == nil {
		Te.Error("AtomicNumber accepted an unknown symbol")
	}
	if m := SymbolMass("O"); m < 15.99 || m > 16.0 {
		Te.Errorf("Wrong mass for O: %f", m)
	}
}

func TestMolecule(Te *testing.T) {
	mol := water(Te)
	if mol.Len() != 3 || mol.Charge() != 0 || mol.Multi() != 1 {
		Te.Errorf("Wrong molecule: %d atoms, charge %d, multiplicity %d", mol.Len(), mol.Charge(), mol.Multi())
	}
	masses, err := mol.Masses()
	if err != nil {
		Te.Fatal(err)
	}
	if masses[1] != SymbolMass("H") {
		Te.Errorf("Wrong mass %f", masses[1])
	}
	at := mol.Atom(0).Copy()
	at.Symbol = "N"
	if mol.Atom(0).Symbol != "O" {
		Te.Error("Atom.Copy doesn't copy")
	}
	if _, err := NewMolecule(mol.Topology, []*v3.Matrix{v3.Zeros(2)}); err == nil {
		Te.Error("NewMolecule accepted 2 coordinates for 3 atoms")
	}
	if _, err := NewMolecule(nil, nil); err == nil {
		Te.Error("NewMolecule accepted a nil topology")
	}
}

func TestXYZWrite(Te *testing.T) {
	mol := water(Te)
	s, err := XYZStringWrite(mol.Coords[0], mol)
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != 5 || !strings.HasPrefix(lines[2], "O ") {
		Te.Errorf("Wrong XYZ output:\n%s", s)
	}
	name := filepath.Join(Te.TempDir(), "water.xyz")
	if err = XYZFileWrite(name, mol.Coords[0], mol); err != nil {
		Te.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if string(data) != s {
		Te.Error("XYZFileWrite and XYZStringWrite disagree")
	}
	if _, err = XYZStringWrite(v3.Zeros(1), mol); err == nil {
		Te.Error("XYZStringWrite accepted inconsistent coordinates")
	}
	if lines[1] != "charge 0 multiplicity 1" {
		Te.Errorf("Wrong XYZ comment line %q", lines[1])
	}
	mol.SetCharge(1)
	mol.SetMulti(2)
	s, err = XYZStringWrite(mol.Coords[0], mol)
	if err != nil {
		Te.Fatal(err)
	}
	if lines = strings.Split(s, "\n"); lines[1] != "charge 1 multiplicity 2" {
		Te.Errorf("Wrong XYZ comment line %q", lines[1])
	}
	if A2Bohr*Bohr2A-1 > 1e-12 {
		Te.Error("Inconsistent conversion factors")
	}
}
