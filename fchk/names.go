/*
 * names.go, part of gofchk.
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
	"regexp"
	"strings"
)

//Canonical keys for the fields recognized by the decoder. Density matrices
//use keys built by DensityKey.String, i.e. "dm_full_<method>" and "dm_spin_<method>".
const (
	KeyTitle          = "title"
	KeyJobType        = "job_type"
	KeyMethod         = "method"
	KeyBasisName      = "basis_name"
	KeyRoute          = "route"
	KeyFullTitle      = "full_title"
	KeyNAtom          = "natom"
	KeyCharge         = "charge"
	KeyMultiplicity   = "multiplicity"
	KeyNElec          = "nelec"
	KeyNAlpha         = "nalpha"
	KeyNBeta          = "nbeta"
	KeyNBasis         = "nbasis"
	KeyNIndep         = "nindep"
	KeyNumbers        = "numbers"
	KeyPseudoNumbers  = "pseudo_numbers"
	KeyCoordinates    = "coordinates"
	KeyMasses         = "masses"
	KeyEnergy         = "energy"
	KeySCFEnergy      = "scf_energy"
	KeyBasis          = "obasis"
	KeyOrbAlpha       = "orb_alpha"
	KeyOrbBeta        = "orb_beta"
	KeyMulliken       = "mulliken_charges"
	KeyNPA            = "npa_charges"
	KeyESP            = "esp_charges"
	KeyDipole         = "dipole_moment"
	KeyQuadrupole     = "quadrupole_moment"
	KeyPolar          = "polar"
	keyShellTypes     = "shell_types"
	keyNPrims         = "nprims"
	keyShellMap       = "shell_map"
	keyAlphas         = "alphas"
	keyConCoeffs      = "con_coeffs"
	keySPCoeffs       = "sp_coeffs"
	keyNContracted    = "ncontracted"
	keyNPrimitive     = "nprimitive"
	keyMaxL           = "max_l"
	keyMaxContraction = "max_contraction"
	keyPureD          = "pure_d"
	keyPureF          = "pure_f"
)

//Suffixes for the parts of an orbital set, e.g. "orb_alpha_coeffs".
const (
	suffixCoeffs   = "_coeffs"
	suffixEnergies = "_energies"
	suffixOccs     = "_occs"
)

//knownName describes a record the decoder understands: its canonical key, and
//the type and shape it must have.
type knownName struct {
	key   string
	typ   byte
	array bool
}

var knownNames = map[string]knownName{
	"Number of atoms":                 {KeyNAtom, TypeInt, false},
	"Charge":                          {KeyCharge, TypeInt, false},
	"Multiplicity":                    {KeyMultiplicity, TypeInt, false},
	"Number of electrons":             {KeyNElec, TypeInt, false},
	"Number of alpha electrons":       {KeyNAlpha, TypeInt, false},
	"Number of beta electrons":        {KeyNBeta, TypeInt, false},
	"Number of basis functions":       {KeyNBasis, TypeInt, false},
	"Number of independent functions": {KeyNIndep, TypeInt, false},
	"Number of independant functions": {KeyNIndep, TypeInt, false}, //g03
	"Route":                           {KeyRoute, TypeChar, true},
	"Full Title":                      {KeyFullTitle, TypeChar, true},
	"Atomic numbers":                  {KeyNumbers, TypeInt, true},
	"Nuclear charges":                 {KeyPseudoNumbers, TypeReal, true},
	"Current cartesian coordinates":   {KeyCoordinates, TypeReal, true},
	"Real atomic weights":             {KeyMasses, TypeReal, true},
	"Total Energy":                    {KeyEnergy, TypeReal, false},
	"SCF Energy":                      {KeySCFEnergy, TypeReal, false},
	"Number of contracted shells":     {keyNContracted, TypeInt, false},
	"Number of primitive shells":      {keyNPrimitive, TypeInt, false},
	"Pure/Cartesian d shells":         {keyPureD, TypeInt, false},
	"Pure/Cartesian f shells":         {keyPureF, TypeInt, false},
	"Highest angular momentum":        {keyMaxL, TypeInt, false},
	"Largest degree of contraction":   {keyMaxContraction, TypeInt, false},
	"Shell types":                     {keyShellTypes, TypeInt, true},
	"Number of primitives per shell":  {keyNPrims, TypeInt, true},
	"Shell to atom map":               {keyShellMap, TypeInt, true},
	"Primitive exponents":             {keyAlphas, TypeReal, true},
	"Contraction coefficients":        {keyConCoeffs, TypeReal, true},
	"P(S=P) Contraction coefficients": {keySPCoeffs, TypeReal, true},
	"Alpha Orbital Energies":          {KeyOrbAlpha + suffixEnergies, TypeReal, true},
	"Beta Orbital Energies":           {KeyOrbBeta + suffixEnergies, TypeReal, true},
	"Alpha MO coefficients":           {KeyOrbAlpha + suffixCoeffs, TypeReal, true},
	"Beta MO coefficients":            {KeyOrbBeta + suffixCoeffs, TypeReal, true},
	"Mulliken Charges":                {KeyMulliken, TypeReal, true},
	"NPA Charges":                     {KeyNPA, TypeReal, true},
	"ESP Charges":                     {KeyESP, TypeReal, true},
	"Dipole Moment":                   {KeyDipole, TypeReal, true},
	"Quadrupole Moment":               {KeyQuadrupole, TypeReal, true},
	"Polarizability":                  {KeyPolar, TypeReal, true},
}

//densityName matches the method-qualified density matrices, such as
//"Total SCF Density", "Spin MP2 Density" or "Total CI Rho(1) Density".
var densityName = regexp.MustCompile(`^(Total|Spin) (.+?) Density$`)

//methodLabel turns the method part of a density name into the lower case,
//underscore-separated form used in keys: "CI Rho(1)" becomes "ci_rho(1)".
func methodLabel(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "_"))
}

//Name is the structured form of a record name: a base name and the qualifiers
//encoded in the name, if any. For "Spin CC Density" Base is "dm" and the
//qualifiers are "spin" and "cc".
type Name struct {
	Base       string
	Qualifiers []string
}

//Key returns the canonical key for the name: the base and the qualifiers,
//joined by underscores.
func (N Name) Key() string {
	if len(N.Qualifiers) == 0 {
		return N.Base
	}
	return N.Base + "_" + strings.Join(N.Qualifiers, "_")
}

//ClassifyName returns the structured name for a record name, and false if the
//name is not recognized.
func ClassifyName(name string) (Name, bool) {
	if k, ok := knownNames[name]; ok {
		return Name{Base: k.key}, true
	}
	if m := densityName.FindStringSubmatch(name); m != nil && methodLabel(m[2]) != "" {
		kind := DensityFull
		if m[1] == "Spin" {
			kind = DensitySpin
		}
		return Name{Base: densityBase, Qualifiers: []string{kind.String(), methodLabel(m[2])}}, true
	}
	return Name{}, false
}

//checkShape verifies that a recognized record has the type and shape that
//its name requires. Density matrices are real arrays.
func checkShape(rec *Record, filename string) error {
	typ, array := TypeReal, true
	if k, ok := knownNames[rec.Name]; ok {
		typ, array = k.typ, k.array
	}
	if rec.Type != typ || rec.Array != array {
		shape := map[bool]string{true: "array", false: "scalar"}
		return newError(ErrMalformedRecord, filename, rec.Name, rec.Line, "expected %s of type %c, found %s of type %c", shape[array], typ, shape[rec.Array], rec.Type)
	}
	return nil
}
