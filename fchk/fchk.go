/*
 * fchk.go, part of gofchk.
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
	"bufio"
	"compress/gzip"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/gofchk/v3"
)

//Load decodes the formatted checkpoint file filename. Files with the .gz
//extension are decompressed with gzip, files with the .zst or .zstd extension,
//with zstandard. A nil opts means DefaultOptions().
//On error, no Fields are returned.
func Load(filename string, opts *Options) (*Fields, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &Error{kind: ErrNotFound, message: err.Error(), filename: filename, deco: []string{"Load"}, cause: err}
	}
	defer f.Close()
	r, err := decompress(bufio.NewReader(f), filename)
	if err != nil {
		return nil, &Error{kind: ErrNotFound, message: "can't decompress: " + err.Error(), filename: filename, deco: []string{"Load"}, cause: err}
	}
	defer r.Close()
	F, err := Decode(r, filename, opts)
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	return F, nil
}

//zstd.Decoder has a Close method that returns nothing, so it is not
//an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//decompress returns a reader for r, decompressing it if the name has the
//extension of a supported compression format.
func decompress(r io.Reader, name string) (io.ReadCloser, error) {
	lname := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lname, ".gz"):
		return gzip.NewReader(r)
	case strings.HasSuffix(lname, ".zst"), strings.HasSuffix(lname, ".zstd"):
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	}
	return io.NopCloser(r), nil
}

//Decode decodes a formatted checkpoint file from r. filename is only used in
//error and log messages. A nil opts means DefaultOptions().
//On error, no Fields are returned.
func Decode(r io.Reader, filename string, opts *Options) (*Fields, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	d := newDecoder(filename, opts)
	R := NewReader(r, filename)
	title, job, err := R.Preamble()
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	for {
		rec, err := R.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errDecorate(err, "Decode")
		}
		if err = d.add(rec); err != nil {
			return nil, errDecorate(err, "Decode")
		}
	}
	F, err := d.finish(title, job)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	return F, nil
}

//decoder collects the records of one file, and assembles them once
//all have been read.
type decoder struct {
	filename  string
	opts      *Options
	recs      map[string]*Record //recognized records, by canonical key
	densities map[DensityKey]*Record
	unknown   map[string]*Record
	realAtoms []int //indexes of the atoms that are not ghosts
}

func newDecoder(filename string, opts *Options) *decoder {
	d := new(decoder)
	d.filename = filename
	d.opts = opts
	d.recs = make(map[string]*Record)
	d.densities = make(map[DensityKey]*Record)
	d.unknown = make(map[string]*Record)
	return d
}

//add classifies a record and stores it. For repeated records, the
//last one is kept.
func (d *decoder) add(rec *Record) error {
	n, ok := ClassifyName(rec.Name)
	if !ok {
		if d.opts.Strict {
			return newError(ErrValidation, d.filename, rec.Name, rec.Line, "unrecognized record in strict mode")
		}
		if d.opts.Verbose {
			log.Printf("fchk: %s: unrecognized record %q at line %d, kept as is", d.filename, rec.Name, rec.Line)
		}
		d.replaced(d.unknown[rec.Name], rec)
		d.unknown[rec.Name] = rec
		return nil
	}
	if err := checkShape(rec, d.filename); err != nil {
		return errDecorate(err, "add")
	}
	if n.Base == densityBase {
		k := densityKeyOf(n)
		d.replaced(d.densities[k], rec)
		d.densities[k] = rec
		return nil
	}
	key := n.Key()
	d.replaced(d.recs[key], rec)
	d.recs[key] = rec
	return nil
}

func (d *decoder) replaced(old, rec *Record) {
	if old != nil && d.opts.Verbose {
		log.Printf("fchk: %s: record %q at line %d replaces %q at line %d", d.filename, rec.Name, rec.Line, old.Name, old.Line)
	}
}

//line returns the line of the record with the given key, or 0.
func (d *decoder) line(key string) int {
	if r, ok := d.recs[key]; ok {
		return r.Line
	}
	return 0
}

func (d *decoder) has(key string) bool {
	_, ok := d.recs[key]
	return ok
}

func (d *decoder) int(key string) (int, bool) {
	if r, ok := d.recs[key]; ok {
		return r.Value.Int()
	}
	return 0, false
}

func (d *decoder) real(key string) (float64, bool) {
	if r, ok := d.recs[key]; ok {
		return r.Value.Real()
	}
	return 0, false
}

func (d *decoder) text(key string) (string, bool) {
	if r, ok := d.recs[key]; ok {
		return r.Value.Text()
	}
	return "", false
}

func (d *decoder) ints(key string) ([]int, bool) {
	if r, ok := d.recs[key]; ok {
		return r.Value.Ints()
	}
	return nil, false
}

func (d *decoder) vector(key string) ([]float64, bool) {
	if r, ok := d.recs[key]; ok {
		return r.Value.Vector()
	}
	return nil, false
}

//recordName returns the name of a record in the file, given its key.
func recordName(key string) string {
	for name, k := range knownNames {
		if k.key == key && !strings.Contains(name, "independant") {
			return name
		}
	}
	return key
}

//splitJobLine splits the second line of the file in its three fixed-width
//fields: the job type (10 columns), the method (30 columns) and the basis set.
func splitJobLine(job string) (jobType, method, basis string) {
	field := func(from, to int) string {
		if from >= len(job) {
			return ""
		}
		if to < 0 || to > len(job) {
			to = len(job)
		}
		return strings.TrimSpace(job[from:to])
	}
	return field(0, 10), field(10, 40), field(40, -1)
}

//finish assembles and validates the records read into a Fields.
func (d *decoder) finish(title, job string) (*Fields, error) {
	F := &Fields{Title: title, Unknown: d.unknown}
	F.JobType, F.Method, F.BasisName = splitJobLine(job)
	F.Route, _ = d.text(KeyRoute)
	F.FullTitle, _ = d.text(KeyFullTitle)
	F.Charge, _ = d.int(KeyCharge)
	F.Multiplicity, _ = d.int(KeyMultiplicity)
	F.NElectrons, _ = d.int(KeyNElec)
	F.NAlpha, _ = d.int(KeyNAlpha)
	F.NBeta, _ = d.int(KeyNBeta)
	F.NBasis, _ = d.int(KeyNBasis)
	F.NIndep, _ = d.int(KeyNIndep)
	F.Energy, _ = d.real(KeyEnergy)
	F.SCFEnergy, _ = d.real(KeySCFEnergy)

	all, err := d.atoms(F)
	if err != nil {
		return nil, errDecorate(err, "finish")
	}
	if err = d.basis(F, all); err != nil {
		return nil, errDecorate(err, "finish")
	}
	if err = d.orbitals(F); err != nil {
		return nil, errDecorate(err, "finish")
	}
	if len(d.densities) > 0 {
		if F.NBasis <= 0 {
			return nil, newError(ErrValidation, d.filename, "", 0, "density matrices present, but the number of basis functions is unknown")
		}
		if F.Densities, err = d.assembleDensities(F.NBasis); err != nil {
			return nil, errDecorate(err, "finish")
		}
		//Gaussian writes a wrong SCF density for restricted open-shell calculations.
		k := DensityKey{Method: "scf", Kind: DensityFull}
		if _, ok := F.Densities[k]; ok && F.OrbAlpha != nil && F.OrbAlpha.Kind == RestrictedOpen {
			log.Printf("fchk: %s: the total SCF density of a restricted open-shell calculation is not reliable, it will be ignored", d.filename)
			delete(F.Densities, k)
		}
	}
	if err = d.validate(F); err != nil {
		return nil, errDecorate(err, "finish")
	}
	if err = d.assembleMultipoles(F); err != nil {
		return nil, errDecorate(err, "finish")
	}
	F.setValues(d.has)
	return F, nil
}

//atoms assembles the per-atom arrays, removing the ghost atoms from them.
//It returns the coordinates of all atoms, ghost atoms included.
func (d *decoder) atoms(F *Fields) (*v3.Matrix, error) {
	for _, key := range []string{KeyNAtom, KeyNumbers, KeyCoordinates} {
		if !d.has(key) {
			return nil, newError(ErrValidation, d.filename, recordName(key), 0, "required record missing")
		}
	}
	natom, _ := d.int(KeyNAtom)
	numbers, _ := d.ints(KeyNumbers)
	coords, _ := d.vector(KeyCoordinates)
	if natom <= 0 {
		return nil, newError(ErrValidation, d.filename, recordName(KeyNAtom), d.line(KeyNAtom), "%d atoms", natom)
	}
	if len(numbers) != natom {
		return nil, newError(ErrValidation, d.filename, recordName(KeyNumbers), d.line(KeyNumbers), "%d atomic numbers for %d atoms", len(numbers), natom)
	}
	if len(coords) != 3*natom {
		return nil, newError(ErrValidation, d.filename, recordName(KeyCoordinates), d.line(KeyCoordinates), "%d coordinates for %d atoms", len(coords), natom)
	}
	pseudo, hasPseudo := d.vector(KeyPseudoNumbers)
	if hasPseudo && len(pseudo) != natom {
		return nil, newError(ErrValidation, d.filename, recordName(KeyPseudoNumbers), d.line(KeyPseudoNumbers), "%d nuclear charges for %d atoms", len(pseudo), natom)
	}
	masses, hasMasses := d.vector(KeyMasses)
	if hasMasses && len(masses) != natom {
		return nil, newError(ErrValidation, d.filename, recordName(KeyMasses), d.line(KeyMasses), "%d masses for %d atoms", len(masses), natom)
	}
	//Ghost atoms have no nuclear charge. If the charges are not
	//in the file, the atomic number is used.
	realAtoms := make([]int, 0, natom)
	for i := 0; i < natom; i++ {
		if (hasPseudo && pseudo[i] != 0) || (!hasPseudo && numbers[i] != 0) {
			realAtoms = append(realAtoms, i)
		}
	}
	if len(realAtoms) == 0 {
		return nil, newError(ErrValidation, d.filename, recordName(KeyNumbers), d.line(KeyNumbers), "all %d atoms are ghost atoms", natom)
	}
	d.realAtoms = realAtoms
	F.NAtoms = len(realAtoms)
	F.NGhosts = natom - F.NAtoms
	all, err := v3.NewMatrix(append([]float64(nil), coords...))
	if err != nil {
		return nil, newError(ErrValidation, d.filename, recordName(KeyCoordinates), d.line(KeyCoordinates), "%s", err.Error())
	}
	F.Coordinates = v3.Zeros(F.NAtoms)
	if err := F.Coordinates.SomeVecsSafe(all, realAtoms); err != nil {
		return nil, newError(ErrValidation, d.filename, recordName(KeyCoordinates), d.line(KeyCoordinates), "%s", err.Error())
	}
	F.Numbers = make([]int, F.NAtoms)
	for i, j := range realAtoms {
		F.Numbers[i] = numbers[j]
	}
	if hasPseudo {
		F.PseudoNumbers = maskReals(pseudo, realAtoms)
	}
	if hasMasses {
		F.Masses = maskReals(masses, realAtoms)
	}
	return all, nil
}

func maskReals(v []float64, keep []int) []float64 {
	ret := make([]float64, len(keep))
	for i, j := range keep {
		ret[i] = v[j]
	}
	return ret
}

//basis assembles the basis set, if the file has one, on the given centers.
func (d *decoder) basis(F *Fields, centers *v3.Matrix) error {
	required := []string{keyShellTypes, keyNPrims, keyShellMap, keyAlphas, keyConCoeffs}
	present := 0
	for _, k := range required {
		if d.has(k) {
			present++
		}
	}
	if present == 0 {
		if d.has(keySPCoeffs) {
			return newError(ErrInconsistentBasis, d.filename, recordName(keySPCoeffs), d.line(keySPCoeffs), "P(S=P) coefficients without a basis set")
		}
		return nil
	}
	for _, k := range required {
		if !d.has(k) {
			return newError(ErrInconsistentBasis, d.filename, recordName(k), 0, "basis set record missing")
		}
	}
	var raw basisRecords
	raw.shellTypes, _ = d.ints(keyShellTypes)
	raw.nprims, _ = d.ints(keyNPrims)
	raw.shellMap, _ = d.ints(keyShellMap)
	raw.alphas, _ = d.vector(keyAlphas)
	raw.conCoeffs, _ = d.vector(keyConCoeffs)
	raw.spCoeffs, _ = d.vector(keySPCoeffs)
	B, err := d.assembleBasis(raw, centers)
	if err != nil {
		return errDecorate(err, "basis")
	}
	if err = d.checkBasisSummary(B); err != nil {
		return errDecorate(err, "basis")
	}
	if d.has(KeyNBasis) && F.NBasis != B.NBasis() {
		return newError(ErrInconsistentBasis, d.filename, recordName(KeyNBasis), d.line(KeyNBasis), "file declares %d basis functions, the shells give %d", F.NBasis, B.NBasis())
	}
	F.NBasis = B.NBasis()
	F.Basis = B
	return nil
}

//orbitals assembles the alpha and, if needed, beta orbitals. Restricted
//open-shell calculations only store one set of orbitals. In that case the beta
//orbitals are a copy of the alpha ones, with different occupations.
func (d *decoder) orbitals(F *Fields) error {
	alphaKey, betaKey := KeyOrbAlpha+suffixCoeffs, KeyOrbBeta+suffixCoeffs
	acoeffs, ok := d.vector(alphaKey)
	if !ok {
		if d.has(betaKey) {
			return newError(ErrValidation, d.filename, recordName(betaKey), d.line(betaKey), "beta orbitals without alpha orbitals")
		}
		return nil
	}
	if F.NBasis <= 0 {
		return newError(ErrValidation, d.filename, recordName(alphaKey), d.line(alphaKey), "orbitals present, but the number of basis functions is unknown")
	}
	if !d.has(KeyNAlpha) || !d.has(KeyNBeta) {
		return newError(ErrValidation, d.filename, recordName(alphaKey), d.line(alphaKey), "orbitals present, but the numbers of alpha and beta electrons are missing")
	}
	if F.NAlpha < 0 || F.NBeta < 0 || F.NAlpha+F.NBeta <= 0 {
		return newError(ErrValidation, d.filename, recordName(KeyNAlpha), d.line(KeyNAlpha), "invalid electron counts: %d alpha, %d beta", F.NAlpha, F.NBeta)
	}
	h := OrbitalHeader{NBasis: F.NBasis, NOrb: F.NBasis, Kind: Restricted}
	if d.has(KeyNIndep) {
		h.NOrb = F.NIndep
	}
	if h.NOrb <= 0 || h.NOrb > h.NBasis {
		return newError(ErrDimensionMismatch, d.filename, recordName(KeyNIndep), d.line(KeyNIndep), "%d independent functions for %d basis functions", h.NOrb, h.NBasis)
	}
	bcoeffs, unrestricted := d.vector(betaKey)
	if unrestricted {
		h.Kind = Unrestricted
	} else if F.NAlpha != F.NBeta {
		h.Kind = RestrictedOpen
	}
	aenergies, _ := d.vector(KeyOrbAlpha + suffixEnergies)
	var err error
	if F.OrbAlpha, err = d.assembleOrbitals(KeyOrbAlpha, h, acoeffs, aenergies, F.NAlpha); err != nil {
		return errDecorate(err, "orbitals")
	}
	switch h.Kind {
	case Unrestricted:
		benergies, _ := d.vector(KeyOrbBeta + suffixEnergies)
		if F.OrbBeta, err = d.assembleOrbitals(KeyOrbBeta, h, bcoeffs, benergies, F.NBeta); err != nil {
			return errDecorate(err, "orbitals")
		}
	case RestrictedOpen:
		if F.NBeta > h.NOrb {
			return newError(ErrDimensionMismatch, d.filename, recordName(KeyNBeta), d.line(KeyNBeta), "%d beta electrons, but only %d orbitals", F.NBeta, h.NOrb)
		}
		F.OrbBeta = F.OrbAlpha.Copy()
		F.OrbBeta.setOccupations(F.NBeta)
	}
	return nil
}
