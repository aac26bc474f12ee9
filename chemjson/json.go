/*
 * json.go, part of gofchk.
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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	chem "github.com/rmera/gofchk"
	"github.com/rmera/gofchk/fchk"
	v3 "github.com/rmera/gofchk/v3"
	"gonum.org/v1/gonum/floats"
)

//Coords is a ready-to-serialize container for the coordinates of one atom.
type Coords struct {
	Coords []float64
}

//An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool   //If this is false (no error) all the other fields will be at their zero-values.
	InDecoding    bool   //Was it decoding the fchk file?
	InSelections  bool   //Was it reading a molecule?
	InPostProcess bool   //was it in preparing the output?
	Kind          string //for decoding errors, the fchk error kind
	File          string
	Record        string
	Line          int
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

var kinds = []struct {
	err  error
	name string
}{
	{fchk.ErrNotFound, "NotFound"},
	{fchk.ErrMalformedRecord, "MalformedRecord"},
	{fchk.ErrTruncatedFile, "TruncatedFile"},
	{fchk.ErrDimensionMismatch, "DimensionMismatch"},
	{fchk.ErrInconsistentBasis, "InconsistentBasis"},
	{fchk.ErrValidation, "Validation"},
}

//NewError takes an error and some additional info to create a json-marshal-ble error.
//where is "decode", "selection" or "postprocess". Errors from the fchk package
//also carry their kind, file, record and line.
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "decode":
		jerr.InDecoding = true
	case "selection":
		jerr.InSelections = true
	default:
		jerr.InPostProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			jerr.Kind = k.name
			break
		}
	}
	var ferr *fchk.Error
	if errors.As(err, &ferr) {
		jerr.File = ferr.FileName()
		jerr.Record = ferr.Record()
		jerr.Line = ferr.Line()
	}
	return jerr
}

//Summary is the information on a decoded file to be passed to the calling program.
type Summary struct {
	Title        string
	JobType      string
	Method       string
	BasisName    string
	NAtoms       int
	NGhosts      int
	Charge       int
	Multiplicity int
	NBasis       int
	NShells      int
	Energy       float64
	Orbitals     string    `json:",omitempty"` //kind of orbitals, if present
	NOrb         int       `json:",omitempty"`
	AlphaHOMO    float64   `json:",omitempty"`
	BetaHOMO     float64   `json:",omitempty"`
	Densities    []string  `json:",omitempty"`
	Dipole       []float64 `json:",omitempty"` //atomic units
	DipoleDebye  float64   `json:",omitempty"` //magnitude of the dipole moment, in Debye
	Keys         []string
	Unknown      []string `json:",omitempty"`
}

//NewSummary builds the summary of F.
func NewSummary(F *fchk.Fields) *Summary {
	J := &Summary{
		Title:        F.Title,
		JobType:      F.JobType,
		Method:       F.Method,
		BasisName:    F.BasisName,
		NAtoms:       F.NAtoms,
		NGhosts:      F.NGhosts,
		Charge:       F.Charge,
		Multiplicity: F.Multiplicity,
		NBasis:       F.NBasis,
		Energy:       F.Energy,
		Dipole:       F.Dipole,
		Keys:         F.Keys(),
	}
	if F.Basis != nil {
		J.NShells = F.Basis.NShells()
	}
	if len(F.Dipole) == 3 {
		J.DipoleDebye = floats.Norm(F.Dipole, 2) / chem.Debye2AU
	}
	if F.OrbAlpha != nil {
		J.Orbitals = F.OrbAlpha.Kind.String()
		J.NOrb = F.OrbAlpha.NOrb
		J.AlphaHOMO = homo(F.OrbAlpha)
		if F.OrbBeta != nil {
			J.BetaHOMO = homo(F.OrbBeta)
		}
	}
	for _, k := range F.DensityKeys() {
		J.Densities = append(J.Densities, k.String())
	}
	for name := range F.Unknown {
		J.Unknown = append(J.Unknown, name)
	}
	sort.Strings(J.Unknown)
	return J
}

//homo returns the energy of the highest occupied orbital in O, or 0 if none is.
func homo(O *fchk.OrbitalSet) float64 {
	ret := 0.0
	for i, o := range O.Occs {
		if o > 0 {
			ret = O.Energies[i]
		}
	}
	return ret
}

//Send Marshals the summary and writes to out, returns an error or nil
func (J *Summary) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Summary.Send", err)
	}
	return nil
}

//SendFields writes to out the summary of F in one line, followed by its molecule:
//one line per atom and one per atomic position, in Angstrom.
func SendFields(F *fchk.Fields, out io.Writer) *Error {
	if err := NewSummary(F).Send(out); err != nil {
		return err
	}
	mol, err := F.Molecule()
	if err != nil {
		return NewError("selection", "SendFields", err)
	}
	return SendMolecule(mol, mol.Coords, out)
}

//ReceiveFields reads what SendFields writes. The topology gets the charge and
//multiplicity of the summary.
func ReceiveFields(stream *bufio.Reader) (*Summary, *chem.Topology, []*v3.Matrix, *Error) {
	const funcname = "ReceiveFields"
	line, err := stream.ReadBytes('\n')
	if err != nil {
		return nil, nil, nil, NewError("selection", funcname, fmt.Errorf("Error reading the summary: %s", err.Error()))
	}
	S := new(Summary)
	if err = json.Unmarshal(line, S); err != nil {
		return nil, nil, nil, NewError("selection", funcname, err)
	}
	top, coords, jerr := DecodeMolecule(stream, S.NAtoms, 1)
	if jerr != nil {
		jerr.Decorate(funcname)
		return S, nil, nil, jerr
	}
	top.SetCharge(S.Charge)
	top.SetMulti(S.Multiplicity)
	return S, top, coords, nil
}

//DecodeMolecule Decodes a JSON molecule into a topology and coordinates. Can handle several frames (all of which need to have the same amount of atoms).
func DecodeMolecule(stream *bufio.Reader, atomnumber, frames int) (*chem.Topology, []*v3.Matrix, *Error) {
	const funcname = "DecodeMolecule" //for the error
	atoms := make([]*chem.Atom, 0, atomnumber)
	for i := 0; i < atomnumber; i++ {
		line, err := stream.ReadBytes('\n')
		if err != nil {
			return nil, nil, NewError("selection", funcname, fmt.Errorf("Error reading atom %d: %s", i, err.Error()))
		}
		at := new(chem.Atom)
		if err = json.Unmarshal(line, at); err != nil {
			return nil, nil, NewError("selection", funcname, err)
		}
		atoms = append(atoms, at)
	}
	mol, err := chem.NewTopology(atoms, 0, 1) //no idea of the charge or multiplicity
	if err != nil {
		return nil, nil, NewError("selection", funcname, err)
	}
	coordset := make([]*v3.Matrix, 0, frames)
	for i := 0; i < frames; i++ {
		coords, err := DecodeCoords(stream, atomnumber)
		if err != nil {
			return mol, coordset, NewError("selection", funcname, fmt.Errorf("Error reading the %d th frame: %s", i+1, err.Error()))
		}
		coordset = append(coordset, coords)
	}
	return mol, coordset, nil
}

//DecodeCoords decodes streams from a bufio.Reader containing atomnumber JSON Coords into a v3.Matrix with atomnumber rows.
func DecodeCoords(stream *bufio.Reader, atomnumber int) (*v3.Matrix, *Error) {
	const funcname = "DecodeCoords"
	rawcoords := make([]float64, 0, 3*atomnumber)
	for i := 0; i < atomnumber; i++ {
		line, err := stream.ReadBytes('\n')
		if err != nil {
			return nil, NewError("selection", funcname, err)
		}
		ctemp := new(Coords)
		if err = json.Unmarshal(line, ctemp); err != nil {
			return nil, NewError("selection", funcname, err)
		}
		rawcoords = append(rawcoords, ctemp.Coords...)
	}
	coords, err := v3.NewMatrix(rawcoords)
	if err != nil {
		return nil, NewError("selection", funcname, err)
	}
	return coords, nil
}

//SendMolecule encodes the atoms in mol and the coordinates in coordset, and writes them to the given io.writer
func SendMolecule(mol chem.Atomer, coordset []*v3.Matrix, out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := EncodeAtoms(mol, enc); err != nil {
		return err
	}
	for _, coords := range coordset {
		if err := EncodeCoords(coords, enc); err != nil {
			return err
		}
	}
	return nil
}

//EncodeAtoms encodes a chem.Atomer into a JSON, one atom per line.
func EncodeAtoms(mol chem.Atomer, enc *json.Encoder) *Error {
	const funcname = "EncodeAtoms"
	if mol == nil {
		return nil //Its assumed to be intentional.
	}
	for i := 0; i < mol.Len(); i++ {
		if err := enc.Encode(mol.Atom(i)); err != nil {
			return NewError("postprocess", funcname, err)
		}
	}
	return nil
}

//EncodeCoords encodes a set of coordinates into JSON
func EncodeCoords(coords *v3.Matrix, enc *json.Encoder) *Error {
	c := new(Coords)
	for i := 0; i < coords.NVecs(); i++ {
		c.Coords = coords.RawRowView(i)
		if err := enc.Encode(c); err != nil {
			return NewError("postprocess", "chemjson.EncodeCoords", err)
		}
	}
	return nil
}
