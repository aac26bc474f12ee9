/*
 * files.go, part of gofchk.
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
	"fmt"
	"io"
	"os"
	"strings"

	v3 "github.com/rmera/gofchk/v3"
)

//XYZFileWrite writes the coordinates in Coords in an XYZ file with name xyzname which will
//be created fot that. If the file exist it will be overwriten. Coords are expected in
//Angstrom.
func XYZFileWrite(xyzname string, Coords *v3.Matrix, mol Atomer) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return chemError{err.Error(), xyzname, []string{"os.Create", "XYZFileWrite"}, true}
	}
	defer out.Close()
	err = XYZWrite(out, Coords, mol)
	if err != nil {
		return errDecorate(err, "XYZFileWrite")
	}
	return nil
}

//XYZWrite writes the coordinates Coords and the atoms in mol to out, in XYZ format.
//If mol also has a charge and multiplicity, they go in the comment line.
func XYZWrite(out io.Writer, Coords *v3.Matrix, mol Atomer) error {
	if Coords.NVecs() != mol.Len() {
		return chemError{fmt.Sprintf("Inconsistent coordinates/atoms: %d/%d", Coords.NVecs(), mol.Len()), "", []string{"XYZWrite"}, true}
	}
	iowriterError := func(err error) error {
		return chemError{"Failed to write in io.Writer: " + err.Error(), "", []string{"io.Writer.Write", "XYZWrite"}, true}
	}
	comment := ""
	if m, ok := mol.(AtomMultiCharger); ok {
		comment = fmt.Sprintf("charge %d multiplicity %d", m.Charge(), m.Multi())
	}
	if _, err := fmt.Fprintf(out, "%-4d\n%s\n", mol.Len(), comment); err != nil {
		return iowriterError(err)
	}
	for i := 0; i < mol.Len(); i++ {
		c := Coords.VecView(i)
		_, err := fmt.Fprintf(out, "%-2s  %12.6f%12.6f%12.6f \n", mol.Atom(i).Symbol, c.At(0, 0), c.At(0, 1), c.At(0, 2))
		if err != nil {
			return iowriterError(err)
		}
	}
	return nil
}

//XYZStringWrite returns the XYZ representation of Coords and mol as a string.
func XYZStringWrite(Coords *v3.Matrix, mol Atomer) (string, error) {
	var b strings.Builder
	if err := XYZWrite(&b, Coords, mol); err != nil {
		return "", errDecorate(err, "XYZStringWrite")
	}
	return b.String(), nil
}
