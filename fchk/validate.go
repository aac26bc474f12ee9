/*
 * validate.go, part of gofchk.
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

//validate runs the cross-checks between sections that are not done while
//assembling them. It never modifies F, except to remove ghost atoms from the
//per-atom charges.
func (d *decoder) validate(F *Fields) error {
	natom := F.NAtoms + F.NGhosts
	if d.has(KeyNElec) && d.has(KeyNAlpha) && d.has(KeyNBeta) && F.NElectrons != F.NAlpha+F.NBeta {
		return d.failed(KeyNElec, "%d electrons, but %d alpha and %d beta", F.NElectrons, F.NAlpha, F.NBeta)
	}
	if d.has(KeyNElec) && F.NElectrons < 0 {
		return d.failed(KeyNElec, "%d electrons", F.NElectrons)
	}
	if F.Basis != nil {
		if n := F.Basis.Centers.NVecs(); n != natom {
			return d.failed(keyShellMap, "the basis set has %d centers, the file %d atoms", n, natom)
		}
	}
	for _, o := range []*OrbitalSet{F.OrbAlpha, F.OrbBeta} {
		if o == nil {
			continue
		}
		if r, _ := o.Coeffs.Dims(); r != F.NBasis {
			return d.failed(KeyOrbAlpha+suffixCoeffs, "orbitals have %d rows, the basis set %d functions", r, F.NBasis)
		}
	}
	for k, dm := range F.Densities {
		if n := dm.SymmetricDim(); n != F.NBasis {
			return d.failed("", "density %s is %dx%d, the basis set has %d functions", k, n, n, F.NBasis)
		}
	}
	charges := []struct {
		key  string
		dest *[]float64
	}{{KeyMulliken, &F.MullikenCharges}, {KeyNPA, &F.NPACharges}, {KeyESP, &F.ESPCharges}}
	for _, c := range charges {
		v, ok := d.vector(c.key)
		if !ok {
			continue
		}
		switch len(v) {
		case natom:
			*c.dest = maskReals(v, d.realAtoms)
		case F.NAtoms:
			*c.dest = append([]float64(nil), v...)
		default:
			return d.failed(c.key, "%d charges for %d atoms (%d ghost atoms)", len(v), natom, F.NGhosts)
		}
	}
	return nil
}

//failed returns an ErrValidation error for the record with the given key.
func (d *decoder) failed(key, format string, args ...interface{}) error {
	name := ""
	if key != "" {
		name = recordName(key)
	}
	e := newError(ErrValidation, d.filename, name, d.line(key), format, args...)
	e.Decorate("validate")
	return e
}
