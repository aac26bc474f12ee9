/*
 * doc.go, part of gofchk.
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

/*
Package fchk decodes Gaussian formatted checkpoint (fchk) files.

A formatted checkpoint file starts with a title line and a job line, followed
by labeled records. Each record is either a scalar, with its value in the
header line, or an array whose header declares the number of elements, written
in the following lines with a fixed number of values per line.

Load and Decode read all the records, and assemble them into a Fields: the
geometry without ghost atoms, the basis set (with SP shells split), the
alpha and beta orbitals, the density matrices for every method present,
atomic charges and multipole moments. Everything is cross-checked before
returning, and no Fields are returned if anything fails. The errors returned wrap
one of ErrNotFound, ErrMalformedRecord, ErrTruncatedFile, ErrDimensionMismatch,
ErrInconsistentBasis and ErrValidation, so they can be classified with errors.Is.

Records not recognized are kept in Fields.Unknown, unless Options.Strict is set.

Reader gives access to the raw records, one at the time.

All quantities are in atomic units, as in the file.
*/
package fchk
