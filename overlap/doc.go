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
Package overlap computes the overlap matrix of a contracted Gaussian basis set
decoded by package fchk, with the Obara-Saika recurrence. Cartesian and pure
shells of any angular momentum supported by the file format are handled.

The overlap matrix allows checking decoded density matrices: the trace of the
product of a density matrix and the overlap matrix is the number of electrons
(see Population), and the natural occupations must be in a physical range
(see CheckDensity).
*/
package overlap
