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

/*Package chem is the root package of gofchk. It provides atom and molecule structures,
atomic data and unit conversions, and XYZ writing, which are shared by the
rest of the library.

	**gofchk Capabilities**

    Reads Gaussian-style formatted checkpoint (fchk) files, plain or compressed
	with gzip or zstd (package fchk). The geometry, the basis set, the molecular
	orbitals, the density matrices for every correlation method present, atomic
	charges and multipole moments are decoded, reshaped and cross-checked.

    Assembles the decoded geometry into a chem.Molecule.

    Computes the overlap matrix for a decoded basis set (package overlap), which
	allows checking the normalization of decoded density matrices.

    Draws orbital energy-level diagrams (package chemplot, uses gonum/plot).

    Summarizes decoded files as JSON (package chemjson).

Coordinates are kept in v3.Matrix, an Nx3 matrix type based on gonum's Dense,
where each row represents one point in space.*/
package chem
