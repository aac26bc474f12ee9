/*
 * main.go, part of gofchk.
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

//fchkinfo decodes Gaussian formatted checkpoint files and prints a summary of
//their contents. It can also write the geometry in XYZ format, a JSON summary
//with the molecule, an orbital level diagram, and check the density matrices
//against the overlap matrix of the basis set.
//
//Decoding options can be given in a TOML file (-options) or in the environment:
//FCHKINFO_STRICT, FCHKINFO_VERBOSE and FCHKINFO_OPTIONS. Flags take precedence.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	chem "github.com/rmera/gofchk"
	"github.com/rmera/gofchk/chemjson"
	"github.com/rmera/gofchk/chemplot"
	"github.com/rmera/gofchk/fchk"
	"github.com/rmera/gofchk/overlap"
	"gonum.org/v1/gonum/floats"
)

type config struct {
	Strict  bool   `env:"FCHKINFO_STRICT"`
	Verbose bool   `env:"FCHKINFO_VERBOSE"`
	Options string `env:"FCHKINFO_OPTIONS"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	strict := flag.Bool("strict", cfg.Strict, "Unrecognized records are an error")
	verbose := flag.Bool("verbose", cfg.Verbose, "Log unrecognized and repeated records")
	optfile := flag.String("options", cfg.Options, "TOML file with decoding options. Flags given explicitly override it")
	xyz := flag.Bool("xyz", false, "Write the geometry, in Angstrom, to an XYZ file named after the input")
	jsonout := flag.Bool("json", false, "Print a JSON summary, followed by the atoms and coordinates of the molecule, instead of the text summary")
	levels := flag.Int("levels", 0, "If > 0, plot this many occupied and virtual levels to a png file named after the input")
	ev := flag.Bool("ev", false, "Plot the orbital levels in eV instead of Hartree")
	check := flag.Bool("check", false, "Compute the overlap matrix and check the density matrices against it")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file.fchk [file2.fchk...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	opts := &fchk.Options{Strict: *strict, Verbose: *verbose}
	if *optfile != "" {
		var err error
		if opts, err = fchk.LoadOptions(*optfile); err != nil {
			log.Fatal(err)
		}
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "strict":
				opts.Strict = *strict
			case "verbose":
				opts.Verbose = *verbose
			}
		})
	}
	failed := 0
	for _, name := range flag.Args() {
		if err := process(name, opts, *xyz, *jsonout, *levels, *ev, *check); err != nil {
			failed++
			if *jsonout {
				os.Stdout.Write(chemjson.NewError("decode", "process", err).Marshal())
				fmt.Println()
				continue
			}
			log.Printf("%s: %v", name, err)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func process(name string, opts *fchk.Options, xyz, jsonout bool, levels int, ev, check bool) error {
	F, err := fchk.Load(name, opts)
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = strings.TrimSuffix(base, ".fchk")
	if jsonout {
		if jerr := chemjson.SendFields(F, os.Stdout); jerr != nil {
			return jerr
		}
	} else {
		printSummary(F)
	}
	if xyz {
		mol, err := F.Molecule()
		if err != nil {
			return err
		}
		if err = chem.XYZFileWrite(base+".xyz", mol.Coords[0], mol); err != nil {
			return err
		}
	}
	if levels > 0 {
		sets := chemplot.OrbitalSets(F)
		if sets == nil {
			log.Printf("%s: no orbitals to plot", name)
		} else {
			if ev {
				sets = chemplot.ToEV(sets)
			}
			emin, emax := chemplot.Window(sets, levels, levels)
			if err = chemplot.LevelPlot(sets, emin, emax, F.Title, base+"_levels"); err != nil {
				return err
			}
		}
	}
	if check {
		return checkDensities(F, jsonout)
	}
	return nil
}

func printSummary(F *fchk.Fields) {
	fmt.Printf("%s\n%s %s/%s\n", F.Title, F.JobType, F.Method, F.BasisName)
	fmt.Printf("Atoms: %d (ghost atoms: %d) Charge: %d Multiplicity: %d\n", F.NAtoms, F.NGhosts, F.Charge, F.Multiplicity)
	fmt.Printf("Energy: %.10f Hartree\n", F.Energy)
	if len(F.Dipole) == 3 {
		fmt.Printf("Dipole moment: %.4f Debye\n", floats.Norm(F.Dipole, 2)/chem.Debye2AU)
	}
	if F.Basis != nil {
		fmt.Printf("Basis set: %d shells, %d primitives, %d functions\n", F.Basis.NShells(), F.Basis.NPrimitives(), F.Basis.NBasis())
	}
	if F.OrbAlpha != nil {
		fmt.Printf("Orbitals: %s, %d\n", F.OrbAlpha.Kind, F.OrbAlpha.NOrb)
	}
	for _, k := range F.DensityKeys() {
		fmt.Printf("Density matrix: %s\n", k)
	}
	if len(F.Unknown) > 0 {
		fmt.Printf("Unrecognized records: %d\n", len(F.Unknown))
	}
}

//checkDensities prints the number of electrons each density matrix in F describes.
func checkDensities(F *fchk.Fields, quiet bool) error {
	if F.Basis == nil || len(F.Densities) == 0 {
		return nil
	}
	S, err := overlap.Compute(F.Basis)
	if err != nil {
		return err
	}
	for _, k := range F.DensityKeys() {
		dm := F.Densities[k]
		if !quiet {
			fmt.Printf("%s: %.6f electrons\n", k, overlap.Population(dm, S))
		}
		if k.Kind == fchk.DensityFull {
			if err := overlap.CheckDensity(dm, S, 1e-4, 2); err != nil {
				log.Printf("%s: %v", k, err)
			}
		}
	}
	return nil
}
