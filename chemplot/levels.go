/*
 * levels.go, part of gofchk.
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

package chemplot

import (
	"fmt"
	"image/color"
	"math"

	chem "github.com/rmera/gofchk"
	"github.com/rmera/gofchk/fchk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//LevelSet is a set of orbital energies, drawn as one column of levels.
type LevelSet struct {
	Name     string
	Energies []float64
	Occs     []float64
	Unit     string //of the energies, Hartree if empty
}

//OrbitalSets returns the level sets for the orbitals in F: one for
//restricted calculations, and one per spin otherwise.
func OrbitalSets(F *fchk.Fields) []LevelSet {
	if F == nil || F.OrbAlpha == nil {
		return nil
	}
	if F.OrbBeta == nil {
		return []LevelSet{{Name: "Restricted", Energies: F.OrbAlpha.Energies, Occs: F.OrbAlpha.Occs}}
	}
	return []LevelSet{
		{Name: "Alpha", Energies: F.OrbAlpha.Energies, Occs: F.OrbAlpha.Occs},
		{Name: "Beta", Energies: F.OrbBeta.Energies, Occs: F.OrbBeta.Occs},
	}
}

//ToEV returns a copy of sets with the energies converted from Hartree to eV.
func ToEV(sets []LevelSet) []LevelSet {
	ret := make([]LevelSet, len(sets))
	for i, s := range sets {
		ret[i] = s
		ret[i].Energies = make([]float64, len(s.Energies))
		floats.ScaleTo(ret[i].Energies, chem.H2EV, s.Energies)
		ret[i].Unit = "eV"
	}
	return ret
}

//Window returns the energy range covering the nocc highest occupied and the
//nvirt lowest virtual levels of all the sets, with some margin.
func Window(sets []LevelSet, nocc, nvirt int) (emin, emax float64) {
	emin, emax = math.Inf(1), math.Inf(-1)
	for _, s := range sets {
		homo := -1
		for i, o := range s.Occs {
			if o > 0 {
				homo = i
			}
		}
		for i, e := range s.Energies {
			if i > homo-nocc && i <= homo+nvirt {
				emin = math.Min(emin, e)
				emax = math.Max(emax, e)
			}
		}
	}
	if math.IsInf(emin, 1) {
		return 0, 0
	}
	margin := 0.05 * (emax - emin)
	if margin == 0 {
		margin = 0.1
	}
	return emin - margin, emax + margin
}

func basicLevelPlot(title string, sets []LevelSet, emin, emax float64) *plot.Plot {
	p := plot.New()
	p.Title.Padding = vg.Millimeter * 3
	p.Title.Text = title
	unit := "Hartree"
	if len(sets) > 0 && sets[0].Unit != "" {
		unit = sets[0].Unit
	}
	p.Y.Label.Text = fmt.Sprintf("Energy (%s)", unit)
	p.X.Min = 0
	p.X.Max = float64(len(sets))
	if emin < emax {
		p.Y.Min = emin
		p.Y.Max = emax
	}
	ticks := make([]plot.Tick, len(sets))
	for i, s := range sets {
		ticks[i] = plot.Tick{Value: float64(i) + 0.5, Label: s.Name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Add(plotter.NewGrid())
	return p
}

//LevelPlot produces a plot, in png format, of the orbital levels in sets, each
//set in its own column. Occupied levels are drawn in a warmer color than virtual ones.
//Only levels between emin and emax are drawn, unless emin >= emax, in which case
//all are. The extension is added to plotname.
func LevelPlot(sets []LevelSet, emin, emax float64, title, plotname string) error {
	if len(sets) == 0 {
		return fmt.Errorf("LevelPlot: No levels to plot")
	}
	p := basicLevelPlot(title, sets, emin, emax)
	for key, s := range sets {
		if len(s.Occs) != 0 && len(s.Occs) != len(s.Energies) {
			return fmt.Errorf("LevelPlot: Set %s has %d energies and %d occupations", s.Name, len(s.Energies), len(s.Occs))
		}
		for i, e := range s.Energies {
			if emin < emax && (e < emin || e > emax) {
				continue
			}
			occ := 0.0
			if len(s.Occs) > 0 {
				occ = s.Occs[i]
			}
			x := float64(key)
			line, err := plotter.NewLine(plotter.XYs{{X: x + 0.15, Y: e}, {X: x + 0.85, Y: e}})
			if err != nil {
				return err
			}
			r, g, b := levelColor(occ)
			line.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
			line.LineStyle.Width = vg.Points(2)
			p.Add(line)
		}
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(4*vg.Inch, 5*vg.Inch, filename)
}

//levelColor goes from blue for empty levels to red for fully occupied ones.
func levelColor(occ float64) (r, g, b uint8) {
	occ = math.Max(0, math.Min(occ, 2))
	h := 240 - 120*occ
	return iHVS2RGB(h, 0.9, 1)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = math.Mod(h, 360) / 60
	i = math.Floor(h)
	f = h - i
	p = 1 - s
	q = 1 - s*f
	t = 1 - s*(1-f)
	switch int(i) {
	case 0:
		r, g, b = 1, t, p
	case 1:
		r, g, b = q, 1, p
	case 2:
		r, g, b = p, 1, t
	case 3:
		r, g, b = p, q, 1
	case 4:
		r, g, b = t, p, 1
	default: //case 5
		r, g, b = 1, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}
