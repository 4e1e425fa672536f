/*
Copyright © 2018 the InMAP authors.
This file is part of dustindex.

dustindex is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

dustindex is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with dustindex.  If not, see <http://www.gnu.org/licenses/>.
*/

package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/spatialmodel/dustindex"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// segments splits the column vals into runs without missing values,
// with x values in seconds since the epoch.
func (s *Source) segments(vals []float64) []plotter.XYs {
	var o []plotter.XYs
	var cur plotter.XYs
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if len(cur) > 0 {
				o = append(o, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: float64(s.Time[i].Unix()), Y: v})
	}
	if len(cur) > 0 {
		o = append(o, cur)
	}
	return o
}

// StaticPlot creates a non-interactive plot of the dust index time series
// in src, with the means from sum shown in the legend.
func StaticPlot(src *Source, sum dustindex.Summary) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Dust Index"
	p.X.Label.Text = "time (UTC)"
	p.Y.Label.Text = "dust index"
	p.X.Tick.Marker = plot.TimeTicks{Format: "15:04"}
	p.Add(plotter.NewGrid())

	for _, c := range []struct {
		name  string
		vals  []float64
		mean  float64
		color color.Color
	}{
		{name: "DIL", vals: src.DIL, mean: sum.Low.Mean, color: color.RGBA{B: 255, A: 255}},
		{name: "DIT", vals: src.DIT, mean: sum.Total.Mean, color: color.RGBA{R: 255, A: 255}},
	} {
		for i, seg := range src.segments(c.vals) {
			l, err := plotter.NewLine(seg)
			if err != nil {
				return nil, fmt.Errorf("chart: plotting %s: %w", c.name, err)
			}
			l.LineStyle.Width = vg.Points(1.5)
			l.LineStyle.Color = c.color
			p.Add(l)
			if i == 0 {
				p.Legend.Add(fmt.Sprintf("%s (mean %.4g)", c.name, c.mean), l)
			}
		}
	}
	return p, nil
}

// SaveStatic saves a non-interactive plot of the dust index time series to
// path. The file format is determined by the extension of path, which can
// be for example ".svg", ".png", or ".pdf".
func SaveStatic(path string, src *Source, sum dustindex.Summary, width, height vg.Length) error {
	p, err := StaticPlot(src.Snapshot(), sum)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("chart: saving static plot: %w", err)
	}
	return nil
}
