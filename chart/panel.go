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

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spatialmodel/dustindex"
)

// Factors are the category labels of the summary panel.
var Factors = []string{"Dust Index Low", "Dust Index Total"}

// PanelOptions hold the settings shared by the panels.
type PanelOptions struct {
	// Width and Height are the size of each panel in pixels.
	Width, Height int

	// SummaryMax is the upper limit of the summary panel axis.
	SummaryMax float64

	// Hover is the tooltip of the time series panel.
	Hover HoverTool
}

// DefaultPanelOptions are the panel settings of the dust index web page.
var DefaultPanelOptions = PanelOptions{
	Width:      1200,
	Height:     300,
	SummaryMax: 0.01,
	Hover:      DefaultHoverTool,
}

func (o PanelOptions) initialization(title string) opts.Initialization {
	return opts.Initialization{
		PageTitle: title,
		Width:     fmt.Sprintf("%dpx", o.Width),
		Height:    fmt.Sprintf("%dpx", o.Height),
	}
}

// SummaryPanel creates a chart comparing the mean low-layer and total
// dust indices. Each mean is drawn as a line from zero with a marker at
// its end, labeled with the dust level.
func SummaryPanel(sum dustindex.Summary, o PanelOptions) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(o.initialization("Dust Index")),
		charts.WithTitleOpts(opts.Title{Title: "Dust Index"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: 0, Max: o.SummaryMax}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: Factors}),
	)

	levels := []dustindex.Level{sum.Low.Level, sum.Total.Level}
	means := sum.Means()
	stems := make([]opts.BarData, len(means))
	markers := make([]opts.ScatterData, len(means))
	for i, m := range means {
		stems[i] = opts.BarData{Name: Factors[i], Value: value(m)}
		markers[i] = opts.ScatterData{
			Name:       levels[i].String(),
			Value:      []interface{}{value(m), Factors[i]},
			SymbolSize: 15,
		}
	}
	bar.AddSeries("mean", stems,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "black"}),
	)

	marker := charts.NewScatter()
	marker.AddSeries("mean", markers,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "orange", BorderColor: "black"}),
		charts.WithLabelOpts(opts.Label{Show: true, Position: "right", Formatter: "{b}"}),
	)
	bar.Overlap(marker)
	return bar
}

// SeriesPanel creates a chart of the low-layer (blue) and total (red)
// dust index time series in src.
func SeriesPanel(src *Source, o PanelOptions) (*charts.Line, error) {
	formatter, err := o.Hover.jsFormatter()
	if err != nil {
		return nil, err
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(o.initialization("Dust Index Time Series")),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:        true,
			Trigger:     "axis",
			Formatter:   opts.FuncOpts(formatter),
			AxisPointer: &opts.AxisPointer{Type: "line"},
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time", Name: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "dust index"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	for _, c := range []struct {
		name, color string
		vals        []float64
	}{
		{name: "DIL", color: "blue", vals: src.DIL},
		{name: "DIT", color: "red", vals: src.DIT},
	} {
		col := src.column(c.vals)
		data := make([]opts.LineData, len(col))
		for i, v := range col {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(c.name, data,
			charts.WithLineStyleOpts(opts.LineStyle{Width: 3, Color: c.color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: c.color}),
		)
	}
	return line, nil
}
