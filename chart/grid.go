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
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
)

// defaultAssetsHost is where the echarts library is loaded from if the
// page doesn't specify a location.
const defaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// jsFuncMarker matches the markers go-echarts puts around javascript
// functions in chart options.
var jsFuncMarker = regexp.MustCompile(`(__f__")|("__f__)|(__f__)`)

// Grid is a vertical stack of chart panels.
type Grid struct {
	page    *components.Page
	summary *charts.Bar
	series  *charts.Line
}

// NewGrid composes the summary panel and, if it is not nil, the time
// series panel into a single grid.
func NewGrid(summary *charts.Bar, series *charts.Line) *Grid {
	g := &Grid{
		page:    components.NewPage(),
		summary: summary,
		series:  series,
	}
	g.page.AddCharts(summary)
	if series != nil {
		g.page.AddCharts(series)
	}
	g.page.Validate()
	return g
}

// ElementID returns the identifier that was generated for the grid.
func (g *Grid) ElementID() string { return g.page.Initialization.ChartID }

// Assets returns the location of the javascript library needed to display
// the grid.
func (g *Grid) Assets() []string {
	host := g.page.Initialization.AssetsHost
	if host == "" {
		host = defaultAssetsHost
	}
	return []string{host + "echarts.min.js"}
}

type renderItem struct {
	ChartID string                 `json:"chartid"`
	Width   string                 `json:"width"`
	Height  string                 `json:"height"`
	Option  map[string]interface{} `json:"option"`
}

type renderItems struct {
	ElementID string       `json:"elementid"`
	Charts    []renderItem `json:"charts"`
}

const scriptTemplate = `(function() {
  var renderItems = %s;
  var fn = function() {
    var root = document.getElementById(renderItems.elementid);
    if (root === null) {
      console.error('dustindex: element ' + renderItems.elementid + ' not found');
      return;
    }
    renderItems.charts.forEach(function(c) {
      var el = document.createElement('div');
      el.id = c.chartid;
      el.style.width = c.width;
      el.style.height = c.height;
      root.appendChild(el);
      echarts.init(el, 'white', {renderer: 'canvas'}).setOption(c.option);
    });
  };
  if (document.readyState !== 'loading') {
    fn();
  } else {
    document.addEventListener('DOMContentLoaded', fn);
  }
})();
`

// Components returns the javascript code that draws the grid and the
// HTML element that the grid is drawn into. The script does not include
// the surrounding <script> tags.
func (g *Grid) Components() (script, div string, err error) {
	id := g.ElementID()
	if id == "" {
		return "", "", fmt.Errorf("chart: no element id was generated for the grid")
	}
	items := renderItems{ElementID: id}
	items.Charts = append(items.Charts, renderItem{
		ChartID: g.summary.Initialization.ChartID,
		Width:   g.summary.Initialization.Width,
		Height:  g.summary.Initialization.Height,
		Option:  g.summary.JSON(),
	})
	if g.series != nil {
		items.Charts = append(items.Charts, renderItem{
			ChartID: g.series.Initialization.ChartID,
			Width:   g.series.Initialization.Width,
			Height:  g.series.Initialization.Height,
			Option:  g.series.JSON(),
		})
	}

	b := new(bytes.Buffer)
	e := json.NewEncoder(b)
	e.SetEscapeHTML(false)
	if err := e.Encode(items); err != nil {
		return "", "", fmt.Errorf("chart: encoding chart options: %w", err)
	}
	itemsJS := jsFuncMarker.ReplaceAll(bytes.TrimSpace(b.Bytes()), nil)

	script = fmt.Sprintf(scriptTemplate, itemsJS)
	div = fmt.Sprintf(`<div id="%s" class="dustindex"></div>`, id)
	return script, div, nil
}

// Embedded is a grid that is ready to be included in a web page.
type Embedded struct {
	Script, Div string

	// Replaced is the generated element identifier that was
	// replaced by a fixed name.
	Replaced string
}

// Embed serializes the grid and replaces the generated element
// identifier with name, so the grid can be placed in an existing
// element of a web page.
func (g *Grid) Embed(name string) (*Embedded, error) {
	script, div, err := g.Components()
	if err != nil {
		return nil, err
	}
	script, old, err := ReplaceElementID(script, name)
	if err != nil {
		return nil, err
	}
	div, err = replaceToken(div, old, name)
	if err != nil {
		return nil, err
	}
	return &Embedded{Script: script, Div: div, Replaced: old}, nil
}
