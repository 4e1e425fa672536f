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
	"regexp"
	"strconv"
	"strings"
)

// FormatterType specifies how a hover field is formatted.
type FormatterType string

// These are the supported formatter types.
const (
	Datetime FormatterType = "datetime"
	Printf   FormatterType = "printf"
)

// HoverField is a single line in the hover tooltip.
type HoverField struct {
	// Name is the name of the data column, which must match
	// the name of a plotted series, or be "time" for the x value.
	Name string

	// Format is a strftime format for datetime fields or a
	// printf format for numeric fields.
	Format string

	Formatter FormatterType
}

// HoverTool specifies the tooltip that is shown when the cursor is
// vertically in line with a data point in the time series panel.
type HoverTool struct {
	Fields []HoverField
}

// DefaultHoverTool shows the date and both dust indices with eight
// decimal places.
var DefaultHoverTool = HoverTool{
	Fields: []HoverField{
		{Name: "time", Format: "%F", Formatter: Datetime},
		{Name: "DIL", Format: "%0.8f", Formatter: Printf},
		{Name: "DIT", Format: "%0.8f", Formatter: Printf},
	},
}

var strftimeTokens = strings.NewReplacer(
	"%F", "yyyy-MM-dd",
	"%T", "hh:mm:ss",
	"%Y", "yyyy",
	"%y", "yy",
	"%m", "MM",
	"%d", "dd",
	"%H", "hh",
	"%M", "mm",
	"%S", "ss",
	"%%", "%",
)

var (
	printfFloat = regexp.MustCompile(`^%0?(?:\.(\d+))?f$`)
	fieldName   = regexp.MustCompile(`^[\w ]+$`)
)

// timeFormat converts a strftime format into an echarts time format.
func timeFormat(f string) (string, error) {
	o := strftimeTokens.Replace(f)
	if strings.Contains(o, "%") || strings.ContainsAny(o, `'\`) {
		return "", fmt.Errorf("chart: unsupported datetime format %q", f)
	}
	return o, nil
}

// precision returns the number of decimal places in a printf float format.
func precision(f string) (int, error) {
	m := printfFloat.FindStringSubmatch(f)
	if m == nil {
		return 0, fmt.Errorf("chart: unsupported printf format %q", f)
	}
	if m[1] == "" {
		return 6, nil
	}
	return strconv.Atoi(m[1])
}

// jsFormatter returns a javascript tooltip formatter function for
// axis-triggered tooltips. The returned code is on a single line and
// only uses single-quoted strings.
func (h HoverTool) jsFormatter() (string, error) {
	var b strings.Builder
	b.WriteString("function (params) { var p = Array.isArray(params) ? params : [params]; var lines = [];")
	for _, f := range h.Fields {
		if !fieldName.MatchString(f.Name) {
			return "", fmt.Errorf("chart: invalid hover field name %q", f.Name)
		}
		switch f.Formatter {
		case Datetime:
			tf, err := timeFormat(f.Format)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, " if (p.length > 0) { lines.push('%s: ' + echarts.format.formatTime('%s', p[0].value[0])); }", f.Name, tf)
		case Printf:
			prec, err := precision(f.Format)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, " p.forEach(function (s) { if (s.seriesName === '%s') { var v = s.value[1]; lines.push('%s: ' + (v === '-' ? '-' : Number(v).toFixed(%d))); } });", f.Name, f.Name, prec)
		default:
			return "", fmt.Errorf("chart: invalid formatter %q for hover field %s", f.Formatter, f.Name)
		}
	}
	b.WriteString(" return lines.join('<br/>'); }")
	return b.String(), nil
}
