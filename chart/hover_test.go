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
	"strings"
	"testing"
)

func TestTimeFormat(t *testing.T) {
	for in, want := range map[string]string{
		"%F":       "yyyy-MM-dd",
		"%F %T":    "yyyy-MM-dd hh:mm:ss",
		"%d.%m.%y": "dd.MM.yy",
		"%H:%M":    "hh:mm",
	} {
		got, err := timeFormat(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%s: %s != %s", in, got, want)
		}
	}
	if _, err := timeFormat("%j"); err == nil {
		t.Error("unsupported format should cause an error")
	}
}

func TestPrecision(t *testing.T) {
	for in, want := range map[string]int{
		"%0.8f": 8,
		"%.3f":  3,
		"%f":    6,
	} {
		got, err := precision(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%s: %d != %d", in, got, want)
		}
	}
	for _, bad := range []string{"%d", "%08f", "%s", "0.8f"} {
		if _, err := precision(bad); err == nil {
			t.Errorf("%s should cause an error", bad)
		}
	}
}

func TestJSFormatter(t *testing.T) {
	f, err := DefaultHoverTool.jsFormatter()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"formatTime('yyyy-MM-dd', p[0].value[0])",
		"s.seriesName === 'DIL'",
		"s.seriesName === 'DIT'",
		"toFixed(8)",
		"'time: '",
	} {
		if !strings.Contains(f, want) {
			t.Errorf("formatter doesn't contain %q: %s", want, f)
		}
	}
	if strings.ContainsAny(f, "\"\n\t") {
		t.Errorf("formatter should be a single line without double quotes: %s", f)
	}

	h := HoverTool{Fields: []HoverField{{Name: "DIL", Format: "%0.8f", Formatter: "number"}}}
	if _, err := h.jsFormatter(); err == nil {
		t.Error("invalid formatter type should cause an error")
	}
	h = HoverTool{Fields: []HoverField{{Name: "D'IL", Format: "%0.8f", Formatter: Printf}}}
	if _, err := h.jsFormatter(); err == nil {
		t.Error("invalid field name should cause an error")
	}
}
