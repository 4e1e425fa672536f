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
	"os"
	"path/filepath"
	"testing"

	"github.com/spatialmodel/dustindex"
	"gonum.org/v1/plot/vg"
)

func TestSegments(t *testing.T) {
	src := NewSource(testSeries())
	if segs := src.segments(src.DIL); len(segs) != 2 || len(segs[0]) != 1 || len(segs[1]) != 1 {
		t.Errorf("DIL should be split into 2 segments: %v", segs)
	}
	if segs := src.segments(src.DIT); len(segs) != 1 || len(segs[0]) != 3 {
		t.Errorf("DIT should be a single segment: %v", segs)
	}
	if segs := src.segments([]float64{}); len(segs) != 0 {
		t.Errorf("empty column: %v", segs)
	}
}

func TestSaveStatic(t *testing.T) {
	s := testSeries()
	src := NewSource(s)
	path := filepath.Join(t.TempDir(), "DustIndexPlot.svg")
	if err := SaveStatic(path, src, dustindex.Summarize(s), 8*vg.Inch, 3*vg.Inch); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("static plot is empty")
	}
}
