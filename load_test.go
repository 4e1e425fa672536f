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

package dustindex

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ctessum/cdf"
)

// writeTestFile creates a lidar quicklook file at path holding the given
// data. If record is true, time is stored as the record dimension.
func writeTestFile(t *testing.T, path string, seconds []float64, low, total interface{}, record bool) {
	t.Helper()
	n := len(seconds)
	if record {
		n = 0
	}
	h := cdf.NewHeader([]string{"time"}, []int{n})
	h.AddAttribute("", "comment", "Raman lidar dust index quicklook")
	h.AddVariable("Time", []string{"time"}, []float64{0})
	h.AddAttribute("Time", "units", "seconds since midnight")
	h.AddVariable("DustIndexLowLayer", []string{"time"}, low)
	h.AddVariable("DustIndexTotal", []string{"time"}, total)
	h.Define()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	ff, err := cdf.Create(f, h)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []struct {
		name string
		data interface{}
	}{
		{name: "Time", data: seconds},
		{name: "DustIndexLowLayer", data: low},
		{name: "DustIndexTotal", data: total},
	} {
		var w cdf.Writer
		if record {
			w = ff.Writer(v.name, nil, nil)
		} else {
			end := ff.Header.Lengths(v.name)
			w = ff.Writer(v.name, make([]int, len(end)), end)
		}
		if _, err := w.Write(v.data); err != nil {
			t.Fatalf("writing %s: %v", v.name, err)
		}
	}
	if err := cdf.UpdateNumRecs(f); err != nil {
		t.Fatal(err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("20171111")
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 2017 || d.Month() != 11 || d.Day() != 11 || d.Hour() != 0 {
		t.Errorf("wrong date %v", d)
	}
	for _, bad := range []string{"", "2017111", "201711111", "2017-111", "20171311", "2017111a"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("date %q should have caused an error", bad)
		}
	}
}

func TestInputPath(t *testing.T) {
	p, err := InputPath(DefaultInputTemplate, "20171111")
	if err != nil {
		t.Fatal(err)
	}
	want := "/pool/OBS/ACPC/RamanLidar-LICHT/3_QuickLook/nc/ql1711/li171111.b532"
	if p != want {
		t.Errorf("%s != %s", p, want)
	}

	p, err = InputPath("data/[DATE]/[YYMM].nc", "20180102")
	if err != nil {
		t.Fatal(err)
	}
	if p != "data/20180102/1801.nc" {
		t.Errorf("wrong path %s", p)
	}

	if _, err := InputPath(DefaultInputTemplate, "171111"); err == nil {
		t.Error("short date should cause an error")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	seconds := []float64{0, 120, 240}
	low := []float32{0.01, 2e31, 0.03}
	total := []float32{0.02, 0.04, 0.06}

	t.Run("fixed", func(t *testing.T) {
		path := filepath.Join(dir, "fixed.b532")
		writeTestFile(t, path, seconds, low, total, false)
		raw, err := Load(path, DefaultVariables)
		if err != nil {
			t.Fatal(err)
		}
		checkRaw(t, raw, seconds, low, total)
	})
	t.Run("record", func(t *testing.T) {
		path := filepath.Join(dir, "record.b532")
		writeTestFile(t, path, seconds, low, total, true)
		raw, err := Load(path, DefaultVariables)
		if err != nil {
			t.Fatal(err)
		}
		checkRaw(t, raw, seconds, low, total)
	})
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nothing.b532"), DefaultVariables); err == nil {
			t.Error("missing file should cause an error")
		}
	})
	t.Run("missing variable", func(t *testing.T) {
		path := filepath.Join(dir, "fixed.b532")
		vars := DefaultVariables
		vars.Low = "DustIndexMiddleLayer"
		if _, err := Load(path, vars); err == nil {
			t.Error("missing variable should cause an error")
		}
	})
}

func checkRaw(t *testing.T, raw *Raw, seconds []float64, low, total []float32) {
	t.Helper()
	if !reflect.DeepEqual(raw.Seconds.Elements, seconds) {
		t.Errorf("seconds: %v != %v", raw.Seconds.Elements, seconds)
	}
	for i := range low {
		if raw.Low.Elements[i] != float64(low[i]) {
			t.Errorf("low %d: %g != %g", i, raw.Low.Elements[i], low[i])
		}
		if raw.Total.Elements[i] != float64(total[i]) {
			t.Errorf("total %d: %g != %g", i, raw.Total.Elements[i], total[i])
		}
	}
	if !reflect.DeepEqual(raw.Low.Shape, []int{len(seconds)}) {
		t.Errorf("wrong shape %v", raw.Low.Shape)
	}
}

func TestRawCheck(t *testing.T) {
	raw := &Raw{
		Low:     sparseOf(1, 2),
		Total:   sparseOf(1, 2, 3),
		Seconds: sparseOf(0, 120),
	}
	if err := raw.check(); err == nil {
		t.Error("mismatched lengths should cause an error")
	}
	raw.Total = sparseOf(1, 2)
	if err := raw.check(); err != nil {
		t.Error(err)
	}
}
