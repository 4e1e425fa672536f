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
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/spatialmodel/dustindex"
)

func testSeries() dustindex.Series {
	ref := time.Date(2017, 11, 11, 0, 0, 0, 0, time.UTC)
	return dustindex.Series{
		{Time: ref.Add(4 * time.Minute), Low: 0.004, Total: 0.012},
		{Time: ref.Add(2 * time.Minute), Low: math.NaN(), Total: 0.3},
		{Time: ref, Low: 0.1, Total: 0.2},
	}
}

func TestSource(t *testing.T) {
	s := testSeries()
	src := NewSource(s)
	if src.Len() != 3 {
		t.Fatalf("length %d", src.Len())
	}
	snap := src.Snapshot()
	src.DIT[0] = 99
	src.Time[0] = time.Time{}
	if snap.DIT[0] != 0.012 || !snap.Time[0].Equal(s[0].Time) {
		t.Error("snapshot shares memory with source")
	}

	col := snap.column(snap.DIL)
	want := [][]interface{}{
		{s[0].Time.Unix() * 1000, 0.004},
		{s[1].Time.Unix() * 1000, missing},
		{s[2].Time.Unix() * 1000, 0.1},
	}
	if !reflect.DeepEqual(col, want) {
		t.Errorf("%v != %v", col, want)
	}
}
