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

// Package chart renders dust index series as interactive web charts.
package chart

import (
	"math"
	"time"

	"github.com/spatialmodel/dustindex"
)

// missing is the value echarts uses for data points that are absent.
const missing = "-"

// Source holds the columns that are plotted in the time series panel.
type Source struct {
	Time []time.Time
	DIL  []float64
	DIT  []float64
}

// NewSource creates a data source from s.
func NewSource(s dustindex.Series) *Source {
	return &Source{
		Time: s.Times(),
		DIL:  s.Low(),
		DIT:  s.Total(),
	}
}

// Len returns the number of rows in the source.
func (s *Source) Len() int { return len(s.Time) }

// Snapshot returns a copy of s that does not share memory with it.
func (s *Source) Snapshot() *Source {
	o := &Source{
		Time: make([]time.Time, len(s.Time)),
		DIL:  make([]float64, len(s.DIL)),
		DIT:  make([]float64, len(s.DIT)),
	}
	copy(o.Time, s.Time)
	copy(o.DIL, s.DIL)
	copy(o.DIT, s.DIT)
	return o
}

// value returns v, or the missing value marker if v is NaN or infinite.
func value(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return missing
	}
	return v
}

// column returns (time, value) pairs for the given column, with times
// in milliseconds since the epoch.
func (s *Source) column(vals []float64) [][]interface{} {
	o := make([][]interface{}, len(vals))
	for i, v := range vals {
		o[i] = []interface{}{s.Time[i].UnixNano() / int64(time.Millisecond), value(v)}
	}
	return o
}
