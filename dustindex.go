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

// Package dustindex reads lidar dust index measurements from netCDF files
// and prepares them for plotting.
package dustindex

import (
	"time"
)

// Version gives the version number.
const Version = "1.0.0"

// Record holds the dust index measurements at a single point in time.
// Missing measurements are represented as NaN.
type Record struct {
	Time time.Time

	// Low is the dust index of the lowest layer.
	Low float64

	// Total is the dust index of the whole column.
	Total float64
}

// Series is an ordered sequence of dust index records.
type Series []Record

// Reverse returns a copy of s with the order of the records reversed.
// s itself is not modified.
func (s Series) Reverse() Series {
	o := make(Series, len(s))
	for i, r := range s {
		o[len(s)-1-i] = r
	}
	return o
}

// Times returns the timestamps of the records in s.
func (s Series) Times() []time.Time {
	o := make([]time.Time, len(s))
	for i, r := range s {
		o[i] = r.Time
	}
	return o
}

// Low returns the low-layer dust index values in s.
func (s Series) Low() []float64 {
	o := make([]float64, len(s))
	for i, r := range s {
		o[i] = r.Low
	}
	return o
}

// Total returns the total-column dust index values in s.
func (s Series) Total() []float64 {
	o := make([]float64, len(s))
	for i, r := range s {
		o[i] = r.Total
	}
	return o
}
