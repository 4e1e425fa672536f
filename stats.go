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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Level is a qualitative rating of a dust index value.
type Level int

// These are the available dust levels.
const (
	LevelUnknown Level = iota
	VeryLow
	Low
	Middle
	High
	VeryHigh
)

// levelThresholds hold the smallest dust index value for each level.
var levelThresholds = []struct {
	min   float64
	level Level
}{
	{0.5, VeryHigh},
	{0.03, High},
	{0.02, Middle},
	{0.01, Low},
}

func (l Level) String() string {
	switch l {
	case VeryLow:
		return "Very Low"
	case Low:
		return "Low"
	case Middle:
		return "Middle"
	case High:
		return "High"
	case VeryHigh:
		return "Very High"
	default:
		return "Unknown"
	}
}

// LevelOf returns the dust level of v. NaN values have an unknown level.
func LevelOf(v float64) Level {
	if math.IsNaN(v) {
		return LevelUnknown
	}
	for _, t := range levelThresholds {
		if v >= t.min {
			return t.level
		}
	}
	return VeryLow
}

// present returns the values of x that are not NaN.
func present(x []float64) []float64 {
	o := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			o = append(o, v)
		}
	}
	return o
}

// Mean returns the arithmetic mean of the values in x, ignoring
// NaN values. If there are no values that are not NaN,
// the result is NaN.
func Mean(x []float64) float64 {
	p := present(x)
	if len(p) == 0 {
		return math.NaN()
	}
	return stat.Mean(p, nil)
}

// Statistic summarizes a single dust index channel.
type Statistic struct {
	Mean, Min, Max float64

	// Valid is the number of values that are not missing and
	// Count is the total number of values.
	Valid, Count int

	Level Level
}

// NewStatistic calculates summary statistics of x, ignoring NaN values.
func NewStatistic(x []float64) Statistic {
	p := present(x)
	s := Statistic{
		Mean:  Mean(x),
		Min:   math.NaN(),
		Max:   math.NaN(),
		Valid: len(p),
		Count: len(x),
	}
	if len(p) > 0 {
		s.Min = floats.Min(p)
		s.Max = floats.Max(p)
	}
	s.Level = LevelOf(s.Mean)
	return s
}

// Summary holds the statistics of both dust index channels.
type Summary struct {
	Low, Total Statistic
}

// Summarize calculates summary statistics for s.
func Summarize(s Series) Summary {
	return Summary{
		Low:   NewStatistic(s.Low()),
		Total: NewStatistic(s.Total()),
	}
}

// Means returns the mean low-layer and total dust indices.
func (s Summary) Means() []float64 {
	return []float64{s.Low.Mean, s.Total.Mean}
}
