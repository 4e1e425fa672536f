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
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds the settings for preparing a dust index series.
type Config struct {
	// Date is the date of the measurements in the format "YYYYMMDD".
	Date string

	// Variables are the names of the input variables.
	Variables Variables

	// MissingThreshold is the value above which measurements are
	// treated as missing.
	MissingThreshold float64

	// Reverse specifies whether the order of the records should be
	// reversed after they are read.
	Reverse bool
}

// Timestamps converts offsets, in seconds, from ref into times.
// Fractional seconds are truncated.
func Timestamps(ref time.Time, offsets []float64) []time.Time {
	o := make([]time.Time, len(offsets))
	for i, s := range offsets {
		o[i] = ref.Add(time.Duration(int64(s)) * time.Second)
	}
	return o
}

// NewSeries creates a series from raw input data, where ref is the date
// that the time offsets are relative to. Values above threshold are
// replaced with NaN.
func NewSeries(ref time.Time, raw *Raw, threshold float64) (Series, error) {
	if raw == nil || raw.Low == nil || raw.Total == nil || raw.Seconds == nil {
		return nil, fmt.Errorf("dustindex: missing input data")
	}
	if err := raw.check(); err != nil {
		return nil, fmt.Errorf("dustindex: %w", err)
	}
	low, err := Sanitize(raw.Low, threshold)
	if err != nil {
		return nil, err
	}
	total, err := Sanitize(raw.Total, threshold)
	if err != nil {
		return nil, err
	}
	times := Timestamps(ref, raw.Seconds.Elements)
	s := make(Series, len(times))
	for i, t := range times {
		s[i] = Record{Time: t, Low: low.Elements[i], Total: total.Elements[i]}
	}
	return s, nil
}

// Prepare reads the dust index data from the file at path and returns
// the cleaned series along with its summary statistics.
func Prepare(path string, c *Config, log logrus.FieldLogger) (Series, Summary, error) {
	ref, err := ParseDate(c.Date)
	if err != nil {
		return nil, Summary{}, err
	}
	raw, err := Load(path, c.Variables)
	if err != nil {
		return nil, Summary{}, err
	}
	s, err := NewSeries(ref, raw, c.MissingThreshold)
	if err != nil {
		return nil, Summary{}, err
	}
	if c.Reverse {
		s = s.Reverse()
	}
	sum := Summarize(s)
	log.WithFields(logrus.Fields{
		"file":      path,
		"date":      c.Date,
		"records":   len(s),
		"low_mean":  sum.Low.Mean,
		"low_valid": sum.Low.Valid,
		"tot_mean":  sum.Total.Mean,
		"tot_valid": sum.Total.Valid,
	}).Info("prepared dust index series")
	return s, sum, nil
}
