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
	"os"
	"strings"
	"time"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

const dateFormat = "20060102"

// DefaultInputTemplate is the location of the lidar quicklook files.
// [YYMM] is replaced by the two-digit year and month of the date and
// [YYMMDD] by the two-digit year, month, and day.
const DefaultInputTemplate = "/pool/OBS/ACPC/RamanLidar-LICHT/3_QuickLook/nc/ql[YYMM]/li[YYMMDD].b532"

// Variables holds the names of the netCDF variables that
// contain the dust index measurements.
type Variables struct {
	// Low is the low-layer dust index.
	Low string

	// Total is the total-column dust index.
	Total string

	// Time is the time of each measurement in seconds since
	// midnight of the file date.
	Time string
}

// DefaultVariables are the variable names used in the lidar quicklook files.
var DefaultVariables = Variables{
	Low:   "DustIndexLowLayer",
	Total: "DustIndexTotal",
	Time:  "Time",
}

// Raw holds the dust index data as it is stored in the input file.
type Raw struct {
	Low, Total, Seconds *sparse.DenseArray
}

// ParseDate parses a date in the format "YYYYMMDD".
func ParseDate(datestr string) (time.Time, error) {
	if len(datestr) != len(dateFormat) {
		return time.Time{}, fmt.Errorf("dustindex: date %q should be in the format YYYYMMDD", datestr)
	}
	for _, c := range datestr {
		if c < '0' || c > '9' {
			return time.Time{}, fmt.Errorf("dustindex: date %q should be in the format YYYYMMDD", datestr)
		}
	}
	d, err := time.Parse(dateFormat, datestr)
	if err != nil {
		return time.Time{}, fmt.Errorf("dustindex: parsing date: %w", err)
	}
	return d, nil
}

// InputPath returns the location of the input file for the date datestr,
// which must be in the format "YYYYMMDD". The wildcards [YYMM], [YYMMDD],
// and [DATE] in template are replaced by the matching parts of datestr.
func InputPath(template, datestr string) (string, error) {
	if _, err := ParseDate(datestr); err != nil {
		return "", err
	}
	r := strings.NewReplacer(
		"[YYMMDD]", datestr[2:],
		"[YYMM]", datestr[2:6],
		"[DATE]", datestr,
	)
	return r.Replace(template), nil
}

// Load reads the dust index variables from the netCDF file at path.
// The file is closed before Load returns.
func Load(path string, vars Variables) (*Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dustindex: opening input file: %w", err)
	}
	defer f.Close()

	ff, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("dustindex: reading netcdf header of %s: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("dustindex: %w", err)
	}

	r := new(Raw)
	if r.Low, err = readVariable(ff, vars.Low, fi.Size()); err != nil {
		return nil, err
	}
	if r.Total, err = readVariable(ff, vars.Total, fi.Size()); err != nil {
		return nil, err
	}
	if r.Seconds, err = readVariable(ff, vars.Time, fi.Size()); err != nil {
		return nil, err
	}
	if err := r.check(); err != nil {
		return nil, fmt.Errorf("dustindex: %s: %w", path, err)
	}
	return r, nil
}

// check makes sure the three arrays hold the same number of values.
func (r *Raw) check() error {
	n := len(r.Seconds.Elements)
	if len(r.Low.Elements) != n || len(r.Total.Elements) != n {
		return fmt.Errorf("variable lengths don't match: time=%d, low=%d, total=%d",
			n, len(r.Low.Elements), len(r.Total.Elements))
	}
	return nil
}

// readVariable reads the whole of variable name from ff, converting the
// values to float64. fsize is the size of the file, which is needed to
// find the number of records of record variables.
func readVariable(ff *cdf.File, name string, fsize int64) (*sparse.DenseArray, error) {
	dims := ff.Header.Lengths(name)
	if len(dims) == 0 {
		return nil, fmt.Errorf("dustindex: read netcdf: variable %v not in file", name)
	}
	shape := make([]int, len(dims))
	copy(shape, dims)
	if ff.Header.IsRecordVariable(name) {
		shape[0] = int(ff.Header.NumRecs(fsize))
	}
	n := 1
	for _, d := range shape {
		n *= d
	}
	data := sparse.ZerosDense(shape...)
	if n == 0 {
		return data, nil
	}

	begin, end := make([]int, len(shape)), make([]int, len(shape))
	for i, d := range shape {
		end[i] = d - 1
	}
	r := ff.Reader(name, begin, end)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("dustindex: read netcdf variable %s: %w", name, err)
	}
	switch v := buf.(type) {
	case []float32:
		for i, val := range v {
			data.Elements[i] = float64(val)
		}
	case []float64:
		copy(data.Elements, v)
	case []int32:
		for i, val := range v {
			data.Elements[i] = float64(val)
		}
	case []int16:
		for i, val := range v {
			data.Elements[i] = float64(val)
		}
	case []uint8:
		for i, val := range v {
			data.Elements[i] = float64(val)
		}
	default:
		return nil, fmt.Errorf("dustindex: read netcdf variable %s: unsupported type %T", name, buf)
	}
	return data, nil
}
