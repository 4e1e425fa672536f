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
	"math"

	"github.com/ctessum/sparse"
)

// MissingThreshold is the value above which measurements in the
// input files are considered to be missing.
const MissingThreshold = 1e30

// Sanitize returns a copy of a where every value greater than threshold
// has been replaced by NaN. The shape of the returned array is the same
// as the shape of a.
func Sanitize(a *sparse.DenseArray, threshold float64) (*sparse.DenseArray, error) {
	if a == nil {
		return nil, fmt.Errorf("dustindex: sanitize: array is nil")
	}
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	if n != len(a.Elements) {
		return nil, fmt.Errorf("dustindex: sanitize: array shape %v doesn't match %d elements", a.Shape, len(a.Elements))
	}
	o := a.Copy()
	for i, v := range o.Elements {
		if v > threshold {
			o.Elements[i] = math.NaN()
		}
	}
	return o, nil
}
