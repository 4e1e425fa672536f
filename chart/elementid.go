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
	"fmt"
	"regexp"
	"strings"
)

// elementIDKey precedes the element identifier in a serialized grid.
const elementIDKey = `"elementid":"`

var validElementID = regexp.MustCompile(`^[A-Za-z][\w\-:.]*$`)

// ReplaceElementID finds the element identifier in script, which must
// follow the only occurrence of `"elementid":"`, and replaces it with
// name. The identifier must not occur anywhere else in script. It returns
// the modified script and the identifier that was replaced.
func ReplaceElementID(script, name string) (string, string, error) {
	if !validElementID.MatchString(name) {
		return "", "", fmt.Errorf("chart: invalid element id %q", name)
	}
	old, err := findElementID(script)
	if err != nil {
		return "", "", err
	}
	out, err := replaceToken(script, old, name)
	if err != nil {
		return "", "", err
	}
	if id, err := findElementID(out); err != nil || id != name {
		return "", "", fmt.Errorf("chart: element id %q was not replaced by %q", old, name)
	}
	return out, old, nil
}

// findElementID returns the identifier following elementIDKey.
func findElementID(script string) (string, error) {
	switch n := strings.Count(script, elementIDKey); n {
	case 0:
		return "", fmt.Errorf("chart: element id not found in script")
	case 1:
	default:
		return "", fmt.Errorf("chart: found %d element ids in script; expected 1", n)
	}
	start := strings.Index(script, elementIDKey) + len(elementIDKey)
	end := strings.IndexByte(script[start:], '"')
	if end < 0 {
		return "", fmt.Errorf("chart: unterminated element id in script")
	}
	if end == 0 {
		return "", fmt.Errorf("chart: empty element id in script")
	}
	return script[start : start+end], nil
}

// replaceToken replaces old in s with name. old must occur exactly once.
func replaceToken(s, old, name string) (string, error) {
	if n := strings.Count(s, old); n != 1 {
		return "", fmt.Errorf("chart: found %q %d times; expected 1", old, n)
	}
	return strings.Replace(s, old, name, 1), nil
}
