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
	"io"
	"time"
)

// Header is the comment written at the top of an embedded grid file.
type Header struct {
	// Program is the name of the program that created the file.
	Program string

	Author string

	// Modified is the time the file was created.
	Modified time.Time
}

// WriteEmbed writes script to w, preceded by a comment block with the
// information in h.
func WriteEmbed(w io.Writer, script string, h Header) error {
	_, err := fmt.Fprintf(w, "/*This code is generated by a Go program.\nProgram name: %s\nLast modification: %s\nAuthor: %s */\n%s",
		h.Program, h.Modified.Format("01/02/06"), h.Author, script)
	if err != nil {
		return fmt.Errorf("chart: writing embedded grid: %w", err)
	}
	return nil
}
