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

// Command dustindex plots the dust index measured by a Raman lidar
// as a chart that can be embedded in a web page.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/dustindex/dustutil"
)

func main() {
	cfg := dustutil.InitializeConfig()
	if err := cfg.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
