/*
Copyright © 2026 the gribdef authors.
This file is part of gribdef.

gribdef is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

gribdef is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with gribdef.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command gribdef is a command-line interface for looking up GRIB
// concept definitions.
package main

import (
	"fmt"
	"os"

	"github.com/meteotools/gribdef/gribdefutil"
)

func main() {
	if err := gribdefutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
