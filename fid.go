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

package gribdef

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// SyntaxError reports a string that could not be parsed as a
// "key=value,key=value" GRIB identifier set.
type SyntaxError struct {
	Input string
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("gribdef: parsing fid %q: %s", e.Input, e.Msg)
}

// ParseFID parses a GRIB identifier set from its string encoding,
// "key=value,key=value,...". Values are coerced to int where possible,
// then to float64, and otherwise kept as strings. A malformed input
// returns a *SyntaxError.
func ParseFID(s string) (map[string]interface{}, error) {
	fid := make(map[string]interface{})
	for _, pair := range strings.Split(s, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, &SyntaxError{Input: s, Msg: fmt.Sprintf("expected key=value, got %q", pair)}
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		if key == "" {
			return nil, &SyntaxError{Input: s, Msg: fmt.Sprintf("empty key in %q", pair)}
		}
		if i, err := cast.ToIntE(val); err == nil {
			fid[key] = i
		} else if f, err := strconv.ParseFloat(val, 64); err == nil {
			fid[key] = f
		} else {
			fid[key] = val
		}
	}
	return fid, nil
}
