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
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	// A field declaration: a single- or double-quoted name followed
	// by '='. Everything until the next declaration belongs to it.
	fieldHeaderRe = regexp.MustCompile(`^("|')([\w.\- ]+)("|')\s*=`)

	// An attribute statement: key = <integer>|<real> ; with the
	// integer form taking precedence when the statement as a whole
	// matches either way.
	keyValueRe = regexp.MustCompile(`^(\w+)\s*=\s*(?:([+-]?\d+)|([+-]?\d*\.\d*(?:e\+\d+)?))\s*;`)
)

// ReadDefinition parses the body of one GRIB definition file into a
// mapping from field name to the GRIB key/value pairs declared for it.
// A comment line immediately preceding a field declaration is attached
// to the field under CommentKey. Lines that match neither a field
// declaration nor an attribute statement (brace punctuation, blank
// lines, free text) are ignored; a numeric literal that matches the
// grammar but cannot be converted is an error. A body with no field
// declarations yields an empty, non-nil map.
func ReadDefinition(r io.Reader) (map[string]FieldRecord, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := normalizeLines(string(b))

	// Locate field declarations.
	type header struct {
		field string
		line  int
	}
	defs := make(map[string]FieldRecord)
	var headers []header
	for i, line := range lines {
		if m := fieldHeaderRe.FindStringSubmatch(line); m != nil {
			headers = append(headers, header{field: m[2], line: i})
			if _, ok := defs[m[2]]; !ok {
				defs[m[2]] = FieldRecord{}
			}
		}
	}

	// Fill each field from its span: the lines between its
	// declaration and the next one.
	for j, h := range headers {
		end := len(lines)
		if j+1 < len(headers) {
			end = headers[j+1].line
		}
		rec := defs[h.field]
		if h.line > 0 && strings.HasPrefix(lines[h.line-1], "#") {
			comment := strings.TrimSpace(lines[h.line-1][1:])
			rec[CommentKey] = strings.Trim(comment, `"'`)
		}
		for i := h.line; i < end; i++ {
			m := keyValueRe.FindStringSubmatch(lines[i])
			if m == nil {
				continue
			}
			key := m[1]
			switch {
			case m[2] != "":
				v, err := strconv.Atoi(m[2])
				if err != nil {
					return nil, fmt.Errorf("gribdef: field %q: integer literal %q: %v", h.field, m[2], err)
				}
				rec[key] = v
			case m[3] != "":
				v, err := strconv.ParseFloat(m[3], 64)
				if err != nil {
					return nil, fmt.Errorf("gribdef: field %q: real literal %q: %v", h.field, m[3], err)
				}
				rec[key] = v
			}
		}
	}
	return defs, nil
}

// normalizeLines flattens the file into one candidate statement per
// line: lines are trimmed, then re-split so that every ;-terminated
// statement and every opening brace starts a line of its own. Block
// nesting is not tracked; field spans are delimited by the next field
// declaration alone.
func normalizeLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		line = strings.ReplaceAll(line, ";", ";\n")
		line = strings.ReplaceAll(line, "{ ", "{\n")
		for _, l := range strings.Split(line, "\n") {
			lines = append(lines, strings.TrimSpace(l))
		}
	}
	return lines
}
