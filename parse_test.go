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
	"reflect"
	"strings"
	"testing"
)

const shortNameExample = `# Mean sea level pressure
'msl' = {
	 discipline = 0 ;
	 parameterCategory = 3 ;
	 parameterNumber = 1 ;
}
# Temperature
't' = {
	 discipline = 0 ;
	 parameterCategory = 0 ;
	 parameterNumber = 0 ;
}
`

func TestReadDefinition(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]FieldRecord
	}{
		{
			name: "braced block with int and real",
			text: `"foo" = { key = 3 ; other = 1.5e+2 ; }`,
			want: map[string]FieldRecord{
				"foo": {"key": 3, "other": 150.0},
			},
		},
		{
			name: "single and double quoted names are equivalent",
			text: "'a b.c-d' = { x = 1 ; }\n\"e\" = { x = 2 ; }",
			want: map[string]FieldRecord{
				"a b.c-d": {"x": 1},
				"e":       {"x": 2},
			},
		},
		{
			name: "leading comment attaches to the field",
			text: "# Mean sea level pressure\n'msl' = {\n parameterNumber = 1 ;\n}",
			want: map[string]FieldRecord{
				"msl": {CommentKey: "Mean sea level pressure", "parameterNumber": 1},
			},
		},
		{
			name: "quoted comment is unquoted",
			text: "# \"Geopotential\"\n'z' = {\n parameterNumber = 4 ;\n}",
			want: map[string]FieldRecord{
				"z": {CommentKey: "Geopotential", "parameterNumber": 4},
			},
		},
		{
			name: "unmatched lines are dropped",
			text: "'f' = {\n key = 1 ;\n this is free text\n other = nonnumeric ;\n}\ntrailing junk",
			want: map[string]FieldRecord{
				"f": {"key": 1},
			},
		},
		{
			name: "statements folded onto one line",
			text: `'f' = { a = 1 ; b = 2 ; }`,
			want: map[string]FieldRecord{
				"f": {"a": 1, "b": 2},
			},
		},
		{
			name: "signed and fractional literals",
			text: "'f' = {\n neg = -4 ;\n pos = +4 ;\n half = 0.5 ;\n negHalf = -0.5 ;\n}",
			want: map[string]FieldRecord{
				"f": {"neg": -4, "pos": 4, "half": 0.5, "negHalf": -0.5},
			},
		},
		{
			name: "integer form takes precedence",
			text: "'f' = {\n a = 42 ;\n}",
			want: map[string]FieldRecord{
				"f": {"a": 42},
			},
		},
		{
			name: "duplicate key in span, last wins",
			text: "'f' = {\n a = 1 ;\n a = 2 ;\n}",
			want: map[string]FieldRecord{
				"f": {"a": 2},
			},
		},
		{
			name: "duplicate field name accumulates, later wins",
			text: "'f' = {\n a = 1 ;\n b = 1 ;\n}\n'f' = {\n a = 2 ;\n c = 3 ;\n}",
			want: map[string]FieldRecord{
				"f": {"a": 2, "b": 1, "c": 3},
			},
		},
		{
			name: "no field declarations",
			text: "just\nsome\ntext ;\n",
			want: map[string]FieldRecord{},
		},
		{
			name: "empty input",
			text: "",
			want: map[string]FieldRecord{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ReadDefinition(strings.NewReader(test.text))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("have %v, want %v", got, test.want)
			}
		})
	}
}

func TestReadDefinitionFile(t *testing.T) {
	defs, err := ReadDefinition(strings.NewReader(shortNameExample))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]FieldRecord{
		"msl": {
			CommentKey:          "Mean sea level pressure",
			"discipline":        0,
			"parameterCategory": 3,
			"parameterNumber":   1,
		},
		"t": {
			CommentKey:          "Temperature",
			"discipline":        0,
			"parameterCategory": 0,
			"parameterNumber":   0,
		},
	}
	if !reflect.DeepEqual(defs, want) {
		t.Errorf("have %v, want %v", defs, want)
	}
}

func TestReadDefinitionOverflow(t *testing.T) {
	text := "'f' = {\n a = 99999999999999999999999999999 ;\n}"
	if _, err := ReadDefinition(strings.NewReader(text)); err == nil {
		t.Error("expected an error for an overflowing integer literal")
	}
}

func TestNormalizeLines(t *testing.T) {
	got := normalizeLines("'f' = { a = 1 ; b = 2 ; }")
	want := []string{"'f' = {", "a = 1 ;", "b = 2 ;", "}"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("have %q, want %q", got, want)
	}
}
