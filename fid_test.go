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
	"errors"
	"reflect"
	"testing"
)

func TestParseFID(t *testing.T) {
	tests := []struct {
		in   string
		want map[string]interface{}
	}{
		{
			in:   "discipline=0,parameterCategory=3,parameterNumber=1",
			want: map[string]interface{}{"discipline": 0, "parameterCategory": 3, "parameterNumber": 1},
		},
		{
			in:   "scaledValueOfFirstFixedSurface=1.5",
			want: map[string]interface{}{"scaledValueOfFirstFixedSurface": 1.5},
		},
		{
			in:   "typeOfLevel=surface, level=0",
			want: map[string]interface{}{"typeOfLevel": "surface", "level": 0},
		},
		{
			in:   "a = 1 , b = -2",
			want: map[string]interface{}{"a": 1, "b": -2},
		},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := ParseFID(test.in)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("have %v, want %v", got, test.want)
			}
		})
	}
}

func TestParseFIDSyntaxError(t *testing.T) {
	for _, in := range []string{
		"",
		"msl",
		"sh+gauss",
		"a=1,b",
		"=1",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseFID(in)
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("have %v, want *SyntaxError", err)
			}
			if serr.Input != in {
				t.Errorf("Input: have %q, want %q", serr.Input, in)
			}
		})
	}
}
