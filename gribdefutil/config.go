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

package gribdefutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/meteotools/gribdef"
	"github.com/spf13/cast"
)

// expandStringSlice expands the environment variables in a slice of strings.
func expandStringSlice(s []string) []string {
	for i := 0; i < len(s); i++ {
		s[i] = os.ExpandEnv(s[i])
	}
	return s
}

// StoreFromConfig builds the definition store described by the
// DefinitionPaths and Concepts configuration variables. The store
// loads its tables on first lookup.
func StoreFromConfig(cfg *viper.Viper) (*gribdef.GribDef, error) {
	var paths, concepts []string
	if v := cfg.Get("DefinitionPaths"); v != nil {
		var err error
		if paths, err = cast.ToStringSliceE(v); err != nil {
			return nil, fmt.Errorf("gribdef: reading DefinitionPaths: %v", err)
		}
	}
	if v := cfg.Get("Concepts"); v != nil {
		var err error
		if concepts, err = cast.ToStringSliceE(v); err != nil {
			return nil, fmt.Errorf("gribdef: reading Concepts: %v", err)
		}
	}
	if len(concepts) == 0 {
		return nil, fmt.Errorf("there are no concepts specified to load. Please fill in " +
			"the Concepts configuration and try again.")
	}
	s := &gribdef.Sources{
		DefinitionPaths: expandStringSlice(paths),
		Concepts:        concepts,
	}
	return s.Store(), nil
}
