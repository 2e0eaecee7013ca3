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
	"os"

	"github.com/BurntSushi/toml"
)

// Sources describes where definition files are found and which
// concepts to load from them.
type Sources struct {
	// DefinitionPaths lists the root directories holding grib1 and
	// grib2 definition subdirectories. If empty, the
	// environment-configured definition paths are used. Entries may
	// contain environment variables.
	DefinitionPaths []string

	// Concepts lists the concept file base names to load (e.g.
	// "name", "typeOfLevel").
	Concepts []string
}

// LoadSources decodes a TOML sources description.
func LoadSources(r io.Reader) (*Sources, error) {
	s := new(Sources)
	if _, err := toml.DecodeReader(r, s); err != nil {
		return nil, fmt.Errorf("gribdef: decoding sources: %v", err)
	}
	return s, nil
}

// Store returns a GribDef whose bulk load, deferred to the first
// lookup, reads the configured concepts from the configured definition
// paths.
func (s *Sources) Store() *GribDef {
	return NewDeferred(func(d *GribDef) error {
		configured := s.DefinitionPaths
		if len(configured) == 0 {
			configured = DefinitionPaths()
		}
		dirs := make([]string, len(configured))
		for i, dir := range configured {
			dirs[i] = os.ExpandEnv(dir)
		}
		return LoadConcepts(d, dirs, s.Concepts)
	})
}
