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
	"os"
	"path/filepath"
	"strings"
)

// Names of the GRIB APIs whose environment variables are recognized.
const (
	APIEccodes = "eccodes"
	APIGribAPI = "grib_api"
)

// InstallPaths locates the samples and definitions directories of a
// GRIB API installation. It is the only part of this package that
// touches process environment variables, for interoperation with the
// native GRIB libraries that read them.
type InstallPaths struct {
	// Root is the directory the API is installed under.
	Root string
	// APIName is APIEccodes or APIGribAPI.
	APIName string
}

// SamplesDir returns the installation's samples directory.
func (p InstallPaths) SamplesDir() string {
	return filepath.Join(p.Root, "share", p.APIName, "samples")
}

// DefinitionsDir returns the installation's definitions directory.
func (p InstallPaths) DefinitionsDir() string {
	return filepath.Join(p.Root, "share", p.APIName, "definitions")
}

func (p InstallPaths) envVars() (samples, definitions string, err error) {
	switch p.APIName {
	case APIGribAPI:
		return "GRIB_SAMPLES_PATH", "GRIB_DEFINITION_PATH", nil
	case APIEccodes:
		return "ECCODES_SAMPLES_PATH", "ECCODES_DEFINITION_PATH", nil
	}
	return "", "", fmt.Errorf("gribdef: unknown GRIB API name %q", p.APIName)
}

// CompleteEnv prepends the installation's samples and definitions
// directories to the API's samples- and definition-path environment
// variables. If reset is set, any pre-existing values are discarded
// instead of kept behind the new entries.
func (p InstallPaths) CompleteEnv(reset bool) error {
	sp, dp, err := p.envVars()
	if err != nil {
		return err
	}
	if err := prependEnvPath(sp, p.SamplesDir(), reset); err != nil {
		return err
	}
	return prependEnvPath(dp, p.DefinitionsDir(), reset)
}

// SetDefinitionPath prepends path to the definition-path environment
// variable of the named GRIB API.
func SetDefinitionPath(path, apiName string, reset bool) error {
	_, dp, err := InstallPaths{APIName: apiName}.envVars()
	if err != nil {
		return err
	}
	return prependEnvPath(dp, path, reset)
}

func prependEnvPath(key, dir string, reset bool) error {
	paths := []string{dir}
	if v := os.Getenv(key); v != "" && !reset {
		paths = append(paths, v)
	}
	return os.Setenv(key, strings.Join(paths, string(os.PathListSeparator)))
}

// envPaths joins the eccodes and grib_api values of one path variable
// family, dropping empty entries and ".".
func envPaths(obj string) []string {
	sep := string(os.PathListSeparator)
	joined := os.Getenv("ECCODES_"+obj+"_PATH") + sep + os.Getenv("GRIB_"+obj+"_PATH")
	var out []string
	for _, p := range strings.Split(joined, sep) {
		if p != "" && p != "." {
			out = append(out, p)
		}
	}
	return out
}

// SamplesPaths returns the environment-configured sample directories.
func SamplesPaths() []string {
	return envPaths("SAMPLES")
}

// DefinitionPaths returns the environment-configured definition
// directories.
func DefinitionPaths() []string {
	return envPaths("DEFINITION")
}

// LoadConcepts reads the named concept files from the grib1 and grib2
// subdirectories of each of the given definition directories into d.
// Missing concept files are skipped; unreadable ones are an error.
// Later directories update tables registered from earlier ones.
func LoadConcepts(d *GribDef, dirs, concepts []string) error {
	for _, dir := range dirs {
		for _, edition := range Editions {
			for _, concept := range concepts {
				file := filepath.Join(dir, string(edition), concept+".def")
				if _, err := os.Stat(file); err != nil {
					if os.IsNotExist(err) {
						continue
					}
					return err
				}
				if err := d.Read(file, edition); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
