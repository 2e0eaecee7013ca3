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

// Package gribdefutil wires the gribdef library into a command-line
// interface.
package gribdefutil

import (
	"fmt"
	"sort"

	"github.com/lnashier/viper"
	"github.com/meteotools/gribdef"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Options are the configuration options available to gribdef.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "edition",
			usage: `
              edition specifies the GRIB edition to query, either grib1
              or grib2.`,
			shorthand:  "e",
			defaultVal: string(gribdef.DefaultEdition),
			flagsets:   []*pflag.FlagSet{lookupCmd.Flags()},
		},
		{
			name: "concept",
			usage: `
              concept specifies the concept to query, i.e. the base name
              of the definition files holding the mapping (for example
              shortName or typeOfLevel).`,
			shorthand:  "c",
			defaultVal: "shortName",
			flagsets:   []*pflag.FlagSet{lookupCmd.Flags()},
		},
		{
			name: "comments",
			usage: `
              comments specifies whether the descriptive comments stored
              with the definitions are included in the results.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{lookupCmd.Flags()},
		},
		{
			name: "DefinitionPaths",
			usage: `
              DefinitionPaths lists the root directories holding grib1 and
              grib2 definition subdirectories. If empty, the directories are
              taken from the ECCODES_DEFINITION_PATH and GRIB_DEFINITION_PATH
              environment variables.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{lookupCmd.Flags()},
		},
		{
			name: "Concepts",
			usage: `
              Concepts lists the concept files to load from the definition
              directories.`,
			defaultVal: []string{"shortName", "name", "paramId", "typeOfLevel"},
			flagsets:   []*pflag.FlagSet{lookupCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GRIBDEF")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(lookupCmd)
	Root.AddCommand(pathsCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("gribdef: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "gribdef",
	Short: "Translate between GRIB identifiers and concept values.",
	Long: `gribdef loads GRIB API definition files and translates between the
low-level key/value identifiers of a GRIB field and the named concept
values (parameter names, level types, etc.) associated with them.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'GRIBDEF_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of gribdef.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("gribdef v%s\n", gribdef.Version)
	},
	DisableAutoGenTag: true,
}

// lookupCmd translates one field identifier in either direction.
var lookupCmd = &cobra.Command{
	Use:   "lookup FID",
	Short: "Look up a field identifier or concept value.",
	Long: `lookup translates its argument against the loaded concept tables.
If FID parses as a "key=value,key=value" GRIB identifier set, the
concept values whose definitions contain all the given pairs are
printed; otherwise FID is treated as a concept value and its GRIB
definition is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := StoreFromConfig(Cfg)
		if err != nil {
			return err
		}
		concept := Cfg.GetString("concept")
		edition := gribdef.Edition(Cfg.GetString("edition"))
		fields, err := d.Lookup(args[0], concept, edition, Cfg.GetBool("comments"))
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"edition": edition,
			"concept": concept,
			"matches": len(fields),
		}).Info("lookup finished")
		printFields(cmd, fields)
		return nil
	},
	DisableAutoGenTag: true,
}

// pathsCmd prints the definition and sample paths found in the
// environment.
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the configured GRIB API paths.",
	Long: `paths prints the definition and sample directories configured through
the ECCODES_*_PATH and GRIB_*_PATH environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("definitions:")
		for _, p := range gribdef.DefinitionPaths() {
			cmd.Printf("  %s\n", p)
		}
		cmd.Println("samples:")
		for _, p := range gribdef.SamplesPaths() {
			cmd.Printf("  %s\n", p)
		}
	},
	DisableAutoGenTag: true,
}

// printFields writes lookup results in a stable order.
func printFields(cmd *cobra.Command, fields map[string]gribdef.FieldRecord) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd.Printf("%s:\n", name)
		rec := fields[name]
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cmd.Printf("  %s = %v\n", k, rec[k])
		}
	}
}
