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

// Package gribdef translates between the two representations of GRIB
// field metadata: the low-level key/value identifiers that physically
// encode a field, and the high-level named concept values (parameter
// names, level types, etc.) that definition files associate with them.
// Mapping tables are loaded from GRIB API definition files and held in
// memory for repeated lookup in both directions.
package gribdef

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Edition is a GRIB format generation.
type Edition string

// The two supported GRIB editions.
const (
	Grib1 Edition = "grib1"
	Grib2 Edition = "grib2"
)

// DefaultEdition is the edition assumed when none is specified.
const DefaultEdition = Grib2

// Editions lists the supported GRIB editions.
var Editions = []Edition{Grib1, Grib2}

// CommentKey is the reserved attribute name under which a field's
// preceding descriptive comment is stored. It is excluded from lookup
// results unless comments are explicitly requested.
const CommentKey = "#comment"

// Version gives the gribdef version number.
const Version = "0.1.0"

// ErrNotFound is returned (wrapped) when a direct lookup refers to an
// edition, concept, or concept value that has not been registered.
var ErrNotFound = errors.New("not found")

// FieldRecord holds the GRIB key/value pairs associated with one
// concept value. Values are int or float64; the reserved CommentKey
// entry, when present, holds a string.
type FieldRecord map[string]interface{}

// Copy returns a shallow copy of the record.
func (r FieldRecord) Copy() FieldRecord {
	o := make(FieldRecord, len(r))
	for k, v := range r {
		o[k] = v
	}
	return o
}

// copyForOutput copies the record, dropping the comment attribute
// unless comments were requested.
func (r FieldRecord) copyForOutput(includeComments bool) FieldRecord {
	o := r.Copy()
	if !includeComments {
		delete(o, CommentKey)
	}
	return o
}

// ConceptTable maps concept values (field names) to their GRIB
// definitions within one concept.
type ConceptTable map[string]FieldRecord

// update merges a parsed file fragment into the table. Fields already
// present are updated attribute-by-attribute; new fields are added;
// fields absent from the fragment are left untouched.
func (t ConceptTable) update(frag map[string]FieldRecord) {
	for name, rec := range frag {
		cur, ok := t[name]
		if !ok {
			t[name] = rec
			continue
		}
		for k, v := range rec {
			cur[k] = v
		}
	}
}

// GribDef holds concept tables for both GRIB editions, aggregated from
// definition files, and answers lookups in both directions.
//
// A GribDef constructed with NewDeferred performs its bulk load on
// first lookup, exactly once even under concurrent use. Registration
// of additional files after construction is not synchronized; hosts
// sharing a GribDef across goroutines must serialize updates against
// lookups themselves.
type GribDef struct {
	tables map[Edition]map[string]ConceptTable

	load     func(*GribDef) error
	loadOnce sync.Once
	loadErr  error
}

// New returns an empty, ready-to-use GribDef.
func New() *GribDef {
	return &GribDef{tables: map[Edition]map[string]ConceptTable{
		Grib1: {},
		Grib2: {},
	}}
}

// NewDeferred returns a GribDef whose bulk load is postponed until the
// first lookup. The load function is invoked at most once; its error,
// if any, is returned by every subsequent lookup.
func NewDeferred(load func(*GribDef) error) *GribDef {
	d := New()
	d.load = load
	return d
}

func (d *GribDef) ensureInit() error {
	d.loadOnce.Do(func() {
		if d.load != nil {
			d.loadErr = d.load(d)
		}
	})
	return d.loadErr
}

// Reset drops all registered tables and re-arms the deferred bulk load
// if the GribDef was constructed with one.
func (d *GribDef) Reset() {
	d.tables = map[Edition]map[string]ConceptTable{
		Grib1: {},
		Grib2: {},
	}
	d.loadOnce = sync.Once{}
	d.loadErr = nil
}

// EditionFromPath infers the GRIB edition from a definition file path,
// which conventionally contains a grib1 or grib2 component. It returns
// the empty string if neither is present.
func EditionFromPath(path string) Edition {
	for _, g := range Editions {
		if strings.Contains(path, string(g)) {
			return g
		}
	}
	return ""
}

// Read reads a definition file and registers or updates the concept it
// describes. The concept name is the file's base name with the .def
// extension stripped. If edition is empty it is inferred from the
// path.
func (d *GribDef) Read(filename string, edition Edition) error {
	if edition == "" {
		edition = EditionFromPath(filename)
		if edition == "" {
			return fmt.Errorf("gribdef: cannot infer GRIB edition from path %q", filename)
		}
	}
	concept := strings.TrimSuffix(filepath.Base(filename), ".def")
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := d.UpdateConcept(edition, concept, f); err != nil {
		return fmt.Errorf("gribdef: reading %s: %w", filename, err)
	}
	return nil
}

// UpdateConcept parses a definition file body and merges it into the
// table for the given edition and concept, creating the table if it
// does not yet exist.
func (d *GribDef) UpdateConcept(edition Edition, concept string, r io.Reader) error {
	frag, err := ReadDefinition(r)
	if err != nil {
		return err
	}
	ed, ok := d.tables[edition]
	if !ok {
		ed = map[string]ConceptTable{}
		d.tables[edition] = ed
	}
	t, ok := ed[concept]
	if !ok {
		t = ConceptTable{}
		ed[concept] = t
	}
	t.update(frag)
	return nil
}

// Concepts returns the sorted names of the concepts registered under
// an edition.
func (d *GribDef) Concepts(edition Edition) []string {
	var names []string
	for c := range d.tables[edition] {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

// Definition returns a copy of the GRIB definition registered for a
// concept value. The comment attribute is stripped from the result
// unless includeComments is set. It returns an error wrapping
// ErrNotFound if the edition, concept, or value is unknown.
func (d *GribDef) Definition(fid, concept string, edition Edition, includeComments bool) (FieldRecord, error) {
	if err := d.ensureInit(); err != nil {
		return nil, err
	}
	rec, ok := d.tables[edition][concept][fid]
	if !ok {
		return nil, fmt.Errorf("gribdef: no definition for %q in %s %s: %w",
			fid, edition, concept, ErrNotFound)
	}
	return rec.copyForOutput(includeComments), nil
}

// MatchFields returns copies of all fields in the concept's table
// whose definitions contain every key of probe with an equal value.
// Equality is exact, though an integer attribute matches the same
// value given as a real (and vice versa); no tolerance is applied to
// real values. An empty probe matches every field. An unknown edition
// or concept yields an empty result, not an error.
func (d *GribDef) MatchFields(probe map[string]interface{}, concept string, edition Edition, includeComments bool) (map[string]FieldRecord, error) {
	if err := d.ensureInit(); err != nil {
		return nil, err
	}
	fields := make(map[string]FieldRecord)
	for name, rec := range d.tables[edition][concept] {
		if recordMatches(rec, probe) {
			fields[name] = rec.copyForOutput(includeComments)
		}
	}
	return fields, nil
}

// Lookup is a best-effort convenience wrapper around Definition and
// MatchFields. The fid argument is first parsed as a
// "key=value,key=value" identifier set; if that succeeds the result is
// a reverse lookup over the parsed keys, otherwise fid is treated as a
// concept value and looked up directly, returned as a single-entry
// map. Because a failed parse is what selects the direct path, callers
// that know their input shape should call the typed methods instead.
func (d *GribDef) Lookup(fid, concept string, edition Edition, includeComments bool) (map[string]FieldRecord, error) {
	probe, err := ParseFID(fid)
	if err != nil {
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			return nil, err
		}
		rec, err := d.Definition(fid, concept, edition, includeComments)
		if err != nil {
			return nil, err
		}
		return map[string]FieldRecord{fid: rec}, nil
	}
	return d.MatchFields(probe, concept, edition, includeComments)
}

// recordMatches reports whether every probe key is present in rec with
// an equal value.
func recordMatches(rec FieldRecord, probe map[string]interface{}) bool {
	for k, v := range probe {
		got, ok := rec[k]
		if !ok || !valuesEqual(got, v) {
			return false
		}
	}
	return true
}

// valuesEqual compares two attribute values, treating int and float64
// representations of the same number as equal.
func valuesEqual(a, b interface{}) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	return a == b
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
