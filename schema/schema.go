// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
)

// Kind is the declared type of a parameter value.
type Kind int

const (
	// String is free-form text.
	String Kind = iota
	// Int is a base-10 integer.
	Int
	// Float is a decimal number.
	Float
	// Bool accepts true/false and the usual aliases (yes/no/on/off/1/0).
	Bool
	// Path is a file path recorded verbatim. Existence is the calculation
	// engine's concern, not ours.
	Path
	// Enum is a string restricted to the entry's Choices.
	Enum
	// Floats is a comma or space separated list of decimal numbers.
	Floats
	// Coords is a list of lon/lat pairs. The flattened element count must
	// be even.
	Coords
	// StringList is a comma or space separated list of words.
	StringList
	// Dict is a JSON object, e.g. intensity measure levels keyed by IMT.
	Dict
)

// String returns the lowercase name of the kind, as used in diagnostics
// and generated docs.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "integer"
	case Float:
		return "float"
	case Bool:
		return "boolean"
	case Path:
		return "path"
	case Enum:
		return "enum"
	case Floats:
		return "float list"
	case Coords:
		return "coordinate list"
	case StringList:
		return "string list"
	case Dict:
		return "dict"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Bound is a numeric limit on a Float/Int value or on each element of a
// Floats list.
type Bound struct {
	Value     float64
	Exclusive bool
}

// Entry declares a single (section, key) parameter.
type Entry struct {
	Section string
	Key     string
	Kind    Kind

	// Default is the schema default in raw (source) form, coerced through
	// the same path as a value read from a file. HasDefault distinguishes
	// "defaults to empty string" from "no default".
	Default    string
	HasDefault bool

	// Choices restricts Enum values.
	Choices []string

	// Unit is a documentation-only annotation (km, years, m/s).
	Unit string

	// Doc is a one-line description surfaced by the docs generator.
	Doc string

	// BlankDisables marks keys where "key =" means "explicitly disabled":
	// the default is suppressed and the key resolves to nothing.
	BlankDisables bool

	// Required marks keys that must always be present. Conditionally
	// required keys are handled by the cross-field rules instead.
	Required bool

	// Min and Max bound numeric values, or each element of a Floats list.
	Min *Bound
	Max *Bound
}

// Name returns the section-qualified parameter name used in diagnostics.
func (e *Entry) Name() string {
	return fmt.Sprintf("[%s] %s", e.Section, e.Key)
}

// Table is an ordered set of entries with by-key and by-pair lookup. Keys
// are unique across sections in the job schema, which lets resolved
// parameters live in a flat namespace, same as the engine consumes them.
type Table struct {
	entries []Entry
	byKey   map[string]*Entry
	aliases map[string]string
}

// NewTable builds a table from entries. It panics if two entries share a
// key, since that would make the flat parameter namespace ambiguous; the
// job schema is a compile-time literal so this is a programming error, not
// an input error.
func NewTable(entries []Entry, aliases map[string]string) *Table {
	t := &Table{
		entries: entries,
		byKey:   make(map[string]*Entry, len(entries)),
		aliases: aliases,
	}
	for i := range t.entries {
		e := &t.entries[i]
		if _, dup := t.byKey[e.Key]; dup {
			panic("schema: duplicate key " + e.Key)
		}
		t.byKey[e.Key] = e
	}
	return t
}

// Lookup resolves a (section, key) pair read from a source. Section
// aliases (e.g. "outputs" for "output") are applied first. It returns nil
// when the key is unknown or declared under a different section.
func (t *Table) Lookup(section, key string) *Entry {
	if canonical, ok := t.aliases[section]; ok {
		section = canonical
	}
	e := t.byKey[key]
	if e == nil || e.Section != section {
		return nil
	}
	return e
}

// ByKey resolves a bare parameter name, as used by dictionary sources
// where no section information exists.
func (t *Table) ByKey(key string) *Entry {
	return t.byKey[key]
}

// Entries returns the entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Sections returns the distinct section names in declaration order.
func (t *Table) Sections() []string {
	var names []string
	seen := map[string]bool{}
	for i := range t.entries {
		s := t.entries[i].Section
		if !seen[s] {
			seen[s] = true
			names = append(names, s)
		}
	}
	return names
}

// gt returns an exclusive lower bound.
func gt(v float64) *Bound { return &Bound{Value: v, Exclusive: true} }

// ge returns an inclusive lower bound.
func ge(v float64) *Bound { return &Bound{Value: v} }

// lt returns an exclusive upper bound.
func lt(v float64) *Bound { return &Bound{Value: v, Exclusive: true} }

// le returns an inclusive upper bound.
func le(v float64) *Bound { return &Bound{Value: v} }
