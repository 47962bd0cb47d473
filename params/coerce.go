// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/oqjob/oqjob/ini"
	"github.com/oqjob/oqjob/internal/log"
	"github.com/oqjob/oqjob/schema"
)

// Value is one coerced parameter.
type Value struct {
	// Entry is the schema declaration the value was coerced against.
	Entry *schema.Entry
	// Raw is the source text the value came from. For defaulted values it
	// is the schema default, so a resolved config can be re-encoded.
	Raw string
	// Data is the typed value: string, int, float64, bool, []float64,
	// [][2]float64, []string or map[string]interface{} depending on kind.
	Data interface{}
	// Blank marks a key that was present but explicitly blank on an entry
	// flagged BlankDisables. Data is nil and the default is suppressed.
	Blank bool
	// FromDefault marks values filled in by ApplyDefaults.
	FromDefault bool
}

// Values is the mutable working set of the load pipeline. It is keyed by
// bare parameter name (keys are unique across sections in the job schema)
// and remembers insertion order so diagnostics follow source order.
type Values struct {
	table *schema.Table
	m     map[string]Value
	order []string
}

// NewValues returns an empty working set bound to a schema table.
func NewValues(table *schema.Table) *Values {
	return &Values{table: table, m: map[string]Value{}}
}

func (v *Values) set(key string, val Value) {
	if _, seen := v.m[key]; !seen {
		v.order = append(v.order, key)
	}
	v.m[key] = val
}

// Get returns the value for key, including explicitly blank ones.
func (v *Values) Get(key string) (Value, bool) {
	val, ok := v.m[key]
	return val, ok
}

// Has reports whether key resolved to an actual value. Explicitly blank
// keys do not count.
func (v *Values) Has(key string) bool {
	val, ok := v.m[key]
	return ok && !val.Blank
}

// Keys returns the parameter names in insertion order.
func (v *Values) Keys() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// Table returns the schema table the values were coerced against.
func (v *Values) Table() *schema.Table {
	return v.table
}

// Coerce converts every raw (section, key) pair to its declared type. All
// failures are collected; a key that fails coercion is simply absent from
// the result, which downstream rules treat the same as an omitted key.
func Coerce(secs *ini.Sections, table *schema.Table) (*Values, ErrorList) {
	values := NewValues(table)

	var errs ErrorList
	secs.Each(func(section, key string, raw ini.Value) {
		entry := table.Lookup(section, key)
		if entry == nil {
			errs = append(errs, Error{
				Kind: ParseError, Section: section, Key: key,
				Message: "unknown parameter"})
			return
		}

		// Present but blank is a distinct state, resolved per key.
		if raw.Raw == "" {
			switch {
			case entry.BlankDisables:
				log.Debugf("explicitly disabled: %s", entry.Name())
				values.set(key, Value{Entry: entry, Blank: true})
			case entry.Kind == schema.String || entry.Kind == schema.Path:
				values.set(key, Value{Entry: entry, Data: ""})
			default:
				errs = append(errs, Error{
					Kind: TypeMismatch, Section: entry.Section, Key: key,
					Message: fmt.Sprintf("empty value for %s parameter", entry.Kind)})
			}
			return
		}

		data, err := coerceOne(entry, raw.Raw)
		if err != nil {
			errs = append(errs, *err)
			return
		}
		values.set(key, Value{Entry: entry, Raw: raw.Raw, Data: data})
	})

	return values, errs
}

// coerceOne converts a single non-blank raw value per the entry's kind.
func coerceOne(e *schema.Entry, raw string) (interface{}, *Error) {
	fail := func(kind ErrorKind, format string, args ...interface{}) *Error {
		return &Error{Kind: kind, Section: e.Section, Key: e.Key,
			Message: fmt.Sprintf(format, args...)}
	}

	switch e.Kind {
	case schema.String, schema.Path:
		return raw, nil

	case schema.Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fail(TypeMismatch, "%q is not an integer", raw)
		}
		return n, nil

	case schema.Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fail(TypeMismatch, "%q is not a number", raw)
		}
		return f, nil

	case schema.Bool:
		switch strings.ToLower(raw) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
		return nil, fail(TypeMismatch, "%q is not a boolean", raw)

	case schema.Enum:
		for _, choice := range e.Choices {
			if raw == choice {
				return raw, nil
			}
		}
		return nil, fail(UnknownEnumValue, "%q is not one of %s",
			raw, strings.Join(e.Choices, ", "))

	case schema.Floats:
		fields := splitList(raw)
		if len(fields) == 0 {
			return nil, fail(MalformedList, "no elements in %q", raw)
		}
		out := make([]float64, len(fields))
		for i, field := range fields {
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fail(TypeMismatch, "element %q is not a number", field)
			}
			out[i] = f
		}
		return out, nil

	case schema.Coords:
		return coerceCoords(e, raw)

	case schema.StringList:
		return splitList(raw), nil

	case schema.Dict:
		if !gjson.Valid(raw) {
			return nil, fail(TypeMismatch, "%q is not valid JSON", raw)
		}
		parsed := gjson.Parse(raw)
		if !parsed.IsObject() {
			return nil, fail(TypeMismatch, "%q is not a JSON object", raw)
		}
		return parsed.Value(), nil

	default:
		// Unreachable with the job schema; keep the diagnostic anyway.
		return nil, fail(TypeMismatch, "unsupported kind %s", e.Kind)
	}
}

// coerceCoords parses a flat list of lon/lat values. The flattened element
// count must be even and each coordinate must be a number within the
// geographic range.
func coerceCoords(e *schema.Entry, raw string) (interface{}, *Error) {
	fail := func(kind ErrorKind, format string, args ...interface{}) *Error {
		return &Error{Kind: kind, Section: e.Section, Key: e.Key,
			Message: fmt.Sprintf(format, args...)}
	}

	fields := splitList(raw)
	if len(fields) == 0 {
		return nil, fail(MalformedList, "no elements in %q", raw)
	}
	if len(fields)%2 != 0 {
		return nil, fail(MalformedList,
			"odd number of coordinates (%d) in %q", len(fields), raw)
	}

	coords := make([][2]float64, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		lon, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fail(TypeMismatch, "longitude %q is not a number", fields[i])
		}
		lat, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fail(TypeMismatch, "latitude %q is not a number", fields[i+1])
		}
		if lon < -180 || lon > 180 {
			return nil, fail(OutOfRangeValue, "longitude %v outside [-180, 180]", lon)
		}
		if lat < -90 || lat > 90 {
			return nil, fail(OutOfRangeValue, "latitude %v outside [-90, 90]", lat)
		}
		coords = append(coords, [2]float64{lon, lat})
	}
	return coords, nil
}

// splitList splits a comma or space separated list into its elements.
// Commas and runs of whitespace are interchangeable separators.
func splitList(raw string) []string {
	return strings.Fields(strings.ReplaceAll(raw, ",", " "))
}
