// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package oqjob

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/oqjob/oqjob/ini"
	"github.com/oqjob/oqjob/internal/log"
	"github.com/oqjob/oqjob/params"
	"github.com/oqjob/oqjob/schema"
)

// Load reads a job configuration from r and returns the validated,
// immutable JobConfig. The source name is used in diagnostics only.
//
// On failure the returned error is a params.ErrorList carrying every
// problem found in this load attempt: parse errors, coercion errors and
// cross-field violations are all collected before giving up, so one edit
// cycle can fix them all. A load either fully succeeds or fully fails;
// there is no partial JobConfig.
func Load(r io.Reader, source string) (*params.JobConfig, error) {
	return load(r, source, schema.Job())
}

// LoadWith is Load with an explicit schema table, for callers that
// restrict the accepted calculation modes or otherwise adjust the schema.
func LoadWith(r io.Reader, source string, table *schema.Table) (*params.JobConfig, error) {
	return load(r, source, table)
}

// LoadFile reads and loads a job configuration file.
func LoadFile(path string) (*params.JobConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job configuration: %w", err)
	}
	return Load(bytes.NewReader(data), path)
}

// LoadJSON loads a job configuration from a flat JSON object keyed by
// bare parameter name, the same dictionary form the engine accepts
// alongside files. Values may be given as JSON strings, numbers, booleans,
// arrays (lists and coordinate pair lists) or objects (dict parameters);
// they pass through the same coercion and validation as file values.
func LoadJSON(data []byte, source string) (*params.JobConfig, error) {
	table := schema.Job()

	var errs params.ErrorList

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		errs = append(errs, params.Error{
			Kind: params.ParseError, Message: "source is not a JSON object"})
		return nil, errs
	}

	// Rebuild a Sections so the dictionary goes through the exact same
	// pipeline as a parsed file.
	secs := ini.NewSections()
	doc.ForEach(func(key, value gjson.Result) bool {
		entry := table.ByKey(key.String())
		if entry == nil {
			errs = append(errs, params.Error{
				Kind: params.ParseError, Key: key.String(),
				Message: "unknown parameter"})
			return true
		}
		secs.Set(entry.Section, entry.Key, ini.Value{Raw: rawForm(value)})
		return true
	})

	cfg, err := finish(secs, source, table, errs)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// load runs the file pipeline: parse, then the shared coerce/validate
// tail.
func load(r io.Reader, source string, table *schema.Table) (*params.JobConfig, error) {
	secs, perrs := ini.Parse(r, source)

	var errs params.ErrorList
	for _, pe := range perrs {
		errs = append(errs, params.Error{
			Kind:    params.ParseError,
			Message: fmt.Sprintf("line %d: %s", pe.Line, pe.Message)})
	}

	return finish(secs, source, table, errs)
}

// finish runs coercion, defaulting and validation over parsed sections and
// builds the JobConfig when the collected error set is empty.
func finish(secs *ini.Sections, source string, table *schema.Table,
	errs params.ErrorList) (*params.JobConfig, error) {

	values, cerrs := params.Coerce(secs, table)
	errs = append(errs, cerrs...)

	params.ApplyDefaults(values)

	errs = append(errs, params.ValidateCrossFields(values)...)

	if len(errs) > 0 {
		log.Debugf("load %s failed: %d problems", source, len(errs))
		return nil, errs
	}

	log.Debugf("load %s ok: %d parameters resolved", source, len(values.Keys()))
	return params.Build(source, values), nil
}

// rawForm renders a JSON value into the raw text form the coercion stage
// expects for the corresponding kind.
func rawForm(value gjson.Result) string {
	switch value.Type {
	case gjson.String:
		return value.String()
	case gjson.Number:
		return value.Raw
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.Null:
		return ""
	default:
		if value.IsObject() {
			return value.Raw
		}
		// An array: either a plain list, or a list of [lon, lat] pairs,
		// which flatten to the comma separated pair syntax.
		var parts []string
		value.ForEach(func(_, elem gjson.Result) bool {
			if elem.IsArray() {
				var pair []string
				elem.ForEach(func(_, coord gjson.Result) bool {
					pair = append(pair, coord.Raw)
					return true
				})
				parts = append(parts, strings.Join(pair, " "))
			} else if elem.Type == gjson.String {
				parts = append(parts, elem.String())
			} else {
				parts = append(parts, elem.Raw)
			}
			return true
		})
		return strings.Join(parts, ", ")
	}
}
