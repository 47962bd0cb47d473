// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package params

import (
	"fmt"
	"strings"

	"github.com/oqjob/oqjob/schema"
)

// referenceSiteKeys are required all-or-nothing when no site model file is
// given.
var referenceSiteKeys = []string{
	"reference_vs30_value",
	"reference_vs30_type",
	"reference_depth_to_2pt5km_per_sec",
	"reference_depth_to_1pt0km_per_sec",
}

// vulnerabilityKeys are the per-cost-type vulnerability inputs; risk modes
// other than damage need at least one.
var vulnerabilityKeys = []string{
	"structural_vulnerability_file",
	"nonstructural_vulnerability_file",
	"contents_vulnerability_file",
	"occupants_vulnerability_file",
	"business_interruption_vulnerability_file",
}

// validExports is the accepted set for the exports list.
var validExports = []string{"csv", "xml", "geojson"}

// ValidateCrossFields enforces the consistency rules between parameters:
// unconditional requireds, numeric bounds, and the dependency rules that
// make a JobConfig safe to hand to the engine. Every violation is
// collected; nothing fails fast.
func ValidateCrossFields(values *Values) ErrorList {
	var errs ErrorList

	table := values.Table()

	// Unconditionally required keys first.
	for _, entry := range table.Entries() {
		if entry.Required && !values.Has(entry.Key) {
			errs = append(errs, Error{
				Kind: MissingRequiredField, Section: entry.Section,
				Key: entry.Key, Message: "required parameter is missing"})
		}
	}

	// Numeric bounds, uniformly from the schema, in source order.
	for _, key := range values.Keys() {
		val, _ := values.Get(key)
		if val.Blank {
			continue
		}
		errs = append(errs, checkBounds(val)...)
	}

	errs = append(errs, checkExports(values)...)
	errs = append(errs, checkIMTLevels(values)...)

	mode := ""
	if v, ok := values.Get("calculation_mode"); ok && !v.Blank {
		mode, _ = v.Data.(string)
	}

	// R1: logic-tree modes with full enumeration need both tree files.
	if mode != "" && !isScenarioMode(mode) {
		if n, ok := intVal(values, "number_of_logic_tree_samples"); ok && n == 0 {
			for _, key := range []string{"source_model_logic_tree_file", "gsim_logic_tree_file"} {
				if !values.Has(key) {
					errs = append(errs, Error{
						Kind: MissingRequiredField, Section: "logic_tree", Key: key,
						Message: "required when number_of_logic_tree_samples is 0 (full enumeration)"})
				}
			}
		}
	}

	// R2: without a site model, the reference site parameters come as a
	// complete set or not at all.
	if !values.Has("site_model_file") {
		var missing []string
		for _, key := range referenceSiteKeys {
			if !values.Has(key) {
				missing = append(missing, key)
			}
		}
		switch {
		case len(missing) == len(referenceSiteKeys):
			errs = append(errs, Error{
				Kind: CrossFieldViolation, Section: "site_params",
				Message: "either site_model_file or the reference_* site parameters must be given"})
		case len(missing) > 0:
			errs = append(errs, Error{
				Kind: CrossFieldViolation, Section: "site_params",
				Message: "incomplete reference site parameters, missing " +
					strings.Join(missing, ", ")})
		}
	}

	// R4: event based sampling needs a time span; ses_per_logic_tree_path
	// positivity is already covered by the bounds pass.
	if isEventBasedMode(mode) && !values.Has("investigation_time") {
		errs = append(errs, Error{
			Kind: MissingRequiredField, Section: "calculation",
			Key:     "investigation_time",
			Message: "required by calculation_mode " + mode})
	}

	// R5: anything that produces exports needs somewhere to put them.
	if producesOutput(values) && !values.Has("export_dir") {
		errs = append(errs, Error{
			Kind: MissingRequiredField, Section: "output", Key: "export_dir",
			Message: "required when outputs are enabled"})
	}

	// R6: a region is only usable once discretized.
	if values.Has("region") && !values.Has("region_grid_spacing") {
		errs = append(errs, Error{
			Kind: MissingRequiredField, Section: "geometry",
			Key:     "region_grid_spacing",
			Message: "required when a region is given"})
	}

	// R7: risk modes need their model inputs.
	if isRiskMode(mode) {
		if !values.Has("exposure_file") {
			errs = append(errs, Error{
				Kind: MissingRequiredField, Section: "risk", Key: "exposure_file",
				Message: "required by calculation_mode " + mode})
		}
		if isDamageMode(mode) {
			if !values.Has("fragility_file") {
				errs = append(errs, Error{
					Kind: MissingRequiredField, Section: "risk", Key: "fragility_file",
					Message: "required by calculation_mode " + mode})
			}
		} else if !hasAny(values, vulnerabilityKeys) {
			errs = append(errs, Error{
				Kind: CrossFieldViolation, Section: "risk",
				Message: "calculation_mode " + mode +
					" requires at least one vulnerability file"})
		}
	}

	// R8: maps and spectra are computed at explicit poes.
	if boolVal(values, "hazard_maps") || boolVal(values, "uniform_hazard_spectra") {
		if !values.Has("poes") {
			errs = append(errs, Error{
				Kind: MissingRequiredField, Section: "output", Key: "poes",
				Message: "required when hazard_maps or uniform_hazard_spectra is enabled"})
		}
	}

	// R9: curve-producing hazard modes need explicit intensity levels.
	if (mode == "classical" || mode == "disaggregation") &&
		!values.Has("intensity_measure_types_and_levels") {
		errs = append(errs, Error{
			Kind: MissingRequiredField, Section: "calculation",
			Key:     "intensity_measure_types_and_levels",
			Message: "required by calculation_mode " + mode})
	}

	return errs
}

// checkBounds applies the entry's Min/Max to a scalar or to each element
// of a float list.
func checkBounds(val Value) ErrorList {
	e := val.Entry
	if e.Min == nil && e.Max == nil {
		return nil
	}

	check := func(f float64) *Error {
		if e.Min != nil && (f < e.Min.Value || (e.Min.Exclusive && f == e.Min.Value)) {
			return &Error{Kind: OutOfRangeValue, Section: e.Section, Key: e.Key,
				Message: fmt.Sprintf("%v is below the minimum (%s)", f, boundText(e.Min, ">"))}
		}
		if e.Max != nil && (f > e.Max.Value || (e.Max.Exclusive && f == e.Max.Value)) {
			return &Error{Kind: OutOfRangeValue, Section: e.Section, Key: e.Key,
				Message: fmt.Sprintf("%v is above the maximum (%s)", f, boundText(e.Max, "<"))}
		}
		return nil
	}

	var errs ErrorList
	switch data := val.Data.(type) {
	case int:
		if err := check(float64(data)); err != nil {
			errs = append(errs, *err)
		}
	case float64:
		if err := check(data); err != nil {
			errs = append(errs, *err)
		}
	case []float64:
		for _, f := range data {
			if err := check(f); err != nil {
				errs = append(errs, *err)
				break
			}
		}
	}
	return errs
}

// boundText renders a bound for diagnostics, e.g. "> 0" or "<= 1".
func boundText(b *schema.Bound, op string) string {
	if !b.Exclusive {
		op += "="
	}
	return fmt.Sprintf("%s %v", op, b.Value)
}

// checkExports verifies the exports list against the accepted formats.
func checkExports(values *Values) ErrorList {
	formats, ok := stringsVal(values, "exports")
	if !ok {
		return nil
	}
	var errs ErrorList
	for _, format := range formats {
		found := false
		for _, valid := range validExports {
			if format == valid {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, Error{
				Kind: UnknownEnumValue, Section: "output", Key: "exports",
				Message: fmt.Sprintf("%q is not one of %s",
					format, strings.Join(validExports, ", "))})
		}
	}
	return errs
}

// checkIMTLevels verifies that every IMT in
// intensity_measure_types_and_levels maps to an increasing list of
// positive numbers.
func checkIMTLevels(values *Values) ErrorList {
	val, ok := values.Get("intensity_measure_types_and_levels")
	if !ok || val.Blank {
		return nil
	}
	dict, ok := val.Data.(map[string]interface{})
	if !ok {
		return nil
	}

	var errs ErrorList
	for imt, raw := range dict {
		levels, ok := raw.([]interface{})
		if !ok || len(levels) == 0 {
			errs = append(errs, Error{
				Kind: MalformedList, Section: "calculation",
				Key:     "intensity_measure_types_and_levels",
				Message: fmt.Sprintf("levels for %s must be a non-empty list", imt)})
			continue
		}
		prev := 0.0
		for _, level := range levels {
			f, ok := level.(float64)
			if !ok {
				errs = append(errs, Error{
					Kind: MalformedList, Section: "calculation",
					Key:     "intensity_measure_types_and_levels",
					Message: fmt.Sprintf("levels for %s must be numbers", imt)})
				break
			}
			if f <= prev {
				errs = append(errs, Error{
					Kind: MalformedList, Section: "calculation",
					Key:     "intensity_measure_types_and_levels",
					Message: fmt.Sprintf("levels for %s must be positive and increasing", imt)})
				break
			}
			prev = f
		}
	}
	return errs
}

// producesOutput reports whether any output-producing flag is enabled.
func producesOutput(values *Values) bool {
	if formats, ok := stringsVal(values, "exports"); ok && len(formats) > 0 {
		return true
	}
	for _, key := range []string{
		"mean_hazard_curves", "hazard_maps", "uniform_hazard_spectra",
		"ground_motion_fields", "hazard_curves_from_gmfs",
	} {
		if boolVal(values, key) {
			return true
		}
	}
	return false
}

// isScenarioMode reports whether the mode runs from a single rupture
// rather than a logic tree.
func isScenarioMode(mode string) bool {
	return strings.HasPrefix(mode, "scenario")
}

// isEventBasedMode reports whether the mode samples stochastic event sets.
func isEventBasedMode(mode string) bool {
	return mode == "event_based" || mode == "event_based_risk" || mode == "ebr"
}

// isRiskMode reports whether the mode consumes an exposure.
func isRiskMode(mode string) bool {
	return mode == "ebr" ||
		strings.HasSuffix(mode, "_risk") ||
		strings.HasSuffix(mode, "_damage") ||
		strings.HasSuffix(mode, "_bcr")
}

// isDamageMode reports whether the mode is fragility-based.
func isDamageMode(mode string) bool {
	return strings.HasSuffix(mode, "_damage")
}

// hasAny reports whether at least one of the keys resolved to a value.
func hasAny(values *Values, keys []string) bool {
	for _, key := range keys {
		if values.Has(key) {
			return true
		}
	}
	return false
}

// intVal returns an int parameter value.
func intVal(values *Values, key string) (int, bool) {
	val, ok := values.Get(key)
	if !ok || val.Blank {
		return 0, false
	}
	n, ok := val.Data.(int)
	return n, ok
}

// boolVal returns a bool parameter value, false when absent.
func boolVal(values *Values, key string) bool {
	val, ok := values.Get(key)
	if !ok || val.Blank {
		return false
	}
	b, _ := val.Data.(bool)
	return b
}

// stringsVal returns a string-list parameter value.
func stringsVal(values *Values, key string) ([]string, bool) {
	val, ok := values.Get(key)
	if !ok || val.Blank {
		return nil, false
	}
	list, ok := val.Data.([]string)
	return list, ok
}
