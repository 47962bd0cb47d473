// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package params

import (
	"encoding/json"
	"strings"

	"github.com/oqjob/oqjob/ini"
	"github.com/oqjob/oqjob/schema"
)

// JobConfig is the fully resolved, validated parameter set for one
// calculation run. It is built once by a load-and-validate pass and never
// mutated afterwards, so instances may be shared freely across goroutines.
type JobConfig struct {
	source string
	table  *schema.Table
	vals   map[string]Value
	order  []string
}

// Build freezes a validated working set into a JobConfig. It must only be
// called once Coerce, ApplyDefaults and ValidateCrossFields produced zero
// errors; the loader enforces that.
func Build(source string, values *Values) *JobConfig {
	cfg := &JobConfig{
		source: source,
		table:  values.Table(),
		vals:   make(map[string]Value, len(values.m)),
		order:  make([]string, len(values.order)),
	}
	for key, val := range values.m {
		cfg.vals[key] = val
	}
	copy(cfg.order, values.order)
	return cfg
}

// Source returns the name of the configuration source the config was
// loaded from.
func (c *JobConfig) Source() string {
	return c.source
}

// Has reports whether the parameter resolved to a value. Explicitly
// disabled (blank) keys report false.
func (c *JobConfig) Has(key string) bool {
	val, ok := c.vals[key]
	return ok && !val.Blank
}

// Keys returns the resolved parameter names: source order first, then
// defaulted keys in schema order.
func (c *JobConfig) Keys() []string {
	out := make([]string, 0, len(c.order))
	for _, key := range c.order {
		if !c.vals[key].Blank {
			out = append(out, key)
		}
	}
	return out
}

// Mode returns the calculation_mode the config targets.
func (c *JobConfig) Mode() string {
	mode, _ := c.Str("calculation_mode")
	return mode
}

// Description returns the job description, possibly empty.
func (c *JobConfig) Description() string {
	desc, _ := c.Str("description")
	return desc
}

// RandomSeed returns the logic tree sampling seed.
func (c *JobConfig) RandomSeed() int {
	seed, _ := c.Int("random_seed")
	return seed
}

// Str returns a string-kind parameter (string, path or enum).
func (c *JobConfig) Str(key string) (string, bool) {
	val, ok := c.get(key)
	if !ok {
		return "", false
	}
	s, ok := val.Data.(string)
	return s, ok
}

// Int returns an integer parameter.
func (c *JobConfig) Int(key string) (int, bool) {
	val, ok := c.get(key)
	if !ok {
		return 0, false
	}
	n, ok := val.Data.(int)
	return n, ok
}

// Float returns a float parameter.
func (c *JobConfig) Float(key string) (float64, bool) {
	val, ok := c.get(key)
	if !ok {
		return 0, false
	}
	f, ok := val.Data.(float64)
	return f, ok
}

// Bool returns a boolean parameter.
func (c *JobConfig) Bool(key string) (bool, bool) {
	val, ok := c.get(key)
	if !ok {
		return false, false
	}
	b, ok := val.Data.(bool)
	return b, ok
}

// Floats returns a float-list parameter. The returned slice is a copy.
func (c *JobConfig) Floats(key string) ([]float64, bool) {
	val, ok := c.get(key)
	if !ok {
		return nil, false
	}
	list, ok := val.Data.([]float64)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(list))
	copy(out, list)
	return out, true
}

// Coords returns a coordinate-list parameter as lon/lat pairs. The
// returned slice is a copy.
func (c *JobConfig) Coords(key string) ([][2]float64, bool) {
	val, ok := c.get(key)
	if !ok {
		return nil, false
	}
	list, ok := val.Data.([][2]float64)
	if !ok {
		return nil, false
	}
	out := make([][2]float64, len(list))
	copy(out, list)
	return out, true
}

// Strings returns a string-list parameter. The returned slice is a copy.
func (c *JobConfig) Strings(key string) ([]string, bool) {
	val, ok := c.get(key)
	if !ok {
		return nil, false
	}
	list, ok := val.Data.([]string)
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, true
}

// Dict returns a dict parameter. The returned map is a shallow copy.
func (c *JobConfig) Dict(key string) (map[string]interface{}, bool) {
	val, ok := c.get(key)
	if !ok {
		return nil, false
	}
	dict, ok := val.Data.(map[string]interface{})
	if !ok {
		return nil, false
	}
	out := make(map[string]interface{}, len(dict))
	for k, v := range dict {
		out[k] = v
	}
	return out, true
}

// Defaulted reports whether the parameter's value came from the schema
// default rather than the source.
func (c *JobConfig) Defaulted(key string) bool {
	val, ok := c.vals[key]
	return ok && val.FromDefault
}

// InputFiles returns the referenced model files keyed by input type, the
// way the engine consumes them: every *_file and *_csv parameter with its
// suffix stripped, e.g. source_model_logic_tree_file -> the path under
// "source_model_logic_tree". Paths are recorded verbatim; nothing is
// opened.
func (c *JobConfig) InputFiles() map[string]string {
	inputs := map[string]string{}
	for key, val := range c.vals {
		if val.Blank {
			continue
		}
		if !strings.HasSuffix(key, "_file") && !strings.HasSuffix(key, "_csv") {
			continue
		}
		path, ok := val.Data.(string)
		if !ok || path == "" {
			continue
		}
		inputType := key[:strings.LastIndex(key, "_")]
		inputs[inputType] = path
	}
	return inputs
}

// Sections rebuilds the section/key/value form of the resolved config, in
// schema declaration order, with defaulted values written out and
// explicitly disabled keys written blank. Encoding it with ini.Encode and
// reloading yields an equal JobConfig.
func (c *JobConfig) Sections() *ini.Sections {
	secs := ini.NewSections()
	for _, entry := range c.table.Entries() {
		val, ok := c.vals[entry.Key]
		if !ok {
			continue
		}
		if val.Blank {
			secs.Set(entry.Section, entry.Key, ini.Value{Raw: ""})
			continue
		}
		secs.Set(entry.Section, entry.Key, ini.Value{Raw: val.Raw})
	}
	return secs
}

// BySection groups the resolved typed values by schema section, in a
// fresh map suitable for marshaling. Explicitly disabled keys are omitted.
func (c *JobConfig) BySection() map[string]map[string]interface{} {
	out := map[string]map[string]interface{}{}
	for _, entry := range c.table.Entries() {
		val, ok := c.vals[entry.Key]
		if !ok || val.Blank {
			continue
		}
		sec := out[entry.Section]
		if sec == nil {
			sec = map[string]interface{}{}
			out[entry.Section] = sec
		}
		sec[entry.Key] = val.Data
	}
	return out
}

// JSON returns the canonical flat JSON form of the resolved parameters,
// used by the diff package. Keys are the bare parameter names; explicitly
// disabled keys are omitted.
func (c *JobConfig) JSON() []byte {
	flat := make(map[string]interface{}, len(c.vals))
	for key, val := range c.vals {
		if val.Blank {
			continue
		}
		flat[key] = val.Data
	}
	out, err := json.Marshal(flat)
	if err != nil {
		// Every Data shape is JSON-marshalable by construction.
		panic("params: marshal resolved config: " + err.Error())
	}
	return out
}

func (c *JobConfig) get(key string) (Value, bool) {
	val, ok := c.vals[key]
	if !ok || val.Blank {
		return Value{}, false
	}
	return val, true
}
