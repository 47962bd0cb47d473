// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oqjob/oqjob/ini"
	"github.com/oqjob/oqjob/schema"
)

// sections builds an ini.Sections from (section, key, raw) triples.
func sections(t *testing.T, triples ...[3]string) *ini.Sections {
	t.Helper()
	secs := ini.NewSections()
	for i, triple := range triples {
		secs.Set(triple[0], triple[1], ini.Value{Raw: triple[2], Line: i + 1})
	}
	return secs
}

func TestCoerce_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		key      string
		raw      string
		want     interface{}
		wantKind ErrorKind
		wantErr  bool
	}{
		{name: "string", section: "general", key: "description", raw: "Event based risk", want: "Event based risk"},
		{name: "int", section: "general", key: "random_seed", raw: "323", want: 323},
		{name: "negative int", section: "general", key: "master_seed", raw: "-1", want: -1},
		{name: "int garbage", section: "general", key: "random_seed", raw: "abc", wantErr: true, wantKind: TypeMismatch},
		{name: "int with decimal point", section: "general", key: "random_seed", raw: "3.5", wantErr: true, wantKind: TypeMismatch},
		{name: "float", section: "calculation", key: "investigation_time", raw: "10", want: 10.0},
		{name: "float garbage", section: "site_params", key: "reference_vs30_value", raw: "abc", wantErr: true, wantKind: TypeMismatch},
		{name: "bool true", section: "risk", key: "insured_losses", raw: "true", want: true},
		{name: "bool mixed case", section: "risk", key: "insured_losses", raw: "True", want: true},
		{name: "bool alias yes", section: "risk", key: "insured_losses", raw: "yes", want: true},
		{name: "bool alias off", section: "risk", key: "insured_losses", raw: "off", want: false},
		{name: "bool alias 1", section: "risk", key: "avg_losses", raw: "1", want: true},
		{name: "bool garbage", section: "risk", key: "insured_losses", raw: "maybe", wantErr: true, wantKind: TypeMismatch},
		{name: "enum", section: "general", key: "calculation_mode", raw: "ebr", want: "ebr"},
		{name: "enum unknown", section: "general", key: "calculation_mode", raw: "quantum", wantErr: true, wantKind: UnknownEnumValue},
		{name: "enum is case sensitive", section: "site_params", key: "reference_vs30_type", raw: "Measured", wantErr: true, wantKind: UnknownEnumValue},
		{name: "path", section: "risk", key: "exposure_file", raw: "exposure_model.xml", want: "exposure_model.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, errs := Coerce(
				sections(t, [3]string{tt.section, tt.key, tt.raw}),
				schema.Job())

			if tt.wantErr {
				require.Len(t, errs, 1)
				assert.Equal(t, tt.wantKind, errs[0].Kind)
				assert.Equal(t, tt.key, errs[0].Key)
				assert.False(t, values.Has(tt.key),
					"a failed key must be absent, not zero-valued")
				return
			}

			require.Empty(t, errs)
			val, ok := values.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, val.Data)
		})
	}
}

func TestCoerce_Lists(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		key      string
		raw      string
		want     interface{}
		wantKind ErrorKind
		wantErr  bool
	}{
		{name: "floats comma separated", section: "output", key: "poes",
			raw: "0.02, 0.1", want: []float64{0.02, 0.1}},
		{name: "floats space separated", section: "output", key: "poes",
			raw: "0.02 0.1", want: []float64{0.02, 0.1}},
		{name: "floats bad element", section: "output", key: "poes",
			raw: "0.02, x", wantErr: true, wantKind: TypeMismatch},
		{name: "string list", section: "output", key: "exports",
			raw: "csv, xml", want: []string{"csv", "xml"}},
		{name: "coords pairs", section: "geometry", key: "region",
			raw:  "78.0 31.5, 89.5 31.5, 89.5 25.5",
			want: [][2]float64{{78.0, 31.5}, {89.5, 31.5}, {89.5, 25.5}}},
		{name: "coords odd parity", section: "geometry", key: "region",
			raw: "78.0 31.5,89.5", wantErr: true, wantKind: MalformedList},
		{name: "coords bad longitude", section: "geometry", key: "region",
			raw: "x 31.5", wantErr: true, wantKind: TypeMismatch},
		{name: "coords longitude out of range", section: "geometry", key: "region",
			raw: "181.0 31.5", wantErr: true, wantKind: OutOfRangeValue},
		{name: "coords latitude out of range", section: "geometry", key: "sites",
			raw: "78.0 91.0", wantErr: true, wantKind: OutOfRangeValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, errs := Coerce(
				sections(t, [3]string{tt.section, tt.key, tt.raw}),
				schema.Job())

			if tt.wantErr {
				require.Len(t, errs, 1)
				assert.Equal(t, tt.wantKind, errs[0].Kind)
				return
			}

			require.Empty(t, errs)
			val, ok := values.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, val.Data)
		})
	}
}

func TestCoerce_Dict(t *testing.T) {
	values, errs := Coerce(sections(t,
		[3]string{"calculation", "intensity_measure_types_and_levels",
			`{"PGA": [0.005, 0.007, 0.01]}`}),
		schema.Job())
	require.Empty(t, errs)

	val, ok := values.Get("intensity_measure_types_and_levels")
	require.True(t, ok)
	dict, ok := val.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, dict, "PGA")
}

func TestCoerce_DictRejectsNonObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "array", raw: `[1, 2]`},
		{name: "scalar", raw: `17`},
		{name: "not JSON at all", raw: `{PGA: oops`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := Coerce(sections(t,
				[3]string{"event_based_params", "ground_motion_correlation_params", tt.raw}),
				schema.Job())
			require.Len(t, errs, 1)
			assert.Equal(t, TypeMismatch, errs[0].Kind)
		})
	}
}

func TestCoerce_BlankValues(t *testing.T) {
	t.Run("blank disables suppresses the key", func(t *testing.T) {
		values, errs := Coerce(sections(t,
			[3]string{"event_based_params", "ground_motion_correlation_model", ""}),
			schema.Job())
		require.Empty(t, errs)

		val, present := values.Get("ground_motion_correlation_model")
		assert.True(t, present, "explicitly blank is present")
		assert.True(t, val.Blank)
		assert.False(t, values.Has("ground_motion_correlation_model"),
			"explicitly blank does not resolve to a value")
	})

	t.Run("blank string is the empty string", func(t *testing.T) {
		values, errs := Coerce(sections(t,
			[3]string{"general", "description", ""}),
			schema.Job())
		require.Empty(t, errs)
		val, ok := values.Get("description")
		require.True(t, ok)
		assert.Equal(t, "", val.Data)
	})

	t.Run("blank number is a TypeMismatch", func(t *testing.T) {
		_, errs := Coerce(sections(t,
			[3]string{"calculation", "truncation_level", ""}),
			schema.Job())
		require.Len(t, errs, 1)
		assert.Equal(t, TypeMismatch, errs[0].Kind)
		assert.Equal(t, "truncation_level", errs[0].Key)
	})
}

func TestCoerce_UnknownParameter(t *testing.T) {
	_, errs := Coerce(sections(t,
		[3]string{"general", "calculation_mod", "ebr"}),
		schema.Job())
	require.Len(t, errs, 1)
	assert.Equal(t, ParseError, errs[0].Kind)
	assert.Equal(t, "calculation_mod", errs[0].Key)
}

func TestCoerce_KeyInWrongSection(t *testing.T) {
	// export_dir exists, but under [output]; declaring it in [general] is
	// not accepted.
	_, errs := Coerce(sections(t,
		[3]string{"general", "export_dir", "/tmp/out"}),
		schema.Job())
	require.Len(t, errs, 1)
	assert.Equal(t, ParseError, errs[0].Kind)
}

func TestCoerce_OutputsAlias(t *testing.T) {
	values, errs := Coerce(sections(t,
		[3]string{"outputs", "export_dir", "/tmp/out"}),
		schema.Job())
	require.Empty(t, errs)
	assert.True(t, values.Has("export_dir"))
}

func TestCoerce_CollectsAllErrors(t *testing.T) {
	_, errs := Coerce(sections(t,
		[3]string{"general", "random_seed", "abc"},
		[3]string{"general", "calculation_mode", "quantum"},
		[3]string{"geometry", "region", "78.0 31.5,89.5"}),
		schema.Job())

	require.Len(t, errs, 3)
	assert.Equal(t, TypeMismatch, errs[0].Kind)
	assert.Equal(t, UnknownEnumValue, errs[1].Kind)
	assert.Equal(t, MalformedList, errs[2].Kind)
}

func TestApplyDefaults(t *testing.T) {
	values, errs := Coerce(sections(t,
		[3]string{"general", "calculation_mode", "ebr"}),
		schema.Job())
	require.Empty(t, errs)

	ApplyDefaults(values)

	tests := []struct {
		key  string
		want interface{}
	}{
		{key: "random_seed", want: 42},
		{key: "concurrent_tasks", want: 64},
		{key: "number_of_logic_tree_samples", want: 0},
		{key: "rupture_mesh_spacing", want: 5.0},
		{key: "ses_per_logic_tree_path", want: 1},
		{key: "insured_losses", want: false},
		{key: "individual_curves", want: true},
		{key: "asset_hazard_distance", want: 5.0},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			val, ok := values.Get(tt.key)
			require.True(t, ok, "default for %s not applied", tt.key)
			assert.Equal(t, tt.want, val.Data)
			assert.True(t, val.FromDefault)
		})
	}

	// No default declared, stays absent.
	assert.False(t, values.Has("investigation_time"))
	assert.False(t, values.Has("export_dir"))
}

func TestApplyDefaults_ExplicitValueWins(t *testing.T) {
	values, errs := Coerce(sections(t,
		[3]string{"general", "random_seed", "323"}),
		schema.Job())
	require.Empty(t, errs)

	ApplyDefaults(values)

	val, _ := values.Get("random_seed")
	assert.Equal(t, 323, val.Data)
	assert.False(t, val.FromDefault)
}

func TestApplyDefaults_BlankSuppressesDefault(t *testing.T) {
	// exports has BlankDisables; an explicit blank must not be replaced by
	// anything.
	values, errs := Coerce(sections(t,
		[3]string{"output", "exports", ""}),
		schema.Job())
	require.Empty(t, errs)

	ApplyDefaults(values)

	val, present := values.Get("exports")
	require.True(t, present)
	assert.True(t, val.Blank)
	assert.False(t, values.Has("exports"))
}

func TestApplyDefaults_ComplexFaultMeshSpacing(t *testing.T) {
	t.Run("falls back to rupture_mesh_spacing", func(t *testing.T) {
		values, errs := Coerce(sections(t,
			[3]string{"erf", "rupture_mesh_spacing", "2.5"}),
			schema.Job())
		require.Empty(t, errs)

		ApplyDefaults(values)

		val, ok := values.Get("complex_fault_mesh_spacing")
		require.True(t, ok)
		assert.Equal(t, 2.5, val.Data)
		assert.True(t, val.FromDefault)
	})

	t.Run("explicit value wins", func(t *testing.T) {
		values, errs := Coerce(sections(t,
			[3]string{"erf", "rupture_mesh_spacing", "2.5"},
			[3]string{"erf", "complex_fault_mesh_spacing", "10"}),
			schema.Job())
		require.Empty(t, errs)

		ApplyDefaults(values)

		val, _ := values.Get("complex_fault_mesh_spacing")
		assert.Equal(t, 10.0, val.Data)
		assert.False(t, val.FromDefault)
	})
}
