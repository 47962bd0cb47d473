// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_Lookup(t *testing.T) {
	table := Job()

	tests := []struct {
		name    string
		section string
		key     string
		found   bool
	}{
		{name: "known pair", section: "general", key: "calculation_mode", found: true},
		{name: "output section", section: "output", key: "export_dir", found: true},
		{name: "outputs alias", section: "outputs", key: "export_dir", found: true},
		{name: "unknown key", section: "general", key: "no_such_key", found: false},
		{name: "known key wrong section", section: "general", key: "export_dir", found: false},
		{name: "lookup is case sensitive", section: "general", key: "Calculation_Mode", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := table.Lookup(tt.section, tt.key)
			if tt.found {
				require.NotNil(t, entry)
				assert.Equal(t, tt.key, entry.Key)
			} else {
				assert.Nil(t, entry)
			}
		})
	}
}

func TestJob_ByKey(t *testing.T) {
	table := Job()

	entry := table.ByKey("truncation_level")
	require.NotNil(t, entry)
	assert.Equal(t, "calculation", entry.Section)
	assert.Equal(t, Float, entry.Kind)
	require.NotNil(t, entry.Min, "truncation_level must have a lower bound")
	assert.Equal(t, 0.0, entry.Min.Value)
	assert.False(t, entry.Min.Exclusive, "truncation_level may be exactly 0")

	assert.Nil(t, table.ByKey("nope"))
}

func TestJob_Shape(t *testing.T) {
	table := Job()

	assert.Equal(t, []string{
		"general", "geometry", "site_params", "erf", "logic_tree",
		"calculation", "event_based_params", "risk", "output",
	}, table.Sections())

	// Every declared default must be non-ambiguous: HasDefault set.
	for _, entry := range table.Entries() {
		if entry.Default != "" {
			assert.True(t, entry.HasDefault,
				"%s has a default literal but no HasDefault", entry.Key)
		}
		if entry.Kind == Enum {
			assert.NotEmpty(t, entry.Choices, "%s is an enum with no choices", entry.Key)
		}
	}
}

func TestJob_KnownDefaults(t *testing.T) {
	table := Job()

	tests := []struct {
		key string
		def string
	}{
		{key: "random_seed", def: "42"},
		{key: "concurrent_tasks", def: "64"},
		{key: "number_of_logic_tree_samples", def: "0"},
		{key: "rupture_mesh_spacing", def: "5.0"},
		{key: "ses_per_logic_tree_path", def: "1"},
		{key: "asset_hazard_distance", def: "5.0"},
		{key: "loss_curve_resolution", def: "50"},
		{key: "individual_curves", def: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			entry := table.ByKey(tt.key)
			require.NotNil(t, entry)
			assert.True(t, entry.HasDefault)
			assert.Equal(t, tt.def, entry.Default)
		})
	}
}

func TestJob_Modes(t *testing.T) {
	entry := Job().ByKey("calculation_mode")
	require.NotNil(t, entry)
	assert.True(t, entry.Required)
	assert.Contains(t, entry.Choices, "ebr")
	assert.Contains(t, entry.Choices, "event_based")
	assert.Contains(t, entry.Choices, "classical")
	assert.Contains(t, entry.Choices, "scenario_damage")
}

func TestJob_BlankDisables(t *testing.T) {
	table := Job()
	assert.True(t, table.ByKey("ground_motion_correlation_model").BlankDisables)
	assert.True(t, table.ByKey("export_dir").BlankDisables)
	assert.True(t, table.ByKey("exports").BlankDisables)
	assert.False(t, table.ByKey("description").BlankDisables)
}

func TestNewTable_DuplicateKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewTable([]Entry{
			{Section: "a", Key: "dup", Kind: String},
			{Section: "b", Key: "dup", Kind: Int},
		}, nil)
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "integer", Int.String())
	assert.Equal(t, "coordinate list", Coords.String())
	assert.Equal(t, "dict", Dict.String())
}

func TestJob_IndependentCopies(t *testing.T) {
	a := Job()
	b := Job()

	// Restricting the mode choices on one table, the way an engine with a
	// reduced calculator set would, must not leak into the other.
	entry := a.ByKey("calculation_mode")
	entry.Choices = []string{"ebr"}

	assert.NotEqual(t, entry.Choices, b.ByKey("calculation_mode").Choices)
}
