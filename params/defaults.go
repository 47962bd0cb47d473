// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package params

import (
	"github.com/oqjob/oqjob/internal/log"
)

// ApplyDefaults fills every declared-but-absent key with its schema
// default. Keys without a default remain absent; keys a user explicitly
// blanked keep their disabled state and do not fall back to the default.
//
// One cross-field default exists in the job schema: when
// complex_fault_mesh_spacing is absent it resolves to whatever
// rupture_mesh_spacing resolved to, matching the engine's behavior.
func ApplyDefaults(values *Values) {
	table := values.Table()
	for _, entry := range table.Entries() {
		if !entry.HasDefault {
			continue
		}
		if _, present := values.Get(entry.Key); present {
			continue
		}
		e := table.ByKey(entry.Key)
		data, err := coerceOne(e, entry.Default)
		if err != nil {
			// Schema defaults are compile-time literals; a bad one is a bug
			// in the table, not in the user's input.
			panic("schema: bad default for " + entry.Key + ": " + err.Message)
		}
		values.set(entry.Key, Value{
			Entry: e, Raw: entry.Default, Data: data, FromDefault: true})
	}

	if !values.Has("complex_fault_mesh_spacing") && values.Has("rupture_mesh_spacing") {
		rms, _ := values.Get("rupture_mesh_spacing")
		log.Debugf("complex_fault_mesh_spacing defaulted to rupture_mesh_spacing (%s)", rms.Raw)
		values.set("complex_fault_mesh_spacing", Value{
			Entry:       table.ByKey("complex_fault_mesh_spacing"),
			Raw:         rms.Raw,
			Data:        rms.Data,
			FromDefault: true,
		})
	}
}
