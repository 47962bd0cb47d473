// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package schema declares which sections and keys a job configuration may
// contain, what type each value has, its default, its numeric bounds and
// whether an explicitly blank value disables it.
//
// The schema is an explicit table, built by Job() and passed into the
// loader by the caller. Nothing in this module consults an ambient or
// global default table; if two loads should disagree about a default, they
// can be given two different tables.
//
// Unit annotations (kilometers, years, m/s) are carried as documentation
// only. They are surfaced by the docs generator and never enforced beyond
// the declared numeric bounds.
package schema
