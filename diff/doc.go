// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diff compares two resolved job configurations.
//
// The comparison works on the canonical flat JSON form of each JobConfig,
// so it sees through formatting differences in the sources: a value set
// explicitly to its schema default compares equal to the default, and key
// order never matters. The rendered delta uses the familiar +/- ASCII
// format.
//
// Typical use is checking what actually changed between two revisions of
// a job file before re-running an expensive calculation.
package diff
