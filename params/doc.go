// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package params turns raw job configuration sections into a validated,
// immutable JobConfig.
//
// The pipeline is Coerce -> ApplyDefaults -> ValidateCrossFields -> Build.
// Each stage collects diagnostics instead of failing fast: a load either
// fully succeeds with a JobConfig or fully fails with the complete ordered
// ErrorList, so a user can fix every problem in one edit cycle. There is no
// partial or degraded JobConfig.
//
// Coercion is driven entirely by the schema table passed in by the caller.
// A value that is present but blank is handled per key: entries flagged
// BlankDisables resolve to nothing and suppress their default, string-like
// entries resolve to the empty string, and numeric entries report a
// TypeMismatch.
//
// A built JobConfig is internally consistent and never mutated; concurrent
// reads need no locking.
package params
