// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report renders load results for humans.
//
// WriteErrors prints the complete diagnostic set of a failed load, one
// line per problem, with the error kind and the offending parameter
// highlighted when the terminal supports color. WriteParams dumps the
// resolved parameters of a successful load as YAML grouped by section,
// which is handy for eyeballing what the defaults actually resolved to.
//
// Neither function is required to use a JobConfig; they exist for tools
// and tests that want consistent, readable output.
package report
