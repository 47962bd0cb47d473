// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package ini reads and writes the line-oriented job configuration format.
//
// The format is deliberately small. A line of the form "[section]" opens a
// section. A line of the form "key = value" sets a key within the current
// section, with whitespace around the "=" trimmed. Lines whose first
// non-blank character is "#" or ";" are comments. Blank lines are ignored.
// There is no nesting, no multi-line values and no escaping.
//
// Two details matter to callers:
//
//   - An empty value after "=" is valid and is preserved as an explicitly
//     blank setting, distinct from the key being absent.
//   - A later occurrence of the same (section, key) pair overrides an
//     earlier one. The key keeps its original position so that encoding a
//     parsed source is stable.
//
// Parse never stops at the first problem. It returns every malformed line
// as a ParseError alongside whatever it could read, so a caller can report
// the complete set of problems in one pass.
package ini
