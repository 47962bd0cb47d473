// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ini

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/oqjob/oqjob/internal/log"
)

// Value is a raw setting as it appeared in the source.
type Value struct {
	// Raw is the value text with surrounding whitespace trimmed. It may be
	// empty, which callers must treat as "explicitly blank" rather than
	// absent.
	Raw string
	// Line is the 1-based source line the value was last set on.
	Line int
}

// ParseError describes a single malformed line.
type ParseError struct {
	Source  string
	Line    int
	Message string
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Message)
}

// Sections is the ordered result of a Parse call: section names in
// first-seen order, keys within each section in first-seen order, and the
// last-written value for each (section, key) pair.
type Sections struct {
	names []string
	secs  map[string]*section
}

type section struct {
	keys []string
	vals map[string]Value
}

// NewSections returns an empty Sections, ready for Set calls. It is used by
// callers that build a source programmatically instead of parsing text.
func NewSections() *Sections {
	return &Sections{secs: map[string]*section{}}
}

// Set records a value for (name, key), creating the section on first use.
// A repeated key keeps its original position and takes the new value,
// matching the last-write-wins rule of the text format.
func (s *Sections) Set(name, key string, v Value) {
	sec, ok := s.secs[name]
	if !ok {
		sec = &section{vals: map[string]Value{}}
		s.secs[name] = sec
		s.names = append(s.names, name)
	}
	if _, seen := sec.vals[key]; !seen {
		sec.keys = append(sec.keys, key)
	}
	sec.vals[key] = v
}

// Get returns the value for (name, key) and whether it was present.
func (s *Sections) Get(name, key string) (Value, bool) {
	sec, ok := s.secs[name]
	if !ok {
		return Value{}, false
	}
	v, ok := sec.vals[key]
	return v, ok
}

// Names returns the section names in first-seen order.
func (s *Sections) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Keys returns the keys of a section in first-seen order.
func (s *Sections) Keys(name string) []string {
	sec, ok := s.secs[name]
	if !ok {
		return nil
	}
	out := make([]string, len(sec.keys))
	copy(out, sec.keys)
	return out
}

// Each walks every (section, key, value) triple in source order.
func (s *Sections) Each(fn func(name, key string, v Value)) {
	for _, name := range s.names {
		sec := s.secs[name]
		for _, key := range sec.keys {
			fn(name, key, sec.vals[key])
		}
	}
}

// Len returns the total number of (section, key) pairs.
func (s *Sections) Len() int {
	n := 0
	for _, name := range s.names {
		n += len(s.secs[name].keys)
	}
	return n
}

// Parse reads the whole source and returns the grouped key/value pairs plus
// every malformed line. The source name is only used in error messages.
func Parse(r io.Reader, source string) (*Sections, []ParseError) {
	secs := NewSections()

	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var errs []ParseError

	current := ""
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Blank lines and comments carry no settings. The original engine's
		// reader accepted both "#" and ";" comment markers, so we do too.
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		// A section header?
		if line[0] == '[' {
			if !strings.HasSuffix(line, "]") || len(line) < 3 {
				errs = append(errs, ParseError{
					Source: source, Line: lineNum,
					Message: fmt.Sprintf("malformed section header %q", line)})
				continue
			}
			current = strings.TrimSpace(line[1 : len(line)-1])
			if current == "" {
				errs = append(errs, ParseError{
					Source: source, Line: lineNum,
					Message: "empty section name"})
			}
			continue
		}

		// Everything else must be a key = value line.
		eq := strings.Index(line, "=")
		if eq < 0 {
			errs = append(errs, ParseError{
				Source: source, Line: lineNum,
				Message: fmt.Sprintf("expected key = value, got %q", line)})
			continue
		}

		key := strings.TrimSpace(line[:eq])
		raw := strings.TrimSpace(line[eq+1:])

		if key == "" {
			errs = append(errs, ParseError{
				Source: source, Line: lineNum,
				Message: "missing key before ="})
			continue
		}

		// A key before any [section] has no home.
		if current == "" {
			errs = append(errs, ParseError{
				Source: source, Line: lineNum,
				Message: fmt.Sprintf("key %q appears outside any section", key)})
			continue
		}

		if prev, seen := secs.Get(current, key); seen {
			log.Debugf("override: [%s] %s line %d replaces line %d",
				current, key, lineNum, prev.Line)
		}
		secs.Set(current, key, Value{Raw: raw, Line: lineNum})
	}

	if err := scanner.Err(); err != nil {
		errs = append(errs, ParseError{
			Source: source, Line: lineNum,
			Message: fmt.Sprintf("read failed: %v", err)})
	}

	log.Debugf("parsed %s: %d sections, %d keys, %d errors",
		source, len(secs.names), secs.Len(), len(errs))

	return secs, errs
}
