// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package params

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a single validation diagnostic.
type ErrorKind int

const (
	// ParseError covers malformed lines and unknown parameters.
	ParseError ErrorKind = iota
	// TypeMismatch means a value could not be coerced to its declared type.
	TypeMismatch
	// MalformedList means a list value had the wrong cardinality or parity.
	MalformedList
	// UnknownEnumValue means a value was outside the accepted set.
	UnknownEnumValue
	// MissingRequiredField means a required-when predicate was unsatisfied.
	MissingRequiredField
	// CrossFieldViolation means a consistency rule between keys failed.
	CrossFieldViolation
	// OutOfRangeValue means a numeric bound was violated.
	OutOfRangeValue
)

// String returns the canonical name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case TypeMismatch:
		return "TypeMismatch"
	case MalformedList:
		return "MalformedList"
	case UnknownEnumValue:
		return "UnknownEnumValue"
	case MissingRequiredField:
		return "MissingRequiredField"
	case CrossFieldViolation:
		return "CrossFieldViolation"
	case OutOfRangeValue:
		return "OutOfRangeValue"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is one validation diagnostic. Section and Key may be empty for
// problems that are not tied to a single parameter (e.g. a malformed line).
type Error struct {
	Kind    ErrorKind
	Section string
	Key     string
	Message string
}

// Error implements the error interface.
func (e Error) Error() string {
	switch {
	case e.Section != "" && e.Key != "":
		return fmt.Sprintf("%s: [%s] %s: %s", e.Kind, e.Section, e.Key, e.Message)
	case e.Key != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Key, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// ErrorList is the complete, ordered diagnostic set of one load attempt.
// It implements error so the loader can return it directly.
type ErrorList []Error

// Error implements the error interface.
func (l ErrorList) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("invalid job configuration (%d problems): %s",
		len(l), strings.Join(msgs, "; "))
}

// ByKey returns the diagnostics attached to a key.
func (l ErrorList) ByKey(key string) ErrorList {
	var out ErrorList
	for _, e := range l {
		if e.Key == key {
			out = append(out, e)
		}
	}
	return out
}

// Has reports whether any diagnostic of the given kind is present.
func (l ErrorList) Has(kind ErrorKind) bool {
	for _, e := range l {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
