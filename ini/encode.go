// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ini

import (
	"fmt"
	"io"
)

// Encode writes the sections back out in the same line-oriented format that
// Parse accepts. An explicitly blank value is written as "key =" so that a
// round trip preserves the blank-vs-absent distinction.
func Encode(w io.Writer, s *Sections) error {
	for i, name := range s.names {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%s]\n", name); err != nil {
			return err
		}
		sec := s.secs[name]
		for _, key := range sec.keys {
			v := sec.vals[key]
			if v.Raw == "" {
				if _, err := fmt.Fprintf(w, "%s =\n", key); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s = %s\n", key, v.Raw); err != nil {
				return err
			}
		}
	}
	return nil
}
