// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"gopkg.in/yaml.v2"

	"github.com/oqjob/oqjob/params"
)

var (
	kindColor = color.New(color.FgRed, color.Bold)
	keyColor  = color.New(color.FgYellow)
)

// WriteErrors renders the complete diagnostic set of one failed load
// attempt, one line per problem, in the order the loader collected them.
func WriteErrors(w io.Writer, source string, errs params.ErrorList) {
	fmt.Fprintf(w, "%s: %s\n", source,
		english.Plural(len(errs), "problem", ""))

	for _, e := range errs {
		where := ""
		switch {
		case e.Section != "" && e.Key != "":
			where = keyColor.Sprintf("[%s] %s", e.Section, e.Key) + ": "
		case e.Key != "":
			where = keyColor.Sprint(e.Key) + ": "
		case e.Section != "":
			where = keyColor.Sprintf("[%s]", e.Section) + ": "
		}
		fmt.Fprintf(w, "  %s %s%s\n", kindColor.Sprint(e.Kind.String()),
			where, e.Message)
	}
}

// WriteParams dumps the resolved parameters of a JobConfig as YAML
// grouped by section, with a one-line summary header.
func WriteParams(w io.Writer, cfg *params.JobConfig) error {
	fmt.Fprintf(w, "# %s: %s resolved\n", cfg.Source(),
		english.Plural(len(cfg.Keys()), "parameter", ""))

	out, err := yaml.Marshal(cfg.BySection())
	if err != nil {
		return fmt.Errorf("failed to marshal parameters: %w", err)
	}
	_, err = w.Write(out)
	return err
}
