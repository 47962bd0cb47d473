// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/oqjob/oqjob/internal/log"
	"github.com/oqjob/oqjob/params"
)

// Configs compares two resolved job configurations and returns the
// rendered delta. The boolean reports whether anything differed; when it
// is false the string is empty.
func Configs(a, b *params.JobConfig) (string, bool, error) {
	log.Debugf(">> diff %s %s", a.Source(), b.Source())

	left := a.JSON()
	right := b.JSON()

	differ := gojsondiff.New()
	delta, err := differ.Compare(left, right)
	if err != nil {
		return "", false, fmt.Errorf("failed to compare configurations: %w", err)
	}

	if !delta.Modified() {
		return "", false, nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(left, &jdoc); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       false,
	}

	formatter := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := formatter.Format(delta)
	if err != nil {
		return "", false, err
	}

	return diffString, true, nil
}
