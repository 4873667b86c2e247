// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Diff renders the difference between two JSON-encodable values in the
// ascii diff format. changed is false when the documents are equal.
func Diff(before, after any, color bool) (out string, changed bool, err error) {
	left, err := json.Marshal(before)
	if err != nil {
		return "", false, fmt.Errorf("failed to encode left side: %w", err)
	}
	right, err := json.Marshal(after)
	if err != nil {
		return "", false, fmt.Errorf("failed to encode right side: %w", err)
	}

	d, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return "", false, fmt.Errorf("failed to diff: %w", err)
	}
	if !d.Modified() {
		return "", false, nil
	}

	var leftDoc map[string]interface{}
	if err := json.Unmarshal(left, &leftDoc); err != nil {
		return "", false, fmt.Errorf("failed to decode left side: %w", err)
	}

	f := formatter.NewAsciiFormatter(leftDoc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	})
	out, err = f.Format(d)
	if err != nil {
		return "", false, fmt.Errorf("failed to format diff: %w", err)
	}
	return out, true, nil
}
