// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagValidators(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		validator FlagValidatorType
		wantErr   bool
	}{
		{"output text", "text", OutputValidator, false},
		{"output yaml", "yaml", OutputValidator, false},
		{"output bogus", "csv", OutputValidator, true},
		{"store file", "file", StoreValidator, false},
		{"store s3 upper", "S3", StoreValidator, false},
		{"store bogus", "redis", StoreValidator, true},
		{"player", "NLG", JammedFlagValidator, false},
		{"jammed flag", "--refresh", JammedFlagValidator, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FlagValidators(tt.value, tt.validator)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
