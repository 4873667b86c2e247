// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skurvinen/assignmentinfo/internal/config"
)

func TestMangleArguments(t *testing.T) {
	path, err := filepath.Abs(filepath.Join("testdata", "sets.yaml"))
	require.NoError(t, err)
	t.Setenv("AINFO_CFG", path)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "defaults applied",
			args: []string{"ai", "aq", "NLG"},
			want: []string{"ai", "aq", "--titles", "NLG"},
		},
		{
			name: "named set replaces defaults",
			args: []string{"ai", "aq", "@done", "NLG", "-o", "json"},
			want: []string{"ai", "aq", "--filter", "completion=1", "--sort", "name", "NLG", "-o", "json"},
		},
		{
			name: "unknown set adds nothing",
			args: []string{"ai", "aq", "@nope", "NLG"},
			want: []string{"ai", "aq", "NLG"},
		},
		{
			name: "command without sets",
			args: []string{"ai", "pq"},
			want: []string{"ai", "pq"},
		},
		{
			name: "help short-circuits",
			args: []string{"ai", "aq", "@done", "-h"},
			want: []string{"ai", "aq", "--help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mangleArguments(tt.args))
		})
	}
}
