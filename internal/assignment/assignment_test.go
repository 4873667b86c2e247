// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCompletion(t *testing.T) {
	tests := []struct {
		name     string
		criteria []Criterion
		want     *float64
	}{
		{
			name:     "no criteria",
			criteria: nil,
			want:     nil,
		},
		{
			name:     "half and full",
			criteria: []Criterion{{Current: 1, Needed: 2}, {Current: 2, Needed: 2}},
			want:     ptr(0.75),
		},
		{
			name:     "rounded to two decimals",
			criteria: []Criterion{{Current: 1, Needed: 3}},
			want:     ptr(0.33),
		},
		{
			name:     "zero needed counts as complete",
			criteria: []Criterion{{Current: 0, Needed: 0}, {Current: 0, Needed: 4}},
			want:     ptr(0.5),
		},
		{
			name:     "overachieved clamps to one",
			criteria: []Criterion{{Current: 50, Needed: 10}},
			want:     ptr(1),
		},
		{
			name:     "negative progress clamps to zero",
			criteria: []Criterion{{Current: -5, Needed: 10}},
			want:     ptr(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assignment{Criteria: tt.criteria}.ComputeCompletion()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.75, Round(0.746, 2))
	assert.Equal(t, 0.67, Round(2.0/3.0, 2))
	assert.Equal(t, 1.0, Round(0.999, 2))
}

func TestSet_SliceOrdersByID(t *testing.T) {
	s := Set{
		"xpma02": {ID: "xpma02", Name: "Beta"},
		"xpma01": {ID: "xpma01", Name: "Alpha"},
		"ma10":   {ID: "ma10", Name: "Gamma"},
	}

	assert.Equal(t, []string{"ma10", "xpma01", "xpma02"}, s.IDs())

	got := s.Slice()
	require.Len(t, got, 3)
	assert.Equal(t, "Gamma", got[0].Name)
	assert.Equal(t, "Beta", got[2].Name)
}

func TestSet_WithCompletion(t *testing.T) {
	s := Set{
		"a": {ID: "a", Criteria: []Criterion{{Current: 1, Needed: 2}, {Current: 2, Needed: 2}}},
		"b": {ID: "b"},
	}

	got := s.WithCompletion()
	require.NotNil(t, got["a"].Completion)
	assert.Equal(t, 0.75, *got["a"].Completion)
	assert.Nil(t, got["b"].Completion)

	// The receiver is untouched.
	assert.Nil(t, s["a"].Completion)
}

func ptr(v float64) *float64 { return &v }
