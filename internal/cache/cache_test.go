// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skurvinen/assignmentinfo/internal/assignment"
	"github.com/skurvinen/assignmentinfo/internal/store"
)

// countingFetch returns a FetchFunc that serves set and counts its calls.
func countingFetch(set assignment.Set, err error) (FetchFunc, *int) {
	calls := 0
	return func(_ context.Context, _ string) (assignment.Set, error) {
		calls++
		return set, err
	}, &calls
}

func sampleSet() assignment.Set {
	c := 0.75
	return assignment.Set{
		"xpma01": {
			ID:         "xpma01",
			Name:       "Tango Down",
			Completion: &c,
			Criteria:   []assignment.Criterion{{Current: 1, Needed: 2}, {Current: 2, Needed: 2}},
		},
	}
}

func TestGet_MissFetchesOnceAndStores(t *testing.T) {
	ctx := context.Background()
	c := New(store.NewMemory())
	fetch, calls := countingFetch(sampleSet(), nil)

	got, err := c.Get(ctx, "NLG", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, sampleSet(), got)

	cached, ok := c.Peek(ctx, "NLG")
	assert.True(t, ok)
	assert.Equal(t, sampleSet(), cached)
}

func TestGet_HitNeverFetches(t *testing.T) {
	ctx := context.Background()
	c := New(store.NewMemory())
	require.NoError(t, c.Put(ctx, "NLG", sampleSet()))

	fetch, calls := countingFetch(assignment.Set{"other": {ID: "other"}}, nil)
	for i := 0; i < 3; i++ {
		got, err := c.Get(ctx, "NLG", fetch)
		require.NoError(t, err)
		assert.Equal(t, sampleSet(), got)
	}
	assert.Equal(t, 0, *calls)
}

func TestGet_SubjectsAreIndependent(t *testing.T) {
	ctx := context.Background()
	c := New(store.NewMemory())
	fetch, calls := countingFetch(sampleSet(), nil)

	_, _ = c.Get(ctx, "alpha", fetch)
	_, _ = c.Get(ctx, "bravo", fetch)
	_, _ = c.Get(ctx, "alpha", fetch)

	assert.Equal(t, 2, *calls)
	names := []string{}
	for _, s := range c.Subjects(ctx) {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"alpha", "bravo"}, names)
}

func TestClear_ForcesRefetch(t *testing.T) {
	ctx := context.Background()
	c := New(store.NewMemory())
	fetch, calls := countingFetch(sampleSet(), nil)

	_, _ = c.Get(ctx, "NLG", fetch)
	require.NoError(t, c.Clear(ctx))
	assert.Empty(t, c.Subjects(ctx))

	_, _ = c.Get(ctx, "NLG", fetch)
	assert.Equal(t, 2, *calls)

	// Clearing an empty cache is fine too.
	require.NoError(t, c.Clear(ctx))
	require.NoError(t, c.Clear(ctx))
	_, _ = c.Get(ctx, "NLG", fetch)
	assert.Equal(t, 3, *calls)
}

func TestGet_FetchErrorFailsClosed(t *testing.T) {
	ctx := context.Background()
	c := New(store.NewMemory())
	fetch, calls := countingFetch(nil, errors.New("connection refused"))

	got, err := c.Get(ctx, "NLG", fetch)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, ok := c.Peek(ctx, "NLG")
	assert.False(t, ok, "failed fetches are not cached")

	_, _ = c.Get(ctx, "NLG", fetch)
	assert.Equal(t, 2, *calls)
}

func TestGet_EmptyResultIsCached(t *testing.T) {
	ctx := context.Background()
	c := New(store.NewMemory())
	fetch, calls := countingFetch(nil, nil)

	got, err := c.Get(ctx, "unindexed", fetch)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, _ = c.Get(ctx, "unindexed", fetch)
	assert.Equal(t, 1, *calls)
}

func TestGet_NoSubject(t *testing.T) {
	c := New(store.NewMemory())
	fetch, calls := countingFetch(sampleSet(), nil)

	_, err := c.Get(context.Background(), "", fetch)
	assert.ErrorIs(t, err, ErrNoSubject)
	assert.Equal(t, 0, *calls)
}

func TestGet_NilFetch(t *testing.T) {
	c := New(store.NewMemory())

	_, err := c.Get(context.Background(), "NLG", nil)
	assert.ErrorIs(t, err, ErrNoFetch)

	require.NoError(t, c.Put(context.Background(), "NLG", sampleSet()))
	set, err := c.Get(context.Background(), "NLG", nil)
	require.NoError(t, err)
	assert.Equal(t, sampleSet(), set)
}

func TestGet_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New(store.NewMemory())
	fetch, _ := countingFetch(nil, context.Canceled)

	_, err := c.Get(ctx, "NLG", fetch)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGet_CorruptStorageIsAMiss(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	require.NoError(t, s.Set(ctx, Key, []byte("{not json")))
	c := New(s)
	fetch, calls := countingFetch(sampleSet(), nil)

	got, err := c.Get(ctx, "NLG", fetch)
	require.NoError(t, err)
	assert.Equal(t, sampleSet(), got)
	assert.Equal(t, 1, *calls)

	// The rewrite replaced the corrupt document.
	_, ok := c.Peek(ctx, "NLG")
	assert.True(t, ok)
}

// failingStore reads fine but refuses writes.
type failingStore struct {
	*store.Memory
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("read-only")
}

func TestGet_WriteFailureStillReturnsData(t *testing.T) {
	c := New(failingStore{store.NewMemory()})
	fetch, _ := countingFetch(sampleSet(), nil)

	got, err := c.Get(context.Background(), "NLG", fetch)
	require.NoError(t, err)
	assert.Equal(t, sampleSet(), got)

	assert.Error(t, c.Put(context.Background(), "NLG", sampleSet()))
}

func TestPut_ReplacesEntry(t *testing.T) {
	ctx := context.Background()
	c := New(store.NewMemory())
	require.NoError(t, c.Put(ctx, "NLG", sampleSet()))
	require.NoError(t, c.Put(ctx, "NLG", assignment.Set{"b": {ID: "b", Name: "B"}}))

	got, ok := c.Peek(ctx, "NLG")
	require.True(t, ok)
	assert.Len(t, got, 1)
	assert.Equal(t, "B", got["b"].Name)

	assert.ErrorIs(t, c.Put(ctx, "", nil), ErrNoSubject)
}

func TestSubjects_Summary(t *testing.T) {
	ctx := context.Background()
	c := New(store.NewMemory())
	require.NoError(t, c.Put(ctx, "NLG", sampleSet()))

	infos := c.Subjects(ctx)
	require.Len(t, infos, 1)
	assert.Equal(t, "NLG", infos[0].Name)
	assert.Equal(t, 1, infos[0].Assignments)
	assert.Greater(t, infos[0].Bytes, 0)
}
