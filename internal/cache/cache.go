// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/apex/log"

	"github.com/skurvinen/assignmentinfo/internal/assignment"
	"github.com/skurvinen/assignmentinfo/internal/store"
)

// Key is the single store key holding every cached subject.
const Key = "assignments"

var (
	// ErrNoSubject is returned when Get is called without a subject.
	ErrNoSubject = errors.New("no subject specified")
	// ErrNoFetch is returned when Get misses and has no FetchFunc to call.
	ErrNoFetch = errors.New("no fetch function")
)

// FetchFunc retrieves the assignment set for subject from the source of
// truth. It blocks until the data is available.
type FetchFunc func(ctx context.Context, subject string) (assignment.Set, error)

// entries is the persisted document: subject -> assignment set.
type entries map[string]assignment.Set

// Cache is a subject-keyed fetch-or-load memoizer. Entries have no expiry;
// they are replaced by Put or dropped all at once by Clear.
type Cache struct {
	store store.Store
}

func New(s store.Store) *Cache {
	return &Cache{store: s}
}

// Get returns the cached set for subject. On a miss it calls fetch exactly
// once and stores the result before returning it. A failed fetch is logged
// and yields an empty set that is not stored.
func (c *Cache) Get(ctx context.Context, subject string, fetch FetchFunc) (assignment.Set, error) {
	if subject == "" {
		return nil, ErrNoSubject
	}

	all := c.load(ctx)
	if set, ok := all[subject]; ok {
		log.Debugf("found %s in storage", subject)
		return set, nil
	}

	log.Debugf("did not find %s in storage", subject)
	if fetch == nil {
		return nil, ErrNoFetch
	}
	set, err := fetch(ctx, subject)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.WithError(err).WithField("subject", subject).Warn("fetch failed")
		return assignment.Set{}, nil
	}
	if set == nil {
		set = assignment.Set{}
	}

	all[subject] = set
	if err := c.save(ctx, all); err != nil {
		log.WithError(err).WithField("subject", subject).Warn("failed to write assignments to storage")
	}
	return set, nil
}

// Put replaces the entry for subject.
func (c *Cache) Put(ctx context.Context, subject string, set assignment.Set) error {
	if subject == "" {
		return ErrNoSubject
	}
	if set == nil {
		set = assignment.Set{}
	}
	all := c.load(ctx)
	all[subject] = set
	return c.save(ctx, all)
}

// Peek returns the cached set for subject without fetching.
func (c *Cache) Peek(ctx context.Context, subject string) (assignment.Set, bool) {
	set, ok := c.load(ctx)[subject]
	return set, ok
}

// SubjectInfo summarizes one cached subject.
type SubjectInfo struct {
	Name        string `json:"name"`
	Assignments int    `json:"assignments"`
	Bytes       int    `json:"bytes"`
}

// Subjects lists the cached subjects sorted by name.
func (c *Cache) Subjects(ctx context.Context) []SubjectInfo {
	all := c.load(ctx)
	infos := make([]SubjectInfo, 0, len(all))
	for name, set := range all {
		b, err := json.Marshal(set)
		if err != nil {
			log.WithError(err).WithField("subject", name).Warn("failed to encode assignments")
		}
		infos = append(infos, SubjectInfo{
			Name:        name,
			Assignments: len(set),
			Bytes:       len(b),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Clear removes every cached subject.
func (c *Cache) Clear(ctx context.Context) error {
	if err := c.store.Delete(ctx, Key); err != nil {
		return fmt.Errorf("failed to clear assignment storage: %w", err)
	}
	log.Info("storage cleared")
	return nil
}

// load reads the persisted document. Unreadable or undecodable data is
// treated as an empty cache.
func (c *Cache) load(ctx context.Context) entries {
	data, ok, err := c.store.Get(ctx, Key)
	if err != nil {
		log.WithError(err).Warnf("failed to read %s from %s", Key, c.store)
		return entries{}
	}
	if !ok || len(data) == 0 {
		return entries{}
	}

	var all entries
	if err := json.Unmarshal(data, &all); err != nil {
		log.WithError(err).Warnf("discarding undecodable %s from %s", Key, c.store)
		return entries{}
	}
	if all == nil {
		all = entries{}
	}
	return all
}

func (c *Cache) save(ctx context.Context, all entries) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", Key, err)
	}
	return c.store.Set(ctx, Key, data)
}
