// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package assignment

import (
	"math"
	"sort"
)

// Criterion is one completion requirement of an assignment.
type Criterion struct {
	Description string  `json:"descr,omitempty"`
	Current     float64 `json:"curr"`
	Needed      float64 `json:"needed"`
}

// Ratio is the criterion's progress in [0,1]. A criterion that needs nothing
// is complete.
func (c Criterion) Ratio() float64 {
	if c.Needed <= 0 {
		return 1
	}
	r := c.Current / c.Needed
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

// Assignment is a single trackable award. ID doubles as the element id the
// portal renders the assignment under.
type Assignment struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"descr,omitempty"`
	Image       string      `json:"img,omitempty"`
	Group       string      `json:"group,omitempty"`
	Completion  *float64    `json:"completion,omitempty"`
	Criteria    []Criterion `json:"criteria,omitempty"`
}

// ComputeCompletion returns round(mean(criterion ratios), 2), or nil when the
// assignment has no criteria.
func (a Assignment) ComputeCompletion() *float64 {
	if len(a.Criteria) == 0 {
		return nil
	}
	var sum float64
	for _, c := range a.Criteria {
		sum += c.Ratio()
	}
	v := Round(sum/float64(len(a.Criteria)), 2)
	return &v
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Set maps assignment id to Assignment for one subject.
type Set map[string]Assignment

// IDs returns the set's assignment ids in sorted order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Slice returns the assignments ordered by id.
func (s Set) Slice() []Assignment {
	out := make([]Assignment, 0, len(s))
	for _, id := range s.IDs() {
		out = append(out, s[id])
	}
	return out
}

// WithCompletion returns a copy of s in which every assignment carries its
// computed completion ratio.
func (s Set) WithCompletion() Set {
	out := make(Set, len(s))
	for id, a := range s {
		a.Completion = a.ComputeCompletion()
		out[id] = a
	}
	return out
}
