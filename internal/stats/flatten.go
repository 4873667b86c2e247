// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package stats

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/skurvinen/assignmentinfo/internal/assignment"
)

// ErrMalformed is returned for a response body that is not JSON.
var ErrMalformed = errors.New("malformed stats response")

// Flatten unwraps stats.assignments, which is grouped as
// group -> assignment id -> record, into a single id-keyed set. When an id
// appears in more than one group the last record in document order wins.
// indexed is false when the response carries no stats object at all.
func Flatten(doc []byte) (set assignment.Set, indexed bool, err error) {
	if !gjson.ValidBytes(doc) {
		return nil, false, ErrMalformed
	}

	set = assignment.Set{}

	stats := gjson.GetBytes(doc, "stats")
	if !stats.Exists() || stats.Type == gjson.Null {
		return set, false, nil
	}

	stats.Get("assignments").ForEach(func(group, records gjson.Result) bool {
		records.ForEach(func(id, record gjson.Result) bool {
			if !record.IsObject() {
				return true
			}
			set[id.String()] = parseAssignment(group.String(), id.String(), record)
			return true
		})
		return true
	})

	return set, true, nil
}

func parseAssignment(group, id string, record gjson.Result) assignment.Assignment {
	a := assignment.Assignment{
		ID:          id,
		Name:        record.Get("name").String(),
		Description: record.Get("descr").String(),
		Image:       record.Get("img").String(),
		Group:       group,
	}

	record.Get("criteria").ForEach(func(_, c gjson.Result) bool {
		current := c.Get("curr")
		if !current.Exists() {
			current = c.Get("current")
		}
		a.Criteria = append(a.Criteria, assignment.Criterion{
			Description: c.Get("descr").String(),
			Current:     current.Float(),
			Needed:      c.Get("needed").Float(),
		})
		return true
	})

	return a
}
