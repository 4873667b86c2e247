// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package stats is a client for the bf3stats player API. It only asks for
// assignment data and flattens the grouped response into an assignment.Set.
package stats
