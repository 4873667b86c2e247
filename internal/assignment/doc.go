// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package assignment defines the assignment data model shared by the stats
// client, the cache and the output layer.
package assignment
