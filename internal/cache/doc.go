// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache memoizes per-player assignment sets in a store.Store so the
// stats API is only hit on a miss.
package cache
