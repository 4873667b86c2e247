// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package aws contains helpers for loading AWS SDK v2 configuration and
// constructing service clients.
package aws
