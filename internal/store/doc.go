// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package store provides the key-value storage the assignment cache persists
// into. Backends are the local file cache, process memory and S3.
package store
