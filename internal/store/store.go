// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"strings"
)

// Namespace scopes every key written by this tool.
const Namespace = "assignmentinfo"

// Store is a small get/set key-value interface. Implementations scope keys to
// Namespace.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set replaces the value for key.
	Set(ctx context.Context, key string, data []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	String() string
}

// Kind names a Store backend.
type Kind string

const (
	KindFile   Kind = "file"
	KindMemory Kind = "memory"
	KindS3     Kind = "s3"
)

// Kinds lists the accepted backend names.
var Kinds = []Kind{KindFile, KindMemory, KindS3}

// ParseKind validates a backend name. An empty name selects KindFile.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return KindFile, nil
	}
	for _, v := range Kinds {
		if k == v {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown store %q, must be one of %v", s, Kinds)
}
