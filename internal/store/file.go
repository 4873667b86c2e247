// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/apex/log"

	"github.com/skurvinen/assignmentinfo/internal/cacheutil"
)

// File stores each key as a file beneath the cache directory, in a Namespace
// subdirectory. The filename is the hashed key.
type File struct {
	subdirs []string
}

func NewFile() *File {
	return &File{subdirs: []string{Namespace}}
}

func (f *File) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	entry, ok := cacheutil.Read(f.subdirs, key)
	if !ok {
		return nil, false, nil
	}
	log.Debugf("cache hit: %s", entry.Path)
	return entry.Data, true, nil
}

func (f *File) Set(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cacheutil.Write(f.subdirs, key, data); err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}

func (f *File) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return cacheutil.Remove(f.subdirs, key)
}

func (f *File) String() string {
	dir, _ := cacheutil.Dir()
	return "store-file(" + dir + ")"
}
