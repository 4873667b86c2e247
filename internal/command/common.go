// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"reflect"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/skurvinen/assignmentinfo/internal/attrs"
	"github.com/skurvinen/assignmentinfo/internal/cache"
	"github.com/skurvinen/assignmentinfo/internal/cacheutil"
	"github.com/skurvinen/assignmentinfo/internal/meta"
	"github.com/skurvinen/assignmentinfo/internal/output"
	"github.com/skurvinen/assignmentinfo/internal/store"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr assignmentinfo <subcmd>` and returns true so the caller can exit
// early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "assignmentinfo", subcmd)
			c.Stdout = writer(cmd)
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// DumpSchemaIfRequested prints the attribute paths for the provided type when
// --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(writer(cmd), t)
		return true
	}
	return false
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// EmitSlice marshals results as a JSON array and passes it to the common
// output routine.
func EmitSlice(results any, al attrs.AttrList, cmd *cli.Command) error {
	var raw bytes.Buffer
	if err := json.NewEncoder(&raw).Encode(results); err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return output.SliceDiceSpit(raw, al, output.OptionsFromCommand(cmd), writer(cmd))
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewStore builds the store selected by --store. The file store falls back to
// memory when caching is disabled with AINFO_CACHE.
func NewStore(ctx context.Context, cmd *cli.Command) (store.Store, error) {
	kind, err := store.ParseKind(cmd.String("store"))
	if err != nil {
		return nil, err
	}

	switch kind {
	case store.KindS3:
		return store.NewS3(ctx, store.S3Config{
			Bucket:   cmd.String("bucket"),
			Prefix:   cmd.String("prefix"),
			Region:   cmd.String("region"),
			Profile:  cmd.String("profile"),
			Endpoint: cmd.String("endpoint"),
		})
	case store.KindMemory:
		return store.NewMemory(), nil
	default:
		if !cacheutil.Enabled() {
			log.Debug("caching disabled, using memory store")
			return store.NewMemory(), nil
		}
		return store.NewFile(), nil
	}
}

// NewCache wraps the store selected by --store in an assignment cache.
func NewCache(ctx context.Context, cmd *cli.Command) (*cache.Cache, error) {
	s, err := NewStore(ctx, cmd)
	if err != nil {
		return nil, err
	}
	log.Debugf("store: %s", s)
	return cache.New(s), nil
}

// writer returns the root command's writer so output can be captured.
func writer(cmd *cli.Command) io.Writer {
	if cmd != nil {
		if root := cmd.Root(); root != nil && root.Writer != nil {
			return root.Writer
		}
	}
	return os.Stdout
}

// QueryCommandBuilder is a helper that constructs a cli.Command for query
// subcommands (aq, pq) using a consistent pattern. It accepts the command
// name, usage text, optional UsageText, custom flags, the action handler, and
// meta. The builder automatically wires metadata, adds tldr/schema flags,
// applies global flags, and sets up validators.
type QueryCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: append(qcb.Flags, append([]cli.Flag{
			newTldrFlag(),
			newSchemaFlag(),
		}, NewGlobalFlags(qcb.Name)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: qcb.Action,
	}
}

// QueryActionRunner[T] encapsulates the common query action pattern for the
// query subcommands. It handles GetMeta, the short-circuit checks,
// BuildAttrs, schema dumping and output emission, with data fetching
// provided by FetchFn.
type QueryActionRunner[T any] struct {
	CommandName  string
	SchemaType   reflect.Type
	DefaultAttrs []string
	FetchFn      func(context.Context, *cli.Command) ([]T, error)
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	m := GetMeta(cmd)
	if len(m.Args) > 1 {
		log.Debugf("Executing action for %v", m.Args[1:])
	}

	if ShortCircuitTLDR(ctx, cmd, qar.CommandName) {
		return nil
	}
	if DumpSchemaIfRequested(cmd, qar.SchemaType) {
		return nil
	}

	attrs := BuildAttrs(cmd, qar.DefaultAttrs...)
	log.Debugf("attrs: %v", attrs)

	results, err := qar.FetchFn(ctx, cmd)
	if err != nil {
		return err
	}
	if results == nil {
		results = []T{}
	}

	return EmitSlice(results, attrs, cmd)
}
