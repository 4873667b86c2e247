// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"reflect"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/skurvinen/assignmentinfo/internal/assignment"
	"github.com/skurvinen/assignmentinfo/internal/cache"
	"github.com/skurvinen/assignmentinfo/internal/meta"
	"github.com/skurvinen/assignmentinfo/internal/output"
	"github.com/skurvinen/assignmentinfo/internal/stats"
)

// ResolvePlayer returns the positional player argument, falling back to
// --player (and its env/config sources).
func ResolvePlayer(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		return cmd.Args().First(), nil
	}
	if p := cmd.String("player"); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("%w: pass a player name or set --player", cache.ErrNoSubject)
}

// NewStatsClient builds a stats API client from the --api, --platform and
// --timeout flags.
func NewStatsClient(cmd *cli.Command) *stats.Client {
	return stats.NewClient(
		stats.WithBaseURL(cmd.String("api")),
		stats.WithPlatform(cmd.String("platform")),
		stats.WithTimeout(cmd.Duration("timeout")),
	)
}

// aqFetch returns the player's assignments, from storage when present. With
// --refresh the entry is refetched and replaced.
func aqFetch(ctx context.Context, cmd *cli.Command) ([]assignment.Assignment, error) {
	player, err := ResolvePlayer(cmd)
	if err != nil {
		return nil, err
	}
	log.Debugf("player: %s", player)

	c, err := NewCache(ctx, cmd)
	if err != nil {
		return nil, err
	}
	client := NewStatsClient(cmd)

	if !cmd.Bool("refresh") {
		set, err := c.Get(ctx, player, client.FetchFunc())
		if err != nil {
			return nil, err
		}
		return set.Slice(), nil
	}

	set, err := client.Fetch(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh %s: %w", player, err)
	}
	if err := c.Put(ctx, player, set); err != nil {
		log.WithError(err).WithField("subject", player).Warn("failed to write assignments to storage")
	}
	return set.Slice(), nil
}

// aqDiff refetches the player and prints what changed since the stored copy.
func aqDiff(ctx context.Context, cmd *cli.Command) error {
	player, err := ResolvePlayer(cmd)
	if err != nil {
		return err
	}

	c, err := NewCache(ctx, cmd)
	if err != nil {
		return err
	}

	before, ok := c.Peek(ctx, player)
	if !ok {
		before = assignment.Set{}
	}

	after, err := NewStatsClient(cmd).Fetch(ctx, player)
	if err != nil {
		return fmt.Errorf("failed to refresh %s: %w", player, err)
	}
	if err := c.Put(ctx, player, after); err != nil {
		log.WithError(err).WithField("subject", player).Warn("failed to write assignments to storage")
	}

	opts := output.OptionsFromCommand(cmd)
	diff, changed, err := output.Diff(before, after, opts.Color)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintf(writer(cmd), "no changes for %s\n", player)
		return nil
	}
	fmt.Fprint(writer(cmd), diff)
	return nil
}

// aqCommandAction is the action handler for the "aq" subcommand. It resolves
// the player, loads or fetches their assignments, and emits them per common
// flags.
func aqCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("diff") && !cmd.Bool("schema") && !cmd.Bool("tldr") {
		return aqDiff(ctx, cmd)
	}

	runner := &QueryActionRunner[assignment.Assignment]{
		CommandName:  "aq",
		SchemaType:   reflect.TypeOf(assignment.Assignment{}),
		DefaultAttrs: []string{".id", "name", "completion"},
		FetchFn:      aqFetch,
	}
	return runner.Run(ctx, cmd)
}

// aqCommandBuilder constructs the cli.Command for "aq", wiring metadata,
// flags, and action/validator handlers.
func aqCommandBuilder(meta meta.Meta) *cli.Command {
	flags := []cli.Flag{
		NewPlayerFlag("aq", meta.Config.Source),
		&cli.BoolFlag{
			Name:  "refresh",
			Usage: "refetch the player and replace the stored assignments",
		},
		&cli.BoolFlag{
			Name:  "diff",
			Usage: "with --refresh, show what changed since the stored copy",
		},
	}
	flags = append(flags, NewAPIFlags("aq", meta.Config.Source)...)
	flags = append(flags, NewStoreFlags("aq", meta.Config.Source)...)

	return (&QueryCommandBuilder{
		Name:      "aq",
		Usage:     "assignment query",
		UsageText: "assignmentinfo aq [player] [options]",
		Flags:     flags,
		Action:    aqCommandAction,
		Meta:      meta,
	}).Build()
}
