// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/skurvinen/assignmentinfo/internal/meta"
)

// playerRow is one stored player as listed by pq.
type playerRow struct {
	Name        string `json:"name"`
	Assignments int    `json:"assignments"`
	Bytes       int    `json:"bytes"`
	Size        string `json:"size"`
}

// pqCommandAction is the action handler for the "pq" subcommand. It lists
// the players held in storage, supports --tldr/--schema short-circuit
// behavior, and emits output per common flags.
func pqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[playerRow]{
		CommandName:  "pq",
		SchemaType:   reflect.TypeOf(playerRow{}),
		DefaultAttrs: []string{".name", "assignments", "size"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) ([]playerRow, error) {
			c, err := NewCache(ctx, cmd)
			if err != nil {
				return nil, err
			}

			subjects := c.Subjects(ctx)
			rows := make([]playerRow, 0, len(subjects))
			for _, s := range subjects {
				rows = append(rows, playerRow{
					Name:        s.Name,
					Assignments: s.Assignments,
					Bytes:       s.Bytes,
					Size:        humanize.Bytes(uint64(s.Bytes)),
				})
			}
			return rows, nil
		},
	}
	return runner.Run(ctx, cmd)
}

// pqCommandBuilder constructs the cli.Command for "pq", wiring metadata,
// flags, and action/validator handlers.
func pqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:   "pq",
		Usage:  "player query",
		Flags:  NewStoreFlags("pq", meta.Config.Source),
		Action: pqCommandAction,
		Meta:   meta,
	}).Build()
}
