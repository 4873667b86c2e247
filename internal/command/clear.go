// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/skurvinen/assignmentinfo/internal/meta"
)

// clearCommandAction drops every stored player.
func clearCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "clear") {
		return nil
	}

	c, err := NewCache(ctx, cmd)
	if err != nil {
		return err
	}
	if err := c.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(writer(cmd), "storage cleared")
	return nil
}

func clearCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "clear stored assignments",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{newTldrFlag()}, NewStoreFlags("clear", meta.Config.Source)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: clearCommandAction,
	}
}
