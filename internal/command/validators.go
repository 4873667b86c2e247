// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/skurvinen/assignmentinfo/internal/output"
	"github.com/skurvinen/assignmentinfo/internal/store"
)

// GlobalFlagsValidator checks combinations of flags that no single flag
// validator can see.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Bool("diff") && !c.Bool("refresh") {
		return errors.New("--diff requires --refresh")
	}
	if c.String("store") == string(store.KindS3) && c.String("bucket") == "" {
		return errors.New("--store s3 requires --bucket")
	}
	return nil
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, value.(string)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func StoreValidator(value any) error {
	_, err := store.ParseKind(value.(string))
	return err
}
