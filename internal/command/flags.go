// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/skurvinen/assignmentinfo/internal/config"
	"github.com/skurvinen/assignmentinfo/internal/stats"
	"github.com/skurvinen/assignmentinfo/internal/store"
)

func init() {
	cfg, _ = config.Load("")
}

var (
	cfg config.Type
)

func newSchemaFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the schema",
		HideDefault: true,
	}
}

func newTldrFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
}

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"sort", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return
}

// NewStoreFlags returns the flags selecting where cached assignments live.
// Every value may come from the environment or the config file, namespaced to
// ns first.
func NewStoreFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:    "store",
			Usage:   "assignment storage backend (file, memory, s3)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AINFO_STORE")),
			Value:   string(store.KindFile),
			Validator: func(value string) error {
				return FlagValidators(value, StoreValidator)
			},
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:    "bucket",
			Usage:   "S3 bucket for --store s3",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AINFO_BUCKET")),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:    "prefix",
			Usage:   "S3 key prefix for --store s3",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AINFO_PREFIX")),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:  "region",
			Usage: "AWS region for --store s3",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_REGION"),
				cli.EnvVar("AWS_DEFAULT_REGION"),
			),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS shared config profile for --store s3",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_PROFILE")),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:    "endpoint",
			Usage:   "S3-compatible endpoint URL for --store s3",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AINFO_S3_ENDPOINT")),
		}),
	}
}

// NewAPIFlags returns the flags that address the stats API.
func NewAPIFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:    "api",
			Usage:   "stats API base URL",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AINFO_API")),
			Value:   stats.DefaultBaseURL,
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:    "platform",
			Usage:   "player platform (pc, 360, ps3)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AINFO_PLATFORM")),
			Value:   stats.DefaultPlatform,
		}),
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "stats API request timeout",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AINFO_TIMEOUT"),
				yaml.YAML(ns+".timeout", altsrc.StringSourcer(path)),
				yaml.YAML("timeout", altsrc.StringSourcer(path)),
			),
			Value: stats.DefaultTimeout,
		},
	}
}

// NewPlayerFlag constructs the --player flag. A positional player argument
// takes precedence over it.
func NewPlayerFlag(ns string, path string) *cli.StringFlag {
	return NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
		Name:    "player",
		Aliases: []string{"p"},
		Usage:   "player to query when none is given as an argument",
		Sources: cli.NewValueSourceChain(cli.EnvVar("AINFO_PLAYER")),
		Validator: func(value string) error {
			return FlagValidators(value, JammedFlagValidator)
		},
	})
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas reports whether target is an executable on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
