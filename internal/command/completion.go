// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/skurvinen/assignmentinfo/internal/meta"
)

const bashCompletionScript = `# bash completion for assignmentinfo
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_assignmentinfo()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "aq pq clear completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--attrs -a --color -c --filter -f --output -o --sort -s --titles -t --tldr --schema"
    local storeopts="--store --bucket --prefix --region --profile --endpoint"

    case "$cmd" in
        aq)
            local opts="$common $storeopts --player -p --refresh --diff --api --platform --timeout"
            ;;
        pq)
            local opts="$common $storeopts"
            ;;
        clear)
            local opts="$storeopts --tldr"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
            return 0
            ;;
        --store)
            COMPREPLY=( $(compgen -W "file memory s3" -- "$cur") )
            return 0
            ;;
        --platform)
            COMPREPLY=( $(compgen -W "pc 360 ps3" -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* || "$cmd" != "aq" ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Offer the players already in storage for the aq positional.
    local players
    players=$(assignmentinfo pq --attrs '!assignments,!size' --output text --no-titles 2>/dev/null)
    COMPREPLY=( $(compgen -W "$players" -- "$cur") )
    return 0
}

complete -F _assignmentinfo assignmentinfo
`

const zshCompletionScript = `#compdef assignmentinfo

_assignmentinfo() {
  local -a cmds
  cmds=(
    'aq:assignment query'
    'pq:player query'
    'clear:clear stored assignments'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--schema[dump schema]'
  '--tldr[show tldr page]'
  )

  local -a storeopts
  storeopts=(
  '--store[storage backend]:store:(file memory s3)'
  '--bucket[S3 bucket]:bucket'
  '--prefix[S3 key prefix]:prefix'
  '--region[AWS region]:region'
  '--profile[AWS profile]:profile'
  '--endpoint[S3 endpoint]:url'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'assignmentinfo commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    aq)
      _arguments -C \
        $common \
        $storeopts \
        '(-p --player)'{-p,--player}'[player]:player' \
        '--refresh[refetch and replace stored assignments]' \
        '--diff[show changes on refresh]' \
        '--api[stats API base URL]:url' \
        '--platform[player platform]:platform:(pc 360 ps3)' \
        '--timeout[request timeout]:duration' \
        '::player:_assignmentinfo_players'
      ;;
    pq)
      _arguments -C $common $storeopts
      ;;
    clear)
      _arguments -C $storeopts '--tldr[show tldr page]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

_assignmentinfo_players() {
  local -a players
  players=(${(f)"$(assignmentinfo pq --attrs '!assignments,!size' --output text --no-titles 2>/dev/null)"})
  compadd -- ${players// /}
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _assignmentinfo assignmentinfo
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}

	w := writer(cmd)
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(w, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(w, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: assignmentinfo completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "assignmentinfo completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
