// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = "# aq - assignment query\n\n" +
	"## Short description\n\n" +
	"List a player's assignments\nwith completion.\n\n" +
	"## Quick examples\n\n" +
	"```sh\n" +
	"# Show assignments\n" +
	"assignmentinfo aq   NLG\n" +
	"\n" +
	"# Refresh and diff\n" +
	"assignmentinfo aq --refresh --diff NLG\n" +
	"```\n"

func TestPage(t *testing.T) {
	p := page(samplePage)
	assert.Equal(t, "aq - assignment query", p.title())
	assert.Equal(t, "List a player's assignments with completion.", p.short())
	assert.Equal(t, []example{
		{Desc: "Show assignments", Cmd: "assignmentinfo aq NLG"},
		{Desc: "Refresh and diff", Cmd: "assignmentinfo aq --refresh --diff NLG"},
	}, p.examples())
}

func TestPage_TLDRFallback(t *testing.T) {
	out := page("# clear\n").tldr("clear")
	assert.Contains(t, out, "# assignmentinfo-clear\n")
	assert.Contains(t, out, "> clear.\n")
	assert.Contains(t, out, "`assignmentinfo clear --help`")
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	cmds := filepath.Join(root, "docs", "commands")
	require.NoError(t, os.MkdirAll(cmds, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cmds, "aq.md"), []byte(samplePage), 0o644))

	n, err := generate(root, true)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	tldr, err := os.ReadFile(filepath.Join(root, "docs", "tldr", "assignmentinfo-aq.md"))
	require.NoError(t, err)
	assert.Contains(t, string(tldr), "`assignmentinfo aq NLG`")

	_, err = os.Stat(filepath.Join(root, "docs", "man", "share", "man1", "assignmentinfo-aq.1"))
	assert.NoError(t, err)
}

func TestGenerate_NoCommands(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs", "commands"), 0o755))
	_, err := generate(root, true)
	assert.Error(t, err)
}
