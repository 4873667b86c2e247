// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// docgen reads docs/commands/<cmd>.md and writes
//   - docs/man/share/man1/assignmentinfo-<cmd>.1 (md2man of the whole page)
//   - docs/tldr/assignmentinfo-<cmd>.md (short description + quick examples)

const (
	binary  = "assignmentinfo"
	homeURL = "https://github.com/skurvinen/assignmentinfo"
)

func main() {
	var (
		root          string
		onlyIfChanged bool
	)
	flag.StringVar(&root, "root", ".", "repo root")
	flag.BoolVar(&onlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	n, err := generate(root, onlyIfChanged)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("generated docs for %d commands\n", n)
}

// generate renders every command page under root and returns how many were
// processed.
func generate(root string, onlyIfChanged bool) (int, error) {
	commandsDir := filepath.Join(root, "docs", "commands")
	manDir := filepath.Join(root, "docs", "man", "share", "man1")
	tldrDir := filepath.Join(root, "docs", "tldr")

	for _, d := range []string{manDir, tldrDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return 0, fmt.Errorf("creating %s: %w", d, err)
		}
	}

	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		return 0, fmt.Errorf("reading commands dir %s: %w", commandsDir, err)
	}

	var processed int
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		cmd := strings.TrimSuffix(e.Name(), ".md")
		raw, err := os.ReadFile(filepath.Join(commandsDir, e.Name()))
		if err != nil {
			return processed, err
		}

		manPath := filepath.Join(manDir, fmt.Sprintf("%s-%s.1", binary, cmd))
		if err := writeFileIfChanged(manPath, md2man.Render(raw), onlyIfChanged); err != nil {
			return processed, fmt.Errorf("writing man page for %s: %w", cmd, err)
		}

		doc := page(raw)
		tldrPath := filepath.Join(tldrDir, fmt.Sprintf("%s-%s.md", binary, cmd))
		if err := writeFileIfChanged(tldrPath, []byte(doc.tldr(cmd)), onlyIfChanged); err != nil {
			return processed, fmt.Errorf("writing tldr for %s: %w", cmd, err)
		}

		processed++
	}

	if processed == 0 {
		return 0, fmt.Errorf("no command markdown found under %s", commandsDir)
	}
	return processed, nil
}

func writeFileIfChanged(path string, data []byte, onlyIfChanged bool) error {
	if onlyIfChanged {
		old, err := os.ReadFile(path)
		switch {
		case err == nil && bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(data)):
			return nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

var h1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// page is a command markdown document.
type page string

// title is the first H1.
func (p page) title() string {
	if m := h1Re.FindStringSubmatch(string(p)); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// section returns the text following the line that names header, up to the
// next markdown header.
func (p page) section(header string) string {
	idx := strings.Index(strings.ToLower(string(p)), strings.ToLower(header))
	if idx < 0 {
		return ""
	}
	rest := string(p)[idx:]
	nl := strings.Index(rest, "\n")
	if nl < 0 {
		return ""
	}
	rest = rest[nl+1:]
	if end := strings.Index(rest, "\n#"); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

// short is the first paragraph of the "Short description" section, or the
// title.
func (p page) short() string {
	var parts []string
	for _, ln := range strings.Split(p.section("short description"), "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, ln)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if t := p.title(); t != "" {
		return t + "."
	}
	return ""
}

type example struct {
	Desc string
	Cmd  string
}

// examples reads the first fenced block of the "Quick examples" section.
// A "# ..." line describes the command line that follows it.
func (p page) examples() []example {
	idx := strings.Index(strings.ToLower(string(p)), "quick examples")
	if idx < 0 {
		return nil
	}
	sec := string(p)[idx:]
	const fence = "```"
	start := strings.Index(sec, fence)
	if start < 0 {
		return nil
	}
	sec = sec[start+len(fence):]
	// Skip an info string such as ```sh.
	if nl := strings.Index(sec, "\n"); nl >= 0 {
		sec = sec[nl+1:]
	}
	end := strings.Index(sec, fence)
	if end < 0 {
		return nil
	}

	var (
		exs  []example
		desc string
	)
	for _, ln := range strings.Split(sec[:end], "\n") {
		ln = strings.TrimSpace(ln)
		switch {
		case ln == "":
		case strings.HasPrefix(ln, "#"):
			desc = strings.TrimSpace(strings.TrimPrefix(ln, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, example{Desc: desc, Cmd: strings.Join(strings.Fields(ln), " ")})
			desc = ""
		}
	}
	return exs
}

func (p page) tldr(cmd string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s-%s\n\n", binary, cmd)
	if s := p.short(); s != "" {
		fmt.Fprintf(&b, "> %s\n", s)
	} else {
		fmt.Fprintf(&b, "> %s %s\n", binary, cmd)
	}
	fmt.Fprintf(&b, "> More information: %s.\n\n", homeURL)

	exs := p.examples()
	if len(exs) == 0 {
		exs = []example{{Desc: "Show help for the command", Cmd: binary + " " + cmd + " --help"}}
	}
	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s:\n\n`%s`\n", ex.Desc, ex.Cmd)
	}
	return b.String()
}
