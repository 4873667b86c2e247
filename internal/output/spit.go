// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/skurvinen/assignmentinfo/internal/attrs"
	"github.com/skurvinen/assignmentinfo/internal/config"
	"github.com/skurvinen/assignmentinfo/internal/filters"
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "raw", "yaml"}

// Options are the rendering choices taken from the global flags.
type Options struct {
	Output string
	Filter string
	Sort   string
	Color  bool
	Titles bool
}

// OptionsFromCommand reads the global output flags. Color is only honored
// when stdout is a terminal.
func OptionsFromCommand(cmd *cli.Command) Options {
	return Options{
		Output: cmd.String("output"),
		Filter: cmd.String("filter"),
		Sort:   cmd.String("sort"),
		Color:  cmd.Bool("color") && term.IsTerminal(int(os.Stdout.Fd())),
		Titles: cmd.Bool("titles"),
	}
}

// SliceDiceSpit orchestrates filtering, transforming, sorting and rendering
// of a JSON array dataset according to opts and the attribute specifications.
func SliceDiceSpit(raw bytes.Buffer, attrs attrs.AttrList, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	// If raw, just dump it and go home.
	if opts.Output == "raw" {
		_, err := w.Write(raw.Bytes())
		return err
	}

	fullDataset := gjson.Parse(raw.String())

	// Filter out the rows we don't want first so the following steps work on
	// a smaller dataset.
	filteredDataset := filters.FilterDataset(fullDataset, attrs, opts.Filter)

	// Sort on the untransformed values so 9% does not sort above 10%.
	SortDataset(filteredDataset, opts.Sort)

	for _, row := range filteredDataset {
		for i := range attrs {
			if attrs[i].TransformSpec != "" {
				row[attrs[i].OutputKey] = attrs[i].Transform(row[attrs[i].OutputKey])
			}
		}
	}

	// Hidden attrs take part in filtering and sorting only.
	for _, row := range filteredDataset {
		for _, attr := range attrs {
			if !attr.Include {
				delete(row, attr.OutputKey)
			}
		}
	}

	switch opts.Output {
	case "json":
		if filteredDataset == nil {
			filteredDataset = []map[string]interface{}{}
		}
		jsonOutput, err := json.Marshal(filteredDataset)
		if err != nil {
			return fmt.Errorf("failed to marshal json output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(filteredDataset)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml output: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	default:
		TableWriter(filteredDataset, attrs, opts, w)
	}
	return nil
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options.
func TableWriter(
	resultSet []map[string]interface{},
	attrs attrs.AttrList,
	opts Options,
	w io.Writer) {

	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(result))
		for _, attr := range attrs {
			if !attr.Include {
				continue
			}
			row = append(row, InterfaceToString(result[attr.OutputKey], "-"))
		}
		rows = append(rows, row)
	}

	pad, _ := config.GetInt("padding", 1)
	log.Debugf("padding: %v", pad)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Rows(rows...)

	if opts.Titles {
		var headers []string
		for _, attr := range attrs {
			if attr.Include {
				headers = append(headers, attr.OutputKey)
			}
		}
		t = t.Headers(headers...).BorderHeader(false)
	}

	// HiddenBorder separates columns with U+00A0.
	fmt.Fprintln(w, strings.ReplaceAll(t.String(), "\u00a0", " "))
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided for nil and empty values.
// Numbers are always rendered, zero included.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	}

	if reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
