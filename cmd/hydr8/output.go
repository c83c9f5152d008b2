package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/olebedev/config"
	"github.com/spf13/cobra"
)

const (
	formatAuto  = ""
	formatYAML  = "yaml"
	formatJSON  = "json"
	formatTable = "table"
)

var errUnknownFormat = errors.New("unknown output format")

func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "o", formatAuto, "Output format: yaml, json or table (default table on a terminal, yaml otherwise)")
}

func writeMapping(w io.Writer, format string, mapping map[string]any) error {
	if format == formatAuto {
		format = formatYAML
		if isTerminal(w) {
			format = formatTable
		}
	}

	var (
		rendered string
		err      error
	)

	switch strings.ToLower(format) {
	case formatYAML:
		rendered, err = renderYAML(mapping)
	case formatJSON:
		rendered, err = config.RenderJson(mapping)
	case formatTable:
		rendered, err = renderTable(mapping)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	_, err = fmt.Fprintln(w, strings.TrimRight(rendered, "\n"))

	return err
}

func renderYAML(value any) (string, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// renderTable prints one row per top-level key. Nested values are shown in
// YAML flow style.
func renderTable(mapping map[string]any) (string, error) {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"KEY", "VALUE"})

	for _, key := range keys {
		value, err := cell(mapping[key])
		if err != nil {
			return "", err
		}

		tw.AppendRow(table.Row{key, value})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render(), nil
}

func cell(value any) (string, error) {
	switch value.(type) {
	case map[string]any, []any:
		data, err := yaml.MarshalWithOptions(value, yaml.Flow(true))
		if err != nil {
			return "", err
		}

		return strings.TrimSpace(string(data)), nil
	case nil:
		return "null", nil
	default:
		return fmt.Sprint(value), nil
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
