package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewIndexesCommand creates the indexes command.
func NewIndexesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indexes <table>",
		Short: "Show the index descriptors for a table",
		Example: `  # Show indexes on a table
  quarry indexes users

  # Machine-readable output
  quarry indexes users --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexes(cmd, args[0])
		},
	}

	cmd.Flags().String("format", "table", "Output format (table|json)")
	return cmd
}

type indexOutput struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Unique  bool     `json:"unique"`
	Primary bool     `json:"primary"`
}

func runIndexes(cmd *cobra.Command, tableRef string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	indexes, err := cmdCtx.Adapter.DescribeIndexes(cmd.Context(), cmdCtx.qualifyTable(tableRef))
	if err != nil {
		return fmt.Errorf("failed to describe indexes: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	w := cmd.OutOrStdout()

	if format == "json" {
		out := make([]indexOutput, 0, len(indexes))
		for _, idx := range indexes {
			out = append(out, indexOutput{
				Name:    idx.Name,
				Columns: idx.Columns,
				Unique:  idx.Unique,
				Primary: idx.Primary,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(indexes) == 0 {
		_, _ = fmt.Fprintln(w, "(0 indexes)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Index", "Columns", "Unique", "Primary"})
	for _, idx := range indexes {
		t.AppendRow(table.Row{
			idx.Name,
			strings.Join(idx.Columns, ", "),
			yesNo(idx.Unique),
			yesNo(idx.Primary),
		})
	}
	t.Render()
	return nil
}
