package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List base tables in the configured schema",
		Example: `  # List tables in the default schema
  quarry tables

  # List tables in another schema
  quarry tables --schema analytics

  # Machine-readable output
  quarry tables --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd)
		},
	}

	cmd.Flags().String("format", "table", "Output format (table|json)")
	return cmd
}

func runTables(cmd *cobra.Command) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	tables, err := cmdCtx.Adapter.ListTables(cmd.Context(), cmdCtx.Config.Database.Schema)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	w := cmd.OutOrStdout()

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tables)
	}

	if len(tables) == 0 {
		_, _ = fmt.Fprintln(w, "(0 tables)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table"})
	for _, name := range tables {
		t.AppendRow(table.Row{name})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d tables)\n", len(tables))
	return nil
}
