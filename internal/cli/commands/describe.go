package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/quarryhq/quarry/pkg/core"
	"github.com/quarryhq/quarry/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <table>",
		Short: "Show the decoded column descriptors for a table",
		Example: `  # Describe a table in the default schema
  quarry describe users

  # Describe a qualified table
  quarry describe analytics.events

  # Machine-readable output
  quarry describe users --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, args[0])
		},
	}

	cmd.Flags().String("format", "table", "Output format (table|json)")
	return cmd
}

// columnOutput is the JSON shape for one column descriptor.
type columnOutput struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NativeType string `json:"native_type"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"primary_key"`
	Default    string `json:"default,omitempty"`
	MaxLength  *int   `json:"max_length,omitempty"`
	Precision  *int   `json:"precision,omitempty"`
	Scale      *int   `json:"scale,omitempty"`
}

func runDescribe(cmd *cobra.Command, tableRef string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	columns, err := cmdCtx.Adapter.DescribeTable(cmd.Context(), cmdCtx.qualifyTable(tableRef))
	if err != nil {
		return fmt.Errorf("failed to describe table: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	w := cmd.OutOrStdout()

	if format == "json" {
		out := make([]columnOutput, 0, len(columns))
		for _, col := range columns {
			out = append(out, columnOutput{
				Name:       col.Name,
				Type:       col.Type.String(),
				NativeType: col.NativeType,
				Nullable:   col.Nullable,
				PrimaryKey: col.PrimaryKey,
				Default:    formatDefault(col.Default),
				MaxLength:  col.MaxLength,
				Precision:  col.Precision,
				Scale:      col.Scale,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	_, _ = fmt.Fprintf(w, "Table: %s\n", tableRef)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Type", "Native Type", "Nullable", "Default"})
	for _, col := range columns {
		name := col.Name
		if col.PrimaryKey {
			name += " (pk)"
		}
		t.AppendRow(table.Row{
			name,
			col.Type.String(),
			col.NativeType,
			yesNo(col.Nullable),
			formatDefault(col.Default),
		})
	}
	t.Render()
	return nil
}

// formatDefault renders a column default as SQL text, empty when unset.
func formatDefault(v core.Value) string {
	if v == nil {
		return ""
	}
	text, err := dialect.EncodeStandard(v)
	if err != nil {
		return ""
	}
	return text
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
