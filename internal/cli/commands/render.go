package commands

import (
	"fmt"
	"sort"
	"strings"

	duckdialect "github.com/quarryhq/quarry/pkg/adapters/duckdb/dialect"
	"github.com/quarryhq/quarry/pkg/core"
	"github.com/quarryhq/quarry/pkg/dialect"
	"github.com/spf13/cobra"
)

// opNames maps the --op flag values to operator tags.
var opNames = map[string]core.OpTag{
	"like":      core.OpLike,
	"not-like":  core.OpNotLike,
	"ilike":     core.OpILike,
	"not-ilike": core.OpNotILike,
	"regexp":    core.OpRegexp,
	"iregexp":   core.OpIRegexp,
}

// NewRenderCommand creates the render command. It compiles a pattern-match
// expression to DuckDB SQL without touching a database.
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <column> <pattern>",
		Short: "Render a pattern-match expression as DuckDB SQL",
		Example: `  # LIKE match
  quarry render name '%John%'

  # Case-insensitive match
  quarry render name '%john%' --op ilike

  # Regular expression match
  quarry render name '^John' --op regexp`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], args[1])
		},
	}

	cmd.Flags().String("op", "like", fmt.Sprintf("Match operator (%s)", strings.Join(opNameList(), "|")))
	_ = cmd.RegisterFlagCompletionFunc("op", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return opNameList(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func opNameList() []string {
	names := make([]string, 0, len(opNames))
	for name := range opNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runRender(cmd *cobra.Command, column, pattern string) error {
	opName, _ := cmd.Flags().GetString("op")
	op, ok := opNames[strings.ToLower(opName)]
	if !ok {
		return fmt.Errorf("unknown operator %q (available: %s)", opName, strings.Join(opNameList(), ", "))
	}

	var lhs core.Expr
	if parts := strings.SplitN(column, ".", 2); len(parts) == 2 {
		lhs = &core.QualifiedRef{Table: parts[0], Column: parts[1]}
	} else {
		lhs = &core.ColumnRef{Name: column}
	}

	expr := &core.ComplexExpr{
		Op: op,
		Operands: []core.Expr{
			lhs,
			&core.Literal{Value: core.String(pattern)},
		},
	}

	compiler := dialect.NewCompiler(duckdialect.DuckDB)
	sql, err := compiler.Compile(expr)
	if err != nil {
		return fmt.Errorf("failed to render expression: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), sql)
	return nil
}
