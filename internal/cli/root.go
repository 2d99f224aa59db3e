// Package cli provides the command-line interface for Quarry.
package cli

import (
	"fmt"
	"os"

	"github.com/quarryhq/quarry/internal/cli/commands"
	"github.com/spf13/cobra"

	// Register the bundled adapters.
	_ "github.com/quarryhq/quarry/pkg/adapters/duckdb"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quarry",
		Short: "Quarry - DuckDB dialect translation and catalog inspection",
		Long: `Quarry translates typed query expressions into exact DuckDB SQL and
decodes DuckDB catalog metadata into a canonical schema model.

The CLI inspects a database (tables, describe, indexes) and renders
dialect expressions offline (render).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Built with Go and DuckDB
`)

	// Global persistent flags; these feed the config loader.
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quarry.yaml)")
	rootCmd.PersistentFlags().String("database", "", "Path to DuckDB database (empty for in-memory)")
	rootCmd.PersistentFlags().String("type", "", "Adapter type (default: duckdb)")
	rootCmd.PersistentFlags().String("schema", "", "Schema to inspect (default: the dialect's default schema)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(commands.NewTablesCommand())
	rootCmd.AddCommand(commands.NewDescribeCommand())
	rootCmd.AddCommand(commands.NewIndexesCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for Quarry.

To load completions:

Bash:
  $ source <(quarry completion bash)

Zsh:
  $ quarry completion zsh > "${fpath[1]}/_quarry"

Fish:
  $ quarry completion fish | source

PowerShell:
  PS> quarry completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
