// Package commands contains the quarry subcommands.
package commands

import (
	"io"
	"log/slog"
	"strings"

	"github.com/quarryhq/quarry/internal/config"
	"github.com/quarryhq/quarry/pkg/adapter"
	"github.com/spf13/cobra"
)

// Context carries the shared dependencies a connected command needs.
type Context struct {
	Config  *config.Config
	Logger  *slog.Logger
	Adapter adapter.Adapter
}

// NewCommandContext loads configuration, builds the logger, and connects
// the adapter. The returned cleanup closes the connection.
func NewCommandContext(cmd *cobra.Command) (*Context, func(), error) {
	flags := cmd.Root().PersistentFlags()
	cfgFile, _ := flags.GetString("config")

	cfg, err := config.Load(cfgFile, flags)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	adapterCfg := cfg.Database.ToAdapterConfig()
	adp, err := adapter.NewAdapter(adapterCfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := adp.Connect(cmd.Context(), adapterCfg); err != nil {
		return nil, nil, err
	}

	cleanup := func() { _ = adp.Close() }
	return &Context{Config: cfg, Logger: logger, Adapter: adp}, cleanup, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// qualifyTable prefixes a bare table reference with the configured schema.
// Already-qualified references pass through unchanged.
func (c *Context) qualifyTable(table string) string {
	if c.Config.Database.Schema == "" || strings.Contains(table, ".") {
		return table
	}
	return c.Config.Database.Schema + "." + table
}
