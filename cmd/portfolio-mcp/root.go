package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HendryAvila/portfolio-mcp/internal/config"
	"github.com/HendryAvila/portfolio-mcp/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	DataPath   string
	Verbose    bool
}

// app is the state shared by subcommands once PersistentPreRunE has run.
type app struct {
	opts   *RootOptions
	cfg    config.Config
	logger *zap.Logger
}

// NewRootCommand creates the root command for the portfolio-mcp CLI.
func NewRootCommand() *cobra.Command {
	a := &app{opts: &RootOptions{}, logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "portfolio-mcp",
		Short: "Portfolio MCP server",
		Long: `A read-only MCP server that answers questions about one person's portfolio:
profile, experience, education, tech stack and contact channels.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&a.opts.ConfigPath, "config", "", "config file (default $HOME/.portfolio-mcp/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.opts.DataPath, "data", "", "portfolio data file or s3://bucket/key")
	cmd.PersistentFlags().BoolVarP(&a.opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newServeCommand(a))
	cmd.AddCommand(newValidateCommand(a))
	cmd.AddCommand(newVersionCommand(a))

	return cmd
}

// setup resolves configuration (defaults, then file, then environment,
// then flags) and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd, a.opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func resolveConfig(cmd *cobra.Command, opts *RootOptions) (config.Config, error) {
	path, optional := opts.ConfigPath, false
	if path == "" {
		path, optional = config.DefaultPath(), true
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataPath = opts.DataPath
	}
	if flags.Changed("transport") {
		cfg.Transport, _ = flags.GetString("transport")
	}
	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
