// Package main provides the skillcheck binary entry point.
// Skillcheck validates skill documents: Python syntax in code blocks,
// known anti-patterns, deprecated import paths, and required sections.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/skillforge/skillcheck/config"
	"github.com/skillforge/skillcheck/imports"
	"github.com/skillforge/skillcheck/rules"
	"github.com/skillforge/skillcheck/validator"
)

const (
	Version   = "1.0.0"
	BuildTime = "dev"
	appName   = "skillcheck"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cliOptions holds the persistent flags shared by all subcommands.
type cliOptions struct {
	configPath string
	skillsDir  string
	logLevel   string
}

func rootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Skill content validation",
		Long: `Skillcheck validates skill documents for correctness.

It checks:
- Python syntax in code blocks
- Known anti-patterns (Pydantic for state, missing reducers, etc.)
- Deprecated import paths
- Missing required sections`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.skillsDir, "skills-dir", "", "Skills directory (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		validateCmd(opts),
		quickCmd(opts),
		checkImportsCmd(opts),
		listRulesCmd(opts),
		watchCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

// setup loads configuration and builds the engine from it.
func setup(opts *cliOptions) (*config.Config, *validator.Engine, error) {
	logger := newLogger(opts.logLevel)
	slog.SetDefault(logger)

	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.NewLoader(logger).Load()
	}
	if err != nil {
		return nil, nil, err
	}

	if opts.skillsDir != "" {
		cfg.Skills.Dir = opts.skillsDir
	}

	engineCfg := validator.Config{Logger: logger}

	if cfg.Rules.File != "" {
		catalog, err := rules.LoadFile(cfg.Rules.File)
		if err != nil {
			return nil, nil, err
		}
		engineCfg.Catalog = catalog
	}
	if cfg.Rules.TablesFile != "" {
		tables, err := imports.LoadTables(cfg.Rules.TablesFile)
		if err != nil {
			return nil, nil, err
		}
		engineCfg.Tables = &tables
	}

	return cfg, validator.New(engineCfg), nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
