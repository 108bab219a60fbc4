// Package app contains the Cobra command tree for savepaths.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/woozymasta/savepaths"
	"github.com/woozymasta/savepaths/internal/config"
	"github.com/woozymasta/savepaths/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
}

// errUnusable is returned by --strict commands when some path was rejected.
var errUnusable = errors.New("unusable paths found")

// globalFlags are persistent flags shared by every subcommand.
type globalFlags struct {
	config  string
	os      string
	noColor bool
	json    bool
	verbose bool
}

// env is the per-invocation state resolved before a subcommand runs.
type env struct {
	cfg    *config.Config
	os     savepaths.OS
	json   bool
	logger *slog.Logger
}

// newRootCmd builds the command tree. Every call returns independent state.
func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	e := &env{}

	root := &cobra.Command{
		Use:   "savepaths",
		Short: "Canonicalize and vet game save path patterns",
		Long: `savepaths rewrites save path patterns from the game save database into
a canonical placeholder form and rejects paths that are too broad to back up
safely (bare placeholders, system directories, drive roots, templates).`,
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd, flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.config, "config", "", "Config file path (default: ~/.config/savepaths/config.yaml)")
	root.PersistentFlags().StringVar(&flags.os, "os", "", "Target OS: windows, linux, mac, dos (default from config)")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&flags.json, "json", false, "Output as JSON")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Enable verbose output")

	root.AddCommand(
		newNormalizeCmd(e),
		newCheckCmd(e),
		newManifestCmd(e),
	)

	return root
}

// setup loads configuration and applies flag overrides.
func (e *env) setup(cmd *cobra.Command, flags *globalFlags) error {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	e.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(flags.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	e.cfg = cfg

	osTag := cfg.OS
	if cmd.Flags().Changed("os") {
		osTag = flags.os
	}

	e.os, err = savepaths.ParseOS(osTag)
	if err != nil {
		return err
	}

	e.json = flags.json || cfg.Output.JSON

	if flags.noColor || !cfg.Output.Color || !output.IsTerminal(os.Stdout) {
		output.SetNoColor(true)
	}

	e.logger.Debug("config loaded", "os", e.os.String(), "json", e.json)
	return nil
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
