// Package cmd provides the CLI commands for Zenith.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/logging"
	"github.com/manav03panchal/zenith/internal/output"
	"github.com/manav03panchal/zenith/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagConfig string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "zenith",
	Short: "A personal daily planning dashboard",
	Long: `Zenith keeps your day in one place: an agenda, three highlights,
a mood journal and a small ledger. Each area can ask an AI model for a short
insight.

Examples:
  zenith
  zenith agenda add "Write report" --at 14:00 --for 90m
  zenith highlights set 1 "Shipped the release"
  zenith journal write --mood happy --notes "Long walk after work"
  zenith finance add expense Food 12.50 "Lunch"
  zenith insight all`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// No database for these; __complete still needs one for id completion.
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}

		format, err := output.ParseFormat(flagFormat)
		if err != nil {
			return errors.NewFieldError(err, "format", flagFormat, "Invalid output format", "Use cli, json or plain")
		}
		colorMode, err := output.ParseColorMode(flagColor)
		if err != nil {
			return errors.NewFieldError(err, "color", flagColor, "Invalid color mode", "Use auto, always or never")
		}

		// Create runtime context
		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		if flagConfig != "" {
			opts.ConfigPath = flagConfig
		}

		rc, err := runtime.New(cmd.Context(), opts)
		if err != nil {
			return err
		}
		rc.Formatter.Writer = cmd.OutOrStdout()
		cmd.SetContext(runtime.WithContext(cmd.Context(), rc))
		return nil
	},
	RunE: runOverview,
}

// runOverview shows a one-screen summary of the day.
func runOverview(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	rc.Store.Load()
	agenda := rc.Store.Agenda.Get()
	achievements := rc.Store.Achievements.Get()
	journal := rc.Store.Journal.Get()
	txs := rc.Store.Transactions.Get()

	if rc.IsJSON() {
		return rc.JSONFormatter().PrintOverview(agenda, achievements, journal, txs)
	}

	rc.CLIFormatter().PrintOverview(agenda, achievements, journal, txs)
	return nil
}

// runtimeOf returns the runtime context built for cmd by the root pre-run
// hook, or nil when the command runs without one.
func runtimeOf(cmd *cobra.Command) *runtime.Context {
	if cmd == nil {
		return nil
	}
	return runtime.FromContext(cmd.Context())
}

// ExecuteContext runs the root command under parent. Errors are printed
// before they are returned, and the runtime context of the run is always
// closed.
func ExecuteContext(parent context.Context) error {
	// cobra keeps a subcommand's context between executions.
	resetContext(rootCmd, parent)

	executed, err := rootCmd.ExecuteC()
	if executed == nil {
		executed = rootCmd
	}
	rc := runtimeOf(executed)
	if err != nil {
		printError(rc, executed.ErrOrStderr(), err)
	}
	if rc != nil {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	resetContext(rootCmd, parent)
	return err
}

func resetContext(cmd *cobra.Command, ctx context.Context) {
	cmd.SetContext(ctx)
	for _, sub := range cmd.Commands() {
		resetContext(sub, ctx)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file (default $XDG_CONFIG_HOME/zenith/config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("zenith %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
		cmd.Println("")
		cmd.Println("Based on Zeit (https://github.com/mrusme/zeit)")
		cmd.Println("Licensed under SEGV License v1.0")
	},
}

// printError reports err on stderr, or as a JSON object in json mode.
func printError(rc *runtime.Context, stderr io.Writer, err error) {
	if rc != nil && rc.IsJSON() {
		message := ""
		if ue, ok := errors.AsUserError(err); ok {
			message = ue.Message
		}
		_ = rc.JSONFormatter().PrintError("error", err.Error(), message, errors.GetSuggestion(err))
		return
	}
	fmt.Fprintln(stderr, "Error: "+errors.FormatError(err))
}
