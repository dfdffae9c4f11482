// Package main implements the liveresize command line tool.
// It manages the liveresize configuration file and runs a scripted
// simulation of an interactive resize session for demos and debugging.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	liveresize "github.com/mmngadi/go-liveresize"
	"github.com/mmngadi/go-liveresize/config"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var debugMode bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "liveresize",
		Short: "Keep rendering alive during interactive window resizing",
		Long: `liveresize keeps a fixed-resolution canvas rendering smoothly while
its window is dragged, resized, or toggled into borderless fullscreen.

The library does the real work inside a host application; this tool
manages the configuration file and runs a scripted simulation of a
resize session so the behavior can be inspected without a window.`,
		Example: `  # Simulate a window drag from 800x600 to 1280x720
  liveresize sim --from 800x600 --to 1280x720

  # Simulate with a fullscreen toggle mid-run
  liveresize sim --toggle-at 5

  # Create the default config file
  liveresize config init`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage liveresize configuration",
		Long:  `Manage the liveresize configuration file`,
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Long: `Write the default configuration file to the XDG config directory.
An existing file is left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Init()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Long:  `Print where the configuration file is, or would be created.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	configCmd.AddCommand(configInitCmd, configPathCmd)

	rootCmd.AddCommand(configCmd, newSimCommand())

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}

// setupLogging routes library logs to stderr; debug mode lowers the level.
func setupLogging() {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	liveresize.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
