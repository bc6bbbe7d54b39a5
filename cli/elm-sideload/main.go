package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/glorpus-work/elm-sideload/internal/cli"
	"github.com/glorpus-work/elm-sideload/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	noColor    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elm-sideload",
		Short: "Override Elm packages with alternate sources",
		Long: `elm-sideload swaps packages in the Elm compiler's global package cache
for alternate copies:
- configure: register a git repository (pinned to a commit) or local directory
- install: replace the cached copies with the registered overrides
- unload: hand the cache back to the official package repository`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if noColor {
				color.NoColor = true
			}
			level := "info"
			if verbose {
				level = "debug"
			}
			logger.InitLogger(level)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "sideload config path (default: ./elm-sideload.json)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor

	// Add subcommands
	cmd.AddCommand(
		cli.NewInitCmd(),
		cli.NewConfigureCmd(),
		cli.NewInstallCmd(),
		cli.NewUnloadCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
