package cli

import (
	"fmt"

	"github.com/glorpus-work/elm-sideload/pkg/orchestrator"
	"github.com/spf13/cobra"
)

// NewUnloadCmd creates the unload command.
func NewUnloadCmd() *cobra.Command {
	var (
		dryRun  bool
		elmHome string
	)

	cmd := &cobra.Command{
		Use:   "unload",
		Short: "Restore official packages in the package cache",
		Long: `Remove every sideloaded package from the package cache so the compiler
re-fetches the official copies on the next build. Registrations are kept, so a
later install re-applies them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUnload(cmd, dryRun, elmHome)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned changes without touching anything")
	cmd.Flags().StringVar(&elmHome, "elm-home", "", "Package cache root (defaults to ELM_HOME, then the platform default)")

	return cmd
}

func runUnload(cmd *cobra.Command, dryRun bool, elmHome string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	cfg, configDir, _, err := loadRegistry()
	if err != nil {
		return err
	}
	if len(cfg.Sideloads) == 0 {
		fmt.Println("Nothing registered; nothing to do.")
		return nil
	}

	orch := newOrchestrator(settings)
	changes, err := orch.Unload(cmd.Context(), cfg, configDir, orchestrator.UnloadOptions{DryRun: dryRun, ElmHome: elmHome})
	if err != nil {
		return err
	}
	if dryRun {
		fmt.Println("Would restore:")
	}
	printChanges(changes)
	return nil
}
