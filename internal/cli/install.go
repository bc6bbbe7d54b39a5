package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/glorpus-work/elm-sideload/pkg/model"
	"github.com/glorpus-work/elm-sideload/pkg/orchestrator"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var (
		dryRun  bool
		always  bool
		elmHome string
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Materialize registered overrides into the package cache",
		Long: `Replace the cached copy of every registered package with its override
source. All sources are acquired before anything is written, so one
unavailable source leaves the cache untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd, dryRun, always, elmHome)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned changes without touching anything")
	cmd.Flags().BoolVar(&always, "always", false, "Skip the confirmation prompt")
	cmd.Flags().StringVar(&elmHome, "elm-home", "", "Package cache root (defaults to ELM_HOME, then the platform default)")

	return cmd
}

func runInstall(cmd *cobra.Command, dryRun, always bool, elmHome string) error {
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
	opts := orchestrator.InstallOptions{DryRun: dryRun, ElmHome: elmHome}

	if dryRun {
		changes, err := orch.Install(cmd.Context(), cfg, configDir, opts)
		if err != nil {
			return err
		}
		fmt.Println("Would sideload:")
		printChanges(changes)
		return nil
	}

	if !always {
		fmt.Println("About to sideload:")
		for _, reg := range cfg.Sideloads {
			fmt.Printf("  %s %s <- %s\n", reg.OriginalPackageName, reg.OriginalPackageVersion, reg.SideloadedPackage.Describe())
		}
		question := fmt.Sprintf("Replace %d package(s) in the package cache?", len(cfg.Sideloads))
		if !prompter().Confirm(question, "The cached copies are replaced wholesale and restored with unload.") {
			fmt.Println("Nothing changed.")
			return nil
		}
	}

	changes, err := orch.Install(cmd.Context(), cfg, configDir, opts)
	if err != nil {
		return err
	}
	printChanges(changes)
	return nil
}

func printChanges(changes []model.AppliedChange) {
	for _, c := range changes {
		fmt.Printf("  %s %s (%s)\n",
			color.New(color.FgGreen).Sprint(c.Action),
			color.New(color.FgCyan).Sprint(c.PackageName),
			c.Source)
	}
}
