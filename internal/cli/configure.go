package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/glorpus-work/elm-sideload/pkg/source"
	"github.com/spf13/cobra"
)

// NewConfigureCmd creates the configure command.
func NewConfigureCmd() *cobra.Command {
	var (
		githubURL   string
		branch      string
		sha         string
		localPath   string
		archivePath string
	)

	cmd := &cobra.Command{
		Use:   "configure PACKAGE",
		Short: "Register an override source for a package",
		Long: `Register an override source for a package listed in the project's
elm.json. Remote sources are pinned to a commit immediately: a branch name is
resolved to the commit it points at right now and never stored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := source.RawInput{
				URL:         githubURL,
				Branch:      branch,
				SHA:         sha,
				Path:        localPath,
				ArchivePath: archivePath,
			}
			return runConfigure(cmd, args[0], raw)
		},
	}

	cmd.Flags().StringVar(&githubURL, "github", "", "Git repository URL to sideload from")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to pin (resolved to a commit now, requires --github)")
	cmd.Flags().StringVar(&sha, "sha", "", "Full 40-character commit id to pin (requires --github)")
	cmd.Flags().StringVar(&localPath, "local", "", "Local directory to sideload from")
	cmd.Flags().StringVar(&archivePath, "archive", "", "Local archive file to sideload from")

	return cmd
}

func runConfigure(cmd *cobra.Command, pkg string, raw source.RawInput) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	cfg, configDir, path, err := loadRegistry()
	if err != nil {
		return err
	}

	orch := newOrchestrator(settings)
	updated, reg, err := orch.Register(cmd.Context(), cfg, configDir, pkg, raw)
	if err != nil {
		return err
	}
	if err := updated.Persist(path); err != nil {
		return err
	}

	fmt.Printf("Registered %s %s -> %s\n",
		color.New(color.FgCyan).Sprint(reg.OriginalPackageName),
		reg.OriginalPackageVersion,
		reg.SideloadedPackage.Describe())
	return nil
}
