package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unitykit-labs/unitykit/internal/ui"
)

var (
	setupRemote string
	setupOnly   []string
	setupSkip   []string
)

func init() {
	setupCmd.Flags().StringVar(&setupRemote, "remote", "", "Remote repository URL (default: remote_url config)")
	setupCmd.Flags().StringSliceVar(&setupOnly, "only", nil, "Create only these folder categories")
	setupCmd.Flags().StringSliceVar(&setupSkip, "skip", nil, "Skip these folder categories")
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run every scaffolding step in order",
	Long: `Create the folders, download .gitignore, initialize Git, download the
script templates, and sync packages, in the same order as the panel buttons.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := folderSelection(setupOnly, setupSkip)
		if err != nil {
			return err
		}
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.setup(cmd.Context(), ui.PanelState{Folders: sel, RemoteURL: setupRemote})
	},
}

// setupActions is the panel button order. Resolve is left out because the
// package sync already ends with one.
var setupActions = []ui.Action{
	ui.ActionCreateFolders,
	ui.ActionDownloadGitignore,
	ui.ActionInitGit,
	ui.ActionDownloadScripts,
	ui.ActionAddPackages,
}

func (s *session) setup(ctx context.Context, state ui.PanelState) error {
	progress := ui.NewProgress(s.out, len(setupActions))
	for _, a := range setupActions {
		progress.Step(a.String())
		if err := s.run(ctx, a, state); err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}
	}
	progress.Log("Project setup complete.")
	return nil
}

// run executes the workflow behind a panel button.
func (s *session) run(ctx context.Context, a ui.Action, state ui.PanelState) error {
	switch a {
	case ui.ActionCreateFolders:
		return s.createFolders(state.Folders)
	case ui.ActionDownloadGitignore:
		return s.downloadGitignore(ctx)
	case ui.ActionInitGit:
		return s.initGit(ctx, state.RemoteURL)
	case ui.ActionDownloadScripts:
		return s.downloadScripts(ctx)
	case ui.ActionAddPackages:
		return s.syncPackages(ctx)
	case ui.ActionResolvePackages:
		return s.resolvePackages(ctx)
	default:
		return fmt.Errorf("unknown action %d", a)
	}
}
