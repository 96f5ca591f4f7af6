package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unitykit-labs/unitykit/internal/branding"
	"github.com/unitykit-labs/unitykit/internal/config"
	"github.com/unitykit-labs/unitykit/internal/folders"
	"github.com/unitykit-labs/unitykit/internal/ui"
)

func init() {
	rootCmd.AddCommand(panelCmd)
}

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Open the interactive scaffolding panel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isInteractive() {
			return fmt.Errorf("the panel needs an interactive terminal; use the individual commands instead")
		}
		return runPanel(cmd)
	},
}

// runPanel shows the panel, runs the chosen workflow with the panel's
// toggles and URL, and shows the panel again until the user quits.
func runPanel(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	title := branding.DisplayName() + " - " + s.paths.Root
	state := ui.PanelState{Folders: folders.All(), RemoteURL: config.Get(config.KeyRemoteURL)}
	status := ""

	for {
		res, err := ui.RunPanel(title, status, state)
		if err != nil {
			return err
		}
		if res.Action == ui.ActionNone {
			return nil
		}
		state = res.State

		fmt.Fprintf(s.out, "==> %s\n", res.Action)
		if err := s.run(ctx, res.Action, state); err != nil {
			fmt.Fprintf(s.out, "  [FAIL] %s: %v\n", res.Action, err)
			status = res.Action.String() + " failed: " + err.Error()
		} else {
			status = res.Action.String() + " finished."
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
