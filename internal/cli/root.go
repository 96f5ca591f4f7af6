package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/unitykit-labs/unitykit/internal/branding"
	"github.com/unitykit-labs/unitykit/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// projectDir is the --project flag. Empty means the working directory.
var projectDir string

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "p", "", "Unity project directory (default: search upward from the working directory)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up a fresh Unity project: it creates the Assets/Project folder tree,
downloads editor script templates and a .gitignore, adjusts the package manifest,
and initializes a Git repository.

Run without arguments in a terminal to open the interactive panel.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isInteractive() {
			return cmd.Help()
		}
		return runPanel(cmd)
	},
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Execute runs the root command with build info injected via ldflags.
// Ctrl-C cancels the running workflow before its next step.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
