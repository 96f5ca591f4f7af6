package cli

import (
	"github.com/spf13/cobra"
)

var gitRemote string

func init() {
	gitInitCmd.Flags().StringVar(&gitRemote, "remote", "", "Remote repository URL to add as origin and push to (default: remote_url config)")
	gitCmd.AddCommand(gitInitCmd)
	rootCmd.AddCommand(gitCmd)
}

var gitCmd = &cobra.Command{
	Use:   "git",
	Short: "Git repository setup",
}

var gitInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a Git repository in the project root",
	Long: `Run, in the project root:

  git init
  git add .
  git branch -M <git.branch>
  git commit -m <git.message>

and, when a remote is given:

  git remote add origin <url>
  git push -u origin <git.push_branch>

A failing command is reported and the remaining commands still run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.initGit(cmd.Context(), gitRemote)
	},
}
