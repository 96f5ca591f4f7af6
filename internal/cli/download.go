package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(gitignoreCmd)
	rootCmd.AddCommand(scriptsCmd)
}

var gitignoreCmd = &cobra.Command{
	Use:   "gitignore",
	Short: "Download the Unity .gitignore into Assets/",
	Long: `Download .gitignore from template_base_url into Assets/.gitignore,
overwriting any existing file, then append the gitignore_extra patterns.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.downloadGitignore(cmd.Context())
	},
}

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Download the editor script templates",
	Long: `Download the script templates from template_base_url into
Assets/Project/Editor/Template. A failed download is reported and the
remaining files are still fetched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.downloadScripts(cmd.Context())
	},
}
