package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unitykit-labs/unitykit/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.unitykit/config.yaml.

Keys:
  remote_url          default remote for "git init" and "setup"
  template_base_url   where template scripts and .gitignore are downloaded from
  registry_url        Unity package registry used to pick package versions
  unity_editor        editor binary run in batch mode by "packages resolve"
  http_timeout        download timeout, e.g. 30s (0 disables)
  gitignore_extra     comma-separated patterns appended to the downloaded .gitignore
  git.branch          branch name after "git branch -M" (main)
  git.push_branch     branch pushed to origin (master)
  git.message         initial commit message`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
