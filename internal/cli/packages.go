package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unitykit-labs/unitykit/internal/upm"
)

func init() {
	packagesCmd.AddCommand(packagesSyncCmd)
	packagesCmd.AddCommand(packagesResolveCmd)
	rootCmd.AddCommand(packagesCmd)
}

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Adjust the project's Unity package dependencies",
}

var packagesSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Add and remove the standard packages, then resolve",
	Long: fmt.Sprintf(`Edit Packages/manifest.json one package at a time.

Added (latest stable version from registry_url):
  %s

Removed:
  %s

Each package is reported as it completes; a failure does not stop the rest.`,
		strings.Join(upm.DefaultAdds(), "\n  "), strings.Join(upm.DefaultRemoves(), "\n  ")),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.syncPackages(cmd.Context())
	},
}

var packagesResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Validate the manifest and trigger package resolution",
	Long: `Validate Packages/manifest.json, remove the stale packages-lock.json and,
when unity_editor is configured, run the editor in batch mode so it resolves
the packages.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.resolvePackages(cmd.Context())
	},
}
