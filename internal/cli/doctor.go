package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/unitykit-labs/unitykit/internal/config"
	"github.com/unitykit-labs/unitykit/internal/folders"
	"github.com/unitykit-labs/unitykit/internal/project"
	"github.com/unitykit-labs/unitykit/internal/upm"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a manifest.json at the given path instead of the project's")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project and the tools unitykit relies on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}

		runToolsCheck(out)

		s, err := newSession(cmd)
		if err != nil {
			fmt.Fprintf(out, "[WARN] %v\n", err)
			return nil
		}
		runProjectCheck(out, s.paths)
		if err := runManifestCheck(out, s.paths.ManifestPath()); err != nil {
			fmt.Fprintf(out, "[WARN] %v\n", err)
		}
		return nil
	},
}

func runToolsCheck(out io.Writer) {
	fmt.Fprintln(out, "Tools check:")
	checkBinary(out, "git")

	editor := config.Get(config.KeyUnityEditor)
	if editor == "" {
		fmt.Fprintf(out, "  [INFO] %s not set; package resolution waits for the editor to open the project\n", config.KeyUnityEditor)
		return
	}
	if _, err := os.Stat(editor); err != nil {
		if path, lookErr := exec.LookPath(editor); lookErr == nil {
			fmt.Fprintf(out, "  [ OK ] Unity editor found at %s\n", path)
			return
		}
		fmt.Fprintf(out, "  [FAIL] Unity editor %s not found\n", editor)
		return
	}
	fmt.Fprintf(out, "  [ OK ] Unity editor found at %s\n", editor)
}

func checkBinary(out io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
}

func runProjectCheck(out io.Writer, paths project.Paths) {
	fmt.Fprintf(out, "Project check: %s\n", paths.Root)

	for _, c := range folders.Categories() {
		dir := filepath.Join(paths.ScaffoldRoot(), string(c))
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			fmt.Fprintf(out, "  [ OK ] %s/\n", c)
		} else {
			fmt.Fprintf(out, "  [MISS] %s/ (run `folders`)\n", c)
		}
	}

	checkFile(out, paths.GitignorePath(), "gitignore")
	checkFile(out, filepath.Join(paths.TemplateDir(), "NewScript.cs.txt"), "scripts")
	checkFile(out, filepath.Join(paths.Root, ".git"), "git init")
}

func checkFile(out io.Writer, path, fix string) {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "  [MISS] %s (run `%s`)\n", path, fix)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s\n", path)
}

func runManifestCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Manifest validation: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	result, err := upm.ValidateManifest(data)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		m, err := upm.ParseManifest(data)
		if err != nil {
			fmt.Fprintf(out, "  [ OK ] Valid manifest\n")
			return nil
		}
		fmt.Fprintf(out, "  [ OK ] Valid manifest with %d dependencies\n", len(m.Dependencies))
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
