package cli

import (
	"github.com/spf13/cobra"

	"github.com/unitykit-labs/unitykit/internal/folders"
)

var (
	foldersOnly []string
	foldersSkip []string
)

func init() {
	foldersCmd.Flags().StringSliceVar(&foldersOnly, "only", nil, "Create only these categories (comma-separated)")
	foldersCmd.Flags().StringSliceVar(&foldersSkip, "skip", nil, "Skip these categories (comma-separated)")
	rootCmd.AddCommand(foldersCmd)
}

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Create the default folders under Assets/Project",
	Long: `Create Assets/Project/<Category> for each selected category:
Scripts, Materials, Music, Prefabs, Models, Textures, Editor.
Existing folders are left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := folderSelection(foldersOnly, foldersSkip)
		if err != nil {
			return err
		}
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.createFolders(sel)
	},
}

// folderSelection applies --only then --skip to the full category set.
func folderSelection(only, skip []string) (folders.Selection, error) {
	sel, err := folders.ParseSelection(only)
	if err != nil {
		return nil, err
	}
	for _, name := range skip {
		c, err := folders.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		sel[c] = false
	}
	return sel, nil
}
