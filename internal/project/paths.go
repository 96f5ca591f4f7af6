package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/unitykit-labs/unitykit/internal/branding"
)

// Directory and file name constants for the Unity project layout.
const (
	AssetsDir      = "Assets"
	PackagesDir    = "Packages"
	ScaffoldDir    = "Project"
	ManifestFile   = "manifest.json"
	LockFile       = "packages-lock.json"
	GitignoreFile  = ".gitignore"
	templateSubdir = "Editor/Template"
)

// Permission constants.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Paths holds the resolved locations of a Unity project.
type Paths struct {
	// Root is the project root, one level above Assets.
	Root string
	// Assets is <Root>/Assets.
	Assets string
}

// New returns Paths for a project rooted at root. It does not touch disk.
func New(root string) Paths {
	return Paths{Root: root, Assets: filepath.Join(root, AssetsDir)}
}

// Locate finds the Unity project containing start. The UNITYKIT_PROJECT
// environment variable wins when set; otherwise start and its parents are
// searched for a directory holding an Assets/ folder.
func Locate(start string) (Paths, error) {
	if v := os.Getenv(branding.EnvVar("PROJECT")); v != "" {
		start = v
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return Paths{}, fmt.Errorf("resolving %s: %w", start, err)
	}

	dir := abs
	for {
		if info, err := os.Stat(filepath.Join(dir, AssetsDir)); err == nil && info.IsDir() {
			return New(dir), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Paths{}, fmt.Errorf("no Unity project found at or above %s (missing %s/ directory)", abs, AssetsDir)
		}
		dir = parent
	}
}

// ScaffoldRoot returns <Assets>/Project, the parent of all category folders.
func (p Paths) ScaffoldRoot() string {
	return filepath.Join(p.Assets, ScaffoldDir)
}

// TemplateDir returns <Assets>/Project/Editor/Template.
func (p Paths) TemplateDir() string {
	return filepath.Join(p.ScaffoldRoot(), filepath.FromSlash(templateSubdir))
}

// GitignorePath returns where the downloaded .gitignore is written.
// The file lands in Assets/, matching where the editor extension put it.
func (p Paths) GitignorePath() string {
	return filepath.Join(p.Assets, GitignoreFile)
}

// ManifestPath returns <Root>/Packages/manifest.json.
func (p Paths) ManifestPath() string {
	return filepath.Join(p.Root, PackagesDir, ManifestFile)
}

// LockPath returns <Root>/Packages/packages-lock.json.
func (p Paths) LockPath() string {
	return filepath.Join(p.Root, PackagesDir, LockFile)
}
