package project

import (
	"os"
	"path/filepath"
	"testing"
)

func makeProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Assets", "Scenes"), 0755); err != nil {
		t.Fatal(err)
	}
	// Resolve symlinks (macOS /var -> /private/var) so comparisons hold.
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}
	return resolved
}

func TestLocate_FromRoot(t *testing.T) {
	t.Setenv("UNITYKIT_PROJECT", "")
	root := makeProject(t)

	p, err := Locate(root)
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if p.Root != root {
		t.Errorf("Root = %s, want %s", p.Root, root)
	}
	if p.Assets != filepath.Join(root, "Assets") {
		t.Errorf("Assets = %s", p.Assets)
	}
}

func TestLocate_FromNestedDir(t *testing.T) {
	t.Setenv("UNITYKIT_PROJECT", "")
	root := makeProject(t)

	p, err := Locate(filepath.Join(root, "Assets", "Scenes"))
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if p.Root != root {
		t.Errorf("Root = %s, want %s", p.Root, root)
	}
}

func TestLocate_EnvOverride(t *testing.T) {
	root := makeProject(t)
	t.Setenv("UNITYKIT_PROJECT", root)

	p, err := Locate(t.TempDir())
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if p.Root != root {
		t.Errorf("Root = %s, want %s", p.Root, root)
	}
}

func TestLocate_NotAProject(t *testing.T) {
	t.Setenv("UNITYKIT_PROJECT", "")
	if _, err := Locate(t.TempDir()); err == nil {
		t.Fatal("expected error outside a Unity project")
	}
}

func TestDerivedPaths(t *testing.T) {
	p := New("/work/game")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"scaffold root", p.ScaffoldRoot(), "/work/game/Assets/Project"},
		{"template dir", p.TemplateDir(), "/work/game/Assets/Project/Editor/Template"},
		{"gitignore", p.GitignorePath(), "/work/game/Assets/.gitignore"},
		{"manifest", p.ManifestPath(), "/work/game/Packages/manifest.json"},
		{"lock", p.LockPath(), "/work/game/Packages/packages-lock.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if filepath.ToSlash(tt.got) != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}
