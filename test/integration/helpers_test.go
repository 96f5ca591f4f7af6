//go:build integration

package integration_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unitykit-labs/unitykit/internal/project"
	"github.com/unitykit-labs/unitykit/internal/proc"
)

// testEnv holds an isolated Unity project and the fake remote it talks to.
type testEnv struct {
	Paths  project.Paths
	Remote *httptest.Server
	// Origin is a bare repository standing in for the remote Git host.
	Origin string
}

// setupTestEnv creates a Unity project skeleton, a template/registry server
// and a bare origin repository. Git identity is sandboxed through the
// environment so commits work on machines without a global config.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if err := proc.EnsureGit(); err != nil {
		t.Skip("git not available")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))
	t.Setenv("GIT_AUTHOR_NAME", "unitykit")
	t.Setenv("GIT_AUTHOR_EMAIL", "unitykit@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "unitykit")
	t.Setenv("GIT_COMMITTER_EMAIL", "unitykit@example.com")

	env := &testEnv{
		Paths:  project.New(t.TempDir()),
		Origin: filepath.Join(t.TempDir(), "origin.git"),
	}

	writeFile(t, filepath.Join(env.Paths.Assets, "Scenes", "SampleScene.unity"), "%YAML 1.1\n")
	writeFile(t, env.Paths.ManifestPath(), `{
  "dependencies": {
    "com.unity.ide.rider": "3.0.31",
    "com.unity.timeline": "1.8.7",
    "com.unity.visualscripting": "1.9.4"
  },
  "testables": []
}
`)

	out, err := proc.ExecRunner{}.Run(testContext(t), "git", []string{"init", "--bare", env.Origin}, "")
	if err != nil || out.ExitCode != 0 {
		t.Fatalf("creating bare origin: %v %s", err, out.Stderr)
	}

	env.Remote = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/.gitignore":
			w.Write([]byte("/[Ll]ibrary/\n/[Tt]emp/\n"))
		case strings.HasPrefix(r.URL.Path, "/registry/"):
			w.Write([]byte(`{"dist-tags": {"latest": "1.4.0"}, "versions": {"1.3.2": {}, "1.4.0": {}}}`))
		default:
			w.Write([]byte("// " + r.URL.Path + "\n"))
		}
	}))
	t.Cleanup(env.Remote.Close)

	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s to exist: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := proc.ExecRunner{}.Run(testContext(t), "git", args, dir)
	if err != nil {
		t.Fatalf("git %s: %v", strings.Join(args, " "), err)
	}
	if out.ExitCode != 0 {
		t.Fatalf("git %s: exit %d: %s", strings.Join(args, " "), out.ExitCode, out.Stderr)
	}
	return strings.TrimSpace(out.Stdout)
}

// testContext returns a context canceled when the test finishes, like
// testing.T.Context on Go 1.24+.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
