package upm

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/unitykit-labs/unitykit/internal/proc"
	"github.com/unitykit-labs/unitykit/internal/project"
)

// ManifestClient is a Client that edits Packages/manifest.json directly.
type ManifestClient struct {
	paths    project.Paths
	registry *Registry
	editor   string
	runner   proc.Runner
	out      io.Writer
}

// ClientOption configures a ManifestClient.
type ClientOption func(*ManifestClient)

// WithRegistry sets the registry used to resolve versionless identifiers.
func WithRegistry(r *Registry) ClientOption {
	return func(c *ManifestClient) {
		c.registry = r
	}
}

// WithEditor makes Resolve run the Unity editor at path in batch mode.
func WithEditor(path string, runner proc.Runner) ClientOption {
	return func(c *ManifestClient) {
		c.editor = path
		c.runner = runner
	}
}

// WithOutput sets where editor output is echoed. Defaults to io.Discard.
func WithOutput(w io.Writer) ClientOption {
	return func(c *ManifestClient) {
		c.out = w
	}
}

// NewManifestClient returns a client for the project at paths.
func NewManifestClient(paths project.Paths, opts ...ClientOption) *ManifestClient {
	c := &ManifestClient{paths: paths, out: io.Discard}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add records id ("name" or "name@version") as a dependency. A versionless
// identifier is pinned to the latest stable registry version.
func (c *ManifestClient) Add(ctx context.Context, id string) error {
	name, version := SplitID(id)
	if name == "" {
		return fmt.Errorf("empty package identifier")
	}

	if version == "" {
		if c.registry == nil {
			return fmt.Errorf("no version given for %s and no registry configured", name)
		}
		v, err := c.registry.Latest(ctx, name)
		if err != nil {
			return err
		}
		version = v
	}

	m, err := LoadManifest(c.paths.ManifestPath())
	if err != nil {
		return err
	}
	m.Dependencies[name] = version
	return SaveManifest(c.paths.ManifestPath(), m)
}

// Remove deletes name from the dependencies. Removing a package the project
// does not depend on fails.
func (c *ManifestClient) Remove(_ context.Context, id string) error {
	name, _ := SplitID(id)

	m, err := LoadManifest(c.paths.ManifestPath())
	if err != nil {
		return err
	}
	if _, ok := m.Dependencies[name]; !ok {
		return fmt.Errorf("cannot remove package %s because it is not a dependency of the project", name)
	}
	delete(m.Dependencies, name)
	return SaveManifest(c.paths.ManifestPath(), m)
}

// Resolve validates the manifest, drops the stale lock file so the editor
// recomputes it, and runs the editor in batch mode when one is configured.
// It blocks until the editor exits.
func (c *ManifestClient) Resolve(ctx context.Context) error {
	data, err := os.ReadFile(c.paths.ManifestPath())
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}

	result, err := ValidateManifest(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("manifest has %d validation issue(s): %s", len(result.Issues), result.Summary())
	}

	if err := os.Remove(c.paths.LockPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale lock file: %w", err)
	}

	if c.editor == "" || c.runner == nil {
		return nil
	}

	args := []string{"-batchmode", "-quit", "-nographics", "-logFile", "-", "-projectPath", c.paths.Root}
	out, err := c.runner.Run(ctx, c.editor, args, c.paths.Root)
	if err != nil {
		return fmt.Errorf("starting unity editor: %w", err)
	}
	if s := strings.TrimSpace(out.Stdout); s != "" {
		fmt.Fprintln(c.out, s)
	}
	if out.ExitCode != 0 {
		msg := strings.TrimSpace(out.Stderr)
		if msg == "" {
			msg = "see editor log above"
		}
		return fmt.Errorf("unity editor exited with code %d: %s", out.ExitCode, msg)
	}
	return nil
}
