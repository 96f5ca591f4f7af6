package folders

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Creator makes a directory if it is missing. It reports whether the
// directory was newly created.
type Creator interface {
	EnsureDir(path string) (created bool, err error)
}

// Refresher asks the host environment to re-index assets after folders change.
type Refresher interface {
	Refresh() error
}

// OSCreator creates directories on the local filesystem.
type OSCreator struct {
	Perm os.FileMode
}

// EnsureDir creates path (and parents) unless it already exists.
func (c OSCreator) EnsureDir(path string) (bool, error) {
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", path)
		}
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	perm := c.Perm
	if perm == 0 {
		perm = 0755
	}
	if err := os.MkdirAll(path, perm); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", path, err)
	}
	return true, nil
}

// NoticeRefresher stands in for the editor's asset refresh when running
// outside Unity: the editor re-imports Assets/ the next time it gains focus.
type NoticeRefresher struct {
	W io.Writer
}

// Refresh prints a reminder that Unity will pick up the new folders.
func (r NoticeRefresher) Refresh() error {
	fmt.Fprintln(r.W, "  [INFO] Unity imports the new folders the next time the editor gains focus")
	return nil
}

// Scaffolder creates category folders under a root directory.
type Scaffolder struct {
	root      string
	creator   Creator
	refresher Refresher
	out       io.Writer
}

// NewScaffolder returns a Scaffolder writing below root (normally Assets/Project).
func NewScaffolder(root string, creator Creator, refresher Refresher, out io.Writer) *Scaffolder {
	return &Scaffolder{root: root, creator: creator, refresher: refresher, out: out}
}

// Create ensures <root>/<category> exists for every enabled category and
// returns the directories that were newly created. Filesystem errors abort.
func (s *Scaffolder) Create(sel Selection) ([]string, error) {
	var created []string
	for _, c := range sel.Enabled() {
		dir := filepath.Join(s.root, string(c))
		ok, err := s.creator.EnsureDir(dir)
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, dir)
			fmt.Fprintf(s.out, "  [ OK ] Created directory: %s\n", dir)
		}
	}

	if s.refresher != nil {
		if err := s.refresher.Refresh(); err != nil {
			return created, fmt.Errorf("refreshing assets: %w", err)
		}
	}

	fmt.Fprintln(s.out, "Selected folders created.")
	return created, nil
}
