package gitignore

import (
	"fmt"
	"os"
	"strings"
)

// Append adds each pattern to the .gitignore at path unless a line with the
// same trimmed text already exists. The file is created when missing.
// It returns the patterns that were actually written.
func Append(path string, patterns []string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading .gitignore: %w", err)
	}

	present := make(map[string]bool)
	for _, l := range strings.Split(string(content), "\n") {
		present[strings.TrimSpace(l)] = true
	}

	var added []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || present[p] {
			continue
		}
		present[p] = true
		added = append(added, p)
	}
	if len(added) == 0 {
		return nil, nil
	}

	// Ensure there's a newline before our addition.
	suffix := strings.Join(added, "\n") + "\n"
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		suffix = "\n" + suffix
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening .gitignore for append: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(suffix); err != nil {
		return nil, fmt.Errorf("writing to .gitignore: %w", err)
	}

	return added, nil
}
