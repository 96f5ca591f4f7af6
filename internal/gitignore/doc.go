// Package gitignore appends project-specific ignore patterns to a downloaded
// .gitignore without duplicating lines that are already present.
package gitignore
