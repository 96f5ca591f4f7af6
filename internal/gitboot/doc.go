// Package gitboot initializes a Git repository for a freshly scaffolded
// project by invoking the git executable once per step. A failing step is
// logged and the remaining steps still run.
package gitboot
