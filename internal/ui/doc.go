// Package ui holds the terminal presentation: the [k/N] progress writer used
// by the workflows and the interactive scaffolding panel.
package ui
