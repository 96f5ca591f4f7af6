// Package project locates a Unity project on disk and derives the paths the
// scaffolding workflows write to (Assets/Project, the template directory,
// Packages/manifest.json).
package project
