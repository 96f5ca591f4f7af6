// Package cli defines the Cobra command tree for the unitykit CLI. Each file
// in this package registers one top-level command (folders, git, packages,
// etc.) with the root command. Commands locate the Unity project, build the
// workflow from config, and delegate the work to the internal packages.
package cli
