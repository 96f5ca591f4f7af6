// Package upm adds and removes Unity Package Manager dependencies.
//
// Adapter drives the fixed add/remove lists one request at a time against a
// Client. ManifestClient is the Client used outside the editor: it edits
// Packages/manifest.json directly, looks up versions in the package registry,
// and can ask a Unity editor in batch mode to resolve the result.
package upm
