// Package proc runs external programs (git, the Unity editor) and captures
// their exit code and output streams.
package proc
