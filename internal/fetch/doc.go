// Package fetch downloads remote files to disk one job at a time. A failed
// job is logged and skipped; the remaining jobs still run.
package fetch
