package ui

import (
	"fmt"
	"io"
	"sync"
)

// Progress prints a "[k/N] label" counter as sequential work advances.
type Progress struct {
	out     io.Writer
	total   int
	current int
	mu      sync.Mutex
}

// NewProgress creates a progress tracker for n steps.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Step advances the counter and prints the label for the step about to run.
func (p *Progress) Step(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.current, p.total, label)
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}
