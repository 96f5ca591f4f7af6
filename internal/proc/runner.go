package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Output captures the result of one process invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner starts a process and waits for it to exit. A non-zero exit code is
// reported through Output, not as an error; the error return is reserved for
// processes that could not be started.
type Runner interface {
	Run(ctx context.Context, name string, args []string, dir string) (*Output, error)
}

// ExecRunner runs processes with os/exec.
type ExecRunner struct{}

// Run executes name with args in dir, capturing stdout and stderr.
func (ExecRunner) Run(ctx context.Context, name string, args []string, dir string) (*Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("running %s: %w", name, err)
	}

	return output, nil
}

// EnsureGit checks that git is available on PATH.
func EnsureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
