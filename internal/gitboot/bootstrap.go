package gitboot

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/unitykit-labs/unitykit/internal/proc"
)

// Defaults reproduce the editor extension's fixed git arguments.
const (
	DefaultBranch     = "main"
	DefaultPushBranch = "master"
	DefaultMessage    = "Initial commit"
)

// State is the terminal state of a step.
type State int

const (
	NotStarted State = iota
	Succeeded
	Failed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "not-started"
	}
}

// Step is one git invocation and its outcome.
type Step struct {
	Args   []string
	State  State
	Output *proc.Output
	Err    error
}

// Command returns the step as it would be typed after "git".
func (s Step) Command() string {
	return strings.Join(s.Args, " ")
}

// Options configures one bootstrap run.
type Options struct {
	// RemoteURL, when non-empty, is added as "origin" and pushed to.
	RemoteURL string
	// Branch is the name the default branch is renamed to.
	Branch string
	// PushBranch is the branch pushed upstream. It defaults to "master",
	// which differs from Branch unless configured otherwise.
	PushBranch string
	// Message is the initial commit message.
	Message string
}

func (o Options) withDefaults() Options {
	if o.Branch == "" {
		o.Branch = DefaultBranch
	}
	if o.PushBranch == "" {
		o.PushBranch = DefaultPushBranch
	}
	if o.Message == "" {
		o.Message = DefaultMessage
	}
	return o
}

// Plan returns the git argument lists Init will run, in order.
func (o Options) Plan() [][]string {
	o = o.withDefaults()
	plan := [][]string{
		{"init"},
		{"add", "."},
		{"branch", "-M", o.Branch},
		{"commit", "-m", o.Message},
	}
	if o.RemoteURL != "" {
		plan = append(plan,
			[]string{"remote", "add", "origin", o.RemoteURL},
			[]string{"push", "-u", "origin", o.PushBranch},
		)
	}
	return plan
}

// Bootstrapper runs the git steps in a project root.
type Bootstrapper struct {
	runner proc.Runner
	dir    string
	out    io.Writer
}

// New returns a Bootstrapper operating in dir (the project root, one level
// above Assets).
func New(runner proc.Runner, dir string, out io.Writer) *Bootstrapper {
	return &Bootstrapper{runner: runner, dir: dir, out: out}
}

// Init runs every planned step in order. A failed step is logged with its
// stderr and does not stop the following steps. The error return is non-nil
// only when ctx is cancelled before a step starts.
func (b *Bootstrapper) Init(ctx context.Context, opts Options) ([]Step, error) {
	plan := opts.Plan()
	steps := make([]Step, 0, len(plan))

	for _, args := range plan {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		step := b.run(ctx, args)
		steps = append(steps, step)
	}

	if opts.RemoteURL != "" {
		fmt.Fprintln(b.out, "Initialized a new Git repository and added remote repository.")
	} else {
		fmt.Fprintln(b.out, "Initialized a new Git repository.")
	}
	return steps, nil
}

func (b *Bootstrapper) run(ctx context.Context, args []string) Step {
	step := Step{Args: args}
	out, err := b.runner.Run(ctx, "git", args, b.dir)
	step.Output = out

	switch {
	case err != nil:
		step.State = Failed
		step.Err = err
		fmt.Fprintf(b.out, "  [FAIL] Git command '%s' failed with error:\n%v\n", step.Command(), err)
	case out.ExitCode != 0:
		step.State = Failed
		fmt.Fprintf(b.out, "  [FAIL] Git command '%s' failed with error:\n%s\n", step.Command(), strings.TrimRight(out.Stderr, "\n"))
	default:
		step.State = Succeeded
		fmt.Fprintf(b.out, "  [ OK ] Git command '%s' executed successfully.\n", step.Command())
		if s := strings.TrimRight(out.Stdout, "\n"); s != "" {
			fmt.Fprintln(b.out, s)
		}
	}
	return step
}
