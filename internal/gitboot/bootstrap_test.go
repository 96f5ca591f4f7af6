package gitboot

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/unitykit-labs/unitykit/internal/proc"
)

type call struct {
	name string
	args []string
	dir  string
}

// fakeRunner records invocations and returns scripted exit codes keyed by
// the first git argument.
type fakeRunner struct {
	calls    []call
	exitCode map[string]int
	startErr map[string]error
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string, dir string) (*proc.Output, error) {
	f.calls = append(f.calls, call{name: name, args: args, dir: dir})
	if err := f.startErr[args[0]]; err != nil {
		return &proc.Output{}, err
	}
	code := f.exitCode[args[0]]
	out := &proc.Output{ExitCode: code, Stdout: args[0] + " done\n"}
	if code != 0 {
		out.Stderr = "fatal: " + args[0] + " broke\n"
	}
	return out, nil
}

func commands(calls []call) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = strings.Join(c.args, " ")
	}
	return out
}

func TestInit_WithoutRemote(t *testing.T) {
	runner := &fakeRunner{}
	var out bytes.Buffer
	b := New(runner, "/work/game", &out)

	steps, err := b.Init(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	want := []string{"init", "add .", "branch -M main", "commit -m Initial commit"}
	got := commands(runner.calls)
	if len(got) != 4 {
		t.Fatalf("ran %d commands, want 4: %v", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %q, want %q", i, got[i], want[i])
		}
	}
	for _, c := range runner.calls {
		if c.name != "git" || c.dir != "/work/game" {
			t.Errorf("call = %+v, want git in /work/game", c)
		}
	}
	for _, s := range steps {
		if s.State != Succeeded {
			t.Errorf("step %q state = %s", s.Command(), s.State)
		}
	}
	if !strings.Contains(out.String(), "executed successfully") {
		t.Errorf("output missing success lines:\n%s", out.String())
	}
}

func TestInit_WithRemote(t *testing.T) {
	runner := &fakeRunner{}
	b := New(runner, "/work/game", &bytes.Buffer{})

	steps, err := b.Init(context.Background(), Options{RemoteURL: "git@example.com:studio/game.git"})
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 6 {
		t.Fatalf("ran %d steps, want 6", len(steps))
	}

	got := commands(runner.calls)
	if got[4] != "remote add origin git@example.com:studio/game.git" {
		t.Errorf("step 5 = %q", got[4])
	}
	if got[5] != "push -u origin master" {
		t.Errorf("step 6 = %q", got[5])
	}
}

func TestInit_CommitMessageIsOneArgument(t *testing.T) {
	runner := &fakeRunner{}
	b := New(runner, "/p", &bytes.Buffer{})
	if _, err := b.Init(context.Background(), Options{}); err != nil {
		t.Fatal(err)
	}
	commit := runner.calls[3].args
	if len(commit) != 3 || commit[2] != "Initial commit" {
		t.Errorf("commit args = %q, want message as a single argument", commit)
	}
}

func TestInit_ConfiguredBranches(t *testing.T) {
	runner := &fakeRunner{}
	b := New(runner, "/p", &bytes.Buffer{})

	_, err := b.Init(context.Background(), Options{
		RemoteURL:  "https://example.com/game.git",
		Branch:     "trunk",
		PushBranch: "trunk",
		Message:    "Scaffold",
	})
	if err != nil {
		t.Fatal(err)
	}
	got := commands(runner.calls)
	if got[2] != "branch -M trunk" || got[3] != "commit -m Scaffold" || got[5] != "push -u origin trunk" {
		t.Errorf("commands = %v", got)
	}
}

func TestInit_FailureDoesNotHalt(t *testing.T) {
	runner := &fakeRunner{exitCode: map[string]int{"init": 128}}
	var out bytes.Buffer
	b := New(runner, "/p", &out)

	steps, err := b.Init(context.Background(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(runner.calls) != 4 {
		t.Fatalf("ran %d commands after failed init, want 4", len(runner.calls))
	}
	if steps[0].State != Failed {
		t.Errorf("init state = %s, want failed", steps[0].State)
	}
	if steps[3].State != Succeeded {
		t.Errorf("commit state = %s, want succeeded", steps[3].State)
	}
	if !strings.Contains(out.String(), "fatal: init broke") {
		t.Errorf("stderr not logged:\n%s", out.String())
	}
}

func TestInit_StartErrorIsLogged(t *testing.T) {
	runner := &fakeRunner{startErr: map[string]error{"push": errors.New("exec: \"git\": not found")}}
	var out bytes.Buffer
	b := New(runner, "/p", &out)

	steps, err := b.Init(context.Background(), Options{RemoteURL: "u"})
	if err != nil {
		t.Fatal(err)
	}
	last := steps[len(steps)-1]
	if last.State != Failed || last.Err == nil {
		t.Errorf("push step = %+v, want failed with error", last)
	}
}

func TestInit_Cancelled(t *testing.T) {
	runner := &fakeRunner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := New(runner, "/p", &bytes.Buffer{})
	if _, err := b.Init(ctx, Options{}); err == nil {
		t.Fatal("expected context error")
	}
	if len(runner.calls) != 0 {
		t.Errorf("ran %d commands after cancellation", len(runner.calls))
	}
}
