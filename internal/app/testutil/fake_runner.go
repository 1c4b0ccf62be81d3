// Package testutil provides shared fakes for pipeline tests.
package testutil

import (
	"context"
	"fmt"
	"os/exec"
	"sync"

	"m2t/internal/app/execx"
)

// RunnerBehavior scripts the outcome of one faked command invocation.
type RunnerBehavior func(cmd execx.Command) (execx.Result, error)

// FakeRunner is a scripted execx.Runner. Behaviors are keyed by executable
// name; unscripted executables report not-found, matching the real runner's
// behavior for a missing binary.
type FakeRunner struct {
	mu        sync.Mutex
	behaviors map[string]RunnerBehavior

	// Calls records every invocation in order.
	Calls []execx.Command
}

// NewFakeRunner creates an empty fake runner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{behaviors: make(map[string]RunnerBehavior)}
}

// Handle scripts the behavior for an executable name.
func (f *FakeRunner) Handle(name string, behavior RunnerBehavior) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.behaviors[name] = behavior
}

// Run implements execx.Runner.
func (f *FakeRunner) Run(_ context.Context, cmd execx.Command) (execx.Result, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, cmd)
	behavior, ok := f.behaviors[cmd.Name]
	f.mu.Unlock()

	if !ok {
		return execx.Result{ExitCode: -1}, NotFoundError(cmd.Name)
	}
	return behavior(cmd)
}

// CallsTo returns the recorded invocations of one executable.
func (f *FakeRunner) CallsTo(name string) []execx.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	var calls []execx.Command
	for _, c := range f.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// NotFoundError mimics os/exec's error for a missing executable.
func NotFoundError(name string) error {
	return &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// ExitError mimics the error os/exec returns for a non-zero exit.
func ExitError(code int) error {
	return fmt.Errorf("exit status %d", code)
}

// ExitWith builds a behavior that fails with the given exit code and stderr.
func ExitWith(code int, stderr string) RunnerBehavior {
	return func(execx.Command) (execx.Result, error) {
		return execx.Result{Stderr: stderr, ExitCode: code}, ExitError(code)
	}
}

// Succeed builds a behavior that exits zero with the given stdout.
func Succeed(stdout string) RunnerBehavior {
	return func(execx.Command) (execx.Result, error) {
		return execx.Result{Stdout: stdout}, nil
	}
}
