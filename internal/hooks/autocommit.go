// Package hooks runs the optional git auto-commit before the board opens.
package hooks

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Runner executes a command in dir and returns its combined output
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs real processes
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// AutoCommit stages everything in Dir, commits it with a timestamped
// message and optionally pushes.
type AutoCommit struct {
	Dir     string
	Push    bool
	Timeout time.Duration

	Runner Runner
	Now    func() time.Time
}

// Result captures which git steps completed
type Result struct {
	Steps []string
}

// CommitMessage returns the commit message for time t
func CommitMessage(t time.Time) string {
	return "TODO task updated on " + t.Format(time.UnixDate)
}

// Run executes the git steps in order and stops at the first failure.
// The returned Result lists the steps that succeeded.
func (h *AutoCommit) Run(ctx context.Context) (Result, error) {
	runner := h.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	now := h.Now
	if now == nil {
		now = time.Now
	}
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	steps := []struct {
		name string
		args []string
	}{
		{"add", []string{"add", "."}},
		{"commit", []string{"commit", "-m", CommitMessage(now())}},
	}
	if h.Push {
		steps = append(steps, struct {
			name string
			args []string
		}{"push", []string{"push"}})
	}

	var result Result
	for _, step := range steps {
		out, err := runner.Run(ctx, h.Dir, "git", step.args...)
		if err != nil {
			msg := strings.TrimSpace(string(out))
			if msg != "" {
				return result, fmt.Errorf("git %s failed: %w: %s", step.name, err, msg)
			}
			return result, fmt.Errorf("git %s failed: %w", step.name, err)
		}
		result.Steps = append(result.Steps, step.name)
	}

	return result, nil
}
