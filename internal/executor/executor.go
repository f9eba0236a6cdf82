// Package executor runs the shell snippets behind "command" metrics.
package executor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// Config holds parameters for one command run.
type Config struct {
	Command string
	Args    []string
	Output  io.Writer
	Workdir string
}

// ShellExecutor runs commands via /bin/sh -c.
type ShellExecutor struct {
	shell string
}

// NewShellExecutor creates a shell executor.
func NewShellExecutor() *ShellExecutor {
	return &ShellExecutor{shell: "/bin/sh"}
}

// Execute runs cfg.Command with its arguments appended. Only stdout is
// captured; stderr would end up in the status line.
func (e *ShellExecutor) Execute(ctx context.Context, cfg Config) error {
	fullCmd := cfg.Command
	if len(cfg.Args) > 0 {
		fullCmd = cfg.Command + " " + strings.Join(cfg.Args, " ")
	}

	cmd := exec.CommandContext(ctx, e.shell, "-c", fullCmd)
	cmd.Stdout = cfg.Output
	// Children that inherit stdout must not outlive the deadline
	cmd.WaitDelay = time.Second
	if cfg.Workdir != "" {
		cmd.Dir = cfg.Workdir
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("command %q timed out or cancelled", cfg.Command)
		}
		return fmt.Errorf("command %q failed: %w", cfg.Command, err)
	}

	return nil
}
