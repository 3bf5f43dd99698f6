package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/alessio/shellescape"
)

// Executor runs an external command to completion.
//
// A nil error means the command exited with status 0. A command that started but
// exited non-zero yields *ExitError; failures to start are returned wrapped.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) error
}

// ExitError reports a command that ran and returned a non-zero status.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// ExitCode extracts the exit status carried by err, or -1 when err is not an ExitError.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

// Render formats a command line the way a user would type it into a shell.
func Render(binary string, args []string) string {
	return shellescape.QuoteCommand(append([]string{binary}, args...))
}

// CommandExecutor runs commands with their output passed straight through.
type CommandExecutor struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// New returns an executor attached to the process stdout and stderr.
func New(logger *slog.Logger) *CommandExecutor {
	return &CommandExecutor{Stdout: os.Stdout, Stderr: os.Stderr, Logger: logger}
}

// Run blocks until the command exits. There is no timeout; cancelling ctx kills the child.
func (e *CommandExecutor) Run(ctx context.Context, binary string, args []string) error {
	if e.Logger != nil {
		e.Logger.Debug("executing command", slog.String("command", Render(binary, args)))
	}
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdin = nil
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = io.Discard
	}
	if cmd.Stderr == nil {
		cmd.Stderr = io.Discard
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("run %s: %w", binary, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Command: binary, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("run %s: %w", binary, err)
}
