package runner_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tracksplitter/internal/runner"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestRunPassesOutputThrough(t *testing.T) {
	script := writeScript(t, t.TempDir(), "echoer", `echo "out:$1"; echo "err:$2" >&2`)
	var stdout, stderr bytes.Buffer
	exec := &runner.CommandExecutor{Stdout: &stdout, Stderr: &stderr}

	if err := exec.Run(context.Background(), script, []string{"a", "b"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if strings.TrimSpace(stdout.String()) != "out:a" {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
	if strings.TrimSpace(stderr.String()) != "err:b" {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunReportsExitCode(t *testing.T) {
	script := writeScript(t, t.TempDir(), "failer", "exit 3")
	exec := &runner.CommandExecutor{}

	err := exec.Run(context.Background(), script, nil)
	var exitErr *runner.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if exitErr.Code != 3 {
		t.Fatalf("expected exit code 3, got %d", exitErr.Code)
	}
	if exitErr.Command != script {
		t.Fatalf("expected command %q, got %q", script, exitErr.Command)
	}
	if runner.ExitCode(err) != 3 {
		t.Fatalf("ExitCode mismatch: %d", runner.ExitCode(err))
	}
}

func TestRunMissingBinary(t *testing.T) {
	exec := &runner.CommandExecutor{}
	err := exec.Run(context.Background(), filepath.Join(t.TempDir(), "nope"), nil)
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		t.Fatalf("start failure should not be an ExitError: %v", err)
	}
	if runner.ExitCode(err) != -1 {
		t.Fatalf("expected -1 for non-exit error, got %d", runner.ExitCode(err))
	}
}

func TestRenderQuotesArguments(t *testing.T) {
	got := runner.Render("yt-dlp", []string{"-o", "/tmp/out/%(title)s [%(id)s].%(ext)s", "https://example.com/watch?v=1"})
	if !strings.HasPrefix(got, "yt-dlp -o '") {
		t.Fatalf("expected quoted template, got %q", got)
	}
	if !strings.Contains(got, "'https://example.com/watch?v=1'") {
		t.Fatalf("expected quoted url, got %q", got)
	}
}

func TestRunCancelled(t *testing.T) {
	script := writeScript(t, t.TempDir(), "sleeper", "sleep 5")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := (&runner.CommandExecutor{}).Run(ctx, script, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if runner.ExitCode(err) != -1 {
		t.Fatalf("cancellation must not look like an exit status, got %d", runner.ExitCode(err))
	}
}
