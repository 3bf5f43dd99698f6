package ytdlp_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tracksplitter/internal/runner"
	"tracksplitter/internal/services/ytdlp"
)

type stubExecutor struct {
	err    error
	calls  int
	binary string
	args   []string
}

func (s *stubExecutor) Run(_ context.Context, binary string, args []string) error {
	s.calls++
	s.binary = binary
	s.args = append([]string(nil), args...)
	return s.err
}

func TestDownloadBuildsTemplateArgs(t *testing.T) {
	exec := &stubExecutor{}
	client, err := ytdlp.New("yt-dlp", ytdlp.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := client.Download(context.Background(), "https://youtu.be/abc", "/music/out"); err != nil {
		t.Fatalf("Download: %v", err)
	}
	want := []string{"-o", "/music/out/%(title)s [%(id)s].%(ext)s", "https://youtu.be/abc"}
	if !reflect.DeepEqual(exec.args, want) {
		t.Fatalf("unexpected args: got %q want %q", exec.args, want)
	}
	if exec.binary != "yt-dlp" {
		t.Fatalf("unexpected binary %q", exec.binary)
	}
}

func TestDownloadExtraArgsAndTemplate(t *testing.T) {
	exec := &stubExecutor{}
	client, err := ytdlp.New("yt-dlp",
		ytdlp.WithExecutor(exec),
		ytdlp.WithExtraArgs("--restrict-filenames"),
		ytdlp.WithOutputTemplate("%(id)s.%(ext)s"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := client.Download(context.Background(), "u", "/out"); err != nil {
		t.Fatalf("Download: %v", err)
	}
	want := []string{"--restrict-filenames", "-o", "/out/%(id)s.%(ext)s", "u"}
	if !reflect.DeepEqual(exec.args, want) {
		t.Fatalf("unexpected args: got %q want %q", exec.args, want)
	}
}

func TestDownloadPropagatesExitError(t *testing.T) {
	exitErr := &runner.ExitError{Command: "yt-dlp", Code: 1}
	client, _ := ytdlp.New("yt-dlp", ytdlp.WithExecutor(&stubExecutor{err: exitErr}))

	err := client.Download(context.Background(), "u", "/out")
	if !errors.Is(err, exitErr) {
		t.Fatalf("expected exit error to be wrapped, got %v", err)
	}
	if runner.ExitCode(err) != 1 {
		t.Fatalf("expected exit code 1, got %d", runner.ExitCode(err))
	}
}

func TestDownloadValidatesInputs(t *testing.T) {
	exec := &stubExecutor{}
	client, _ := ytdlp.New("yt-dlp", ytdlp.WithExecutor(exec))
	if err := client.Download(context.Background(), "", "/out"); err == nil {
		t.Fatal("expected error for empty url")
	}
	if err := client.Download(context.Background(), "u", " "); err == nil {
		t.Fatal("expected error for empty output dir")
	}
	if exec.calls != 0 {
		t.Fatalf("executor should not run on invalid input, calls=%d", exec.calls)
	}
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := ytdlp.New(" "); err == nil {
		t.Fatal("expected error for empty binary")
	}
}
