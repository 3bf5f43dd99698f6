package ffmpeg_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tracksplitter/internal/runner"
	"tracksplitter/internal/services/ffmpeg"
)

type stubExecutor struct {
	err  error
	args [][]string
}

func (s *stubExecutor) Run(_ context.Context, _ string, args []string) error {
	s.args = append(s.args, append([]string(nil), args...))
	return s.err
}

var audioArgs = []string{"-acodec", "pcm_s16le", "-ar", "44100", "-ac", "2"}

func TestTranscodeArgs(t *testing.T) {
	exec := &stubExecutor{}
	client, err := ffmpeg.New("ffmpeg", audioArgs, ffmpeg.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := client.Transcode(context.Background(), "/out/Song [id].webm", "/out/song.wav"); err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	want := []string{"-y", "-i", "/out/Song [id].webm", "-acodec", "pcm_s16le", "-ar", "44100", "-ac", "2", "/out/song.wav"}
	if len(exec.args) != 1 || !reflect.DeepEqual(exec.args[0], want) {
		t.Fatalf("unexpected args: %q", exec.args)
	}
}

func TestTranscodeCopiesAudioArgs(t *testing.T) {
	args := append([]string(nil), audioArgs...)
	exec := &stubExecutor{}
	client, _ := ffmpeg.New("ffmpeg", args, ffmpeg.WithExecutor(exec))
	args[1] = "mutated"
	_ = client.Transcode(context.Background(), "in", "out")
	if exec.args[0][4] != "pcm_s16le" {
		t.Fatalf("client must not alias caller slice, got %q", exec.args[0])
	}
}

func TestTranscodeFailure(t *testing.T) {
	exitErr := &runner.ExitError{Command: "ffmpeg", Code: 69}
	client, _ := ffmpeg.New("ffmpeg", audioArgs, ffmpeg.WithExecutor(&stubExecutor{err: exitErr}))
	err := client.Transcode(context.Background(), "in", "out")
	if !errors.Is(err, exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := ffmpeg.New("", audioArgs); err == nil {
		t.Fatal("expected error for empty binary")
	}
	if _, err := ffmpeg.New("ffmpeg", nil); err == nil {
		t.Fatal("expected error for missing audio args")
	}
}
