package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tracksplitter/internal/runner"
)

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec runner.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client converts media into the waveform audio file consumed by the separator.
type Client struct {
	binary    string
	audioArgs []string
	exec      runner.Executor
}

// New constructs a transcoder client. audioArgs are the fixed encoding
// arguments, e.g. -acodec pcm_s16le -ar 44100 -ac 2.
func New(binary string, audioArgs []string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("transcoder binary required")
	}
	if len(audioArgs) == 0 {
		return nil, errors.New("audio encoding arguments required")
	}
	client := &Client{
		binary:    binary,
		audioArgs: append([]string(nil), audioArgs...),
		exec:      runner.New(nil),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Args builds the argument list. -y makes ffmpeg overwrite dest without prompting.
func (c *Client) Args(source, dest string) []string {
	args := make([]string, 0, len(c.audioArgs)+4)
	args = append(args, "-y", "-i", source)
	args = append(args, c.audioArgs...)
	return append(args, dest)
}

// Transcode writes dest from source, replacing any existing file.
func (c *Client) Transcode(ctx context.Context, source, dest string) error {
	if strings.TrimSpace(source) == "" || strings.TrimSpace(dest) == "" {
		return errors.New("transcode: source and destination required")
	}
	if err := c.exec.Run(ctx, c.binary, c.Args(source, dest)); err != nil {
		return fmt.Errorf("ffmpeg transcode: %w", err)
	}
	return nil
}
