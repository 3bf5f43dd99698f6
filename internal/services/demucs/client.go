package demucs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tracksplitter/internal/fileutil"
	"tracksplitter/internal/runner"
)

// StemExtensions are the audio formats demucs can write stems in.
var StemExtensions = []string{".wav", ".mp3", ".flac"}

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

// WithModel selects a pretrained model (-n). Empty keeps the demucs default.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = strings.TrimSpace(model)
	}
}

// WithExtraArgs appends arguments before the output flag, e.g. --two-stems vocals.
func WithExtraArgs(args ...string) Option {
	return func(c *Client) {
		c.extraArgs = append(c.extraArgs, args...)
	}
}

// Client wraps the demucs source separation CLI.
type Client struct {
	binary    string
	model     string
	extraArgs []string
	exec      runner.Executor
}

// New constructs a separator client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("separator binary required")
	}
	client := &Client{binary: binary, exec: runner.New(nil)}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Args builds the demucs argument list; -o controls where stems are written.
func (c *Client) Args(input, outDir string) []string {
	args := make([]string, 0, len(c.extraArgs)+5)
	if c.model != "" {
		args = append(args, "-n", c.model)
	}
	args = append(args, c.extraArgs...)
	return append(args, "-o", outDir, input)
}

// Separate splits input into stems below outDir. Demucs lays them out as
// <outDir>/<model>/<track>/<stem>.wav.
func (c *Client) Separate(ctx context.Context, input, outDir string) error {
	if strings.TrimSpace(input) == "" || strings.TrimSpace(outDir) == "" {
		return errors.New("separate: input and output directory required")
	}
	if err := c.exec.Run(ctx, c.binary, c.Args(input, outDir)); err != nil {
		return fmt.Errorf("demucs separate: %w", err)
	}
	return nil
}

// Stems lists the stem files found below outDir.
func Stems(outDir string) ([]string, error) {
	return fileutil.FindFiles(outDir, StemExtensions)
}
