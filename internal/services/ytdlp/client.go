package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"tracksplitter/internal/runner"
)

// DefaultOutputTemplate names downloads by title and id so repeated runs against
// one directory do not collide.
const DefaultOutputTemplate = "%(title)s [%(id)s].%(ext)s"

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

// WithOutputTemplate overrides the downloader filename template.
func WithOutputTemplate(template string) Option {
	return func(c *Client) {
		if template = strings.TrimSpace(template); template != "" {
			c.template = template
		}
	}
}

// WithExtraArgs adds arguments placed before the output template, e.g. --restrict-filenames.
func WithExtraArgs(args ...string) Option {
	return func(c *Client) {
		c.extraArgs = append(c.extraArgs, args...)
	}
}

// Client wraps yt-dlp invocations.
type Client struct {
	binary    string
	template  string
	extraArgs []string
	exec      runner.Executor
}

// New constructs a downloader client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("downloader binary required")
	}
	client := &Client{
		binary:   binary,
		template: DefaultOutputTemplate,
		exec:     runner.New(nil),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Args builds the downloader argument list for url writing into outputDir.
func (c *Client) Args(url, outputDir string) []string {
	args := make([]string, 0, len(c.extraArgs)+3)
	args = append(args, c.extraArgs...)
	args = append(args, "-o", filepath.Join(outputDir, c.template), url)
	return args
}

// Download fetches url into outputDir, blocking until the downloader exits.
// The resulting file name is chosen by the downloader.
func (c *Client) Download(ctx context.Context, url, outputDir string) error {
	if strings.TrimSpace(url) == "" {
		return errors.New("download: url required")
	}
	if strings.TrimSpace(outputDir) == "" {
		return errors.New("download: output directory required")
	}
	if err := c.exec.Run(ctx, c.binary, c.Args(url, outputDir)); err != nil {
		return fmt.Errorf("yt-dlp download: %w", err)
	}
	return nil
}
