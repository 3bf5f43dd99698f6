package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"tracksplitter/internal/services"
)

const usageText = `Usage: track-splitter <output_dir> <youtube_url> <basename>
Example:
  track-splitter $PWD 'https://www.youtube.com/watch?v=Zi_XLOACo_Y' billie-jean`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err, plus the usage text for invocation mistakes.
func reportError(w io.Writer, err error) {
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, "interrupted")
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	if services.IsUsage(err) {
		fmt.Fprintln(w, usageText)
	}
}
