package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tracksplitter/internal/logging"
	"tracksplitter/internal/pipeline"
	"tracksplitter/internal/preflight"
	"tracksplitter/internal/runner"
)

func runSplit(cmd *cobra.Command, ctx *commandContext, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	// The logger may create logging.file, so nothing touches disk until the
	// arguments and tools have been checked.
	parsed, err := preflight.ParseArgs(args)
	if err != nil {
		return err
	}
	if _, err := preflight.CheckTools(cfg); err != nil {
		return err
	}
	logger, closeLog, err := ctx.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	exec := &runner.CommandExecutor{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: logging.NewComponentLogger(logger, "runner"),
	}
	p, err := pipeline.New(cfg, pipeline.WithLogger(logger), pipeline.WithExecutor(exec))
	if err != nil {
		return err
	}
	result, err := p.Execute(cmd.Context(), pipeline.Params(parsed))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "WAV file: %s\n", result.WavPath)
	if result.StemsDir != "" {
		fmt.Fprintf(out, "Stems: %s (%d files)\n", result.StemsDir, len(result.Stems))
	}
	fmt.Fprintln(out, "Done.")
	return nil
}
