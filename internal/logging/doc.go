// Package logging assembles the slog loggers used by the CLI and the pipeline.
//
// It owns the console and JSON handlers, level parsing, optional file output,
// and context helpers that tag lines with the run id and stage name. Tests and
// wiring code that cannot fail use NewNop.
package logging
