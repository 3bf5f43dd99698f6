// Package runner executes external tools and normalizes their exit status into
// a single result shape: nil on success, *ExitError carrying the command name and
// exit code otherwise. Every pipeline stage goes through an Executor so tests can
// substitute a stub.
package runner
