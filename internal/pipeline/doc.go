// Package pipeline drives one track-splitter run: tool preflight, output
// directory provisioning, download, video discovery, WAV transcoding and
// optional stem separation.
//
// Stages run strictly in sequence. The first failure ends the run and is
// returned tagged with one of the markers from internal/services; artifacts
// already on disk are left in place. Every external command goes through a
// runner.Executor so tests can substitute a recorder.
package pipeline
