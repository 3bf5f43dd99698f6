// Package services defines shared utilities consumed by the pipeline stages and
// the external tool clients.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging.
//   - Sentinel error markers plus the Wrap helper, so callers can tell a usage
//     mistake from a failed download with errors.Is.
//
// The tool clients live in subpackages (ytdlp, ffmpeg, demucs) and all execute
// through the runner package so exit status handling is identical across them.
package services
