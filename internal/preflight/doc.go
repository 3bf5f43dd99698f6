// Package preflight validates a run before anything is written to disk.
//
// ParseArgs enforces the positional argument contract, CheckTools resolves the
// downloader, transcoder and (when enabled) separator on PATH, and
// CheckDirectoryAccess confirms the provisioned output directory is usable.
package preflight
