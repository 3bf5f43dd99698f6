// Package config loads, normalizes, and validates track-splitter configuration.
//
// Every setting has a default (mp4/webm discovery, 16-bit 44.1 kHz stereo WAV,
// demucs enabled), so a config file is optional. When present it is TOML and may override any field.
// The returned Config is treated as immutable by the pipeline.
package config
