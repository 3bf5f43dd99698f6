// Package ffmpeg runs the ffmpeg transcoder to extract a fixed-format WAV file
// from a downloaded video.
package ffmpeg
