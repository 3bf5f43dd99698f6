// Command track-splitter downloads a YouTube video and turns its audio into
// separated stems using yt-dlp, ffmpeg and demucs.
//
//	track-splitter <output_dir> <youtube_url> <basename>
//
// The doctor subcommand reports which of the external tools resolve on PATH;
// config init and config validate manage the optional TOML configuration.
// Any failure exits with status 1.
package main
