// Package ytdlp drives the yt-dlp downloader as a child process. Format
// selection is left entirely to yt-dlp.
package ytdlp
