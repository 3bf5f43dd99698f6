package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultConfigPath     = "~/.config/track-splitter/config.toml"
	projectConfigName     = "track-splitter.toml"
	defaultDownloader     = "yt-dlp"
	defaultTranscoder     = "ffmpeg"
	defaultSeparator      = "demucs"
	defaultOutputTemplate = "%(title)s [%(id)s].%(ext)s"
	defaultCodec          = "pcm_s16le"
	defaultSampleRate     = 44100
	defaultChannels       = 2
	defaultSeparationDir  = "separated"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

var defaultExtensions = []string{".mp4", ".webm"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			Downloader: defaultDownloader,
			Transcoder: defaultTranscoder,
			Separator:  defaultSeparator,
		},
		Download: Download{
			OutputTemplate: defaultOutputTemplate,
		},
		Discovery: Discovery{
			Extensions: append([]string(nil), defaultExtensions...),
		},
		Transcode: Transcode{
			Codec:      defaultCodec,
			SampleRate: defaultSampleRate,
			Channels:   defaultChannels,
		},
		Separation: Separation{
			Enabled: true,
			Subdir:  defaultSeparationDir,
		},
		Paths: Paths{
			LockDir: defaultLockDir(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultLockDir() string {
	if base, ok := os.LookupEnv("XDG_STATE_HOME"); ok && filepath.IsAbs(strings.TrimSpace(base)) {
		return filepath.Join(base, "track-splitter", "locks")
	}
	if dir, err := expandPath("~/.local/state/track-splitter/locks"); err == nil {
		return dir
	}
	return filepath.Join(os.TempDir(), "track-splitter", "locks")
}
