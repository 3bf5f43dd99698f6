package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools names the external executables resolved on PATH.
type Tools struct {
	Downloader string `toml:"downloader"`
	Transcoder string `toml:"transcoder"`
	Separator  string `toml:"separator"`
}

// Download contains settings for the acquisition stage.
type Download struct {
	// OutputTemplate is joined to the output directory and handed to the downloader.
	OutputTemplate string   `toml:"output_template"`
	ExtraArgs      []string `toml:"extra_args"`
}

// Discovery lists the video extensions considered after a download.
type Discovery struct {
	Extensions []string `toml:"extensions"`
}

// Transcode describes the fixed waveform format produced for the separator.
type Transcode struct {
	Codec      string `toml:"codec"`
	SampleRate int    `toml:"sample_rate"`
	Channels   int    `toml:"channels"`
}

// Separation controls the optional stem separation stage.
type Separation struct {
	Enabled   bool     `toml:"enabled"`
	Subdir    string   `toml:"subdir"`
	Model     string   `toml:"model"`
	ExtraArgs []string `toml:"extra_args"`
}

// Paths contains locations owned by the tool itself, never the output directory.
type Paths struct {
	LockDir string `toml:"lock_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config is the immutable pipeline configuration handed to a run.
type Config struct {
	Tools      Tools      `toml:"tools"`
	Download   Download   `toml:"download"`
	Discovery  Discovery  `toml:"discovery"`
	Transcode  Transcode  `toml:"transcode"`
	Separation Separation `toml:"separation"`
	Paths      Paths      `toml:"paths"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file yields
// the defaults. Load never creates files or directories.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s does not exist", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// AudioArgs renders the transcoder encoding arguments, e.g.
// -acodec pcm_s16le -ar 44100 -ac 2.
func (c *Config) AudioArgs() []string {
	return []string{
		"-acodec", c.Transcode.Codec,
		"-ar", strconv.Itoa(c.Transcode.SampleRate),
		"-ac", strconv.Itoa(c.Transcode.Channels),
	}
}

// RequiredTools lists the executables a run needs; the separator only when enabled.
func (c *Config) RequiredTools() []string {
	tools := []string{c.Tools.Downloader, c.Tools.Transcoder}
	if c.Separation.Enabled {
		tools = append(tools, c.Tools.Separator)
	}
	return tools
}

// WithoutSeparation returns a copy of the config with the separation stage disabled.
func (c Config) WithoutSeparation() Config {
	c.Separation.Enabled = false
	return c
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath resolves tilde shortcuts and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
