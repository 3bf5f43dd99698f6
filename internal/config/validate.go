package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if len(c.Discovery.Extensions) == 0 {
		return errors.New("discovery.extensions must include at least one extension")
	}
	if err := c.validateTranscode(); err != nil {
		return err
	}
	if err := c.validateSeparation(); err != nil {
		return err
	}
	if !strings.Contains(c.Download.OutputTemplate, "%(") {
		return fmt.Errorf("download.output_template %q must contain at least one %%(field)s placeholder", c.Download.OutputTemplate)
	}
	if !filepath.IsAbs(c.Paths.LockDir) {
		return fmt.Errorf("paths.lock_dir %q must be an absolute path", c.Paths.LockDir)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateTools() error {
	fields := []struct {
		key   string
		value string
	}{
		{"tools.downloader", c.Tools.Downloader},
		{"tools.transcoder", c.Tools.Transcoder},
		{"tools.separator", c.Tools.Separator},
	}
	for _, field := range fields {
		if field.value == "" {
			return fmt.Errorf("%s must be set", field.key)
		}
	}
	return nil
}

func (c *Config) validateTranscode() error {
	if c.Transcode.Codec == "" {
		return errors.New("transcode.codec must be set")
	}
	if c.Transcode.SampleRate <= 0 {
		return errors.New("transcode.sample_rate must be positive")
	}
	if c.Transcode.Channels <= 0 {
		return errors.New("transcode.channels must be positive")
	}
	return nil
}

func (c *Config) validateSeparation() error {
	subdir := c.Separation.Subdir
	if filepath.IsAbs(subdir) || strings.Contains(subdir, "..") {
		return fmt.Errorf("separation.subdir %q must be a relative directory inside the output directory", subdir)
	}
	return nil
}
