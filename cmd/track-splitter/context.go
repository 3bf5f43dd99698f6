package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"tracksplitter/internal/config"
	"tracksplitter/internal/logging"
	"tracksplitter/internal/services"
)

type rootFlags struct {
	config     string
	logLevel   string
	logFormat  string
	noSeparate bool
}

type commandContext struct {
	flags *rootFlags

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once and applies flag overrides.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "", "", "load config", err)
			return
		}
		if err := c.applyOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) applyOverrides(cfg *config.Config) error {
	if level := strings.ToLower(strings.TrimSpace(c.flags.logLevel)); level != "" {
		switch level {
		case "debug", "info", "warn", "error":
			cfg.Logging.Level = level
		default:
			return services.Wrap(services.ErrUsage, "", "", fmt.Sprintf("invalid --log-level %q", c.flags.logLevel), nil)
		}
	}
	if format := strings.ToLower(strings.TrimSpace(c.flags.logFormat)); format != "" {
		switch format {
		case "console", "json":
			cfg.Logging.Format = format
		default:
			return services.Wrap(services.ErrUsage, "", "", fmt.Sprintf("invalid --log-format %q", c.flags.logFormat), nil)
		}
	}
	if c.flags.noSeparate {
		*cfg = cfg.WithoutSeparation()
	}
	return nil
}

func (c *commandContext) newLogger(out io.Writer) (*slog.Logger, func() error, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, func() error { return nil }, err
	}
	logger, closeFn, err := logging.NewFromConfig(cfg, out)
	if err != nil {
		return nil, closeFn, services.Wrap(services.ErrConfiguration, "", "", "logging", err)
	}
	return logger, closeFn, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
