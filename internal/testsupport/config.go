package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"tracksplitter/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LockDir = filepath.Join(base, "locks")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithoutSeparation disables the separation stage.
func WithoutSeparation() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Separation.Enabled = false
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// makes them the only entries on PATH. If names is empty, the default
// downloader, transcoder and separator are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{b.cfg.Tools.Downloader, b.cfg.Tools.Transcoder, b.cfg.Tools.Separator}
		}
		scripts := make(map[string]string, len(names))
		for _, name := range names {
			scripts[name] = "exit 0\n"
		}
		b.t.Setenv("PATH", WriteScripts(b.t, filepath.Join(b.baseDir, "bin"), scripts))
	}
}

// WithScripts installs shell scripts keyed by command name ahead of the
// existing PATH so they can still use system utilities. Bodies run under /bin/sh.
func WithScripts(scripts map[string]string) ConfigOption {
	return func(b *configBuilder) {
		dir := WriteScripts(b.t, filepath.Join(b.baseDir, "bin"), scripts)
		b.t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	}
}

// WriteScripts writes one executable per entry into dir and returns dir.
func WriteScripts(t testing.TB, dir string, scripts map[string]string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	for name, body := range scripts {
		target := filepath.Join(dir, name)
		if err := os.WriteFile(target, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	return dir
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LockDir)
}
