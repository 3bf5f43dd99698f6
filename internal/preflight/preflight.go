package preflight

import (
	"fmt"
	"path/filepath"
	"strings"

	"tracksplitter/internal/config"
	"tracksplitter/internal/deps"
	"tracksplitter/internal/services"
)

// ArgCount is the exact number of positional arguments a run takes.
const ArgCount = 3

// Arguments are the validated positional arguments of a run.
type Arguments struct {
	OutputDir string
	URL       string
	Basename  string
}

// ParseArgs enforces the <output_dir> <url> <basename> contract and resolves the
// output directory to an absolute path. It touches nothing on disk.
func ParseArgs(args []string) (Arguments, error) {
	if len(args) != ArgCount {
		return Arguments{}, services.Wrap(services.ErrUsage, "", "", fmt.Sprintf("expected %d arguments, got %d", ArgCount, len(args)), nil)
	}
	rawDir, url, basename := args[0], args[1], args[2]
	// URL and basename are passed on verbatim; blank ones are rejected.
	switch {
	case strings.TrimSpace(rawDir) == "":
		return Arguments{}, services.Wrap(services.ErrUsage, "", "", "output directory must not be empty", nil)
	case strings.TrimSpace(url) == "":
		return Arguments{}, services.Wrap(services.ErrUsage, "", "", "youtube url must not be empty", nil)
	}
	if err := CheckBasename(basename); err != nil {
		return Arguments{}, err
	}
	outputDir, err := config.ExpandPath(rawDir)
	if err != nil {
		return Arguments{}, services.Wrap(services.ErrUsage, "", "", "resolve output directory", err)
	}
	return Arguments{OutputDir: outputDir, URL: url, Basename: basename}, nil
}

// CheckBasename rejects names that would not land directly in the output directory.
func CheckBasename(basename string) error {
	switch {
	case strings.TrimSpace(basename) == "":
		return services.Wrap(services.ErrUsage, "", "", "basename must not be empty", nil)
	case basename == "." || basename == "..":
		return services.Wrap(services.ErrUsage, "", "", fmt.Sprintf("basename %q is not a file name", basename), nil)
	case strings.ContainsRune(basename, filepath.Separator) || strings.ContainsRune(basename, '/'):
		return services.Wrap(services.ErrUsage, "", "", fmt.Sprintf("basename %q must not contain a path separator", basename), nil)
	}
	return nil
}

// Requirements lists the tools cfg needs, in pipeline order.
func Requirements(cfg *config.Config) []deps.Requirement {
	reqs := []deps.Requirement{
		{Name: "Downloader", Command: cfg.Tools.Downloader, Description: "Fetches the source video"},
		{Name: "Transcoder", Command: cfg.Tools.Transcoder, Description: "Converts the video to WAV"},
	}
	reqs = append(reqs, deps.Requirement{
		Name:        "Separator",
		Command:     cfg.Tools.Separator,
		Description: "Splits the WAV into stems",
		Optional:    !cfg.Separation.Enabled,
	})
	return reqs
}

// CheckTools verifies every required tool resolves on PATH. All missing tools
// are named in a single MissingDependency error.
func CheckTools(cfg *config.Config) ([]deps.Status, error) {
	statuses := deps.CheckBinaries(Requirements(cfg))
	if missing := deps.Missing(statuses); len(missing) > 0 {
		return statuses, services.Wrap(services.ErrMissingDependency, "preflight", "",
			fmt.Sprintf("required command not found: %s", strings.Join(missing, ", ")), nil)
	}
	return statuses, nil
}
