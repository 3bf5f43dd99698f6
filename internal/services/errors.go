package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUsage             = errors.New("usage error")
	ErrMissingDependency = errors.New("missing dependency")
	ErrDirectory         = errors.New("directory error")
	ErrLock              = errors.New("lock error")
	ErrDownload          = errors.New("download error")
	ErrDiscovery         = errors.New("discovery error")
	ErrTranscode         = errors.New("transcode error")
	ErrSeparation        = errors.New("separation error")
	ErrConfiguration     = errors.New("configuration error")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrConfiguration
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsUsage reports whether err should be answered with usage text.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{stage, operation, message} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
