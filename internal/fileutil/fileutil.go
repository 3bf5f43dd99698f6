package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrPermission marks directory creation that was refused for lack of access rights.
var ErrPermission = errors.New("permission denied")

// ErrNoMatch is returned by NewestMatching when no file has a wanted extension.
var ErrNoMatch = errors.New("no matching file")

// EnsureDir creates path and any missing parents. An existing directory is not
// an error. Access-right failures wrap ErrPermission.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("create directory %s: %w", path, ErrPermission)
		}
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// NewestMatching returns the most recently modified regular file directly in dir
// whose extension is one of exts (compared case-insensitively, with leading dot).
// Files with equal modification times are ordered by name so the choice is stable.
func NewestMatching(dir string, exts []string) (string, error) {
	candidates, err := listMatching(dir, exts)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w in %s (extensions: %s)", ErrNoMatch, dir, strings.Join(exts, ", "))
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].modTime.Equal(candidates[j].modTime) {
			return candidates[i].name < candidates[j].name
		}
		return candidates[i].modTime.After(candidates[j].modTime)
	})
	return filepath.Join(dir, candidates[0].name), nil
}

// FindFiles walks root and returns every regular file with one of exts, sorted.
// A missing root yields no files.
func FindFiles(root string, exts []string) ([]string, error) {
	wanted := extensionSet(exts)
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		if _, ok := wanted[strings.ToLower(filepath.Ext(entry.Name()))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}
