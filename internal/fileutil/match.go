package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type candidate struct {
	name    string
	modTime time.Time
}

func listMatching(dir string, exts []string) ([]candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	wanted := extensionSet(exts)
	files := make([]candidate, 0, len(entries))
	for _, entry := range entries {
		if _, ok := wanted[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}
		// Stat follows symlinks so a linked video counts with its target's mtime.
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, candidate{name: entry.Name(), modTime: info.ModTime()})
	}
	return files, nil
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "*"))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}
