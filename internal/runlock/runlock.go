package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"tracksplitter/internal/fileutil"
)

// ErrHeld reports that another process already owns the lock.
var ErrHeld = errors.New("output directory is locked by another run")

// Lock is an advisory lock guarding one output directory.
type Lock struct {
	path string
	lock *flock.Flock
}

// PathFor returns the lock file used for target inside lockDir. The name is
// derived from the absolute target path so that distinct spellings of the same
// directory share one lock.
func PathFor(lockDir, target string) (string, error) {
	if strings.TrimSpace(lockDir) == "" {
		return "", errors.New("lock directory required")
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", target, err)
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return filepath.Join(lockDir, hex.EncodeToString(sum[:8])+".lock"), nil
}

// Acquire takes the lock for target without blocking. It returns ErrHeld when
// another run owns it.
func Acquire(lockDir, target string) (*Lock, error) {
	path, err := PathFor(lockDir, target)
	if err != nil {
		return nil, err
	}
	if err := fileutil.EnsureDir(lockDir); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrHeld, path)
	}
	return &Lock{path: path, lock: lock}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Release unlocks. The lock file is left in place.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
