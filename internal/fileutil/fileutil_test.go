package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
	"time"
)

func touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("first EnsureDir: %v", err)
	}
	before, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("second EnsureDir: %v", err)
	}
	after, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !after.IsDir() || before.Mode() != after.Mode() || !before.ModTime().Equal(after.ModTime()) {
		t.Fatalf("expected unchanged directory, before=%v after=%v", before, after)
	}
}

func TestEnsureDirPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	parent := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(parent, 0o500); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	err := EnsureDir(filepath.Join(parent, "child"))
	if !errors.Is(err, ErrPermission) {
		t.Fatalf("expected permission error, got %v", err)
	}
}

func TestEnsureDirOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := EnsureDir(path)
	if err == nil {
		t.Fatal("expected error when path is a regular file")
	}
	if errors.Is(err, ErrPermission) {
		t.Fatalf("expected generic error, got permission error: %v", err)
	}
}

func TestNewestMatchingPicksLatest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	touch(t, filepath.Join(dir, "first.mp4"), base)
	touch(t, filepath.Join(dir, "third.webm"), base.Add(2*time.Minute))
	touch(t, filepath.Join(dir, "second.mp4"), base.Add(time.Minute))
	touch(t, filepath.Join(dir, "newer.txt"), base.Add(time.Hour))
	if err := os.Mkdir(filepath.Join(dir, "dir.mp4"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := NewestMatching(dir, []string{".mp4", ".webm"})
	if err != nil {
		t.Fatalf("NewestMatching: %v", err)
	}
	if got != filepath.Join(dir, "third.webm") {
		t.Fatalf("expected third.webm, got %s", got)
	}
}

func TestNewestMatchingCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Clip.MP4"), time.Now())
	got, err := NewestMatching(dir, []string{"*.mp4"})
	if err != nil {
		t.Fatalf("NewestMatching: %v", err)
	}
	if filepath.Base(got) != "Clip.MP4" {
		t.Fatalf("unexpected match %s", got)
	}
}

func TestNewestMatchingTieBreaksByName(t *testing.T) {
	dir := t.TempDir()
	stamp := time.Now().Add(-time.Minute).Truncate(time.Second)
	touch(t, filepath.Join(dir, "b.mp4"), stamp)
	touch(t, filepath.Join(dir, "a.mp4"), stamp)

	got, err := NewestMatching(dir, []string{".mp4"})
	if err != nil {
		t.Fatalf("NewestMatching: %v", err)
	}
	if filepath.Base(got) != "a.mp4" {
		t.Fatalf("expected lexical tie-break to pick a.mp4, got %s", got)
	}
}

func TestNewestMatchingFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	elsewhere := t.TempDir()
	now := time.Now()
	touch(t, filepath.Join(dir, "local.mp4"), now.Add(-time.Hour))
	target := filepath.Join(elsewhere, "real.webm")
	touch(t, target, now)
	if err := os.Symlink(target, filepath.Join(dir, "linked.webm")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(elsewhere, "gone.mp4"), filepath.Join(dir, "dangling.mp4")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(elsewhere, filepath.Join(dir, "folder.mp4")); err != nil {
		t.Fatal(err)
	}

	got, err := NewestMatching(dir, []string{".mp4", ".webm"})
	if err != nil {
		t.Fatalf("NewestMatching: %v", err)
	}
	if got != filepath.Join(dir, "linked.webm") {
		t.Fatalf("expected symlinked video to win by its target mtime, got %s", got)
	}
}

func TestNewestMatchingNoMatch(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "notes.txt"), time.Now())
	_, err := NewestMatching(dir, []string{".mp4", ".webm"})
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestNewestMatchingNonRecursive(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(nested, "deep.mp4"), time.Now())
	if _, err := NewestMatching(dir, []string{".mp4"}); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected nested files to be ignored, got %v", err)
	}
}

func TestFindFiles(t *testing.T) {
	root := t.TempDir()
	track := filepath.Join(root, "htdemucs", "song")
	if err := os.MkdirAll(track, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"vocals.wav", "drums.wav", "notes.txt"} {
		touch(t, filepath.Join(track, name), time.Now())
	}

	got, err := FindFiles(root, []string{".wav"})
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}
	want := []string{filepath.Join(track, "drums.wav"), filepath.Join(track, "vocals.wav")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected files: got %v want %v", got, want)
	}
}

func TestFindFilesMissingRoot(t *testing.T) {
	got, err := FindFiles(filepath.Join(t.TempDir(), "absent"), []string{".wav"})
	if err != nil {
		t.Fatalf("expected no error for missing root, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no files, got %v", got)
	}
}
