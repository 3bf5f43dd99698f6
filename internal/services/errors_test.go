package services_test

import (
	"errors"
	"strings"
	"testing"

	"tracksplitter/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrTranscode, "transcode", "ffmpeg", "conversion failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrTranscode) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"transcode", "ffmpeg", "conversion failed", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrUsage, "", "", "expected 3 arguments", nil)
	if !services.IsUsage(err) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if err.Error() != "usage error: expected 3 arguments" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapNilMarkerDefaultsToConfiguration(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "pipeline failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestMarkersAreDistinct(t *testing.T) {
	err := services.Wrap(services.ErrDownload, "download", "", "yt-dlp failed", nil)
	for _, other := range []error{services.ErrTranscode, services.ErrSeparation, services.ErrUsage} {
		if errors.Is(err, other) {
			t.Fatalf("download error should not match %v", other)
		}
	}
}
