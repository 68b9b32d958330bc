package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestNewValidation(t *testing.T) {
	noop := func() error { return nil }

	if _, err := New("", noop); err == nil {
		t.Error("expected error for empty path")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "candidates.txt")
	writeFile(t, path, "password\n")

	if _, err := New(path, nil); err == nil {
		t.Error("expected error for nil callback")
	}
	if _, err := New(filepath.Join(dir, "missing.txt"), noop); err == nil {
		t.Error("expected error for nonexistent file")
	}
	if _, err := New(path, noop); err != nil {
		t.Errorf("unexpected error for valid watcher: %v", err)
	}
}

func TestStartRunsInitialCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidates.txt")
	writeFile(t, path, "password\n")

	var calls atomic.Int64
	w, err := New(path, func() error {
		calls.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if calls.Load() != 1 {
		t.Errorf("expected 1 initial callback, got %d", calls.Load())
	}
}

func TestCallbackFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidates.txt")
	writeFile(t, path, "password\n")

	var calls atomic.Int64
	w, err := New(path, func() error {
		calls.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	writeFile(t, path, "password\nhunter2\n")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if calls.Load() >= 2 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Errorf("expected callback after file write, got %d calls", calls.Load())
}

func TestIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidates.txt")
	writeFile(t, path, "password\n")

	var calls atomic.Int64
	w, err := New(path, func() error {
		calls.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	writeFile(t, filepath.Join(dir, "other.txt"), "unrelated\n")

	time.Sleep(2 * debounceDelay)
	if got := calls.Load(); got != 1 {
		t.Errorf("expected only the initial callback, got %d", got)
	}
}

func TestStopIsIdempotentToWait(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidates.txt")
	writeFile(t, path, "password\n")

	w, err := New(path, func() error { return nil })
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}
