package os

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "pad.lock")

	a, err := NewFileLock(path)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewFileLock(path)
	if err != nil {
		t.Fatal(err)
	}

	if err = a.TryLock(); err != nil {
		t.Fatalf("first lock: %v", err)
	}
	if err = b.TryLock(); !errors.Is(err, ErrLocked) {
		t.Errorf("second lock = %v, want %v", err, ErrLocked)
	}
	if err = a.Unlock(); err != nil {
		t.Fatal(err)
	}
	if err = b.TryLock(); err != nil {
		t.Errorf("lock after unlock: %v", err)
	}
	_ = b.Unlock()
}
