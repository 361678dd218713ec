package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}

	if _, ok, err := s.Load(BookingKey); err != nil || ok {
		t.Fatalf("fresh store should report absent, ok=%v err=%v", ok, err)
	}

	payload := []byte(`{"isAuthenticated":true,"user":{"name":"Jane","email":"jane@example.com"}}`)
	if err := s.Save(AuthKey, payload); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, ok, err := s.Load(AuthKey)
	if err != nil || !ok {
		t.Fatalf("Load after save: ok=%v err=%v", ok, err)
	}
	if string(data) != string(payload) {
		t.Fatalf("round-trip mismatch: %s", data)
	}

	if err := s.Delete(AuthKey); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok, _ := s.Load(AuthKey); ok {
		t.Fatalf("record should be gone after delete")
	}
	// Deleting again stays quiet.
	if err := s.Delete(AuthKey); err != nil {
		t.Fatalf("second Delete error: %v", err)
	}
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	if _, err := NewFileStore(dir); err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("state dir not created: %v", err)
	}
}
