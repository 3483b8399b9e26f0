package store

import (
	"path/filepath"
	"testing"
)

func TestSQLiteBlobStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteBlobStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteBlobStore: %v", err)
	}
	defer s.Close()

	if _, exists, err := s.Get("missing"); err != nil || exists {
		t.Errorf("Get missing key: exists=%v err=%v", exists, err)
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	value, exists, err := s.Get("k")
	if err != nil || !exists {
		t.Fatalf("Get: exists=%v err=%v", exists, err)
	}
	if value != "v2" {
		t.Errorf("value = %q, want v2", value)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, exists, _ := s.Get("k"); exists {
		t.Error("key still present after delete")
	}
}
