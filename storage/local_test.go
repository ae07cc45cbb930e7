package storage

import (
	"io"
	"os"
	"regexp"
	"strings"
	"testing"
)

func TestObjectKey(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{13,}-[a-z0-9-]+\.pdf$`)

	tests := []struct {
		name     string
		original string
	}{
		{"plain name", "notes.pdf"},
		{"spaces and case", "Module 3 DBMS Notes.PDF"},
		{"path components stripped", "../../etc/passwd.pdf"},
		{"unicode name", "ганнѧ.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := ObjectKey(tt.original)
			if !pattern.MatchString(key) {
				t.Errorf("ObjectKey(%q) = %q, does not match expected shape", tt.original, key)
			}
			if strings.ContainsAny(key, "/\\ ") {
				t.Errorf("ObjectKey(%q) = %q contains separators or spaces", tt.original, key)
			}
		})
	}
}

func TestObjectKeyEmptyBase(t *testing.T) {
	key := ObjectKey(".pdf")
	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("ObjectKey(%q) = %q, want .pdf suffix", ".pdf", key)
	}
	if strings.Contains(key, "--") || strings.HasSuffix(key, "-.pdf") {
		t.Errorf("ObjectKey(%q) = %q has an empty slug", ".pdf", key)
	}
}

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error: %v", err)
	}

	content := "fake pdf bytes"
	key, err := store.Save("1700000000000-notes.pdf", strings.NewReader(content), int64(len(content)), "application/pdf")
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if key != "1700000000000-notes.pdf" {
		t.Errorf("Save() key = %q, want input key back", key)
	}

	f, err := store.Open(key)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	got, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(got) != content {
		t.Errorf("stored content = %q, want %q", got, content)
	}

	if err := store.Delete(key); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := store.Open(key); !os.IsNotExist(err) {
		t.Errorf("Open() after delete error = %v, want not-exist", err)
	}
}

func TestLocalStoreIgnoresKeyDirectories(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore() error: %v", err)
	}

	// A hostile key must not escape the upload directory.
	if _, err := store.Save("../escape.pdf", strings.NewReader("x"), 1, "application/pdf"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(dir + "/escape.pdf"); err != nil {
		t.Errorf("expected file inside upload dir: %v", err)
	}
}
