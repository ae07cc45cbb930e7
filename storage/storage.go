// Package storage abstracts where uploaded note files live: a flat local
// directory by default, or Supabase Storage when deployed.
package storage

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/studyhub/studyhub-backend/config"
)

type Store interface {
	// Save writes the file and returns the object key it was stored under.
	Save(key string, r io.Reader, size int64, contentType string) (string, error)
	// Open streams a stored file back.
	Open(key string) (io.ReadCloser, error)
	// Delete removes a stored file.
	Delete(key string) error
}

// NewFromEnv picks the backend from STORAGE_BACKEND (local|supabase).
func NewFromEnv() (Store, error) {
	switch backend := config.Getenv("STORAGE_BACKEND", "local"); backend {
	case "local":
		return NewLocalStore(config.Getenv("UPLOAD_DIR", "uploads"))
	case "supabase":
		return NewSupabaseStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}
}

// ObjectKey builds the storage name for an upload: unix-millis prefix plus a
// slug of the original filename, extension preserved.
func ObjectKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	name := slug.Make(base)
	if name == "" {
		name = "note"
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), name, ext)
}
