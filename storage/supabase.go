package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"

	supabase "github.com/supabase-community/storage-go"

	"github.com/studyhub/studyhub-backend/config"
)

// SupabaseStore puts uploads under notes/<key> in the uploads bucket.
type SupabaseStore struct {
	client *supabase.Client
	bucket string
}

func NewSupabaseStore() *SupabaseStore {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	return &SupabaseStore{
		client: supabase.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil),
		bucket: config.Getenv("SUPABASE_BUCKET", "uploads"),
	}
}

func (s *SupabaseStore) objectPath(key string) string {
	return "notes/" + key
}

func (s *SupabaseStore) Save(key string, r io.Reader, size int64, contentType string) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}

	options := supabase.FileOptions{ContentType: &contentType}
	if _, err := s.client.UploadFile(s.bucket, s.objectPath(key), &buf, options); err != nil {
		return "", fmt.Errorf("supabase upload: %w", err)
	}
	return key, nil
}

func (s *SupabaseStore) Open(key string) (io.ReadCloser, error) {
	data, err := s.client.DownloadFile(s.bucket, s.objectPath(key))
	if err != nil {
		return nil, fmt.Errorf("supabase download: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *SupabaseStore) Delete(key string) error {
	if _, err := s.client.RemoveFile(s.bucket, []string{s.objectPath(key)}); err != nil {
		return fmt.Errorf("supabase remove: %w", err)
	}
	return nil
}
