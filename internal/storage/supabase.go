package storage

import (
	"context"
	"fmt"
	"io"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
)

// SupabaseStorage stores client logos in a Supabase Storage bucket.
// The storage-go client has no context support, so ctx is not propagated.
type SupabaseStorage struct {
	client *storage_go.Client
	bucket string
}

// NewSupabaseStorage creates a SupabaseStorage. The service role key is expected
// so uploads bypass row level security.
func NewSupabaseStorage(url, apiKey, bucket string) (*SupabaseStorage, error) {
	if url == "" {
		return nil, fmt.Errorf("supabase: URL not provided")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("supabase: API key not provided")
	}
	if bucket == "" {
		return nil, fmt.Errorf("supabase: bucket not provided")
	}
	client, err := supabase.NewClient(url, apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}
	return &SupabaseStorage{client: client.Storage, bucket: bucket}, nil
}

func (s *SupabaseStorage) Save(_ context.Context, key string, data io.Reader, contentType string) (string, error) {
	upsert := false
	cacheControl := "3600"
	opts := storage_go.FileOptions{
		ContentType:  &contentType,
		CacheControl: &cacheControl,
		Upsert:       &upsert,
	}
	if _, err := s.client.UploadFile(s.bucket, key, data, opts); err != nil {
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}
	return s.client.GetPublicUrl(s.bucket, key).SignedURL, nil
}

func (s *SupabaseStorage) Delete(_ context.Context, key string) error {
	if _, err := s.client.RemoveFile(s.bucket, []string{key}); err != nil {
		return fmt.Errorf("failed to delete from supabase: %w", err)
	}
	return nil
}
