package storage

import (
	"fmt"

	"github.com/rtaweb/backend/internal/config"
)

// Open builds the Storage selected by b.Driver. It returns (nil, nil) when the
// driver is empty so the caller can serve 503 for that feature.
func Open(b config.BucketConfig, local config.LocalStorageConfig) (Storage, error) {
	switch b.Driver {
	case "":
		return nil, nil
	case config.DriverLocal:
		return Instrument(config.DriverLocal, NewLocalStorage(local.Dir, local.URLPrefix)), nil
	case config.DriverS3:
		s, err := NewS3Storage(S3Config{
			Region:          b.Region,
			Bucket:          b.Bucket,
			AccessKeyID:     b.AccessKeyID,
			SecretAccessKey: b.SecretAccessKey,
			Endpoint:        b.Endpoint,
			PublicBaseURL:   b.PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		return Instrument(config.DriverS3, s), nil
	case config.DriverSupabase:
		s, err := NewSupabaseStorage(b.SupabaseURL, b.SupabaseKey, b.Bucket)
		if err != nil {
			return nil, err
		}
		return Instrument(config.DriverSupabase, s), nil
	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", b.Driver)
	}
}
