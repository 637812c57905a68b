package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/blog", cfg.Edge.BlogPrefix)
	assert.Equal(t, 12*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "", cfg.Storage.BlogImages.Driver)
	assert.False(t, cfg.UsesLocalStorage())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/site")
	t.Setenv("BLOG_IMAGES_STORAGE_DRIVER", "S3")
	t.Setenv("S3_BUCKET_NAME", "rta-blog")
	t.Setenv("BLOG_PREFIX", "articles/")
	t.Setenv("EXTRA_BOT_AGENTS", "mybot,otherbot")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres://u:p@db:5432/site", cfg.Database.URL)
	assert.Equal(t, DriverS3, cfg.Storage.BlogImages.Driver)
	assert.Equal(t, "rta-blog", cfg.Storage.BlogImages.Bucket)
	assert.Equal(t, "/articles", cfg.Edge.BlogPrefix)
	assert.Equal(t, []string{"mybot", "otherbot"}, cfg.Edge.ExtraBotAgents)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 7000
storage:
  logos:
    driver: local
ratelimit:
  per_minute: 3
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 3, cfg.RateLimit.PerMinute)
	assert.True(t, cfg.UsesLocalStorage())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	t.Run("s3 without bucket", func(t *testing.T) {
		cfg := base()
		cfg.Storage.BlogImages.Driver = DriverS3
		cfg.Storage.BlogImages.Bucket = ""
		assert.Error(t, cfg.Validate())
	})
	t.Run("supabase without key", func(t *testing.T) {
		cfg := base()
		cfg.Storage.Logos.Driver = DriverSupabase
		cfg.Storage.Logos.SupabaseURL = "https://x.supabase.co"
		assert.Error(t, cfg.Validate())
	})
	t.Run("unknown driver", func(t *testing.T) {
		cfg := base()
		cfg.Storage.Logos.Driver = "ftp"
		assert.Error(t, cfg.Validate())
	})
	t.Run("dev secret in production", func(t *testing.T) {
		cfg := base()
		cfg.Server.Environment = "production"
		assert.Error(t, cfg.Validate())
		cfg.Auth.SessionSecret = "a-real-secret-that-is-long-enough-000"
		assert.NoError(t, cfg.Validate())
	})
}
