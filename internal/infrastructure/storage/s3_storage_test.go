package storage

import (
	"testing"

	infraconfig "github.com/africommerce/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStorageConfig() infraconfig.StorageConfig {
	return infraconfig.StorageConfig{
		Enabled:         true,
		Region:          "af-south-1",
		Bucket:          "africommerce-media",
		AccessKeyID:     "test-access-key",
		SecretAccessKey: "test-secret-key",
	}
}

func TestNewS3ObjectStorage(t *testing.T) {
	t.Run("creates client from valid config", func(t *testing.T) {
		s, err := NewS3ObjectStorage(validStorageConfig())
		require.NoError(t, err)
		assert.Equal(t, "africommerce-media", s.Bucket())
	})

	t.Run("derives public URL from bucket and region", func(t *testing.T) {
		s, err := NewS3ObjectStorage(validStorageConfig())
		require.NoError(t, err)
		assert.Equal(t, "https://africommerce-media.s3.af-south-1.amazonaws.com", s.publicBaseURL)
	})

	t.Run("prefers configured public base URL", func(t *testing.T) {
		cfg := validStorageConfig()
		cfg.PublicBaseURL = "https://cdn.africommerce.example/"
		s, err := NewS3ObjectStorage(cfg)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.africommerce.example", s.publicBaseURL)
	})

	t.Run("missing bucket", func(t *testing.T) {
		cfg := validStorageConfig()
		cfg.Bucket = ""
		_, err := NewS3ObjectStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("missing credentials", func(t *testing.T) {
		cfg := validStorageConfig()
		cfg.AccessKeyID = ""
		_, err := NewS3ObjectStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access key is required")
	})
}
