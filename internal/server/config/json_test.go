package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()

	t.Run("overlays present keys", func(t *testing.T) {
		path := filepath.Join(dir, "server.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"endpoint_addr_http": ":9999",
			"blob_backend": "s3",
			"s3_bucket": "scans",
			"cache_ttl": "1m"
		}`), 0o600))
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
		assert.Equal(t, BackendS3, cfg.BlobBackend)
		assert.Equal(t, "scans", cfg.S3Bucket)
		assert.Equal(t, time.Minute, cfg.CacheTTL)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC, "untouched")
	})

	t.Run("no file", func(t *testing.T) {
		os.Args = []string{"testbin"}
		cfg := &Config{EndpointAddrHTTP: ":1"}
		parseJson(cfg)
		assert.Equal(t, ":1", cfg.EndpointAddrHTTP)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"cache_ttl": true}`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
