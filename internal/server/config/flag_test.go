package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-g", "127.0.0.1:9091", "-k", "address", "-s", "s3", "-d", "db",
			"-u", "user", "-p", "password", "-b", "bucket", "-r", "us-west-1", "-e", "http://endpoint",
			"-t", "5", "-l", "debug",
		}, expected: &Config{
			EndpointAddrHTTP: "127.0.0.1:9090",
			EndpointAddrGRPC: "127.0.0.1:9091",
			KeyScope:         "address",
			BlobBackend:      "s3",
			DatabaseDSN:      "db",
			S3RootUser:       "user",
			S3RootPassword:   "password",
			S3Bucket:         "bucket",
			S3Region:         "us-west-1",
			S3BaseEndpoint:   "http://endpoint",
			CacheTTL:         5 * time.Second,
			LogLevel:         "debug",
		}},
		{name: "config flag is not ours", args: []string{"cmd", "-c", "cfg.json", "-t", "0"},
			expected: &Config{}},
		{name: "bad ttl", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
