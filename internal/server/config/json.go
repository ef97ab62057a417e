package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/scankeeper/internal/flagx"
	"github.com/dmitrijs2005/scankeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. CacheTTL
// uses timex.Duration so both "2s" and integer nanoseconds are accepted.
// Keys absent from the file leave the current value untouched; a cache_ttl
// of "0s" is therefore indistinguishable from a missing key.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	KeyScope         string         `json:"key_scope"`
	BlobBackend      string         `json:"blob_backend"`
	DatabaseDSN      string         `json:"database_dsn"`
	S3RootUser       string         `json:"s3_root_user"`
	S3RootPassword   string         `json:"s3_root_password"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	S3BaseEndpoint   string         `json:"s3_base_endpoint"`
	CacheTTL         timex.Duration `json:"cache_ttl"`
	LogLevel         string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config, if any, and copies its
// values into config. Unreadable files and invalid JSON panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	for dst, v := range map[*string]string{
		&config.EndpointAddrHTTP: c.EndpointAddrHTTP,
		&config.EndpointAddrGRPC: c.EndpointAddrGRPC,
		&config.KeyScope:         c.KeyScope,
		&config.BlobBackend:      c.BlobBackend,
		&config.DatabaseDSN:      c.DatabaseDSN,
		&config.S3RootUser:       c.S3RootUser,
		&config.S3RootPassword:   c.S3RootPassword,
		&config.S3Bucket:         c.S3Bucket,
		&config.S3Region:         c.S3Region,
		&config.S3BaseEndpoint:   c.S3BaseEndpoint,
		&config.LogLevel:         c.LogLevel,
	} {
		if v != "" {
			*dst = v
		}
	}
	if c.CacheTTL.Duration > 0 {
		config.CacheTTL = c.CacheTTL.Duration
	}
}
