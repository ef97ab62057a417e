package config

import "github.com/dmitrijs2005/scankeeper/internal/envx"

// parseEnv overlays SCANKEEPER_* environment variables, e.g.
// SCANKEEPER_BLOB_BACKEND=s3.
func parseEnv(cfg *Config) {
	env := envx.New("SCANKEEPER")

	env.String("endpoint_addr_http", &cfg.EndpointAddrHTTP)
	env.String("endpoint_addr_grpc", &cfg.EndpointAddrGRPC)
	env.String("key_scope", &cfg.KeyScope)
	env.String("blob_backend", &cfg.BlobBackend)
	env.String("database_dsn", &cfg.DatabaseDSN)
	env.String("s3_root_user", &cfg.S3RootUser)
	env.String("s3_root_password", &cfg.S3RootPassword)
	env.String("s3_bucket", &cfg.S3Bucket)
	env.String("s3_region", &cfg.S3Region)
	env.String("s3_base_endpoint", &cfg.S3BaseEndpoint)
	env.Duration("cache_ttl", &cfg.CacheTTL)
	env.String("log_level", &cfg.LogLevel)
}
