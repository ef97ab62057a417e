package config

import "github.com/dmitrijs2005/scankeeper/internal/envx"

// parseEnv overlays SCANKEEPER_* environment variables.
func parseEnv(cfg *Config) {
	env := envx.New("SCANKEEPER")

	env.String("server_endpoint_addr", &cfg.ServerEndpointAddr)
	env.String("grpc_endpoint_addr", &cfg.GRPCEndpointAddr)
	env.String("transport", &cfg.Transport)
	env.String("storage_mode", &cfg.StorageMode)
	env.Duration("refresh_interval", &cfg.RefreshInterval)
	env.Duration("request_timeout", &cfg.RequestTimeout)
	env.String("database_file", &cfg.DatabaseFile)
	env.String("log_level", &cfg.LogLevel)
}
