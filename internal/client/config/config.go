package config

import "time"

// Transports understood by the client.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// Storage modes. Remote shares the list through the server; local keeps it
// in the client database only.
const (
	StorageRemote = "remote"
	StorageLocal  = "local"
)

// Config holds runtime settings for the ScanKeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the HTTP list endpoint.
//   - GRPCEndpointAddr: host:port of the gRPC list endpoint.
//   - Transport: "http" or "grpc".
//   - StorageMode: "remote" or "local".
//   - RefreshInterval: how often the shared list is pulled.
//   - RequestTimeout: per-request deadline for push/pull.
//   - DatabaseFile: SQLite file for the view cache and local list.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr string
	GRPCEndpointAddr   string
	Transport          string
	StorageMode        string
	RefreshInterval    time.Duration
	RequestTimeout     time.Duration
	DatabaseFile       string
	LogLevel           string
}

// Fallbacks for durations that must be positive.
const (
	defaultRefreshInterval = 3 * time.Second
	defaultRequestTimeout  = 5 * time.Second
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.GRPCEndpointAddr = "127.0.0.1:50051"
	c.Transport = TransportHTTP
	c.StorageMode = StorageRemote
	c.RefreshInterval = defaultRefreshInterval
	c.RequestTimeout = defaultRequestTimeout
	c.DatabaseFile = "scankeeper.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. Non-positive durations fall back to
// their defaults.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	cfg.fixDurations()
	return cfg
}

func (c *Config) fixDurations() {
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = defaultRefreshInterval
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
}
