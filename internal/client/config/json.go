package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/scankeeper/internal/flagx"
	"github.com/dmitrijs2005/scankeeper/internal/timex"
)

// JsonConfig mirrors Config for unmarshalling. Missing keys keep the value
// already present in the target Config.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	GRPCEndpointAddr   string         `json:"grpc_endpoint_addr"`
	Transport          string         `json:"transport"`
	StorageMode        string         `json:"storage_mode"`
	RefreshInterval    timex.Duration `json:"refresh_interval"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	DatabaseFile       string         `json:"database_file"`
	LogLevel           string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config. It panics on
// unreadable files or invalid JSON.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setString(&cfg.GRPCEndpointAddr, jc.GRPCEndpointAddr)
	setString(&cfg.Transport, jc.Transport)
	setString(&cfg.StorageMode, jc.StorageMode)
	setString(&cfg.DatabaseFile, jc.DatabaseFile)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RefreshInterval.Duration > 0 {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
