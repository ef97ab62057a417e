// Package config loads runtime configuration for the ScanKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with SCANKEEPER_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the HTTP list endpoint
//	-g string   host:port of the gRPC list endpoint
//	-t string   transport: http | grpc
//	-m string   storage mode: remote | local
//	-i int      refresh interval (seconds)
//	-f string   local database file
//	-l string   log level
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8080",
//	  "transport": "http",
//	  "refresh_interval": "3s"
//	}
package config
