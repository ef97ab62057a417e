package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/scankeeper/internal/flagx"
)

func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-t", "-m", "-i", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the HTTP list endpoint")
	fs.StringVar(&cfg.GRPCEndpointAddr, "g", cfg.GRPCEndpointAddr, "address and port of the gRPC list endpoint")
	fs.StringVar(&cfg.Transport, "t", cfg.Transport, "transport: http or grpc")
	fs.StringVar(&cfg.StorageMode, "m", cfg.StorageMode, "storage mode: remote or local")
	refreshInterval := fs.Int("i", int(cfg.RefreshInterval.Seconds()), "refresh interval (in seconds)")
	fs.StringVar(&cfg.DatabaseFile, "f", cfg.DatabaseFile, "local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -i only counts in whole seconds, so an unset flag must not round a
	// sub-second interval from JSON or the environment down to zero.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.RefreshInterval = time.Duration(*refreshInterval) * time.Second
		}
	})
}
