// Package config handles configuration for the CLI client.
package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/secureconnect/internal/flagx"
)

// Config holds runtime settings for the SecureConnect CLI client.
type Config struct {
	// ServerEndpointAddr is the base URL of the server's HTTP API.
	ServerEndpointAddr string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:5000"
}

func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("SERVER_ADDRESS"); ok && v != "" {
		config.ServerEndpointAddr = v
	}
}

func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
