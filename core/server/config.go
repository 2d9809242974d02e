package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// PublicPaths are path prefixes reachable without the API key.
	PublicPaths string `mapstructure:"public_paths" default:"/health,/metrics,/swagger"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// PublicPrefixes splits PublicPaths into trimmed, non-empty prefixes.
func (c Config) PublicPrefixes() []string {
	var prefixes []string
	for _, p := range strings.Split(c.PublicPaths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes
}
