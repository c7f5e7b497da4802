package config

import (
	"strings"
	"time"
)

// Config is a parsed mockdb configuration file: static endpoints grouped by
// HTTP method plus the JSON documents to mount. Order inside each endpoint
// list and inside DB is significant; the first match wins.
type Config struct {
	// Endpoints maps an HTTP method to its static routes, tried in order.
	Endpoints map[string][]Endpoint `json:"endpoints,omitempty" yaml:"endpoints,omitempty" toml:"endpoints,omitempty"`
	// DB lists the documents to mount, tried in order.
	DB []Mount `json:"db,omitempty" yaml:"db,omitempty" toml:"db,omitempty"`
}

// Endpoint is a static route.
type Endpoint struct {
	// Path is the route template, e.g. /users/{id}.
	Path string `json:"path" yaml:"path" toml:"path"`
	// Status is the response status. Defaults to 200.
	Status int `json:"status,omitempty" yaml:"status,omitempty" toml:"status,omitempty"`
	// Body is the response body template.
	Body string `json:"body,omitempty" yaml:"body,omitempty" toml:"body,omitempty"`
	// JSON is a structured response body; the loader encodes it into Body.
	JSON any `json:"json,omitempty" yaml:"json,omitempty" toml:"json,omitempty"`
}

// Mount is a JSON document served under a path prefix. Exactly one of Data,
// JSON or File provides the initial document.
type Mount struct {
	// Path is the mount prefix, e.g. /db.
	Path string `json:"path" yaml:"path" toml:"path"`
	// Data is the document as JSON text.
	Data string `json:"data,omitempty" yaml:"data,omitempty" toml:"data,omitempty"`
	// JSON is the document given inline as structured config.
	JSON any `json:"json,omitempty" yaml:"json,omitempty" toml:"json,omitempty"`
	// File is a JSON file holding the document, relative to the config file.
	File string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"`
}

// EndpointCount returns the number of static endpoints across all methods.
func (c *Config) EndpointCount() int {
	n := 0
	for _, eps := range c.Endpoints {
		n += len(eps)
	}
	return n
}

// normalize upper-cases method keys, merging lists that differ only in case
// in sorted key order, and defaults endpoint statuses.
func (c *Config) normalize() {
	if len(c.Endpoints) == 0 {
		return
	}
	merged := make(map[string][]Endpoint, len(c.Endpoints))
	for _, method := range sortedKeys(c.Endpoints) {
		eps := c.Endpoints[method]
		for i := range eps {
			if eps[i].Status == 0 {
				eps[i].Status = DefaultStatus
			}
		}
		key := strings.ToUpper(method)
		merged[key] = append(merged[key], eps...)
	}
	c.Endpoints = merged
}

// DefaultStatus is the status of an endpoint that does not set one.
const DefaultStatus = 200

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// Host is the interface to bind, e.g. 0.0.0.0.
	Host string
	// Port is the HTTP port.
	Port int
	// MetricsAddr is the address of the Prometheus listener; empty disables it.
	MetricsAddr string
	// MaxBodySize is the largest accepted request body in bytes.
	MaxBodySize int64
	// ReadTimeout and WriteTimeout bound a single request.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns the settings used when no flags are given.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:            "0.0.0.0",
		Port:            8080,
		MaxBodySize:     10 * 1024 * 1024,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}
