// Package metrics exposes Prometheus metrics for the mock server.
//
// Collectors live on their own prometheus.Registry rather than the global
// default one, so several servers can run in one process (as tests do).
// Handler serves them for scraping, normally on the --metrics-addr listener.
package metrics
