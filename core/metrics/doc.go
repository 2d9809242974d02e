// Package metrics defines the Prometheus collectors exposed on /metrics.
//
// Collectors are registered on an explicit prometheus.Registerer so tests can
// use a fresh registry instead of the global default.
package metrics
