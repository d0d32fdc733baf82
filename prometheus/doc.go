// Package prometheus provides a Prometheus adapter for
// github.com/telemetryhq/realip.
//
// The package exposes a Prometheus-backed implementation of realip.Metrics,
// using either the default registerer or a caller-provided registerer.
package prometheus
