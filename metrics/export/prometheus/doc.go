// Package prometheus renders goGrant engine metrics in Prometheus text
// exposition format, either on demand via Render or as an http.Handler.
// It reads point-in-time snapshots and holds no state of its own.
package prometheus
