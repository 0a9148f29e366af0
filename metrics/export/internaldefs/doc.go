// Package internaldefs holds the shared metric name table used by the
// Prometheus and OTel exporters, so both expose identical metric names and
// help text. It is not intended for direct use.
package internaldefs
