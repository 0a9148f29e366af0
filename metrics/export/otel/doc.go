// Package otel exports goGrant engine metrics through OpenTelemetry
// observable instruments. Counters map to Int64ObservableCounter; histogram
// buckets are exposed as cumulative Int64ObservableGauge values, since the
// engine snapshot carries pre-bucketed counts rather than raw samples.
package otel
