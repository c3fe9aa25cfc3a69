// Package otelmetrics exports BasicMetrics totals through an OpenTelemetry
// Meter.
//
// [New] registers observable instruments backed by a snapshot source; a
// single callback reads the source's Snapshot on each collection cycle.
// Callers own the MeterProvider and its reader; the package takes only a
// Meter.
package otelmetrics
