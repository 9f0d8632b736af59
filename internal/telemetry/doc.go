// Package telemetry wires the Prometheus instrumentation recorded around
// a triegraph build run.
package telemetry
