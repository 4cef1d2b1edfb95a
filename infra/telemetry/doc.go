// Package telemetry turns lookup phase events into OpenTelemetry spans and
// Prometheus metrics. Both types implement service.Observer.
package telemetry
