// Package registry is the reference registry: it lists every registered
// provider under every catalog item, in registration order.
//
// The index lives in pebble over an in-memory filesystem, so it is lost on
// restart. Registrations can also be queued in an outbox that the broadcaster
// drains to Kafka.
package registry
