// Package service runs a lookup end to end: discover the providers listed
// for an item, collect their stock concurrently, select the cheapest
// covering set and hand it back in price order.
//
// It is decoupled from network transports; the registry and providers are
// reached through the Discoverer and StockSource interfaces.
package service
