// Package providerpool owns one gRPC client per provider address for the
// life of the finder process.
//
// Lookups read the pool without locking. The first lookup to need an address
// builds its client; concurrent first lookups for the same address share that
// single build. Handles are never evicted.
package providerpool
