// Package supply holds the vocabulary shared by every tier: items, provider
// descriptors, stock records and the static catalog.
//
// It has no dependencies on transport or storage. The grpc adapters convert
// to and from these types at the edge.
package supply
