// Package services contains the server-side business logic: record capture
// into the edge store, terminal liveness, edge-to-central sync and the
// dashboard aggregates. Services own no connections of their own; they are
// handed the store pools and repository managers at construction and bind
// repositories per call (to the pool or to a transaction).
package services
