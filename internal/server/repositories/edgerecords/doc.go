// Package edgerecords is the edge-side persistence layer for captured
// transactions.
//
// Rows are append-mostly: a capture inserts a pending row under the
// (terminal_id, idempotency_key) unique constraint, and the sync engine
// later flips it to synced. Nothing ever moves a row back to pending.
//
// The SQLite implementation works over a dbx.DBTX, so the same repository
// can be bound to the *sql.DB or to a *sql.Tx inside dbx.WithTx.
package edgerecords
