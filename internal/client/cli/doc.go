// Package cli is the terminal command-line client.
//
// The root command carries the connection settings as persistent flags
// (resolved through internal/client/config) and exposes:
//
//   - capture    record a checkout on the edge store
//   - heartbeat  report liveness and the central-link flag
//   - sync       push pending records to the central store
//   - agent      heartbeat loop with auto-sync and an interactive link toggle
//   - overview   dashboard totals
//   - terminals  per-terminal dashboard stats
//   - token      issue an access token for a terminal (needs the server secret)
//
// Output is plain text by default; --format json prints the raw responses.
package cli
