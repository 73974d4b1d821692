package models

import "time"

// Status is the derived liveness of a terminal.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// TerminalState is the liveness row kept per terminal, created by the first
// heartbeat and refreshed by every later one.
type TerminalState struct {
	TerminalID          string
	CentralLinkReported bool
	LastHeartbeatAt     *time.Time
	CreatedAt           time.Time
}

// StatusAt derives online/offline. A terminal is online only when it has
// heartbeated within window of now (inclusive) and reports its central
// link up.
func (s *TerminalState) StatusAt(now time.Time, window time.Duration) Status {
	if s == nil || s.LastHeartbeatAt == nil || !s.CentralLinkReported {
		return StatusOffline
	}
	if now.Sub(*s.LastHeartbeatAt) > window {
		return StatusOffline
	}
	return StatusOnline
}
