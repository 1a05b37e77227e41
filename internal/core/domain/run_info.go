package domain

import "time"

// RunInfo records the outcome of a successful carthage run.
type RunInfo struct {
	Action      string    `json:"action,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
