package domain

import (
	"time"

	"github.com/google/uuid"
)

type AttemptOutcome string

const (
	OutcomeSuccess AttemptOutcome = "success"
	OutcomeFailure AttemptOutcome = "failure"
)

// ProviderAttempt describes one call to one rates provider.
type ProviderAttempt struct {
	ID        uuid.UUID      `json:"id"`
	FetchID   uuid.UUID      `json:"fetch_id"`
	Provider  string         `json:"provider"`
	Position  int            `json:"position"`
	Outcome   AttemptOutcome `json:"outcome"`
	Error     string         `json:"error,omitempty"`
	ElapsedMS int64          `json:"duration_ms"`
	StartedAt time.Time      `json:"started_at"`
}

// ProviderStatus is the last health probe result for a provider.
type ProviderStatus struct {
	Provider  string    `json:"provider"`
	Healthy   bool      `json:"healthy"`
	LastError string    `json:"last_error,omitempty"`
	LatencyMS int64     `json:"latency_ms"`
	CheckedAt time.Time `json:"checked_at"`
}
