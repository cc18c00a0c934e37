// Package common defines shared sentinel errors used across engine layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	// ErrAlreadyCompleted is returned when the conditional completed
	// write finds the task already closed. It guards the ledger against
	// double-crediting a task.
	ErrAlreadyCompleted = errors.New("task already completed")

	// ErrUploadFailed marks photo storage failures. It is distinct from
	// classifier failures, which are absorbed into the floor score and
	// never surfaced.
	ErrUploadFailed = errors.New("photo upload failed")

	// ErrLedgerDiverged flags a completion where the task was claimed but
	// the ledger increment did not apply. The state is recoverable but
	// must never be dropped silently.
	ErrLedgerDiverged = errors.New("task and ledger updates diverged")

	// ErrScoringUnavailable is returned only when the scorer cannot
	// produce even a floor value.
	ErrScoringUnavailable = errors.New("scoring unavailable")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Generic internal flow control.
	ErrorInternal = errors.New("internal error")
)
