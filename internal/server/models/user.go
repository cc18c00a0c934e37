package models

import "time"

// User is a ledger row: the point balance and completion counter for one
// signed-in identity. Points may legally go negative; both counters are
// changed only by atomic increments.
type User struct {
	ID             string
	Email          string
	UserName       string
	Points         int
	TasksCompleted int
	CreatedAt      time.Time
}
