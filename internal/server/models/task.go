package models

import (
	"time"

	"github.com/snowsquad/engine/internal/geo"
)

// Task is a reported snow-clearing chore: a before-photo, where it is, and
// the point value declared at creation. Points never change after creation;
// Completed moves false→true exactly once.
type Task struct {
	ID        string
	PhotoURL  string
	Location  geo.Point
	Points    int
	Completed bool
	CreatedAt time.Time
}
