// Package timefmt renders timestamps as coarse human-readable age labels
// ("5 minutes ago", "1 day ago").
package timefmt

import (
	"fmt"
	"time"
)

// Ago returns the age of t relative to now at the coarsest applicable unit:
// minutes (<60), hours (<24), days (<7), weeks (<4), months otherwise.
func Ago(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))
	weeks := days / 7
	months := days / 30

	switch {
	case minutes < 60:
		return label(minutes, "minute")
	case hours < 24:
		return label(hours, "hour")
	case days < 7:
		return label(days, "day")
	case weeks < 4:
		return label(weeks, "week")
	default:
		return label(months, "month")
	}
}

func label(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
