// Package discovery builds the browsing view over open tasks: distance from
// the viewer, coarse age labels, and recency/distance ordering.
package discovery

import (
	"fmt"
	"sort"
	"time"

	"github.com/snowsquad/engine/internal/geo"
	"github.com/snowsquad/engine/internal/server/models"
	"github.com/snowsquad/engine/internal/timefmt"
)

type SortKey string

const (
	SortByRecency  SortKey = "recency"
	SortByDistance SortKey = "distance"
)

// AnnotatedTask is a task prepared for display. DistanceKm is nil when the
// viewer's location is unknown.
type AnnotatedTask struct {
	Task       *models.Task
	DistanceKm *float64
	Age        string
}

// DistanceLabel renders the distance to 2 decimal places, or an empty string
// when the viewer's location was unavailable.
func (t AnnotatedTask) DistanceLabel() string {
	if t.DistanceKm == nil {
		return ""
	}
	return fmt.Sprintf("%.2f km", *t.DistanceKm)
}

// List annotates and orders tasks for a viewer. A nil viewer location is not
// an error: distance annotations are omitted and distance ordering falls
// back to recency.
func List(tasks []*models.Task, viewer *geo.Point, sortKey SortKey, now time.Time) []AnnotatedTask {
	annotated := make([]AnnotatedTask, 0, len(tasks))
	for _, task := range tasks {
		item := AnnotatedTask{
			Task: task,
			Age:  timefmt.Ago(task.CreatedAt, now),
		}
		if viewer != nil {
			d := geo.Distance(*viewer, task.Location)
			item.DistanceKm = &d
		}
		annotated = append(annotated, item)
	}

	if sortKey == SortByDistance && viewer != nil {
		sort.SliceStable(annotated, func(i, j int) bool {
			return *annotated[i].DistanceKm < *annotated[j].DistanceKm
		})
		return annotated
	}

	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].Task.CreatedAt.After(annotated[j].Task.CreatedAt)
	})
	return annotated
}
