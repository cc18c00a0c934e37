package discovery

import (
	"testing"
	"time"

	"github.com/snowsquad/engine/internal/geo"
	"github.com/snowsquad/engine/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

func makeTasks() []*models.Task {
	return []*models.Task{
		{
			ID:        "near-old",
			Location:  geo.Point{Latitude: 59.33, Longitude: 18.07},
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:        "far-new",
			Location:  geo.Point{Latitude: 60.17, Longitude: 24.94},
			CreatedAt: now.Add(-90 * time.Second),
		},
		{
			ID:        "mid-recent",
			Location:  geo.Point{Latitude: 59.86, Longitude: 17.64},
			CreatedAt: now.Add(-5 * time.Hour),
		},
	}
}

func ids(items []AnnotatedTask) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Task.ID)
	}
	return out
}

func TestList_SortByRecency(t *testing.T) {
	viewer := &geo.Point{Latitude: 59.3293, Longitude: 18.0686}

	got := List(makeTasks(), viewer, SortByRecency, now)
	assert.Equal(t, []string{"far-new", "mid-recent", "near-old"}, ids(got))
}

func TestList_SortByDistance(t *testing.T) {
	viewer := &geo.Point{Latitude: 59.3293, Longitude: 18.0686}

	got := List(makeTasks(), viewer, SortByDistance, now)
	assert.Equal(t, []string{"near-old", "mid-recent", "far-new"}, ids(got))

	for _, item := range got {
		require.NotNil(t, item.DistanceKm)
	}
}

func TestList_AgeLabels(t *testing.T) {
	got := List(makeTasks(), nil, SortByRecency, now)

	byID := map[string]string{}
	for _, item := range got {
		byID[item.Task.ID] = item.Age
	}
	assert.Equal(t, "1 minute ago", byID["far-new"])
	assert.Equal(t, "5 hours ago", byID["mid-recent"])
	assert.Equal(t, "2 days ago", byID["near-old"])
}

func TestList_NilViewerOmitsDistanceAndFallsBackToRecency(t *testing.T) {
	got := List(makeTasks(), nil, SortByDistance, now)

	assert.Equal(t, []string{"far-new", "mid-recent", "near-old"}, ids(got))
	for _, item := range got {
		assert.Nil(t, item.DistanceKm)
		assert.Empty(t, item.DistanceLabel())
	}
}

func TestList_DistanceLabelTwoDecimals(t *testing.T) {
	viewer := &geo.Point{Latitude: 59.3293, Longitude: 18.0686}
	got := List(makeTasks(), viewer, SortByDistance, now)

	require.NotEmpty(t, got)
	assert.Regexp(t, `^\d+\.\d{2} km$`, got[0].DistanceLabel())
}

func TestList_EmptyInput(t *testing.T) {
	got := List(nil, nil, SortByRecency, now)
	assert.Empty(t, got)
}
