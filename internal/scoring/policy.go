// Package scoring converts classifier detections into bounded task point
// values.
package scoring

import (
	"math"

	"github.com/snowsquad/engine/internal/server/models"
)

// Scoring bounds and calibration. ReferenceArea is the empirically chosen
// total snow area (px²) of a typical photo that maps to the maximum score.
const (
	MinPoints       = 1
	MaxPoints       = 10
	ConfidenceFloor = 0.01
	ReferenceArea   = 600000.0
)

// RewardPolicy maps detections (or their absence) to an integer point value
// in [MinPoints, MaxPoints]. imageArea is the total area of the analyzed
// image, or 0 when unknown.
type RewardPolicy interface {
	Score(detections []models.Detection, imageArea float64) int
}

// LinearAreaPolicy is the canonical policy: sum the areas of detections at or
// above the confidence floor, scale linearly against ReferenceArea, clamp,
// and round to the nearest integer. With no usable detections the same
// transform is applied to the whole-image area; with no area at all the
// floor value is returned, so every task gets a non-zero reward.
type LinearAreaPolicy struct{}

func (LinearAreaPolicy) Score(detections []models.Detection, imageArea float64) int {
	var total float64
	for _, d := range detections {
		if d.Confidence >= ConfidenceFloor {
			total += d.Area()
		}
	}

	if total <= 0 {
		if imageArea <= 0 {
			return MinPoints
		}
		total = imageArea
	}

	raw := total * MaxPoints / ReferenceArea
	raw = math.Min(raw, MaxPoints)
	raw = math.Max(raw, MinPoints)
	return int(math.Round(raw))
}
