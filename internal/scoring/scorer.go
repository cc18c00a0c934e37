package scoring

import (
	"context"

	"github.com/snowsquad/engine/internal/classifier"
	"github.com/snowsquad/engine/internal/common"
	"github.com/snowsquad/engine/internal/logging"
)

// Scorer runs a photo through the classifier and the reward policy.
// Classifier failures and malformed results are absorbed into the floor
// value: task creation is never blocked by classifier unavailability.
type Scorer struct {
	classifier classifier.Client
	policy     RewardPolicy
	log        logging.Logger
}

func NewScorer(c classifier.Client, policy RewardPolicy, log logging.Logger) *Scorer {
	return &Scorer{classifier: c, policy: policy, log: log}
}

// ScorePhoto returns the point value for the photo at photoURL. The error is
// non-nil only when the scorer cannot produce even a floor value.
func (s *Scorer) ScorePhoto(ctx context.Context, photoURL string) (int, error) {
	if s.classifier == nil || s.policy == nil {
		return 0, common.ErrScoringUnavailable
	}

	result, err := s.classifier.Detect(ctx, photoURL)
	if err != nil {
		s.log.Warn(ctx, "classifier unavailable, falling back to floor score",
			"photo_url", photoURL, "error", err)
		return MinPoints, nil
	}
	if result == nil {
		s.log.Warn(ctx, "classifier returned no result, falling back to floor score",
			"photo_url", photoURL)
		return MinPoints, nil
	}

	score := s.policy.Score(result.Detections, result.ImageArea())
	s.log.Debug(ctx, "photo scored",
		"photo_url", photoURL, "detections", len(result.Detections), "score", score)
	return score, nil
}
