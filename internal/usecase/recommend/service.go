// Package recommend scores and ranks college program records against a user
// query with a hybrid cosine-similarity + weighted-rule scheme.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/YuvAgarwal/College-Recommendation-System/internal/domain"
	"github.com/YuvAgarwal/College-Recommendation-System/internal/metrics"
	"github.com/YuvAgarwal/College-Recommendation-System/internal/usecase/features"
)

// DefaultTopK is the result count when the caller does not ask for one.
const DefaultTopK = 5

// Service is the trained recommendation model. Train runs once at startup;
// after that the service is immutable and safe for concurrent reads with
// zero writers.
type Service struct {
	logger *zap.Logger

	records   []*domain.ProgramRecord
	matrix    [][]float64
	fees      []float64
	placement []float64
	builder   *features.Builder
	weights   domain.Weights
	trained   bool
}

var _ Recommender = (*Service)(nil)

// New creates an untrained service with the given default weight table.
// A zero table falls back to the stock defaults.
func New(logger *zap.Logger, defaults domain.Weights) (*Service, error) {
	if defaults.IsZero() {
		defaults = domain.DefaultWeights()
	}
	normalized, err := defaults.Normalized()
	if err != nil {
		return nil, fmt.Errorf("default weights: %w", err)
	}
	return &Service{logger: logger, weights: normalized}, nil
}

// Train fits the feature builder over all records and builds the feature
// matrix. One-time batch computation; the service must not serve queries
// before it completes.
func (s *Service) Train(records []*domain.ProgramRecord) error {
	if len(records) == 0 {
		return domain.ErrNoData
	}

	builder := features.NewBuilder()
	s.matrix = builder.Fit(records)
	s.records = records
	s.builder = builder

	s.fees = make([]float64, len(records))
	s.placement = make([]float64, len(records))
	for i, rec := range records {
		s.fees[i] = features.RecordFees(rec)
		s.placement[i] = features.RecordPlacement(rec)
	}

	s.trained = true
	metrics.TrainedRecords.Set(float64(len(records)))

	s.logger.Info("Model trained",
		zap.Int("records", len(records)),
		zap.Int("feature_dims", features.Dim),
	)
	return nil
}

// Trained reports whether Train has completed.
func (s *Service) Trained() bool { return s.trained }

// Records returns the number of trained records.
func (s *Service) Records() int { return len(s.records) }

// Recommend ranks every record against the query and returns the top K,
// ordered by descending score with ties broken by original record order.
// The call is pure: identical inputs on an unmodified model give identical
// output.
func (s *Service) Recommend(
	ctx context.Context, q domain.Query, topK int, weights *domain.Weights,
) ([]domain.Recommendation, error) {
	start := time.Now()

	recs, err := s.recommend(q, topK, weights)
	if err != nil {
		metrics.RecommendRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.RecommendRequestsTotal.WithLabelValues("ok").Inc()
	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	return recs, nil
}

func (s *Service) recommend(q domain.Query, topK int, weights *domain.Weights) ([]domain.Recommendation, error) {
	if !s.trained {
		return nil, domain.ErrNotTrained
	}
	if topK <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidTopK, topK)
	}

	w := s.weights
	if weights != nil {
		normalized, err := weights.Normalized()
		if err != nil {
			return nil, err
		}
		w = normalized
	}

	userVec, err := s.builder.TransformQuery(q)
	if err != nil {
		return nil, fmt.Errorf("transform query: %w", err)
	}

	scores := s.scoreAll(q, userVec, w)

	order := make([]int, len(s.records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	if topK > len(order) {
		topK = len(order)
	}

	recs := make([]domain.Recommendation, 0, topK)
	for _, idx := range order[:topK] {
		recs = append(recs, domain.Recommendation{
			Record:       s.records[idx],
			Score:        scores[idx],
			MatchDetails: matchDetails(q, s.records[idx]),
		})
	}
	return recs, nil
}

// scoreAll computes the hybrid score for every record: rescaled cosine
// similarity blended with the max-normalized weighted rule score.
func (s *Service) scoreAll(q domain.Query, userVec []float64, w domain.Weights) []float64 {
	rc := newRuleContext(q)

	cosines := make([]float64, len(s.records))
	ruleScores := make([]float64, len(s.records))
	var maxRule float64
	for i, rec := range s.records {
		// Rescale cosine from [-1,1] to [0,1].
		cosines[i] = (cosine(userVec, s.matrix[i]) + 1) / 2
		ruleScores[i] = rc.ruleScore(rec, w, s.fees[i], s.placement[i])
		if ruleScores[i] > maxRule {
			maxRule = ruleScores[i]
		}
	}

	final := make([]float64, len(s.records))
	for i := range final {
		rule := ruleScores[i]
		if maxRule > 0 {
			rule /= maxRule
		}
		final[i] = cosineShare*cosines[i] + ruleShare*rule
	}
	return final
}
