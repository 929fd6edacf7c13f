package recommend

import (
	"context"

	"github.com/YuvAgarwal/College-Recommendation-System/internal/domain"
)

// Recommender produces a ranked recommendation list for a query. weights may
// be nil to use the model's defaults.
type Recommender interface {
	Recommend(ctx context.Context, q domain.Query, topK int, weights *domain.Weights) ([]domain.Recommendation, error)
}
