// Package reccache caches ranked recommendation lists in a key-value store.
// Results are recomputable, so every cache failure degrades to a recompute
// rather than an error.
package reccache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/YuvAgarwal/College-Recommendation-System/internal/db"
	"github.com/YuvAgarwal/College-Recommendation-System/internal/domain"
	"github.com/YuvAgarwal/College-Recommendation-System/internal/usecase/recommend"
)

const cacheKeyPrefix = "collegerec:rec_cache:"

// store is the consumer interface for the recommendation cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedRecommender caches ranked results keyed by the full query.
type CachedRecommender struct {
	inner      recommend.Recommender
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

var _ recommend.Recommender = (*CachedRecommender)(nil)

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner recommend.Recommender,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedRecommender {
	return &CachedRecommender{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// cacheEntry is the serialized form of one recommendation. Recommendation
// hides its record from API responses, so the cache carries it explicitly.
type cacheEntry struct {
	Record       *domain.ProgramRecord `json:"record"`
	Score        float64               `json:"score"`
	MatchDetails domain.MatchDetails   `json:"match_details"`
}

// keyPayload pins the canonical key material: every input that changes the
// ranked output must appear here.
type keyPayload struct {
	Query   domain.Query    `json:"query"`
	TopK    int             `json:"top_k"`
	Weights *domain.Weights `json:"weights,omitempty"`
}

// Recommend returns a cached ranking or delegates to the inner recommender.
func (c *CachedRecommender) Recommend(
	ctx context.Context, q domain.Query, topK int, weights *domain.Weights,
) ([]domain.Recommendation, error) {
	key, keyErr := c.cacheKey(q, topK, weights)
	if keyErr == nil {
		if recs, ok := c.getFromCache(ctx, key); ok {
			c.incCache("hit")
			return recs, nil
		}
		c.incCache("miss")
	}

	recs, err := c.inner.Recommend(ctx, q, topK, weights)
	if err != nil {
		return nil, err
	}

	if keyErr == nil {
		c.putToCache(ctx, key, recs)
	}
	return recs, nil
}

func (c *CachedRecommender) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedRecommender) cacheKey(q domain.Query, topK int, weights *domain.Weights) (string, error) {
	payload, err := json.Marshal(keyPayload{Query: q, TopK: topK, Weights: weights})
	if err != nil {
		return "", err
	}
	h := sha256.Sum256(payload)
	return cacheKeyPrefix + hex.EncodeToString(h[:]), nil
}

func (c *CachedRecommender) getFromCache(ctx context.Context, key string) ([]domain.Recommendation, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached recommendations", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var entries []cacheEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		c.logger.Warn("Failed to parse cached recommendations", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	recs := make([]domain.Recommendation, len(entries))
	for i, e := range entries {
		recs[i] = domain.Recommendation{
			Record:       e.Record,
			Score:        e.Score,
			MatchDetails: e.MatchDetails,
		}
	}
	return recs, true
}

func (c *CachedRecommender) putToCache(ctx context.Context, key string, recs []domain.Recommendation) {
	entries := make([]cacheEntry, len(recs))
	for i, r := range recs {
		entries[i] = cacheEntry{
			Record:       r.Record,
			Score:        r.Score,
			MatchDetails: r.MatchDetails,
		}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		c.logger.Warn("Failed to serialize recommendations for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache recommendations", zap.String("key", key), zap.Error(err))
	}
}
