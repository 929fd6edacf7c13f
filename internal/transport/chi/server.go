// Package chi holds the HTTP transport: handlers, auth middleware, and the
// UI text formatter.
package chi

import (
	"errors"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/YuvAgarwal/College-Recommendation-System/internal/domain"
	healthuc "github.com/YuvAgarwal/College-Recommendation-System/internal/usecase/health"
	"github.com/YuvAgarwal/College-Recommendation-System/internal/usecase/recommend"
)

// modelName identifies the scoring backend in API responses.
const modelName = "ML-Based Recommendation System"

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the recommendation API over HTTP.
type Server struct {
	recommender   recommend.Recommender
	health        *healthuc.Service
	logger        *zap.Logger
	defaultTopK   int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. defaultTopK is used when a request
// does not ask for a result count.
func NewServer(
	recommender recommend.Recommender,
	health *healthuc.Service,
	defaultTopK int,
	logger *zap.Logger,
) *Server {
	s := &Server{
		recommender: recommender,
		health:      health,
		logger:      logger,
		defaultTopK: defaultTopK,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotTrained, http.StatusServiceUnavailable),
		sentinelHandler(domain.ErrInvalidTopK, http.StatusBadRequest),
		sentinelHandler(domain.ErrInvalidWeights, http.StatusBadRequest),
	}
	return s
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chirouter.Router) {
	r.Post("/recommend", s.Recommend)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// recommendRequest is the POST /recommend body.
type recommendRequest struct {
	BoardPercentage float64            `json:"board_percentage"`
	Preferences     domain.Preferences `json:"preferences"`
	TopK            int                `json:"top_k"`
	Weights         *domain.Weights    `json:"weights"`
}

// resultItem is one ranked college in the structured result list.
type resultItem struct {
	CollegeName  string              `json:"college_name"`
	Location     string              `json:"location"`
	State        string              `json:"state"`
	Branch       string              `json:"branch"`
	CollegeType  domain.CollegeType  `json:"college_type"`
	Cutoff       domain.CutoffStats  `json:"cutoff"`
	Fees         any                 `json:"fees,omitempty"`
	Placement    any                 `json:"placement,omitempty"`
	Rating       any                 `json:"rating,omitempty"`
	Website      *string             `json:"website,omitempty"`
	Score        float64             `json:"score"`
	MatchDetails domain.MatchDetails `json:"match_details"`
}

// recommendResponse is the successful /recommend envelope. Recommendations
// carries the free-text rendering the UI displays; Results the structured
// ranked list.
type recommendResponse struct {
	Success         bool         `json:"success"`
	Model           string       `json:"model"`
	Recommendations string       `json:"recommendations"`
	Results         []resultItem `json:"results"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Recommend handles POST /recommend.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	topK := req.TopK
	if topK == 0 {
		topK = s.defaultTopK
	}

	q := domain.Query{
		BoardPercentage: req.BoardPercentage,
		Preferences:     req.Preferences,
	}

	recs, err := s.recommender.Recommend(r.Context(), q, topK, req.Weights)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]resultItem, len(recs))
	for i, rec := range recs {
		results[i] = resultItem{
			CollegeName:  rec.Record.CollegeName,
			Location:     rec.Record.Location,
			State:        rec.Record.State,
			Branch:       rec.Record.Branch,
			CollegeType:  rec.Record.CollegeType,
			Cutoff:       rec.Record.Cutoff,
			Fees:         rec.Record.Fees,
			Placement:    rec.Record.Placement,
			Rating:       rec.Record.Rating,
			Website:      rec.Record.Website,
			Score:        rec.Score,
			MatchDetails: rec.MatchDetails,
		}
	}

	writeJSON(w, http.StatusOK, recommendResponse{
		Success:         true,
		Model:           modelName,
		Recommendations: FormatRecommendations(recs, q),
		Results:         results,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":          report.Status,
		"checks":          report.Checks,
		"trained_records": report.TrainedRecords,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotTrained,
		domain.ErrInvalidTopK,
		domain.ErrInvalidWeights,
		domain.ErrNoData,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
