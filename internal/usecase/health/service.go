package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the service cannot serve recommendations.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status         Status
	Checks         map[string]CheckResult
	TrainedRecords int
}

// Service coordinates health checks.
type Service struct {
	model ModelChecker
	cache CachePinger
}

// New creates a Service. cache can be nil.
func New(model ModelChecker, cache CachePinger) *Service {
	return &Service{model: model, cache: cache}
}

// Check runs health checks against all components. An untrained model makes
// the service unhealthy; a failing cache only degrades it.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	status := Healthy
	if s.model.Trained() {
		checks["model"] = CheckOK
	} else {
		checks["model"] = CheckError
		status = Unhealthy
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
			if status == Healthy {
				status = Degraded
			}
		} else {
			checks["cache"] = CheckOK
		}
	}

	return Report{
		Status:         status,
		Checks:         checks,
		TrainedRecords: s.model.Records(),
	}
}
