package infrastructure

import (
	"context"
	"sort"

	"weatherdash.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// SystemHealthChecker aggregates named health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// NewSystemHealthChecker creates a system health checker; nil checkers are skipped
func NewSystemHealthChecker(checkers map[string]ports.HealthChecker) *SystemHealthChecker {
	filtered := make(map[string]ports.HealthChecker, len(checkers))
	for name, checker := range checkers {
		if checker != nil {
			filtered[name] = checker
		}
	}
	return &SystemHealthChecker{checkers: filtered}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}
	return results
}

// Components returns the registered component names in order
func (s *SystemHealthChecker) Components() []string {
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Healthy reports whether every status in results is healthy
func Healthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != statusHealthy {
			return false
		}
	}
	return true
}

// UpstreamHealthChecker reports whether an upstream API is configured for use.
// It never calls the upstream, which would spend quota.
type UpstreamHealthChecker struct {
	component string
	provider  string
	baseURL   string
	apiKeySet bool
}

func NewUpstreamHealthChecker(component, provider, baseURL, apiKey string) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{
		component: component,
		provider:  provider,
		baseURL:   baseURL,
		apiKeySet: apiKey != "",
	}
}

// Check verifies the upstream is configured
func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: u.component,
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"provider":   u.provider,
			"baseURL":    u.baseURL,
			"configured": u.apiKeySet,
		},
	}
	if !u.apiKeySet {
		status.Status = statusUnhealthy
		status.Error = "API key is not configured"
	}
	return status
}

// Pinger is implemented by backends that hold a connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreHealthChecker checks a dashboard state backend
type StoreHealthChecker struct {
	name   string
	pinger Pinger
}

// NewStoreHealthChecker checks pinger when it is non-nil; local stores without a connection are always healthy
func NewStoreHealthChecker(name string, pinger Pinger) *StoreHealthChecker {
	return &StoreHealthChecker{name: name, pinger: pinger}
}

// Check verifies store connectivity
func (s *StoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "store",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"backend": s.name,
		},
	}
	if s.pinger == nil {
		return status
	}
	if err := s.pinger.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}
	status.Details["connected"] = true
	return status
}
