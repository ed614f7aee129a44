package services

import (
	"context"
	"runtime"
	"time"
)

// HealthService reports process health and build information.
type HealthService struct {
	version   string
	buildTime string
	startTime time.Time
	keySet    bool
}

// HealthStatus is the health endpoint response.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	// Degraded when no upstream credential is configured; every dataset
	// call would fail its precondition check.
	UpstreamKeySet bool   `json:"upstream_key_set"`
	GoVersion      string `json:"go_version"`
}

// NewHealthService creates the health service. keySet reflects whether an
// upstream credential was present at startup.
func NewHealthService(version, buildTime string, keySet bool) *HealthService {
	return &HealthService{
		version:   version,
		buildTime: buildTime,
		startTime: time.Now(),
		keySet:    keySet,
	}
}

// HealthCheck returns the current process health.
func (s *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	status := "healthy"
	if !s.keySet {
		status = "degraded"
	}
	return HealthStatus{
		Status:         status,
		Timestamp:      time.Now().UTC(),
		Version:        s.version,
		Uptime:         time.Since(s.startTime).Round(time.Second).String(),
		UpstreamKeySet: s.keySet,
		GoVersion:      runtime.Version(),
	}
}

// Version returns build information.
func (s *HealthService) Version() map[string]string {
	return map[string]string{
		"version":    s.version,
		"build_time": s.buildTime,
	}
}
