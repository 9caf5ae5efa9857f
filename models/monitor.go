package models

// HealthStatusUp is the only status treated as healthy.
const HealthStatusUp = "UP"

// HealthStatus is the body of GET /actuator/health.
type HealthStatus struct {
	Status string `json:"status"`
}

// Up reports whether the service declared itself healthy.
func (h HealthStatus) Up() bool { return h.Status == HealthStatusUp }

// MetricsIndex is the body of GET /actuator/metrics.
type MetricsIndex struct {
	Names []string `json:"names"`
}

// Preview returns at most limit names and the number left out.
func (m MetricsIndex) Preview(limit int) ([]string, int) {
	if limit < 0 || len(m.Names) <= limit {
		return m.Names, 0
	}
	return m.Names[:limit], len(m.Names) - limit
}
