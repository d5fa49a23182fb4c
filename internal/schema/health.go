package schema

// HealthStatus is the overall or per-dependency health verdict.
type HealthStatus string

const (
	HealthOK       HealthStatus = "OK"
	HealthDegraded HealthStatus = "DEGRADED"
	HealthError    HealthStatus = "ERROR"
)

// Dependency reports the state of one backing service.
type Dependency struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Details string       `json:"details,omitempty"`
}

// HealthResponse is the health endpoint body. Dependencies is null when the
// service declares no probes.
type HealthResponse struct {
	Status       HealthStatus `json:"status"`
	Service      string       `json:"service"`
	Dependencies []Dependency `json:"dependencies"`
}
