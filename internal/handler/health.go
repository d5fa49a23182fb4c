package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/specterhq/specter/internal/schema"
)

// HealthCheck probes one backing dependency. The probe must respect the
// passed context's deadline.
type HealthCheck struct {
	Name  string
	Probe func(context.Context) error
}

// HealthHandler answers liveness probes from load balancers and monitors.
// The overall status degrades when any registered dependency probe fails;
// the endpoint itself always answers 200 so probers can read the body.
type HealthHandler struct {
	Service string
	Checks  []HealthCheck
}

func NewHealthHandler(service string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{Service: service, Checks: checks}
}

// Probe runs every dependency check with a short per-request budget.
func (h *HealthHandler) Probe(c echo.Context) error {
	resp := schema.HealthResponse{
		Status:  schema.HealthOK,
		Service: h.Service,
	}

	if len(h.Checks) > 0 {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		for _, check := range h.Checks {
			dep := schema.Dependency{Name: check.Name, Status: schema.HealthOK}
			if err := check.Probe(ctx); err != nil {
				dep.Status = schema.HealthError
				dep.Details = err.Error()
				resp.Status = schema.HealthDegraded
			}
			resp.Dependencies = append(resp.Dependencies, dep)
		}
	}

	return c.JSON(http.StatusOK, resp)
}
