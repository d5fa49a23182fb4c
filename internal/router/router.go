// Package router wires HTTP routes to handlers and owns the error boundary
// that maps error kinds to status codes.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/specterhq/specter/internal/handler"
	"github.com/specterhq/specter/internal/schema"
)

// New builds an Echo instance with the shared validator, error handler and
// baseline middleware every service in this repository uses.
func New(corsOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = schema.NewValidator()
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	if len(corsOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: corsOrigins}))
	}
	return e
}

// RegisterHealth exposes the health probe outside the versioned API root so
// load balancers reach it without tenant or auth context.
func RegisterHealth(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/health", h.Probe)
}

// RegisterAuth registers the identity endpoints under the API root. The
// limiter guards both endpoints against credential stuffing.
func RegisterAuth(e *echo.Echo, root string, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	g := e.Group(root, limiter)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterDocuments registers the tenant-scoped document endpoints. The
// tenant resolver runs first so a bad host 404s before token validation.
func RegisterDocuments(e *echo.Echo, root string, d *handler.DocumentHandler, tenantMW, jwtMW echo.MiddlewareFunc) {
	g := e.Group(root+"/documents", tenantMW, jwtMW)
	g.GET("", d.ListDocuments)
	g.POST("", d.CreateDocument)
	g.GET("/:id", d.GetDocument)
	g.PATCH("/:id", d.UpdateDocument)
	g.DELETE("/:id", d.DeleteDocument)
}
