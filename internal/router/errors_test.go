package router_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specterhq/specter/internal/repository"
	"github.com/specterhq/specter/internal/router"
)

func serveError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := router.New(nil)
	e.GET("/boom", func(echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestErrorBoundary(t *testing.T) {
	t.Parallel()

	t.Run("tenant miss maps to 404 naming the host", func(t *testing.T) {
		rec := serveError(t, &repository.TenantNotFoundError{Host: "ghost.example.com"})
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"Tenant not found for host: ghost.example.com"}`, rec.Body.String())
	})

	t.Run("http errors keep their code and detail", func(t *testing.T) {
		rec := serveError(t, echo.NewHTTPError(http.StatusUnauthorized, "Incorrect password provided"))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"detail":"Incorrect password provided"}`, rec.Body.String())
	})

	t.Run("wrapped tenant miss still maps to 404", func(t *testing.T) {
		wrapped := errors.Join(errors.New("resolver"), &repository.TenantNotFoundError{Host: "x.example.com"})
		rec := serveError(t, wrapped)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown errors become a generic 500", func(t *testing.T) {
		rec := serveError(t, errors.New("pool exhausted"))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"Request failed: pool exhausted"}`, rec.Body.String())
	})
}
