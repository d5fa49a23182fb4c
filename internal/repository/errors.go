// Package repository implements data access on top of scoped sessions.
// Error values defined here let handlers and the router's error handler
// distinguish failure kinds without inspecting driver errors.
package repository

import (
	"errors"
	"fmt"
)

// ErrEmailExists is returned when an account with the same email already
// exists. The boundary maps it to an HTTP 400 response.
var ErrEmailExists = errors.New("email already exists")

// TenantNotFoundError indicates that no tenant matched the request host.
// It carries the offending host so the 404 response can name it, and is a
// distinct type so callers can separate routing misses from store failures.
type TenantNotFoundError struct {
	Host string
}

func (e *TenantNotFoundError) Error() string {
	return fmt.Sprintf("Tenant not found for host: %s", e.Host)
}
