package model

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a row in the shared `public.tenant` table. The host column is
// the routing key: incoming requests are matched on their Host header, and
// SchemaName identifies the tenant's private schema in the same database.
type Tenant struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Host       string    `json:"host"`
	SchemaName string    `json:"schema_name"`
	IsActive   bool      `json:"is_active"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}
