package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/specterhq/specter/internal/database"
	"github.com/specterhq/specter/internal/model"
)

var tenantColumns = []string{"id", "name", "host", "schema_name", "is_active", "created_on", "updated_on"}

func scanTenant(row pgx.Row) (model.Tenant, error) {
	var t model.Tenant
	err := row.Scan(&t.ID, &t.Name, &t.Host, &t.SchemaName, &t.IsActive, &t.CreatedOn, &t.UpdatedOn)
	return t, err
}

// TenantCreate is the insert payload for provisioning a tenant. Exposed for
// tooling and tests; the services themselves only read tenants.
type TenantCreate struct {
	Name       string
	Host       string
	SchemaName string
}

func (c TenantCreate) Fields() ([]string, []any) {
	return []string{"name", "host", "schema_name"},
		[]any{c.Name, c.Host, c.SchemaName}
}

// TenantUpdate is a partial update; nil fields are left untouched.
type TenantUpdate struct {
	Name     *string
	IsActive *bool
}

func (u TenantUpdate) Changes() ([]string, []any) {
	var cols []string
	var vals []any
	if u.Name != nil {
		cols = append(cols, "name")
		vals = append(vals, *u.Name)
	}
	if u.IsActive != nil {
		cols = append(cols, "is_active")
		vals = append(vals, *u.IsActive)
	}
	return cols, vals
}

// TenantRepo reads and writes the shared tenant table. All methods expect a
// shared (unscoped) session; the tenant table itself is never remapped.
type TenantRepo struct {
	CRUD[model.Tenant, TenantCreate, TenantUpdate]
}

func NewTenantRepo() *TenantRepo {
	return &TenantRepo{NewCRUD[model.Tenant, TenantCreate, TenantUpdate]("tenant", tenantColumns, scanTenant)}
}

// GetByHost looks up exactly one tenant whose host equals the given value.
// A miss returns a TenantNotFoundError carrying the host.
func (r *TenantRepo) GetByHost(ctx context.Context, sess *database.Session, host string) (model.Tenant, error) {
	row := sess.QueryRow(ctx,
		"SELECT id, name, host, schema_name, is_active, created_on, updated_on FROM tenant WHERE host = $1",
		host)
	t, err := scanTenant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Tenant{}, &TenantNotFoundError{Host: host}
	}
	if err != nil {
		return model.Tenant{}, err
	}
	return t, nil
}
