package middleware

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/specterhq/specter/internal/database"
	"github.com/specterhq/specter/internal/model"
	"github.com/specterhq/specter/internal/repository"
)

const (
	contextTenant  = "tenant"
	contextSession = "tenant_session"
)

// TenantLookup resolves a host to a tenant record through the shared
// schema. Implemented by repository.TenantRepo; an interface here keeps the
// middleware testable without a database.
type TenantLookup interface {
	GetByHost(ctx context.Context, sess *database.Session, host string) (model.Tenant, error)
}

// TenantCache keeps host→tenant routing records in Redis so the shared
// lookup is skipped on cache hits. A nil client disables caching; every
// cache failure falls through to the database.
type TenantCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTenantCache(rdb *redis.Client, ttl time.Duration) *TenantCache {
	return &TenantCache{rdb: rdb, ttl: ttl}
}

func (tc *TenantCache) key(host string) string { return "tenant:host:" + host }

func (tc *TenantCache) Get(ctx context.Context, host string) (model.Tenant, bool) {
	if tc == nil || tc.rdb == nil {
		return model.Tenant{}, false
	}
	raw, err := tc.rdb.Get(ctx, tc.key(host)).Bytes()
	if err != nil {
		return model.Tenant{}, false
	}
	var t model.Tenant
	if err := json.Unmarshal(raw, &t); err != nil {
		return model.Tenant{}, false
	}
	return t, true
}

func (tc *TenantCache) Set(ctx context.Context, host string, t model.Tenant) {
	if tc == nil || tc.rdb == nil {
		return
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return
	}
	_ = tc.rdb.Set(ctx, tc.key(host), raw, tc.ttl).Err()
}

// StripPort removes any port suffix from a request host.
func StripPort(host string) string {
	h, _, found := strings.Cut(host, ":")
	if found {
		return h
	}
	return host
}

// TenantResolver resolves the request host to a tenant and opens a session
// bound to that tenant's schema for the rest of the request. The lookup
// itself runs over a short-lived shared session. A miss surfaces the typed
// TenantNotFoundError, which the error boundary maps to a 404 naming the
// host. The scoped session is closed in a defer, so release happens on
// every exit path including handler panics and client disconnects.
func TenantResolver(db *database.DB, tenants TenantLookup, cache *TenantCache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			host := StripPort(c.Request().Host)

			tenant, ok := cache.Get(ctx, host)
			if !ok {
				err := db.WithSession(ctx, "", func(sess *database.Session) error {
					var err error
					tenant, err = tenants.GetByHost(ctx, sess, host)
					return err
				})
				if err != nil {
					return err
				}
				cache.Set(ctx, host, tenant)
			}

			sess, err := db.Session(ctx, tenant.SchemaName)
			if err != nil {
				return err
			}
			defer sess.Close()

			SetTenant(c, tenant)
			SetSession(c, sess)
			return next(c)
		}
	}
}

// SetTenant stores the resolved tenant on the request context.
func SetTenant(c echo.Context, t model.Tenant) { c.Set(contextTenant, t) }

// SetSession stores the tenant-scoped session on the request context.
func SetSession(c echo.Context, s *database.Session) { c.Set(contextSession, s) }

// TenantFromContext returns the tenant resolved for this request.
func TenantFromContext(c echo.Context) (model.Tenant, bool) {
	t, ok := c.Get(contextTenant).(model.Tenant)
	return t, ok
}

// SessionFromContext returns the request's tenant-scoped session.
func SessionFromContext(c echo.Context) (*database.Session, bool) {
	s, ok := c.Get(contextSession).(*database.Session)
	return s, ok
}

var _ TenantLookup = (*repository.TenantRepo)(nil)
