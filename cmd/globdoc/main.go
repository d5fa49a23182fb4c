// The globdoc service is the global document repository. Every document
// route resolves the request host to a tenant and runs against a session
// bound to that tenant's schema.
package main

import (
	"context"
	"log"

	"github.com/specterhq/specter/internal/config"
	"github.com/specterhq/specter/internal/database"
	"github.com/specterhq/specter/internal/handler"
	"github.com/specterhq/specter/internal/middleware"
	"github.com/specterhq/specter/internal/repository"
	"github.com/specterhq/specter/internal/router"
)

func main() {
	cfg, err := config.LoadGlobdoc()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		log.Print("redis unavailable, tenant cache and rate limiting disabled")
	}

	tenants := repository.NewTenantRepo()
	cache := middleware.NewTenantCache(rdb, cfg.TenantCacheTTL)
	docs := handler.NewDocumentHandler(repository.NewDocumentRepo())

	checks := []handler.HealthCheck{{Name: "database", Probe: db.Healthcheck()}}
	if rdb != nil {
		checks = append(checks, handler.HealthCheck{Name: "redis", Probe: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	e := router.New(cfg.CORSOrigins)
	router.RegisterHealth(e, handler.NewHealthHandler(cfg.ServiceName, checks...))
	router.RegisterDocuments(e, cfg.RootPath, docs,
		middleware.TenantResolver(db, tenants, cache),
		middleware.JWTAuth(cfg.SecretKey))

	addr := ":" + cfg.Port
	log.Printf("%s listening on %s (env=%s)", cfg.ServiceName, addr, cfg.Environment)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
