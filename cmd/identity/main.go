// The identity service handles account registration and login for the
// whole platform. Accounts live in the shared public schema, so no tenant
// resolution happens here.
package main

import (
	"context"
	"log"

	"github.com/specterhq/specter/internal/config"
	"github.com/specterhq/specter/internal/database"
	"github.com/specterhq/specter/internal/handler"
	"github.com/specterhq/specter/internal/middleware"
	"github.com/specterhq/specter/internal/queue"
	"github.com/specterhq/specter/internal/repository"
	"github.com/specterhq/specter/internal/router"
	"github.com/specterhq/specter/internal/service"
)

func main() {
	cfg, err := config.LoadIdentity()
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
		log.Print("redis unavailable, rate limiting disabled")
	}

	accounts := repository.NewSharedAccountStore(db)

	var events handler.EventPublisher
	if cfg.RabbitURL != "" {
		events = service.NewPublisher(cfg.RabbitURL)
		go queue.StartRegisteredConsumer(cfg.RabbitURL)
	}

	checks := []handler.HealthCheck{{Name: "database", Probe: db.Healthcheck()}}
	if rdb != nil {
		checks = append(checks, handler.HealthCheck{Name: "redis", Probe: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	e := router.New(cfg.CORSOrigins)
	router.RegisterHealth(e, handler.NewHealthHandler(cfg.ServiceName, checks...))
	router.RegisterAuth(e, cfg.RootPath,
		handler.NewAuthHandler(cfg, accounts, events),
		middleware.RateLimit(cfg.RateLimit, rdb))

	addr := ":" + cfg.Port
	log.Printf("%s listening on %s (env=%s)", cfg.ServiceName, addr, cfg.Environment)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
