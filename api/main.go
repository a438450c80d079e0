package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventree/internal/auth"
	"github.com/rogerio-castellano/inventree/internal/config"
	"github.com/rogerio-castellano/inventree/internal/db"
	api "github.com/rogerio-castellano/inventree/internal/http"
	"github.com/rogerio-castellano/inventree/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventree/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventree/internal/notify"
	"github.com/rogerio-castellano/inventree/internal/repo"
	"github.com/rogerio-castellano/inventree/internal/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	go rl.StartVisitorCleanupLoop()

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("❌ Could not migrate database:", err)
	}

	settingsStore := settings.NewStore(rdb, ctx)
	handlers.SetSettingsStore(settingsStore)
	handlers.SetNotificationGateway(notify.NewSMTPGateway(cfg.SMTP, settingsStore))

	handlers.SetDefaultLowStock(cfg.DefaultLowStock)
	handlers.SetItemRepo(repo.NewPostgresItemRepository(database))
	handlers.SetHistoryRepo(repo.NewPostgresHistoryRepository(database))
	handlers.SetDashboardRepo(repo.NewPostgresDashboardRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	r := api.RateLimitMiddleware(api.NewRouter())
	log.Printf("✅ Server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
