package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sahyadri-sports/backoffice/internal/auth"
	"github.com/sahyadri-sports/backoffice/internal/config"
	"github.com/sahyadri-sports/backoffice/internal/db"
	backofficehttp "github.com/sahyadri-sports/backoffice/internal/http"
	"github.com/sahyadri-sports/backoffice/internal/http/handlers"
	rl "github.com/sahyadri-sports/backoffice/internal/http/rate_limiter"
	"github.com/sahyadri-sports/backoffice/internal/redissvc"
	"github.com/sahyadri-sports/backoffice/internal/repo"
)

// @title Sahyadri Sports Backoffice API
// @version 1.0
// @description Admin dashboard backend for the Sahyadri Sports store.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load config: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	go auth.StartRefreshTokenCleaner(30 * time.Minute)
	go rl.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("❌ Could not migrate database:", err)
	}

	// Redis is optional; without it analytics views are recomputed per request.
	if cfg.RedisAddr != "" {
		ctx := context.Background()
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("❌ Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetRedisService(redissvc.NewRedisService(rdb, ctx))
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetCustomerRepo(repo.NewPostgresCustomerRepository(database))
	handlers.SetOrderRepo(repo.NewPostgresOrderRepository(database))
	handlers.SetSettingsRepo(repo.NewPostgresSettingsRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	r := backofficehttp.NewRouter()
	log.Printf("✅ Server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
