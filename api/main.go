package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	_ "github.com/rogerio-castellano/notes-api/docs"
	"github.com/rogerio-castellano/notes-api/internal/auth"
	"github.com/rogerio-castellano/notes-api/internal/config"
	"github.com/rogerio-castellano/notes-api/internal/db"
	api "github.com/rogerio-castellano/notes-api/internal/http"
	"github.com/rogerio-castellano/notes-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/notes-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/notes-api/internal/logger"
	"github.com/rogerio-castellano/notes-api/internal/notes"
	"github.com/rogerio-castellano/notes-api/internal/repo"
	"github.com/rogerio-castellano/notes-api/internal/session"
)

// @title Notes API
// @version 1.0
// @description Session-authenticated personal notes service.
// @BasePath /
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	logger.Init(os.Stdout, cfg.LogLevel, !cfg.IsProduction())

	// TLS material must be readable before anything else comes up.
	for _, path := range []string{cfg.CertPath, cfg.CertKeyPath} {
		if _, err := os.Stat(path); err != nil {
			log.Fatalf("❌ TLS material unreadable: %v", err)
		}
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database: ", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database); err != nil {
		log.Fatal("❌ Could not migrate database: ", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)
	signer := session.NewSigner(cfg.SessionSecret)

	authSvc := auth.NewService(repo.NewPostgresUserRepository(database), sessions)
	noteSvc := notes.NewService(repo.NewPostgresNoteRepository(database))

	h := handlers.New(authSvc, noteSvc, signer, handlers.CookieOptions{
		TTL:    cfg.SessionTTL,
		Secure: cfg.IsProduction(),
	})

	// 100 requests per 15 minutes per IP, as the public deployment allows.
	limiter := rl.New(rate.Every(15*time.Minute/100), 100)
	go limiter.StartVisitorCleanupLoop()

	r := api.NewRouter(h, api.RouterConfig{
		FrontendOrigin: cfg.FrontendOrigin,
		Sessions:       sessions,
		Signer:         signer,
		Limiter:        limiter,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("✅ HTTPS server running", "port", cfg.Port, "env", cfg.AppEnv)
		if err := srv.ListenAndServeTLS(cfg.CertPath, cfg.CertKeyPath); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Server failed: ", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
