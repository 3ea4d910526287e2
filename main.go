package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delivery-app/auth"
	"delivery-app/config"
	"delivery-app/handlers"
	"delivery-app/routes"
	"delivery-app/seed"
	"delivery-app/session"
	"delivery-app/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// shutdownTimeout bounds the wait for in-flight requests on exit.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

// run serves until ctx is done or the listener fails. The session store is
// closed on every return path.
func run(ctx context.Context, cfg *config.Config) error {
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	sessions, closeSessions, err := openSessions(openCtx, cfg)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer closeSessions()

	// In-memory state with the demo dataset
	s := store.New()
	seed.Load(s, time.Now())

	if profile, ok, err := sessions.LoadProfile(openCtx); err != nil {
		log.Printf("Could not restore customer profile: %v", err)
	} else if ok {
		s.SaveCustomerDetails(profile)
		log.Printf("Restored customer profile for %s", profile.Name)
	}
	if user, ok, err := sessions.LoadUser(openCtx); err != nil {
		log.Printf("Could not read persisted session: %v", err)
	} else if ok {
		log.Printf("Last session: %s (%s)", user.Email, user.Role)
	}

	directory, err := auth.NewDirectory(s, cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("prepare credentials: %w", err)
	}

	h := handlers.New(s, directory, sessions, cfg.JWTSecret)
	// Runs before closeSessions, so queued writes land first.
	defer h.Close()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(cfg, h),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server running on http://localhost:%s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		log.Println("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, h *handlers.Handler) http.Handler {
	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "healthy",
			"service":         "Delivery App API",
			"session_backend": cfg.SessionBackend,
			"version":         "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Delivery App API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"roles":   []string{"master", "restaurant", "dispatcher", "customer"},
		})
	})

	routes.SetupRoutes(r, h, cfg.JWTSecret)

	// CORS for frontend integration
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}).Handler(r)
}

// openSessions builds the session manager on the configured backend.
func openSessions(ctx context.Context, cfg *config.Config) (*session.Manager, func(), error) {
	switch cfg.SessionBackend {
	case config.BackendSQLite:
		db, err := config.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		kv, err := session.NewGormKV(db)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		log.Printf("Session store: sqlite (%s)", cfg.SQLitePath)
		return session.NewManager(kv), closeDB, nil
	case config.BackendRedis:
		client, err := config.OpenRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Session store: redis (%s)", cfg.RedisAddr)
		return session.NewManager(session.NewRedisKV(client, cfg.RedisPrefix)), func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown SESSION_BACKEND %q (want %s or %s)", cfg.SessionBackend, config.BackendSQLite, config.BackendRedis)
	}
}
