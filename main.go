package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/config"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/engine"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/policy"
	store "github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/repository"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/service"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/sessionstore"
	transport "github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/transport/http"
)

func main() {
	// Load .env if present; real environments set variables directly.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded configuration from .env")
	}

	cfg := config.Load()

	log.Printf("Starting portfolio engine...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Session backend: %s", cfg.SessionBackend)

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Load dialog tables
	dialog, err := engine.LoadDialogConfig(cfg.DialogConfigPath)
	if err != nil {
		log.Fatalf("Failed to load dialog config: %v", err)
	}

	// Initialize session store
	var sessions sessionstore.Store
	switch cfg.SessionBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		sessions = sessionstore.NewRedisStore(client, cfg.RedisPrefix, cfg.SessionTTL)
	default:
		sessions = sessionstore.NewMemoryStore()
	}

	// Initialize service
	svc := service.New(db, sessions, policyEngine, dialog, cfg)

	// Create HTTP server
	server := transport.NewServer(svc)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down portfolio engine...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Portfolio engine stopped")
}
