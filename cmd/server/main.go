package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gav1n0112/keya/internal/api"
	"github.com/Gav1n0112/keya/internal/config"
	"github.com/Gav1n0112/keya/internal/repository"
	"github.com/Gav1n0112/keya/internal/repository/gormstore"
	"github.com/Gav1n0112/keya/internal/repository/jsonstore"
	"github.com/Gav1n0112/keya/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize storage
	var repos *repository.Repositories
	switch cfg.StorageDriver {
	case config.StorageDriverSQLite:
		db, err := gormstore.Open(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		repos = gormstore.NewRepositories(db)
	default:
		store := jsonstore.New(cfg.DataDir)
		if err := store.Init(); err != nil {
			log.Fatalf("failed to initialize data directory: %v", err)
		}
		repos = jsonstore.NewRepositories(store)
	}

	// Initialize services
	services := service.NewServices(repos, cfg)

	// Seed the admin account on first run
	if err := services.Auth.Bootstrap(context.Background()); err != nil {
		log.Fatalf("failed to bootstrap admin account: %v", err)
	}

	// Initialize router
	router := api.NewRouter(services, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
