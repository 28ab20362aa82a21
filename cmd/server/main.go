package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pknw/chatroom-server/internal/chat"
	"github.com/pknw/chatroom-server/internal/config"
	"github.com/pknw/chatroom-server/internal/delivery/ws"
	"github.com/pknw/chatroom-server/internal/middleware"
)

func main() {
	// Load .env file (ignore error if not exists, e.g. in production)
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()

	// Configure logging
	if cfg.LogLevel == "silent" || cfg.LogLevel == "off" {
		log.SetOutput(io.Discard)
	}

	// Initialize dependencies
	hub := ws.NewHub()
	coordinator := chat.New(hub, cfg.MaxHistorySize)
	handler := ws.NewHandler(hub, coordinator, cfg.AllowedOrigins, cfg.MaxMessageSize)

	wsLimiter := middleware.NewIPRateLimiter(cfg.RateLimitWS, 10)
	apiLimiter := middleware.NewIPRateLimiter(cfg.RateLimitAPI, 20)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", middleware.RateLimitFunc(wsLimiter, handler.ServeWS))

	mux.HandleFunc("/healthz", middleware.RateLimitFunc(apiLimiter, func(w http.ResponseWriter, r *http.Request) {
		connections, rooms := coordinator.Stats()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{
			"connections": connections,
			"rooms":       rooms,
		})
	}))

	// Apply security headers middleware to all requests
	securedHandler := middleware.SecurityHeaders(mux)

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      securedHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("chatroom server running at http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
