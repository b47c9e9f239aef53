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

	"github.com/natefinch/lumberjack"

	"groqchat/internal/config"
	"groqchat/internal/handlers"
	"groqchat/internal/middleware"
	"groqchat/internal/router"
	"groqchat/internal/services"
	"groqchat/internal/session"
)

func main() {
	log.Println("🚀 Starting Groq Q&A Chatbot...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	if cfg.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
		})
	}

	if cfg.GroqAPIKey == "" {
		log.Println("⚠ GROQ_API_KEY not set — inference calls will fail until it is provided")
	}

	// ──── Step 2: Initialize Session Manager ────
	sessionManager := session.NewManager(cfg.SessionTTL)
	defer sessionManager.Stop()
	log.Printf("✓ Session manager started (TTL %s)", cfg.SessionTTL)

	// ──── Step 3: Initialize Groq Client ────
	groqService := services.NewGroqService(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqTimeout)
	log.Println("✓ Groq client initialized")

	// ──── Initialize Handlers ────
	sessionLoader := middleware.NewSessionLoader(sessionManager)
	pageHandler := handlers.NewPageHandler(groqService)
	apiHandler := handlers.NewAPIHandler(groqService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(sessionLoader, pageHandler, apiHandler, cfg.ChatRequestsPerMin)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// The inference call blocks the handler, so the write timeout has
		// to outlast it.
		WriteTimeout: cfg.GroqTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		sessionManager.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Groq Q&A Chatbot ready on http://localhost:%s", cfg.Port)
	log.Printf("  Pages: http://localhost:%s/", cfg.Port)
	log.Printf("  API:   http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
