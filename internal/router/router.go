package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"groqchat/internal/handlers"
	"groqchat/internal/middleware"
)

func New(
	sessions *middleware.SessionLoader,
	pageHandler *handlers.PageHandler,
	apiHandler *handlers.APIHandler,
	chatRateLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)

	// Chat rate limiter (per IP)
	chatLimiter := middleware.NewRateLimiter(chatRateLimit, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Pages ────
	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware)

		r.Get("/", pageHandler.Landing)
		r.Get("/setup", pageHandler.SetupPage)
		r.Post("/setup", pageHandler.SaveSetup)
		r.Get("/chat", pageHandler.ChatPage)
		r.Post("/chat", pageHandler.SendMessage)
		r.Post("/chat/clear", pageHandler.ClearChat)
	})

	// ──── JSON API ────
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(sessions.Middleware)

		r.Get("/models", apiHandler.ListModels)
		r.Get("/history", apiHandler.GetHistory)
		r.Put("/config", apiHandler.UpdateConfig)

		r.Group(func(r chi.Router) {
			r.Use(chatLimiter.Middleware)
			r.Post("/chat", apiHandler.AskQuestion)
		})
	})

	return r
}
