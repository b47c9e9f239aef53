package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"groqchat/internal/middleware"
	"groqchat/internal/models"
	"groqchat/internal/services"
	"groqchat/internal/session"
)

// APIHandler exposes the same session semantics as the pages over JSON.
type APIHandler struct {
	groq *services.GroqService
}

func NewAPIHandler(groq *services.GroqService) *APIHandler {
	return &APIHandler{groq: groq}
}

// ListModels returns the fixed model allow-list.
func (h *APIHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"models": models.ModelOptions})
}

// GetHistory returns the session's conversation in insertion order.
func (h *APIHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{"history": sess.History()})
}

// UpdateConfig applies a SetConfig through the reducer.
func (h *APIHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var req models.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	err := sess.Apply(session.SetConfig{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sess.Settings())
}

// AskQuestion appends the user's turn, calls Groq, and appends the reply.
func (h *APIHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	if !sess.Configured() {
		writeJSON(w, http.StatusConflict, errorResp("SETUP_REQUIRED", "Save your settings in Setup before chatting", r))
		return
	}

	sess.Apply(session.AppendMessage{Role: models.RoleUser, Content: strings.TrimSpace(req.Message)})

	reply, err := h.groq.ChatCompletion(r.Context(), sess.Settings(), sess.History())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	sess.Apply(session.AppendMessage{Role: models.RoleAssistant, Content: reply})
	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}
