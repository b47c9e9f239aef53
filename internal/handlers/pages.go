package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"groqchat/internal/middleware"
	"groqchat/internal/models"
	"groqchat/internal/services"
	"groqchat/internal/session"
)

// PageHandler serves the three pages and their form submissions. Each request
// receives the session handle from the middleware; no ambient state.
type PageHandler struct {
	groq *services.GroqService
}

func NewPageHandler(groq *services.GroqService) *PageHandler {
	return &PageHandler{groq: groq}
}

func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	sess.Apply(session.Navigate{Target: models.PageLanding})
	render(w, "landing", nil)
}

func (h *PageHandler) SetupPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	sess.Apply(session.Navigate{Target: models.PageSetup})

	render(w, "setup", setupView{
		Settings:      sess.Settings(),
		Models:        models.ModelOptions,
		SetupRequired: r.URL.Query().Get("required") != "",
	})
}

// SaveSetup validates the submitted configuration. Rejection re-renders the
// form with inline errors and leaves the prior configuration unchanged, so a
// bad submission never unlocks the chat page.
func (h *PageHandler) SaveSetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	fieldErrs := map[string]string{}

	temperature, err := strconv.ParseFloat(r.PostFormValue("temperature"), 64)
	if err != nil {
		fieldErrs["temperature"] = "must be a number"
	}
	maxTokens, err := strconv.Atoi(r.PostFormValue("max_tokens"))
	if err != nil {
		fieldErrs["max_tokens"] = "must be a whole number"
	}

	if len(fieldErrs) == 0 {
		err := sess.Apply(session.SetConfig{
			Model:       r.PostFormValue("model"),
			Temperature: temperature,
			MaxTokens:   maxTokens,
		})
		var cfgErr *session.ConfigError
		if errors.As(err, &cfgErr) {
			fieldErrs = cfgErr.Fields
		} else if err != nil {
			fieldErrs["config"] = err.Error()
		}
	}

	if len(fieldErrs) > 0 {
		render(w, "setup", setupView{
			Settings: sess.Settings(),
			Models:   models.ModelOptions,
			Errors:   fieldErrs,
		})
		return
	}

	if r.PostFormValue("action") == "continue" {
		http.Redirect(w, r, "/chat", http.StatusSeeOther)
		return
	}

	render(w, "setup", setupView{
		Settings: sess.Settings(),
		Models:   models.ModelOptions,
		Saved:    true,
	})
}

func (h *PageHandler) ChatPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	// Configuration is a precondition for the chat page.
	if !sess.Configured() {
		http.Redirect(w, r, "/setup?required=1", http.StatusSeeOther)
		return
	}

	sess.Apply(session.Navigate{Target: models.PageChat})
	render(w, "chat", chatView{
		Settings: sess.Settings(),
		Messages: sess.History(),
	})
}

// SendMessage appends the user turn, makes the one blocking inference call,
// and appends the assistant turn on success. On failure the user turn stays
// in the history unanswered and the error is rendered inline; the page
// remains usable.
func (h *PageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	if !sess.Configured() {
		http.Redirect(w, r, "/setup?required=1", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	message := strings.TrimSpace(r.PostFormValue("message"))
	if message == "" {
		render(w, "chat", chatView{
			Settings: sess.Settings(),
			Messages: sess.History(),
			Error:    "Type a message first.",
		})
		return
	}

	sess.Apply(session.AppendMessage{Role: models.RoleUser, Content: message})

	reply, err := h.groq.ChatCompletion(r.Context(), sess.Settings(), sess.History())
	if err != nil {
		render(w, "chat", chatView{
			Settings: sess.Settings(),
			Messages: sess.History(),
			Error:    err.Error(),
		})
		return
	}

	sess.Apply(session.AppendMessage{Role: models.RoleAssistant, Content: reply})
	render(w, "chat", chatView{
		Settings: sess.Settings(),
		Messages: sess.History(),
	})
}

func (h *PageHandler) ClearChat(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	sess.Apply(session.ClearHistory{})
	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}
