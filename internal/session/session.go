package session

import (
	"fmt"
	"sync"
	"time"

	"groqchat/internal/models"
)

// Session is the per-browser-session state: current page, generation settings
// and the conversation history. It lives in memory only and is discarded when
// the session expires; there is no save/restore lifecycle.
//
// All mutation goes through Apply, so the invariants (append-only history,
// allow-listed model, clamped numeric ranges) are enforced in one place.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	lastSeen   time.Time
	page       models.Page
	settings   models.Settings
	configured bool
	messages   []models.ChatMessage
}

// New creates a session on the landing page with default (but not yet
// confirmed) settings.
func New(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		lastSeen:  now,
		page:      models.PageLanding,
		settings:  models.DefaultSettings(),
	}
}

// Action is one of the variants processed by Apply.
type Action interface{ isAction() }

// Navigate sets the current-page indicator.
type Navigate struct {
	Target models.Page
}

// SetConfig replaces the generation settings. The model must be on the
// allow-list; numeric values are clamped into range. A rejected SetConfig
// leaves prior settings (and the configured flag) untouched.
type SetConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// AppendMessage adds one turn to the end of the history.
type AppendMessage struct {
	Role    models.Role
	Content string
}

// ClearHistory drops all turns. Settings are unaffected.
type ClearHistory struct{}

func (Navigate) isAction()      {}
func (SetConfig) isAction()     {}
func (AppendMessage) isAction() {}
func (ClearHistory) isAction()  {}

// ConfigError reports per-field problems from a rejected SetConfig.
type ConfigError struct {
	Fields map[string]string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %v", e.Fields)
}

// Apply is the single reducer for session state. On error the session is
// left exactly as it was.
func (s *Session) Apply(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch act := a.(type) {
	case Navigate:
		if !models.ValidPage(act.Target) {
			return fmt.Errorf("unknown page %q", act.Target)
		}
		s.page = act.Target

	case SetConfig:
		if !models.SupportedModel(act.Model) {
			return &ConfigError{Fields: map[string]string{
				"model": fmt.Sprintf("model %q is not supported; pick one of the listed Groq models", act.Model),
			}}
		}
		s.settings = models.Settings{
			Model:       act.Model,
			Temperature: clampFloat(act.Temperature, models.TemperatureMin, models.TemperatureMax),
			MaxTokens:   clampInt(act.MaxTokens, models.MaxTokensMin, models.MaxTokensMax),
		}
		s.configured = true

	case AppendMessage:
		if act.Role != models.RoleUser && act.Role != models.RoleAssistant {
			return fmt.Errorf("unknown role %q", act.Role)
		}
		s.messages = append(s.messages, models.ChatMessage{Role: act.Role, Content: act.Content})

	case ClearHistory:
		s.messages = nil

	default:
		return fmt.Errorf("unknown action %T", a)
	}

	return nil
}

// Page returns the most recently navigated-to page.
func (s *Session) Page() models.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Settings returns the current generation settings.
func (s *Session) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Configured reports whether a setup submission has succeeded. The chat page
// must not issue an inference call before then.
func (s *Session) Configured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.configured
}

// History returns a copy of the conversation in insertion order.
func (s *Session) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
