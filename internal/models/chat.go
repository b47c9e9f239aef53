package models

// Role identifies who authored a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    Role   `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Settings are the generation parameters carried by a session and passed
// through on every inference call.
type Settings struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// Bounds for the numeric settings. Values outside are clamped, not rejected.
const (
	TemperatureMin = 0.0
	TemperatureMax = 2.0
	MaxTokensMin   = 1
	MaxTokensMax   = 8192
)

// DefaultSettings seed the setup form. A session still counts as unconfigured
// until a setup submission succeeds.
func DefaultSettings() Settings {
	return Settings{
		Model:       "llama-3.1-8b-instant",
		Temperature: 0.7,
		MaxTokens:   512,
	}
}

// ModelOptions is the fixed allow-list of Groq model identifiers. Groq retires
// models without notice (gemma2-9b-it is gone, for example), so the list is
// kept short and any identifier outside it is rejected at configuration time.
var ModelOptions = []string{
	"llama-3.1-8b-instant",    // fast, good default for free-tier usage
	"llama-3.3-70b-versatile", // stronger answers, can be slower
	"groq/compound-mini",
	"groq/compound",
}

// SupportedModel reports whether id is in the allow-list.
func SupportedModel(id string) bool {
	for _, m := range ModelOptions {
		if m == id {
			return true
		}
	}
	return false
}

// ChatRequest is the payload sent to the JSON chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply from the JSON chat endpoint.
type ChatResponse struct {
	Reply string `json:"reply"`
}
