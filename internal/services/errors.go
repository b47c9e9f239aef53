package services

// Error taxonomy for inference calls. None of these are retried and none are
// fatal: handlers surface them to the user and the page stays interactive.

// CredentialError means the API key is missing or was refused upstream.
type CredentialError struct {
	Message string
}

func (e *CredentialError) Error() string { return e.Message }

// RateLimitError means Groq returned 429 for this turn.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string { return e.Message }

// ModelError means the selected model was rejected upstream, typically
// because Groq decommissioned it after it made our allow-list.
type ModelError struct {
	Model   string
	Message string
}

func (e *ModelError) Error() string { return e.Message }

// UpstreamError covers transport failures and any other non-2xx answer.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }
