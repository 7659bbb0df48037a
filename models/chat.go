package models

// ChatRole identifies the author of a chat turn. The internal model only
// knows user and assistant; provider-specific vocabulary ("model" for
// Gemini) is translated at the relay boundary.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	// ChatRoleSystem appears in the wire format but is filtered out of
	// the transcript before relay; the system prompt is injected
	// server-side instead.
	ChatRoleSystem ChatRole = "system"
)

// ChatMessage is a single transcript turn. Transient: transcripts live in
// the caller and are resent in full on every request, never persisted.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// PageContext carries what the visitor is currently looking at, so the
// assistant can answer about the page in front of them.
type PageContext struct {
	URL     string `json:"url,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}
