package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rajraunak/portfolio-site-backend/config"
	"github.com/rajraunak/portfolio-site-backend/errs"
	"github.com/rajraunak/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const (
	// maxMessageChars caps each transcript turn before relay so a pasted
	// page dump cannot blow the upstream context window.
	maxMessageChars = 1200

	maxOutputTokens     = 1024
	samplingTemperature = 0.3

	fallbackReply = "I could not generate a response right now."

	defaultGeminiModel = "gemini-2.5-flash"
)

// persona is the fixed system-prompt biography for the site assistant.
const persona = `You are the advanced AI interface of the Krythos systems, serving as the sophisticated digital assistant for Raj Raunak Kumar. Raj is an elite systems engineer, PhD Scholar at IIT Patna (CSE), and holds a Masters from MIT Manipal (9.03 GPA). His expertise lies in deep systems programming—building relational databases from scratch in Go, writing x64 bytecode compilers in C++, and engineering BitTorrent clients in Python. He is highly proficient in C, C++, Go, Rust, and Assembly. Your tone should be highly analytical, precise, sophisticated, and slightly sci-fi (like an advanced AI protocol), yet engaging and helpful. Provide concise, sharply intelligent answers, showcasing his achievements in distributed systems, machine learning, and core systems architecture when relevant. Keep replies relatively brief but technically accurate and impressive.`

// NormalizeTranscript prepares a raw client transcript for relay:
// system-role turns and turns with a missing role or content are dropped,
// every remaining turn is mapped onto the internal user/assistant
// vocabulary and truncated, and leading assistant turns are removed
// because the upstream API requires the sequence to open with a user
// turn (the widget seeds the transcript with an assistant greeting).
// The result may be empty; callers must reject an empty transcript.
func NormalizeTranscript(messages []models.ChatMessage) []models.ChatMessage {
	normalized := make([]models.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == "" || msg.Content == "" || msg.Role == models.ChatRoleSystem {
			continue
		}

		role := models.ChatRoleUser
		if msg.Role == models.ChatRoleAssistant {
			role = models.ChatRoleAssistant
		}

		normalized = append(normalized, models.ChatMessage{
			Role:    role,
			Content: truncate(msg.Content, maxMessageChars),
		})
	}

	for i, msg := range normalized {
		if msg.Role == models.ChatRoleUser {
			return normalized[i:]
		}
	}
	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// BuildSystemInstruction composes the persona prompt plus whatever page
// the visitor is currently on, with fixed placeholders when the widget
// sent no context.
func BuildSystemInstruction(page *models.PageContext) string {
	url, title, content := "Unknown", "Unknown", "No page data provided"
	if page != nil {
		if page.URL != "" {
			url = page.URL
		}
		if page.Title != "" {
			title = page.Title
		}
		if page.Content != "" {
			content = page.Content
		}
	}

	return fmt.Sprintf(`%s

CURRENT USER CONTEXT:
The user is currently executing queries from this interface:
URL: %s
Page Title: %s
Page Content Data Stream: %s

Always use the Page Content Data Stream to understand what the user is currently looking at. If they are writing a blog in the Admin Dashboard, act as a technical editorial assistant—help brainstorm, refine grammar, format code, and structure technical writing based on the words they have typed on the screen.`, persona, url, title, content)
}

// ChatService relays normalized transcripts to the Gemini completion API.
// It holds no conversational state: the full (truncated) transcript
// arrives on every call.
type ChatService struct {
	model  string
	apiKey string
	logger zerolog.Logger

	mu     sync.Mutex
	client *genai.Client
}

func NewChatService() *ChatService {
	cfg := config.New()
	return &ChatService{
		model:  config.GetString(cfg, "GEMINI_MODEL", defaultGeminiModel),
		apiKey: config.GetString(cfg, "GEMINI_API_KEY", ""),
		logger: log.With().Str("serviceName", "chatService").Logger(),
	}
}

// geminiClient lazily builds the API client so the server can boot (and
// every other route can serve) without a key configured.
func (s *ChatService) geminiClient(ctx context.Context) (*genai.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

// Reply forwards a normalized transcript and returns the single assistant
// reply. The transcript must already start with a user turn. Upstream
// failures are reported once, never retried.
func (s *ChatService) Reply(ctx context.Context, transcript []models.ChatMessage, page *models.PageContext) (string, error) {
	if s.apiKey == "" {
		return "", errs.NewConfigError("GEMINI_API_KEY", nil)
	}

	client, err := s.geminiClient(ctx)
	if err != nil {
		return "", errs.NewUpstreamAIError("AI client initialization failed", err)
	}

	contents := make([]*genai.Content, 0, len(transcript))
	for _, msg := range transcript {
		role := genai.RoleUser
		if msg.Role == models.ChatRoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
		})
	}

	generationConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(samplingTemperature)),
		MaxOutputTokens:   int32(maxOutputTokens),
		SystemInstruction: genai.NewContentFromText(BuildSystemInstruction(page), genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, contents, generationConfig)
	if err != nil {
		s.logger.Error().Err(err).Str("model", s.model).Msg("Gemini API error")
		return "", errs.NewUpstreamAIError("AI request failed. Check API key, model name, or try again shortly.", err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return fallbackReply, nil
	}
	return reply, nil
}
