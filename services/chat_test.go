package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rajraunak/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTranscriptDropsSystemAndEmptyTurns(t *testing.T) {
	got := NormalizeTranscript([]models.ChatMessage{
		{Role: models.ChatRoleSystem, Content: "you are a pirate"},
		{Role: models.ChatRoleUser, Content: "hello"},
		{Role: models.ChatRoleUser, Content: ""},
		{Role: "", Content: "no role"},
		{Role: models.ChatRoleAssistant, Content: "hi there"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, models.ChatRoleUser, got[0].Role)
	assert.Equal(t, "hello", got[0].Content)
	assert.Equal(t, models.ChatRoleAssistant, got[1].Role)
}

func TestNormalizeTranscriptMapsUnknownRolesToUser(t *testing.T) {
	got := NormalizeTranscript([]models.ChatMessage{
		{Role: "human", Content: "what is this site"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, models.ChatRoleUser, got[0].Role)
}

func TestNormalizeTranscriptDropsLeadingAssistantTurns(t *testing.T) {
	got := NormalizeTranscript([]models.ChatMessage{
		{Role: models.ChatRoleAssistant, Content: "Hi! I'm the site assistant."},
		{Role: models.ChatRoleUser, Content: "who built this"},
		{Role: models.ChatRoleAssistant, Content: "Raj did"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, models.ChatRoleUser, got[0].Role)
	assert.Equal(t, "who built this", got[0].Content)
}

func TestNormalizeTranscriptAssistantOnlyIsEmpty(t *testing.T) {
	got := NormalizeTranscript([]models.ChatMessage{
		{Role: models.ChatRoleAssistant, Content: "greeting"},
		{Role: models.ChatRoleAssistant, Content: "still me"},
	})
	assert.Empty(t, got)
}

func TestNormalizeTranscriptTruncatesLongTurns(t *testing.T) {
	long := strings.Repeat("a", maxMessageChars+500)
	got := NormalizeTranscript([]models.ChatMessage{
		{Role: models.ChatRoleUser, Content: long},
	})

	require.Len(t, got, 1)
	assert.Len(t, []rune(got[0].Content), maxMessageChars)
}

func TestNormalizeTranscriptTruncationIsRuneSafe(t *testing.T) {
	long := strings.Repeat("é", maxMessageChars+10)
	got := NormalizeTranscript([]models.ChatMessage{
		{Role: models.ChatRoleUser, Content: long},
	})

	require.Len(t, got, 1)
	runes := []rune(got[0].Content)
	assert.Len(t, runes, maxMessageChars)
	for _, r := range runes {
		assert.Equal(t, 'é', r)
	}
}

func TestBuildSystemInstructionWithPageContext(t *testing.T) {
	got := BuildSystemInstruction(&models.PageContext{
		URL:     "https://example.com/blog",
		Title:   "Blog Archive",
		Content: "posts about databases",
	})

	assert.Contains(t, got, "Krythos")
	assert.Contains(t, got, "URL: https://example.com/blog")
	assert.Contains(t, got, "Page Title: Blog Archive")
	assert.Contains(t, got, "Page Content Data Stream: posts about databases")
}

func TestBuildSystemInstructionFallbacks(t *testing.T) {
	for _, page := range []*models.PageContext{nil, {}} {
		got := BuildSystemInstruction(page)
		assert.Contains(t, got, "URL: Unknown")
		assert.Contains(t, got, "Page Title: Unknown")
		assert.Contains(t, got, "Page Content Data Stream: No page data provided")
	}
}

func TestReplyWithoutAPIKeyFailsFast(t *testing.T) {
	svc := &ChatService{model: defaultGeminiModel}

	_, err := svc.Reply(context.Background(), []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "hello"},
	}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
