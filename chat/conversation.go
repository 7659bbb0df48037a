// Package chat holds the widget-side transcript state. The server keeps
// no conversational memory, so the full transcript lives here and is
// resent on every turn.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rajraunak/portfolio-site-backend/models"
	"github.com/rajraunak/portfolio-site-backend/services"
)

// ErrSendInFlight is returned when a send is attempted while a previous
// one is still awaiting its reply. The widget disables its send control
// while a request is in flight, so hitting this means the view is broken.
var ErrSendInFlight = errors.New("a chat request is already in flight")

// DefaultGreeting seeds new conversations; it is assistant-authored and
// normalization drops it before relay (the upstream API requires a user
// turn first).
const DefaultGreeting = "Hi! I'm the site assistant. Ask me about Raj, his projects, or anything on this page."

// Relay forwards a normalized transcript and returns the assistant's
// reply. Send normalizes before calling, so a ChatService can back this
// directly.
type Relay interface {
	Reply(ctx context.Context, transcript []models.ChatMessage, page *models.PageContext) (string, error)
}

// Conversation is one widget instance's ordered transcript. Turns are
// strictly ordered by send time; at most one request is in flight.
type Conversation struct {
	relay Relay
	page  *models.PageContext

	mu       sync.Mutex
	messages []models.ChatMessage
	inFlight bool
}

func NewConversation(relay Relay, page *models.PageContext) *Conversation {
	return &Conversation{
		relay: relay,
		page:  page,
		messages: []models.ChatMessage{
			{Role: models.ChatRoleAssistant, Content: DefaultGreeting},
		},
	}
}

// Messages returns a snapshot of the transcript.
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]models.ChatMessage, len(c.messages))
	copy(snapshot, c.messages)
	return snapshot
}

// Send appends a user turn and relays the whole transcript, normalized
// so the relayed sequence opens with a user turn regardless of the seeded
// greeting. An upstream failure becomes an assistant-role turn in the
// transcript rather than an error, so the conversation stays usable for
// the next turn. Blank input is ignored.
func (c *Conversation) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrSendInFlight
	}
	c.inFlight = true
	c.messages = append(c.messages, models.ChatMessage{Role: models.ChatRoleUser, Content: text})
	transcript := services.NormalizeTranscript(c.messages)
	c.mu.Unlock()

	reply, err := c.relay.Reply(ctx, transcript, c.page)
	if err != nil {
		reply = "Unable to reach the AI right now. Try again in a moment."
	}

	c.mu.Lock()
	c.messages = append(c.messages, models.ChatMessage{Role: models.ChatRoleAssistant, Content: reply})
	c.inFlight = false
	c.mu.Unlock()
	return nil
}
