package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rajraunak/portfolio-site-backend/errs"
	"github.com/rajraunak/portfolio-site-backend/models"
	"github.com/rajraunak/portfolio-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// replyGenerator is what the chat endpoint needs from the AI service.
type replyGenerator interface {
	Reply(ctx context.Context, transcript []models.ChatMessage, page *models.PageContext) (string, error)
}

type chatHandler struct {
	responder Responder
	logger    zerolog.Logger
	generator replyGenerator
}

func newChatHandler(generator replyGenerator) chatHandler {
	logger := log.With().Str("handlerName", "chatHandler").Logger()

	return chatHandler{
		responder: NewResponder(logger),
		logger:    logger,
		generator: generator,
	}
}

type chatRequest struct {
	Messages []models.ChatMessage `json:"messages"`
	Context  *models.PageContext  `json:"context,omitempty"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type chatErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// relay forwards the widget's transcript to the AI backend and returns
// the reply. The server holds no conversation state between calls.
func (h chatHandler) relay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeChatError(w, http.StatusBadRequest, "Invalid JSON body.", "")
			return
		}

		if req.Messages == nil {
			h.writeChatError(w, http.StatusBadRequest, "Request body must include a messages array.", "")
			return
		}

		transcript := services.NormalizeTranscript(req.Messages)
		if len(transcript) == 0 {
			h.writeChatError(w, http.StatusBadRequest, "No valid user messages found.", "")
			return
		}

		reply, err := h.generator.Reply(r.Context(), transcript, req.Context)
		if err != nil {
			h.logger.Error().Err(err).Msg("AI relay failed")

			if errs.IsConfigError(err) {
				h.writeChatError(w, http.StatusInternalServerError,
					"AI is not configured: add GEMINI_API_KEY in environment variables.", "")
				return
			}

			details := ""
			var apiErr *errs.ApiErr
			if errors.As(err, &apiErr) && apiErr.Cause != nil {
				details = apiErr.Cause.Error()
			}
			h.writeChatError(w, http.StatusInternalServerError,
				"AI request failed. Check API key, model name, or try again shortly.", details)
			return
		}

		h.responder.WriteJSON(w, chatResponse{Reply: reply})
	}
}

// writeChatError keeps the widget-facing {error, details} shape.
func (h chatHandler) writeChatError(w http.ResponseWriter, status int, message, details string) {
	w.WriteHeader(status)
	h.responder.WriteJSON(w, chatErrorResponse{Error: message, Details: details})
}
