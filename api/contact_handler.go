package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rajraunak/portfolio-site-backend/database"
	"github.com/rajraunak/portfolio-site-backend/errs"
	"github.com/rajraunak/portfolio-site-backend/models"
	"github.com/rajraunak/portfolio-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	messages  database.ContactMessageStore
	validate  *validator.Validate
}

func newContactHandler(messages database.ContactMessageStore) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		messages:  messages,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// submitContactForm persists a visitor message and sends a best-effort
// email notification. A failed notification never fails the request; the
// message is already stored.
func (h contactHandler) submitContactForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg models.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := h.validate.Struct(msg); err != nil {
			h.responder.WriteError(w, contactValidationError(err))
			return
		}

		if err := h.messages.Add(r.Context(), &msg); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "contact message", err))
			return
		}

		if err := services.SendContactNotification(msg); err != nil {
			h.logger.Warn().Err(err).Msg("Contact notification email failed")
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message received",
		})
	}
}

func contactValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewBadRequestError("invalid contact message")
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())

	var reason string
	switch fe.Tag() {
	case "required":
		reason = field + " is required"
	case "email":
		reason = "email must be a valid address"
	case "min":
		reason = field + " must be at least " + fe.Param() + " characters"
	default:
		reason = field + " is invalid"
	}

	return errs.NewValidationError(field, reason)
}
