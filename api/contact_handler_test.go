package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rajraunak/portfolio-site-backend/database"
	"github.com/rajraunak/portfolio-site-backend/errs"
	"github.com/rajraunak/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postContact(t *testing.T, store database.ContactMessageStore, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := newContactHandler(store)
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.submitContactForm()(rec, req)
	return rec
}

func TestSubmitContactFormPersistsMessage(t *testing.T) {
	store := database.NewInMemoryContactMessageStore()

	rec := postContact(t, store, `{
		"email": "visitor@example.com",
		"subject": "Collaboration",
		"message": "I read your database series and have a question."
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSubmitContactFormRejectsInvalidEmail(t *testing.T) {
	store := database.NewInMemoryContactMessageStore()

	rec := postContact(t, store, `{
		"email": "not-an-email",
		"subject": "Hi",
		"message": "a message that is long enough"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestSubmitContactFormRejectsShortFields(t *testing.T) {
	store := database.NewInMemoryContactMessageStore()

	// Subject below two characters
	rec := postContact(t, store, `{
		"email": "visitor@example.com",
		"subject": "x",
		"message": "a message that is long enough"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Message below ten characters
	rec = postContact(t, store, `{
		"email": "visitor@example.com",
		"subject": "Hello",
		"message": "short"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitContactFormRejectsInvalidJSON(t *testing.T) {
	rec := postContact(t, database.NewInMemoryContactMessageStore(), "{broken")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type failingContactStore struct{}

func (failingContactStore) Add(ctx context.Context, msg *models.ContactMessage) error {
	return errs.NewDatabaseError("create", "contact message", assert.AnError)
}

func TestSubmitContactFormStoreFailure(t *testing.T) {
	rec := postContact(t, failingContactStore{}, `{
		"email": "visitor@example.com",
		"subject": "Hello",
		"message": "a message that is long enough"
	}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
