// Package admin holds the dashboard's post editor as a headless state
// container. The view owns an Editor by reference and renders whatever
// State/Form/Posts report; all persistence goes through the BlogPostStore
// it was constructed with.
package admin

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rajraunak/portfolio-site-backend/database"
	"github.com/rajraunak/portfolio-site-backend/errs"
	"github.com/rajraunak/portfolio-site-backend/models"
)

type State string

const (
	StateIdle       State = "idle"
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
)

// Form holds the editable fields of a post. Date is never here: it is
// stamped by the store on every save.
type Form struct {
	Title    string
	Excerpt  string
	Content  string
	ImageURL string
	Tags     string
}

type Editor struct {
	store database.BlogPostStore

	mu        sync.Mutex
	state     State
	form      Form
	currentID uuid.UUID
	posts     []models.BlogPost
	lastError string
}

func NewEditor(store database.BlogPostStore) *Editor {
	return &Editor{store: store, state: StateIdle}
}

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Editor) Form() Form {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

// Posts returns the most recently listed posts, newest first.
func (e *Editor) Posts() []models.BlogPost {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.posts
}

// LastError reports the message the view should surface, empty when the
// last operation succeeded.
func (e *Editor) LastError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastError
}

// Refresh re-lists the archive. On failure the previous listing is kept
// and the error is surfaced; a timed-out store renders as an
// empty-with-error state, not a crash.
func (e *Editor) Refresh(ctx context.Context) error {
	posts, err := e.store.FindAllOrdered(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.lastError = err.Error()
		return err
	}
	e.posts = posts
	e.lastError = ""
	return nil
}

// SetForm records field edits from the view without changing state.
func (e *Editor) SetForm(form Form) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.form = form
}

// SelectForEdit loads a post's fields into the form for updating.
func (e *Editor) SelectForEdit(post models.BlogPost) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = StateEditing
	e.currentID = post.ID
	e.form = Form{
		Title:    post.Title,
		Excerpt:  post.Excerpt,
		Content:  post.Content,
		ImageURL: post.ImageURL,
		Tags:     post.Tags,
	}
}

// Cancel discards unsaved edits and returns to an empty form.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

// Submit validates and persists the form: update when a post was selected
// for editing, create otherwise. Success resets the form and re-lists;
// failure keeps every field and the current state so nothing is lost.
func (e *Editor) Submit(ctx context.Context) error {
	e.mu.Lock()
	if e.form.Title == "" || e.form.Content == "" {
		e.lastError = "Title and Content are required."
		e.mu.Unlock()
		return errs.NewValidationError("title", "Title and Content are required.")
	}

	prevState := e.state
	e.state = StateSubmitting
	post := models.BlogPost{
		ID:       e.currentID,
		Title:    e.form.Title,
		Excerpt:  e.form.Excerpt,
		Content:  e.form.Content,
		ImageURL: e.form.ImageURL,
		Tags:     e.form.Tags,
	}
	updating := e.currentID != uuid.Nil
	e.mu.Unlock()

	var err error
	if updating {
		err = e.store.Update(ctx, &post)
	} else {
		err = e.store.Add(ctx, &post)
	}

	e.mu.Lock()
	if err != nil {
		e.state = prevState
		e.lastError = err.Error()
		e.mu.Unlock()
		return err
	}
	e.reset()
	e.mu.Unlock()

	return e.Refresh(ctx)
}

// Delete removes a post regardless of edit state and re-lists. The view
// is responsible for confirming with the admin first.
func (e *Editor) Delete(ctx context.Context, id uuid.UUID) error {
	if err := e.store.Delete(ctx, id); err != nil {
		e.mu.Lock()
		e.lastError = err.Error()
		e.mu.Unlock()
		return err
	}
	return e.Refresh(ctx)
}

// reset returns to Idle with an empty form; callers hold the lock.
func (e *Editor) reset() {
	e.state = StateIdle
	e.currentID = uuid.Nil
	e.form = Form{}
	e.lastError = ""
}
