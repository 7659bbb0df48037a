package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rajraunak/portfolio-site-backend/database"
	"github.com/rajraunak/portfolio-site-backend/errs"
	"github.com/rajraunak/portfolio-site-backend/models"
	"github.com/rajraunak/portfolio-site-backend/search"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     database.BlogPostStore
}

func newBlogPostHandler(posts database.BlogPostStore) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
	}
}

// BlogPostWithTags is a post as served to readers: the stored record plus
// its tags split for display. The Tags field itself stays comma-separated.
type BlogPostWithTags struct {
	models.BlogPost
	TagList []string `json:"tagList"`
}

func withTags(post models.BlogPost) BlogPostWithTags {
	return BlogPostWithTags{BlogPost: post, TagList: post.TagList()}
}

// BlogPostCollection is the listing response shape
type BlogPostCollection struct {
	BlogPosts []BlogPostWithTags `json:"blogPosts"`
	Total     int                `json:"total"`
}

// getAllBlogPosts returns the archive newest-first, optionally narrowed by
// the q query parameter (every whitespace-separated term must match).
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.posts.FindAllOrdered(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if q := r.URL.Query().Get("q"); q != "" {
			posts = search.Filter(posts, q)
		}

		listed := make([]BlogPostWithTags, 0, len(posts))
		for _, post := range posts {
			listed = append(listed, withTags(post))
		}

		h.responder.WriteJSON(w, BlogPostCollection{
			BlogPosts: listed,
			Total:     len(listed),
		})
	}
}

// getBlogPost returns a single post by id, 404 when it does not exist.
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogPostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.posts.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, withTags(*post))
	}
}

// createBlogPost persists a new post. The store stamps the date and
// assigns the id; the client cannot set either.
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := validateBlogPost(post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post.ID = uuid.Nil
		post.Date = time.Time{}
		if err := h.posts.Add(r.Context(), &post); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "blog post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

// updateBlogPost overwrites an existing post in full. The store stamps a
// fresh date, so an edited post resurfaces at the top of the archive.
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogPostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Verify the post exists before overwriting
		if _, err := h.posts.FindByID(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var post models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := validateBlogPost(post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post.ID = id
		if err := h.posts.Update(r.Context(), &post); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// deleteBlogPost removes a post by id. Deleting an id that no longer
// exists still succeeds; the caller does not re-check.
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogPostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.posts.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}

func blogPostID(r *http.Request) (uuid.UUID, error) {
	idStr := chi.URLParam(r, "blogPostID")
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing blogPostID")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid blogPostID")
	}
	return id, nil
}

func validateBlogPost(post models.BlogPost) error {
	if post.Title == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if post.Content == "" {
		return errs.NewValidationError("content", "content is required")
	}
	return nil
}
