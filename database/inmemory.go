package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rajraunak/portfolio-site-backend/errs"
	"github.com/rajraunak/portfolio-site-backend/models"
)

// InMemoryBlogPostStore keeps posts in process memory. It implements the
// same stamping and ordering semantics as the Postgres repo and backs the
// server when no database is configured.
type InMemoryBlogPostStore struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]models.BlogPost
}

func NewInMemoryBlogPostStore() *InMemoryBlogPostStore {
	return &InMemoryBlogPostStore{posts: make(map[uuid.UUID]models.BlogPost)}
}

func (s *InMemoryBlogPostStore) FindAllOrdered(ctx context.Context) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.BlogPost, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

func (s *InMemoryBlogPostStore) FindByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, errs.NewNotFound("blog post")
	}
	return &post, nil
}

func (s *InMemoryBlogPostStore) Add(ctx context.Context, post *models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if post.Date.IsZero() {
		post.Date = time.Now().UTC()
	}
	s.posts[post.ID] = *post
	return nil
}

func (s *InMemoryBlogPostStore) Update(ctx context.Context, post *models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Full overwrite, last write wins
	post.Date = time.Now().UTC()
	s.posts[post.ID] = *post
	return nil
}

func (s *InMemoryBlogPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.posts, id)
	return nil
}

// InMemoryContactMessageStore is the in-process counterpart of the
// contacts table.
type InMemoryContactMessageStore struct {
	mu       sync.Mutex
	messages []models.ContactMessage
}

func NewInMemoryContactMessageStore() *InMemoryContactMessageStore {
	return &InMemoryContactMessageStore{}
}

func (s *InMemoryContactMessageStore) Add(ctx context.Context, msg *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = time.Now().UTC()
	s.messages = append(s.messages, *msg)
	return nil
}
