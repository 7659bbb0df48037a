package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rajraunak/portfolio-site-backend/models"
	"gorm.io/gorm"
)

// BlogPostStore is the call contract handlers and the admin editor program
// against. Postgres backs it in production; the in-memory store backs it
// for local development and tests.
type BlogPostStore interface {
	// FindAllOrdered returns every post ordered by date descending,
	// guarded by a fixed read deadline.
	FindAllOrdered(ctx context.Context) ([]models.BlogPost, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	// Add stamps the post date if unset and assigns an id.
	Add(ctx context.Context, post *models.BlogPost) error
	// Update overwrites the full record and stamps a fresh date, so an
	// edit always bumps the post to the top of the archive.
	Update(ctx context.Context, post *models.BlogPost) error
	// Delete is idempotent; removing a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContactMessageStore is write-only: the application records contact
// messages and never reads them back.
type ContactMessageStore interface {
	Add(ctx context.Context, msg *models.ContactMessage) error
}

type Database struct {
	blogPosts       BlogPostStore
	contactMessages ContactMessageStore
}

// New initializes a Database with each store backed by a shared GORM instance
func New(db *gorm.DB) Database {
	return Database{
		blogPosts:       NewBlogPostRepo(db),
		contactMessages: NewContactMessageRepo(db),
	}
}

// NewInMemory initializes a Database backed entirely by process memory,
// for running without a Postgres instance.
func NewInMemory() Database {
	return Database{
		blogPosts:       NewInMemoryBlogPostStore(),
		contactMessages: NewInMemoryContactMessageStore(),
	}
}

func (d Database) BlogPosts() BlogPostStore {
	return d.blogPosts
}

func (d Database) ContactMessages() ContactMessageStore {
	return d.contactMessages
}
