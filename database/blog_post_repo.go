package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rajraunak/portfolio-site-backend/errs"
	"github.com/rajraunak/portfolio-site-backend/models"
	"gorm.io/gorm"
)

// listReadTimeout bounds the full-archive read; see awaitFirst.
const listReadTimeout = 5 * time.Second

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAllOrdered returns all blog posts ordered by date descending. The
// read races a 5-second deadline; when the deadline wins the caller gets a
// timeout error pointing at permission rules.
func (r *BlogPostRepo) FindAllOrdered(ctx context.Context) ([]models.BlogPost, error) {
	return awaitFirst(ctx, listReadTimeout, func(ctx context.Context) ([]models.BlogPost, error) {
		var posts []models.BlogPost
		err := r.db.WithContext(ctx).Order("date DESC").Find(&posts).Error
		return posts, err
	})
}

// FindByID returns a blog post by its ID
func (r *BlogPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("blog post")
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post, stamping its date when the caller left it unset
func (r *BlogPostRepo) Add(ctx context.Context, post *models.BlogPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if post.Date.IsZero() {
		post.Date = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(post).Error
}

// Update overwrites the stored record in full with a fresh date
func (r *BlogPostRepo) Update(ctx context.Context, post *models.BlogPost) error {
	post.Date = time.Now().UTC()
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes a blog post by id; deleting a missing id is a no-op
func (r *BlogPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.BlogPost{}, "id = ?", id).Error
}
