package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rajraunak/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// Add records a contact message with a server-assigned timestamp. This is
// the only operation: contact messages are an outbound record with no
// in-app read path.
func (r *ContactMessageRepo) Add(ctx context.Context, msg *models.ContactMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Create(msg).Error
}
