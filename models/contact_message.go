package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is an inbound record from the public contact form.
// The application only ever writes these; there is no in-app read path.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null" validate:"-"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null" validate:"required,email"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null" validate:"required,min=2"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null" validate:"required,min=10"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (ContactMessage) TableName() string {
	return "contacts"
}
