package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlogPost is a single entry in the public blog archive.
// Content is raw HTML authored through the admin dashboard; the admin
// session is the only write path, so it is rendered unescaped downstream.
type BlogPost struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title    string    `json:"title" db:"title" gorm:"type:text;not null"`
	Excerpt  string    `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Content  string    `json:"content" db:"content" gorm:"type:text;not null"`
	ImageURL string    `json:"imageUrl" db:"image_url" gorm:"type:text"`
	Date     time.Time `json:"date" db:"date" gorm:"type:timestamp;not null;index"`
	// Tags is stored exactly as typed: a comma-separated string. It is
	// split and trimmed at render time only, never normalized at rest.
	Tags string `json:"tags" db:"tags" gorm:"type:text"`
}

func (BlogPost) TableName() string {
	return "blogs"
}

// TagList splits the comma-separated Tags field for display. Empty
// segments are dropped; the stored value is left untouched.
func (p BlogPost) TagList() []string {
	if strings.TrimSpace(p.Tags) == "" {
		return nil
	}
	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// LongDate renders Date in the long en-US form used on the public blog
// listing ("January 5, 2025"). A zero date renders as the empty string
// so a bad record never breaks rendering or search.
func (p BlogPost) LongDate() string {
	if p.Date.IsZero() {
		return ""
	}
	return p.Date.Format("January 2, 2006")
}
