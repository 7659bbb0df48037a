package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTagListSplitsAndTrims(t *testing.T) {
	post := BlogPost{Tags: " go , databases,systems "}

	assert.Equal(t, []string{"go", "databases", "systems"}, post.TagList())
	// The stored value is untouched
	assert.Equal(t, " go , databases,systems ", post.Tags)
}

func TestTagListDropsEmptySegments(t *testing.T) {
	post := BlogPost{Tags: "go,,rust,"}

	assert.Equal(t, []string{"go", "rust"}, post.TagList())
}

func TestTagListEmptyAndBlank(t *testing.T) {
	assert.Nil(t, BlogPost{Tags: ""}.TagList())
	assert.Nil(t, BlogPost{Tags: "   "}.TagList())
}

func TestLongDate(t *testing.T) {
	post := BlogPost{Date: time.Date(2025, time.January, 5, 9, 30, 0, 0, time.UTC)}
	assert.Equal(t, "January 5, 2025", post.LongDate())

	assert.Equal(t, "", BlogPost{}.LongDate())
}
