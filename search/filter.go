// Package search implements the blog archive's keyword filter: a plain
// multi-term substring match over the text of each post. It is not an
// index and does not rank; a post either contains every term or it is
// dropped, and survivors keep their original order.
package search

import (
	"strings"

	"github.com/rajraunak/portfolio-site-backend/models"
)

// Filter keeps the posts whose searchable text contains every whitespace-
// separated term of query as a case-insensitive substring. A blank query
// returns the input unchanged.
func Filter(posts []models.BlogPost, query string) []models.BlogPost {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return posts
	}

	matched := make([]models.BlogPost, 0, len(posts))
	for _, post := range posts {
		if matchesAll(searchableText(post), terms) {
			matched = append(matched, post)
		}
	}
	return matched
}

func matchesAll(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

// searchableText concatenates the fields a reader could plausibly search
// on, including the long-form date as it appears on the listing page so
// "january 2025" finds posts from that month. A post with no usable date
// contributes nothing for that field instead of failing the filter.
func searchableText(post models.BlogPost) string {
	return strings.ToLower(strings.Join([]string{
		post.Title,
		post.Tags,
		post.Excerpt,
		post.Content,
		post.LongDate(),
	}, " "))
}
