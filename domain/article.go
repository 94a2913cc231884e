package domain

import (
	"strings"
	"time"
)

// UncategorizedTag is assigned when a feed entry carries no category terms.
const UncategorizedTag = "Uncategorized"

// Article is one bibliographic record parsed from the search feed.
// Immutable once parsed; snapshots of it are embedded verbatim into
// favorites and history rows.
type Article struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	Authors         []string  `json:"authors"`
	Published       string    `json:"published"`
	PublishedParsed time.Time `json:"publishedParsed,omitempty"`
	Link            string    `json:"link"`
	PDFLink         string    `json:"pdfLink,omitempty"`
	Categories      []string  `json:"categories"`
}

// NormalizeWhitespace collapses embedded whitespace runs (including
// newlines) to single spaces and trims the result. Feed titles and
// summaries arrive with layout line breaks that must not survive.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeCategories filters empty terms and falls back to the
// Uncategorized sentinel when nothing remains. Order is preserved.
func NormalizeCategories(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return []string{UncategorizedTag}
	}
	return out
}
