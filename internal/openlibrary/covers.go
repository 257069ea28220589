package openlibrary

import (
	"fmt"
	"strings"

	"bookgrid/internal/domain"
)

// CoverSize represents cover image size options
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

// CoverURL derives the cover image URL for a book. The numeric cover id
// is preferred; the first ISBN is the fallback. Returns "" when neither
// is available.
func (c *Client) CoverURL(book domain.Book, size CoverSize) string {
	if book.CoverID != nil {
		return fmt.Sprintf("%s/b/id/%d-%s.jpg", c.coversBaseURL, *book.CoverID, size)
	}
	if len(book.ISBNs) > 0 {
		return fmt.Sprintf("%s/b/isbn/%s-%s.jpg", c.coversBaseURL, book.ISBNs[0], size)
	}
	return ""
}

// DetailURL derives the Open Library page for a book from its work key,
// falling back to the first edition key. Returns "" when neither exists.
func (c *Client) DetailURL(book domain.Book) string {
	if book.Key != "" {
		return c.siteBaseURL + ensureLeadingSlash(book.Key)
	}
	if len(book.EditionKeys) > 0 {
		return c.siteBaseURL + "/books/" + book.EditionKeys[0]
	}
	return ""
}

func ensureLeadingSlash(key string) string {
	if strings.HasPrefix(key, "/") {
		return key
	}
	return "/" + key
}
