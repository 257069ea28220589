package openlibrary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookgrid/internal/domain"
)

func TestCoverURLPrefersCoverID(t *testing.T) {
	client := NewClient("", "", "")
	book := domain.Book{CoverID: intp(9255566), ISBNs: []string{"0618640150"}}

	assert.Equal(t,
		"https://covers.openlibrary.org/b/id/9255566-M.jpg",
		client.CoverURL(book, CoverMedium))
}

func TestCoverURLFallsBackToISBN(t *testing.T) {
	client := NewClient("", "", "")
	book := domain.Book{ISBNs: []string{"0618640150", "9780618640157"}}

	assert.Equal(t,
		"https://covers.openlibrary.org/b/isbn/0618640150-L.jpg",
		client.CoverURL(book, CoverLarge))
}

func TestCoverURLEmptyWithoutSources(t *testing.T) {
	client := NewClient("", "", "")

	assert.Empty(t, client.CoverURL(domain.Book{}, CoverSmall))
}

func TestDetailURLUsesWorkKey(t *testing.T) {
	client := NewClient("", "", "")
	book := domain.Book{Key: "/works/OL27448W", EditionKeys: []string{"OL51694024M"}}

	assert.Equal(t, "https://openlibrary.org/works/OL27448W", client.DetailURL(book))
}

func TestDetailURLFallsBackToEditionKey(t *testing.T) {
	client := NewClient("", "", "")
	book := domain.Book{EditionKeys: []string{"OL51694024M"}}

	assert.Equal(t, "https://openlibrary.org/books/OL51694024M", client.DetailURL(book))
}

func TestDetailURLEmptyWithoutKeys(t *testing.T) {
	client := NewClient("", "", "")

	assert.Empty(t, client.DetailURL(domain.Book{}))
}

func TestEndpointOverrides(t *testing.T) {
	client := NewClient("http://localhost:1234/search.json", "http://localhost:1234/covers", "http://localhost:1234")
	book := domain.Book{Key: "/works/OL1W", CoverID: intp(7)}

	assert.Equal(t, "http://localhost:1234/covers/b/id/7-S.jpg", client.CoverURL(book, CoverSmall))
	assert.Equal(t, "http://localhost:1234/works/OL1W", client.DetailURL(book))
}
