package domain

import (
	"math"
	"strings"
)

// SearchField selects which Open Library query parameter the query text
// is sent as.
type SearchField string

const (
	FieldTitle   SearchField = "title"
	FieldAuthor  SearchField = "author"
	FieldISBN    SearchField = "isbn"
	FieldSubject SearchField = "subject"
)

// SearchFields lists the fields in cycle order for the UI.
var SearchFields = []SearchField{FieldTitle, FieldAuthor, FieldISBN, FieldSubject}

// PageSizes lists the selectable page sizes in cycle order.
var PageSizes = []int{8, 12, 24}

// SearchParams is everything needed to build one search request.
type SearchParams struct {
	QueryText string
	Field     SearchField
	Language  string // ISO code like "eng", "" means any
	YearFrom  *int
	YearTo    *int
	Page      int // 1-based
	PageSize  int // one of PageSizes
}

// Query returns the trimmed query text.
func (p SearchParams) Query() string {
	return strings.TrimSpace(p.QueryText)
}

// IsEmpty reports whether the query is empty or whitespace-only.
func (p SearchParams) IsEmpty() bool {
	return p.Query() == ""
}

// HasYearBound reports whether either year bound is set.
func (p SearchParams) HasYearBound() bool {
	return p.YearFrom != nil || p.YearTo != nil
}

// Book is one search result. It is derived fresh from each response and
// never mutated.
type Book struct {
	Key              string // work key, e.g. "/works/OL27448W"
	Title            string
	Authors          []string
	FirstPublishYear *int
	CoverID          *int
	ISBNs            []string
	Subjects         []string
	EditionKeys      []string
}

// SearchState is the result state exposed to the view layer. It is reset
// when a request starts and replaced wholesale when one settles; it is
// never partially merged.
type SearchState struct {
	Books      []Book
	TotalFound int
	Loading    bool
	Err        string
}

// Reset clears the state for a new request.
func (s *SearchState) Reset(loading bool) {
	s.Books = nil
	s.TotalFound = 0
	s.Loading = loading
	s.Err = ""
}

// TotalPages computes the page count from the server-reported total.
// The server total can exceed the post-filtered count when a year filter
// is active; pagination math intentionally follows the server.
func (s SearchState) TotalPages(pageSize int) int {
	if pageSize <= 0 || s.TotalFound <= 0 {
		return 0
	}
	return int(math.Ceil(float64(s.TotalFound) / float64(pageSize)))
}
