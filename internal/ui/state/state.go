package state

import (
	"bookgrid/internal/domain"
)

// AppState contains all the application state. It is mutated only on
// the Bubble Tea update goroutine.
type AppState struct {
	// Search request parameters
	Params domain.SearchParams

	// Result state, replaced wholesale as requests settle
	Search domain.SearchState

	// LastGen is the generation of the most recent search we asked the
	// coordinator for; events from older generations are dropped.
	LastGen uint64

	// LastRequestedQuery is the debounced query of the last issued
	// request, used to reset pagination when the query itself changes.
	LastRequestedQuery string

	// Cursor is the selected index within the current page's results.
	Cursor int

	// UI state
	ShowHelp      bool
	StatusMessage string
	Spinning      bool
}

// NewAppState creates state with the given startup defaults.
func NewAppState(field domain.SearchField, pageSize int, language string) *AppState {
	return &AppState{
		Params: domain.SearchParams{
			Field:    field,
			Language: language,
			Page:     1,
			PageSize: pageSize,
		},
	}
}

// SetQueryText updates the raw query text without touching pagination;
// the page reset happens when the debounced value actually changes.
func (s *AppState) SetQueryText(text string) {
	s.Params.QueryText = text
}

// SetField changes the search field and resets to the first page.
func (s *AppState) SetField(field domain.SearchField) {
	if s.Params.Field == field {
		return
	}
	s.Params.Field = field
	s.Params.Page = 1
}

// CycleField advances to the next search field and resets the page.
func (s *AppState) CycleField() {
	for i, f := range domain.SearchFields {
		if f == s.Params.Field {
			s.SetField(domain.SearchFields[(i+1)%len(domain.SearchFields)])
			return
		}
	}
	s.SetField(domain.SearchFields[0])
}

// SetPageSize changes the page size and resets to the first page.
func (s *AppState) SetPageSize(size int) {
	if s.Params.PageSize == size {
		return
	}
	s.Params.PageSize = size
	s.Params.Page = 1
}

// CyclePageSize advances to the next page size and resets the page.
func (s *AppState) CyclePageSize() {
	for i, size := range domain.PageSizes {
		if size == s.Params.PageSize {
			s.SetPageSize(domain.PageSizes[(i+1)%len(domain.PageSizes)])
			return
		}
	}
	s.SetPageSize(domain.PageSizes[0])
}

// SetLanguage changes the language filter and resets to the first page.
func (s *AppState) SetLanguage(code string) {
	if s.Params.Language == code {
		return
	}
	s.Params.Language = code
	s.Params.Page = 1
}

// SetYearRange changes the year bounds. Year filtering is client-side
// only, so pagination is deliberately left alone.
func (s *AppState) SetYearRange(from, to *int) {
	s.Params.YearFrom = from
	s.Params.YearTo = to
}

// SetPage moves to the given page, clamped to [1, TotalPages] when the
// total is known.
func (s *AppState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if total := s.Search.TotalPages(s.Params.PageSize); total > 0 && page > total {
		page = total
	}
	s.Params.Page = page
}

// ClampCursor keeps the cursor within the current result slice.
func (s *AppState) ClampCursor() {
	if s.Cursor >= len(s.Search.Books) {
		s.Cursor = len(s.Search.Books) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// SelectedBook returns the book under the cursor, or nil.
func (s *AppState) SelectedBook() *domain.Book {
	if s.Cursor < 0 || s.Cursor >= len(s.Search.Books) {
		return nil
	}
	return &s.Search.Books[s.Cursor]
}
