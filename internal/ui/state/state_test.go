package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookgrid/internal/domain"
)

func intp(v int) *int { return &v }

func newTestState() *AppState {
	s := NewAppState(domain.FieldTitle, 12, "")
	s.Params.Page = 5
	return s
}

func TestFieldChangeResetsPage(t *testing.T) {
	s := newTestState()

	s.SetField(domain.FieldAuthor)

	assert.Equal(t, domain.FieldAuthor, s.Params.Field)
	assert.Equal(t, 1, s.Params.Page)
}

func TestSameFieldKeepsPage(t *testing.T) {
	s := newTestState()

	s.SetField(domain.FieldTitle)

	assert.Equal(t, 5, s.Params.Page)
}

func TestPageSizeChangeResetsPage(t *testing.T) {
	s := newTestState()

	s.SetPageSize(24)

	assert.Equal(t, 24, s.Params.PageSize)
	assert.Equal(t, 1, s.Params.Page)
}

func TestLanguageChangeResetsPage(t *testing.T) {
	s := newTestState()

	s.SetLanguage("eng")

	assert.Equal(t, "eng", s.Params.Language)
	assert.Equal(t, 1, s.Params.Page)
}

func TestYearRangeChangeKeepsPage(t *testing.T) {
	s := newTestState()

	s.SetYearRange(intp(1990), intp(2005))

	assert.Equal(t, 5, s.Params.Page)
}

func TestCycleFieldOrder(t *testing.T) {
	s := NewAppState(domain.FieldTitle, 12, "")

	want := []domain.SearchField{domain.FieldAuthor, domain.FieldISBN, domain.FieldSubject, domain.FieldTitle}
	for _, field := range want {
		s.CycleField()
		assert.Equal(t, field, s.Params.Field)
	}
}

func TestCyclePageSizeOrder(t *testing.T) {
	s := NewAppState(domain.FieldTitle, 8, "")

	s.CyclePageSize()
	assert.Equal(t, 12, s.Params.PageSize)
	s.CyclePageSize()
	assert.Equal(t, 24, s.Params.PageSize)
	s.CyclePageSize()
	assert.Equal(t, 8, s.Params.PageSize)
}

func TestSetPageClampsToKnownTotal(t *testing.T) {
	s := NewAppState(domain.FieldTitle, 12, "")
	s.Search.TotalFound = 30 // 3 pages of 12

	s.SetPage(99)
	assert.Equal(t, 3, s.Params.Page)

	s.SetPage(0)
	assert.Equal(t, 1, s.Params.Page)
}

func TestSetPageUnboundedWithoutTotal(t *testing.T) {
	s := NewAppState(domain.FieldTitle, 12, "")

	s.SetPage(7)

	assert.Equal(t, 7, s.Params.Page)
}

func TestClampCursor(t *testing.T) {
	s := NewAppState(domain.FieldTitle, 12, "")
	s.Search.Books = []domain.Book{{Title: "a"}, {Title: "b"}}

	s.Cursor = 9
	s.ClampCursor()
	assert.Equal(t, 1, s.Cursor)

	s.Cursor = -3
	s.ClampCursor()
	assert.Equal(t, 0, s.Cursor)
}

func TestSelectedBook(t *testing.T) {
	s := NewAppState(domain.FieldTitle, 12, "")
	assert.Nil(t, s.SelectedBook())

	s.Search.Books = []domain.Book{{Title: "a"}, {Title: "b"}}
	s.Cursor = 1
	book := s.SelectedBook()
	assert.NotNil(t, book)
	assert.Equal(t, "b", book.Title)
}
