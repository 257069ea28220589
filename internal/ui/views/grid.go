package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bookgrid/internal/domain"
)

// cardInnerWidth is the text width inside a card; borders and padding
// add four more columns.
const cardInnerWidth = 30

const cardOuterWidth = cardInnerWidth + 4

// Columns returns how many result cards fit in the given width.
func Columns(width int) int {
	cols := width / cardOuterWidth
	if cols < 1 {
		cols = 1
	}
	if cols > 4 {
		cols = 4
	}
	return cols
}

// GridRenderer lays result cards out in rows.
type GridRenderer struct {
	styles *Styles
}

func NewGridRenderer(styles *Styles) *GridRenderer {
	return &GridRenderer{styles: styles}
}

// Render draws the books as a grid, highlighting the cursor's card.
func (g *GridRenderer) Render(books []domain.Book, cursor, width int) string {
	if len(books) == 0 {
		return ""
	}

	cols := Columns(width)
	var rows []string
	for start := 0; start < len(books); start += cols {
		end := start + cols
		if end > len(books) {
			end = len(books)
		}
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, g.renderCard(books[i], i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g *GridRenderer) renderCard(book domain.Book, selected bool) string {
	title := truncate(book.Title, cardInnerWidth)
	if title == "" {
		title = "(untitled)"
	}

	author := "unknown author"
	if len(book.Authors) > 0 {
		author = strings.Join(book.Authors, ", ")
	}
	author = truncate(author, cardInnerWidth)

	meta := "year —"
	if book.FirstPublishYear != nil {
		meta = fmt.Sprintf("year %d", *book.FirstPublishYear)
	}
	if book.CoverID != nil {
		meta += "  ◻ cover"
	}

	subjects := ""
	if len(book.Subjects) > 0 {
		subjects = truncate(strings.Join(book.Subjects, " · "), cardInnerWidth)
	}

	lines := []string{
		g.styles.CardTitle.Render(title),
		g.styles.CardAuthor.Render(author),
		g.styles.CardMeta.Render(meta),
		g.styles.CardMeta.Render(subjects),
	}

	card := g.styles.Card
	if selected {
		card = g.styles.SelectedCard
	}
	return card.Width(cardInnerWidth + 2).Render(strings.Join(lines, "\n"))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
