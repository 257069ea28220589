package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"bookgrid/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Params domain.SearchParams
	Search domain.SearchState
	Cursor int

	InputActive bool
	Prompt      string
	InputView   string

	ShowHelp      bool
	StatusMessage string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	grid   *GridRenderer
	help   *HelpRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		grid:   NewGridRenderer(styles),
		help:   NewHelpRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.help.Render(state.Height)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n")

	if state.InputActive {
		content.WriteString(r.styles.Prompt.Render(state.Prompt))
		content.WriteString(state.InputView)
		content.WriteString("\n")
	}

	if state.Search.Err != "" {
		content.WriteString(r.styles.Error.Render("✗ " + state.Search.Err))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(r.renderResults(state))
	content.WriteString("\n")
	content.WriteString(r.renderFooter(state))

	return content.String()
}

func (r *Renderer) renderHeader(state ViewState) string {
	logo := r.styles.Title.Render("bookgrid")

	indicators := []string{
		fmt.Sprintf("[field: %s]", state.Params.Field),
		fmt.Sprintf("[size: %d]", state.Params.PageSize),
	}
	if state.Params.Language != "" {
		indicators = append(indicators, fmt.Sprintf("[lang: %s]", state.Params.Language))
	}
	if spec := yearSpec(state.Params); spec != "" {
		indicators = append(indicators, fmt.Sprintf("[years: %s]", spec))
	}
	right := r.styles.Filter.Render(strings.Join(indicators, " "))

	if state.Search.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		right = r.styles.Dim.Render(fmt.Sprintf("%s Searching", spinner[frame])) + "  " + right
	}

	gap := state.Width - lipgloss.Width(logo) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return logo + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderResults(state ViewState) string {
	if len(state.Search.Books) > 0 {
		return r.grid.Render(state.Search.Books, state.Cursor, state.Width)
	}

	switch {
	case state.Search.Loading:
		return r.styles.Dim.Render("  Searching…")
	case state.Search.Err != "":
		return r.styles.Dim.Render("  No results.")
	case state.Params.IsEmpty():
		return r.styles.Dim.Render("  Press / and type to search Open Library.")
	default:
		return r.styles.Dim.Render("  No results.")
	}
}

func (r *Renderer) renderFooter(state ViewState) string {
	var left string
	if state.Search.TotalFound > 0 {
		totalPages := state.Search.TotalPages(state.Params.PageSize)
		left = fmt.Sprintf("Page %d/%d · %d found", state.Params.Page, totalPages, state.Search.TotalFound)
		if state.Params.HasYearBound() {
			// The server total ignores the client-side year filter, so
			// the page count reflects unfiltered results.
			left += fmt.Sprintf(" · %d on page after year filter", len(state.Search.Books))
		}
	}

	hints := "/ search · tab field · s size · L lang · y years · [ ] pages · enter detail · ? help · q quit"
	line := r.styles.Status.Render(left)
	if state.StatusMessage != "" {
		line += "  " + r.styles.Filter.Render(state.StatusMessage)
	}
	return line + "\n" + r.styles.Help.Render(hints)
}

func yearSpec(p domain.SearchParams) string {
	switch {
	case p.YearFrom != nil && p.YearTo != nil:
		return fmt.Sprintf("%d-%d", *p.YearFrom, *p.YearTo)
	case p.YearFrom != nil:
		return fmt.Sprintf("%d-", *p.YearFrom)
	case p.YearTo != nil:
		return fmt.Sprintf("-%d", *p.YearTo)
	default:
		return ""
	}
}
