package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"bookgrid/internal/domain"
	"bookgrid/internal/openlibrary"
)

// DetailOps shows a book's detail text in the ov pager, handing the
// terminal over and back around the pager run.
type DetailOps struct {
	program *tea.Program
}

// NewDetailOps creates a new detail operations instance
func NewDetailOps() *DetailOps {
	return &DetailOps{}
}

// SetProgram sets the program reference for terminal management
func (d *DetailOps) SetProgram(p *tea.Program) {
	d.program = p
}

// ShowInPager pages the detail content with ov.
func (d *DetailOps) ShowInPager(content string) error {
	if d.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := d.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay so ov has fully exited before the screen is redrawn
		time.Sleep(100 * time.Millisecond)
		_ = d.program.RestoreTerminal()
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

// renderDetail builds the pager content for one book.
func renderDetail(book domain.Book, client *openlibrary.Client) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var b strings.Builder

	title := book.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	write := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value)))
	}

	write("Authors", strings.Join(book.Authors, ", "))
	if book.FirstPublishYear != nil {
		write("First published", fmt.Sprintf("%d", *book.FirstPublishYear))
	}
	write("ISBNs", strings.Join(firstN(book.ISBNs, 8), ", "))
	write("Book page", client.DetailURL(book))
	write("Cover (medium)", client.CoverURL(book, openlibrary.CoverMedium))
	write("Cover (large)", client.CoverURL(book, openlibrary.CoverLarge))

	if len(book.Subjects) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Subjects"))
		b.WriteString("\n")
		for _, subject := range book.Subjects {
			b.WriteString("  · ")
			b.WriteString(valueStyle.Render(subject))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
