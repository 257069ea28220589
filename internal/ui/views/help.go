package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	styles *Styles
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(styles *Styles) *HelpRenderer {
	return &HelpRenderer{styles: styles}
}

// Render renders the help overlay.
func (r *HelpRenderer) Render(height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("bookgrid Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("/"), descStyle.Render("Edit query (live, debounced)")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("tab"), descStyle.Render("Cycle field: title → author → isbn → subject")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("s"), descStyle.Render("Cycle page size: 8 → 12 → 24")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("L"), descStyle.Render("Language code filter (empty clears)")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("y"), descStyle.Render("Year range filter, e.g. 1990-2005")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("arrows/hjkl"), descStyle.Render("Move cursor through the grid")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("[ ] PgUp/PgDn"), descStyle.Render("Previous / next page")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Selected book"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("enter"), descStyle.Render("Detail view in pager")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("o"), descStyle.Render("Open book page in browser")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("c"), descStyle.Render("Open cover image in browser")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s        %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
