package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ModeHandler handles keys for one input mode.
type ModeHandler interface {
	Name() string
	Enter(ctx Context) []Action
	Exit(ctx Context) []Action
	// HandleKey returns the actions for a key and whether the key was
	// consumed. Unconsumed keys in text modes fall through to the
	// shared text input.
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)
}

// NormalMode is the default browse mode.
type NormalMode struct{}

func NewNormalMode() *NormalMode { return &NormalMode{} }

func (m *NormalMode) Name() string              { return "normal" }
func (m *NormalMode) Enter(ctx Context) []Action { return nil }
func (m *NormalMode) Exit(ctx Context) []Action  { return nil }

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		return []Action{QuitAction{Force: msg.String() == "ctrl+c"}}, true
	case "/":
		return []Action{ChangeModeAction{Mode: ModeQuery}}, true
	case "tab":
		return []Action{CycleFieldAction{}}, true
	case "s":
		return []Action{CyclePageSizeAction{}}, true
	case "L":
		return []Action{ChangeModeAction{Mode: ModeLanguage}}, true
	case "y":
		return []Action{ChangeModeAction{Mode: ModeYear}}, true
	case "pgdown", "ctrl+f", "]":
		return []Action{NextPageAction{}}, true
	case "pgup", "ctrl+b", "[":
		return []Action{PrevPageAction{}}, true
	case "left", "h":
		return []Action{MoveCursorAction{DX: -1}}, true
	case "right", "l":
		return []Action{MoveCursorAction{DX: 1}}, true
	case "up", "k":
		return []Action{MoveCursorAction{DY: -1}}, true
	case "down", "j":
		return []Action{MoveCursorAction{DY: 1}}, true
	case "enter":
		if ctx.ResultCount > 0 {
			return []Action{OpenDetailAction{}}, true
		}
		return nil, true
	case "o":
		if ctx.ResultCount > 0 {
			return []Action{OpenSiteAction{}}, true
		}
		return nil, true
	case "c":
		if ctx.ResultCount > 0 {
			return []Action{OpenCoverAction{}}, true
		}
		return nil, true
	case "?":
		return []Action{ToggleHelpAction{}}, true
	case "esc":
		if ctx.HelpOpen {
			return []Action{ToggleHelpAction{}}, true
		}
		return nil, true
	}
	return nil, false
}

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	mode      Mode
	name      string
	prompt    string
	prefill   func(Context) string
	textInput *textinput.Model
}

func NewTextInputMode(mode Mode, name, prompt string, prefill func(Context) string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		prompt:    prompt,
		prefill:   prefill,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string { return m.name }

// Prompt is shown by the view next to the text input.
func (m TextInputMode) Prompt() string { return m.prompt }

func (m TextInputMode) Enter(ctx Context) []Action {
	if m.textInput != nil {
		m.textInput.Reset()
		if m.prefill != nil {
			m.textInput.SetValue(m.prefill(ctx))
			m.textInput.CursorEnd()
		}
		m.textInput.Focus()
		m.textInput.Prompt = "" // prompt is handled in the view layer
	}
	return nil
}

func (m TextInputMode) Exit(ctx Context) []Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []Action{QuitAction{Force: true}}, true
	case "esc":
		return []Action{
			CancelTextAction{Mode: m.mode},
			ChangeModeAction{Mode: ModeNormal},
		}, true
	case "enter":
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []Action{
			SubmitTextAction{Mode: m.mode, Text: text},
			ChangeModeAction{Mode: ModeNormal},
		}, true
	default:
		// Let the handler update the text input.
		return nil, false
	}
}

// QueryMode edits the search query live; every keystroke flows out as
// an UpdateTextAction and feeds the debounce.
type QueryMode struct {
	TextInputMode
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{
		TextInputMode: NewTextInputMode(ModeQuery, "query", "Search: ",
			func(ctx Context) string { return ctx.Query }, ti),
	}
}

// LanguageMode edits the language code filter; submits on Enter.
type LanguageMode struct {
	TextInputMode
}

func NewLanguageMode(ti *textinput.Model) *LanguageMode {
	return &LanguageMode{
		TextInputMode: NewTextInputMode(ModeLanguage, "language", "Language: ",
			func(ctx Context) string { return ctx.Language }, ti),
	}
}

// YearMode edits the year range filter ("1990-2005", "1990-", "-2005");
// submits on Enter.
type YearMode struct {
	TextInputMode
}

func NewYearMode(ti *textinput.Model) *YearMode {
	return &YearMode{
		TextInputMode: NewTextInputMode(ModeYear, "year", "Years: ",
			func(ctx Context) string { return ctx.YearSpec }, ti),
	}
}
