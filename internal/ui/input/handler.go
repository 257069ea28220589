package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler routes keys to the active mode and owns the shared text input.
type Handler struct {
	currentMode Mode
	modes       map[Mode]ModeHandler
	textInput   *textinput.Model
}

func New() *Handler {
	ti := textinput.New()
	ti.CharLimit = 200

	h := &Handler{
		currentMode: ModeNormal,
		textInput:   &ti,
		modes:       make(map[Mode]ModeHandler),
	}

	h.modes[ModeNormal] = NewNormalMode()
	h.modes[ModeQuery] = NewQueryMode(h.textInput)
	h.modes[ModeLanguage] = NewLanguageMode(h.textInput)
	h.modes[ModeYear] = NewYearMode(h.textInput)

	return h
}

// HandleKey processes one key press, returning the resulting actions and
// any command (text input blink etc).
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []Action

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	// Handle mode changes
	for _, action := range actions {
		if changeMode, ok := action.(ChangeModeAction); ok {
			if h.modes[h.currentMode] != nil {
				exitActions := h.modes[h.currentMode].Exit(ctx)
				allActions = append(allActions, exitActions...)
			}

			h.currentMode = changeMode.Mode

			if h.modes[h.currentMode] != nil {
				enterActions := h.modes[h.currentMode].Enter(ctx)
				allActions = append(allActions, enterActions...)
			}

			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// If we're in a text mode and didn't handle the key, pass it to the
	// text input and report the live value.
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, UpdateTextAction{Mode: h.currentMode, Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// Update handles non-keyboard messages for the text input (cursor blink).
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) CurrentMode() Mode { return h.currentMode }

// Prompt returns the active text mode's prompt, or "".
func (h *Handler) Prompt() string {
	if mh, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok {
		return mh.Prompt()
	}
	return ""
}

// TextInput exposes the shared text input while a text mode is active.
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) isTextMode(mode Mode) bool {
	switch mode {
	case ModeQuery, ModeLanguage, ModeYear:
		return true
	default:
		return false
	}
}

func (h *Handler) Reset() {
	h.currentMode = ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}
