package input

// Mode identifies the active input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeQuery
	ModeLanguage
	ModeYear
)

// Context carries the state a mode needs to make decisions, snapshotted
// by the model before each key.
type Context struct {
	Query       string
	Language    string
	YearSpec    string
	ResultCount int
	HelpOpen    bool
}

// Action is a request from the input layer to the model.
type Action interface{ isAction() }

// QuitAction requests application exit.
type QuitAction struct{ Force bool }

// ChangeModeAction switches the input mode.
type ChangeModeAction struct{ Mode Mode }

// UpdateTextAction reports the live value of the text input. In query
// mode every update feeds the debounced search.
type UpdateTextAction struct {
	Mode Mode
	Text string
}

// SubmitTextAction confirms the text input value.
type SubmitTextAction struct {
	Mode Mode
	Text string
}

// CancelTextAction abandons the text input, restoring the pre-edit value.
type CancelTextAction struct{ Mode Mode }

// CycleFieldAction advances the search field.
type CycleFieldAction struct{}

// CyclePageSizeAction advances the page size.
type CyclePageSizeAction struct{}

// NextPageAction and PrevPageAction move through result pages.
type NextPageAction struct{}
type PrevPageAction struct{}

// MoveCursorAction moves the grid cursor. DX is cells within a row,
// DY is rows.
type MoveCursorAction struct {
	DX int
	DY int
}

// OpenDetailAction shows the selected book in the pager.
type OpenDetailAction struct{}

// OpenSiteAction opens the selected book's Open Library page.
type OpenSiteAction struct{}

// OpenCoverAction opens the selected book's cover image.
type OpenCoverAction struct{}

// ToggleHelpAction toggles the help overlay.
type ToggleHelpAction struct{}

func (QuitAction) isAction()          {}
func (ChangeModeAction) isAction()    {}
func (UpdateTextAction) isAction()    {}
func (SubmitTextAction) isAction()    {}
func (CancelTextAction) isAction()    {}
func (CycleFieldAction) isAction()    {}
func (CyclePageSizeAction) isAction() {}
func (NextPageAction) isAction()      {}
func (PrevPageAction) isAction()      {}
func (MoveCursorAction) isAction()    {}
func (OpenDetailAction) isAction()    {}
func (OpenSiteAction) isAction()      {}
func (OpenCoverAction) isAction()     {}
func (ToggleHelpAction) isAction()    {}
