package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"bookgrid/internal/config"
	"bookgrid/internal/domain"
	"bookgrid/internal/eventbus"
	"bookgrid/internal/logger"
	"bookgrid/internal/openlibrary"
	"bookgrid/internal/search"
	"bookgrid/internal/ui/input"
	"bookgrid/internal/ui/state"
	"bookgrid/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	state     *state.AppState

	coordinator *search.Coordinator
	client      *openlibrary.Client

	renderer     *views.Renderer
	inputHandler *input.Handler
	detail       *DetailOps

	width  int
	height int

	// Debounce bookkeeping: a tag per query edit, only the newest tag's
	// tick commits the query.
	debounceTag uint64
	quiescence  time.Duration

	// Query value when query mode was entered, restored on Esc.
	queryBeforeEdit string

	log *logrus.Entry
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService,
	coordinator *search.Coordinator, client *openlibrary.Client) *Model {

	appState := state.NewAppState(
		domain.SearchField(cfg.Search.DefaultField),
		cfg.Search.DefaultPageSize,
		cfg.Search.DefaultLanguage,
	)

	return &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		state:        appState,
		coordinator:  coordinator,
		client:       client,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		detail:       NewDetailOps(),
		quiescence:   time.Duration(cfg.Search.QuiescenceMs) * time.Millisecond,
		log:          logger.With("ui"),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.detail.SetProgram(p)
}

// State exposes the app state for assertions in tests.
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceMsg:
		if msg.tag != m.debounceTag {
			// A newer edit superseded this window.
			return m, nil
		}
		m.commitQuery()
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case detailPagerMsg:
		if msg.err != nil {
			m.state.StatusMessage = "pager failed: " + msg.err.Error()
		}
		return m, nil

	case browserOpenedMsg:
		if msg.err != nil {
			m.state.StatusMessage = "browser failed: " + msg.err.Error()
		} else {
			m.state.StatusMessage = "opened " + msg.url
		}
		return m, nil
	}

	// Cursor blink and other text input housekeeping.
	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	wasQueryMode := m.inputHandler.CurrentMode() == input.ModeQuery

	actions, inputCmd := m.inputHandler.HandleKey(msg, m.inputContext())

	if !wasQueryMode && m.inputHandler.CurrentMode() == input.ModeQuery {
		m.queryBeforeEdit = m.state.Params.QueryText
	}

	cmds := []tea.Cmd{inputCmd}
	for _, action := range actions {
		cmds = append(cmds, m.applyAction(action))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) inputContext() input.Context {
	return input.Context{
		Query:       m.state.Params.QueryText,
		Language:    m.state.Params.Language,
		YearSpec:    yearSpecString(m.state.Params.YearFrom, m.state.Params.YearTo),
		ResultCount: len(m.state.Search.Books),
		HelpOpen:    m.state.ShowHelp,
	}
}

func (m *Model) applyAction(action input.Action) tea.Cmd {
	switch act := action.(type) {
	case input.QuitAction:
		m.shutdown(act.Force)
		return tea.Quit

	case input.UpdateTextAction:
		if act.Mode == input.ModeQuery {
			m.state.SetQueryText(act.Text)
			return m.scheduleDebounce()
		}
		return nil

	case input.SubmitTextAction:
		return m.submitText(act)

	case input.CancelTextAction:
		if act.Mode == input.ModeQuery && m.state.Params.QueryText != m.queryBeforeEdit {
			m.state.SetQueryText(m.queryBeforeEdit)
			m.commitQuery()
		}
		return nil

	case input.CycleFieldAction:
		m.state.CycleField()
		m.triggerSearch()
		return nil

	case input.CyclePageSizeAction:
		m.state.CyclePageSize()
		m.triggerSearch()
		return nil

	case input.NextPageAction:
		return m.changePage(m.state.Params.Page + 1)

	case input.PrevPageAction:
		return m.changePage(m.state.Params.Page - 1)

	case input.MoveCursorAction:
		m.moveCursor(act.DX, act.DY)
		return nil

	case input.OpenDetailAction:
		return m.showDetail()

	case input.OpenSiteAction:
		if book := m.state.SelectedBook(); book != nil {
			return m.openURL(m.client.DetailURL(*book))
		}
		return nil

	case input.OpenCoverAction:
		if book := m.state.SelectedBook(); book != nil {
			return m.openURL(m.client.CoverURL(*book, openlibrary.CoverLarge))
		}
		return nil

	case input.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		return nil
	}
	return nil
}

func (m *Model) submitText(act input.SubmitTextAction) tea.Cmd {
	switch act.Mode {
	case input.ModeQuery:
		// Enter accepts the value immediately; invalidate pending ticks.
		m.state.SetQueryText(act.Text)
		m.debounceTag++
		m.commitQuery()

	case input.ModeLanguage:
		m.state.SetLanguage(strings.ToLower(strings.TrimSpace(act.Text)))
		m.triggerSearch()

	case input.ModeYear:
		from, to, err := parseYearRange(act.Text)
		if err != nil {
			m.state.StatusMessage = err.Error()
			return nil
		}
		m.state.StatusMessage = ""
		m.state.SetYearRange(from, to)
		m.triggerSearch()
	}
	return nil
}

// scheduleDebounce arms a fresh quiescence window for the current query
// text. Earlier windows are invalidated by the tag bump.
func (m *Model) scheduleDebounce() tea.Cmd {
	m.debounceTag++
	tag := m.debounceTag
	return tea.Tick(m.quiescence, func(time.Time) tea.Msg {
		return debounceMsg{tag: tag}
	})
}

// commitQuery accepts the current query text as the debounced value and
// issues a search. A query change restarts pagination.
func (m *Model) commitQuery() {
	trimmed := m.state.Params.Query()
	if trimmed == m.state.LastRequestedQuery {
		return
	}
	m.state.Params.Page = 1
	m.triggerSearch()
}

// triggerSearch hands the current params to the coordinator. The
// coordinator cancels any in-flight request and decides whether the
// query warrants a request at all.
func (m *Model) triggerSearch() {
	m.state.LastRequestedQuery = m.state.Params.Query()
	m.state.LastGen = m.coordinator.Search(m.state.Params)
}

func (m *Model) changePage(page int) tea.Cmd {
	before := m.state.Params.Page
	m.state.SetPage(page)
	if m.state.Params.Page != before {
		m.triggerSearch()
	}
	return nil
}

func (m *Model) moveCursor(dx, dy int) {
	cols := views.Columns(m.width)
	m.state.Cursor += dx + dy*cols
	m.state.ClampCursor()
}

func (m *Model) showDetail() tea.Cmd {
	book := m.state.SelectedBook()
	if book == nil {
		return nil
	}
	content := renderDetail(*book, m.client)
	return func() tea.Msg {
		return detailPagerMsg{err: m.detail.ShowInPager(content)}
	}
}

func (m *Model) openURL(url string) tea.Cmd {
	if url == "" {
		m.state.StatusMessage = "no URL for this book"
		return nil
	}
	return func() tea.Msg {
		return browserOpenedMsg{url: url, err: openBrowser(url)}
	}
}

// handleEvent applies coordinator events. Anything from a generation
// older than the latest issued search is dropped so late resolutions
// cannot overwrite state.
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch ev := event.(type) {
	case eventbus.SearchStartedEvent:
		if ev.Generation < m.state.LastGen {
			return
		}
		m.state.Search.Reset(true)
		m.state.Cursor = 0
		m.state.StatusMessage = ""

	case eventbus.SearchCompletedEvent:
		if ev.Generation < m.state.LastGen {
			m.log.WithField("generation", ev.Generation).Debug("dropping stale completion")
			return
		}
		m.state.Search.Books = ev.Books
		m.state.Search.TotalFound = ev.TotalFound
		m.state.Search.Loading = false
		m.state.Search.Err = ""
		m.state.ClampCursor()

	case eventbus.SearchFailedEvent:
		if ev.Generation < m.state.LastGen {
			return
		}
		m.state.Search.Reset(false)
		m.state.Search.Err = ev.Message

	case eventbus.SearchClearedEvent:
		if ev.Generation < m.state.LastGen {
			return
		}
		m.state.Search.Reset(false)
		m.state.Cursor = 0

	case eventbus.ErrorEvent:
		m.state.StatusMessage = ev.Message
	}
}

// shutdown cancels outstanding work and optionally writes the current
// defaults back to the config file.
func (m *Model) shutdown(force bool) {
	m.coordinator.Close()

	if force || !m.config.UI.AutosaveOnExit || m.configSvc == nil {
		return
	}
	m.config.Search.DefaultField = string(m.state.Params.Field)
	m.config.Search.DefaultPageSize = m.state.Params.PageSize
	m.config.Search.DefaultLanguage = m.state.Params.Language
	if err := m.configSvc.Save(m.config); err != nil {
		m.log.WithError(err).Warn("failed to save config")
	}
}

// View renders the UI
func (m *Model) View() string {
	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Params:        m.state.Params,
		Search:        m.state.Search,
		Cursor:        m.state.Cursor,
		ShowHelp:      m.state.ShowHelp,
		StatusMessage: m.state.StatusMessage,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.InputActive = true
		vs.Prompt = m.inputHandler.Prompt()
		vs.InputView = ti.View()
	}
	return m.renderer.Render(vs)
}
