package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/nimbus/internal/dashboard"
	"github.com/five82/nimbus/internal/geo"
	"github.com/five82/nimbus/internal/prefs"
	"github.com/five82/nimbus/internal/state"
)

var errNoDashboard = errors.New("no dashboard configured")

// Focus identifies which pane receives key input.
type Focus int

const (
	FocusFavorites Focus = iota
	FocusSearch
	FocusAdd
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Dashboard *dashboard.Dashboard
	Session   *state.Session
	Logger    *slog.Logger
	ThemeName string
	PrefsPath string
	// Location is the initial text query. Blank means the session target.
	Location string
	// RefreshEvery reloads the current query periodically. Zero disables it.
	RefreshEvery time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	dash      *dashboard.Dashboard
	session   *state.Session
	logger    *slog.Logger
	prefsPath string
	keys      keyMap
	refresh   time.Duration

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	focus    Focus
	cursor   int
	showHelp bool
	help     help.Model
	search   textinput.Model
	addInput textinput.Model
	status   string

	// Query state
	text     string // last submitted search text
	view     dashboard.ViewModel
	loading  bool
	locating bool
	seq      int
	cancel   context.CancelFunc
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	session := opts.Session
	if session == nil {
		session = state.NewSession(state.DefaultLocation, state.DefaultFavorites)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return Model{
		ctx:       ctx,
		dash:      opts.Dashboard,
		session:   session,
		logger:    logger,
		prefsPath: opts.PrefsPath,
		keys:      DefaultKeyMap(),
		refresh:   opts.RefreshEvery,
		theme:     GetTheme(themeName),
		help:      help.New(),
		search:    newInput("city or lat,lon"),
		addInput:  newInput("new favorite"),
		text:      strings.TrimSpace(opts.Location),
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = QueryCharLimit
	ti.Prompt = "> "
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	load := requestCmd(m.query(nil))
	if m.refresh <= 0 {
		return load
	}
	return tea.Batch(load, tickCmd(m.refresh))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case requestMsg:
		return m.startLoad(msg.query)

	case tickMsg:
		return m.handleTick()

	case reportMsg:
		if msg.seq != m.seq {
			// Superseded by a newer request.
			return m, nil
		}
		m.view = msg.vm
		m.loading = false
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		return m, nil

	case locateMsg:
		m.locating = false
		if msg.seq != m.seq {
			// The user picked another query while the lookup ran.
			m.status = ""
			return m, nil
		}
		if !msg.ok {
			m.status = "location unavailable, showing " + m.query(nil)
			return m, nil
		}
		m.status = ""
		return m.startLoad(m.query(msg.coords))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// query resolves the effective query for this cycle. coords is non-nil only
// right after a successful GPS lookup.
func (m Model) query(coords *geo.Coords) string {
	return dashboard.ResolveQuery(dashboard.Request{Text: m.text, GPS: coords}, m.session.Target())
}

// startLoad cancels any in-flight fetch and starts a new one. Results from
// earlier requests are dropped by sequence number.
func (m Model) startLoad(query string) (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	if m.dash == nil {
		m.view = dashboard.Render(nil, errNoDashboard)
		m.view.Query = query
		return m, nil
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.seq++
	m.loading = true
	m.logger.Debug("fetch started", slog.String("query", query), slog.Int("seq", m.seq))
	return m, loadCmd(ctx, m.dash, m.seq, query)
}

// handleTick reloads the text query unless a fetch or lookup is running.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.refresh)
	if m.loading || m.locating {
		return m, next
	}
	updated, cmd := m.startLoad(m.query(nil))
	return updated, tea.Batch(cmd, next)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch m.focus {
	case FocusSearch, FocusAdd:
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save prefs failed", slog.Any("error", err))
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.focus = FocusSearch
		m.search.SetValue(m.query(nil))
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Add):
		m.focus = FocusAdd
		m.addInput.SetValue("")
		return m, m.addInput.Focus()

	case key.Matches(msg, m.keys.GPS):
		if m.locating || m.dash == nil {
			return m, nil
		}
		m.locating = true
		m.status = "locating..."
		return m, locateCmd(m.ctx, m.dash, m.seq)

	case key.Matches(msg, m.keys.Refresh):
		return m.startLoad(m.query(nil))
	}

	return m.handleFavoritesKey(msg)
}

// handleFavoritesKey processes keyboard input for the favorites list.
func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	favorites := m.session.Favorites()
	if len(favorites) == 0 {
		return m, nil
	}
	m.cursor = clampCursor(m.cursor, len(favorites))

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(favorites)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.session.Select(favorites[m.cursor])
		m.text = ""
		m.status = ""
		return m.startLoad(m.query(nil))
	case key.Matches(msg, m.keys.Remove):
		name := favorites[m.cursor]
		wasTarget := name == m.session.Target()
		if !m.session.Remove(name) {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor, len(favorites)-1)
		m.status = "removed " + name
		if wasTarget {
			m.text = ""
			return m.startLoad(m.query(nil))
		}
	}
	return m, nil
}

// handleInputKey routes keys to the focused text field.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.blurInputs()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.focus == FocusSearch {
			m.text = strings.TrimSpace(m.search.Value())
			m.blurInputs()
			m.status = ""
			return m.startLoad(m.query(nil))
		}
		name := strings.TrimSpace(m.addInput.Value())
		if m.session.Add(name) {
			m.status = "added " + name
		} else if name != "" {
			m.status = name + " is already a favorite"
		}
		m.blurInputs()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == FocusSearch {
		m.search, cmd = m.search.Update(msg)
	} else {
		m.addInput, cmd = m.addInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) blurInputs() {
	m.focus = FocusFavorites
	m.search.Blur()
	m.addInput.Blur()
	m.addInput.SetValue("")
}

func clampCursor(cursor, n int) int {
	if n <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// Messages

type tickMsg time.Time

type requestMsg struct{ query string }

type reportMsg struct {
	seq int
	vm  dashboard.ViewModel
}

// locateMsg carries the load sequence number current when the lookup began.
type locateMsg struct {
	seq    int
	coords *geo.Coords
	ok     bool
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func requestCmd(query string) tea.Cmd {
	return func() tea.Msg {
		return requestMsg{query: query}
	}
}

func loadCmd(ctx context.Context, dash *dashboard.Dashboard, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		return reportMsg{seq: seq, vm: dash.Load(ctx, query)}
	}
}

func locateCmd(ctx context.Context, dash *dashboard.Dashboard, seq int) tea.Cmd {
	return func() tea.Msg {
		coords, ok := dash.Locate(ctx)
		return locateMsg{seq: seq, coords: coords, ok: ok}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is canceled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Shutdown by signal is a normal exit.
		return nil
	}
	return err
}
