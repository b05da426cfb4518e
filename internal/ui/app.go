package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/five82/insights/internal/config"
	"github.com/five82/insights/internal/logging"
	"github.com/five82/insights/internal/prefs"
	"github.com/five82/insights/internal/state"
	"github.com/five82/insights/internal/tableview"
)

// View represents the current active view.
type View int

const (
	ViewDashboard View = iota
	ViewActivity
)

// Feed is the background ticker the dashboard pauses and resumes.
type Feed interface {
	Start()
	Stop()
	Running() bool
	Interval() time.Duration
}

// Options configures the UI.
type Options struct {
	Context      context.Context
	Store        *state.Store
	Feed         Feed
	Table        *tableview.View
	Config       *config.Config
	Logger       *logrus.Entry
	ThemeName    string
	DarkTheme    string // restored when leaving light mode
	PrefsPath    string
	RefreshEvery time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	feed      Feed
	table     *tableview.View
	config    *config.Config
	log       *logrus.Entry
	prefsPath string
	refresh   time.Duration

	// UI state
	theme       Theme
	darkTheme   string
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	snapshot state.Snapshot

	// Table state
	dataTable table.Model
	search    textinput.Model
	searching bool

	// Loading skeleton
	spinner spinner.Model

	// Activity state
	activity    viewport.Model
	activityErr error

	// Status line
	status    string
	statusErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	refresh := opts.RefreshEvery
	if refresh <= 0 {
		refresh = DefaultUIInterval
	}

	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	log = log.WithField("component", "ui")

	view := opts.Table
	if view == nil {
		view = tableview.NewView(tableview.SeedRecords(), tableview.DefaultColumns(), cfg.PageSize,
			tableview.FilterOptions{CaseSensitive: cfg.CaseSensitiveSearch})
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}
	theme := GetTheme(themeName)
	darkTheme := opts.DarkTheme
	if theme.Dark {
		darkTheme = theme.Name
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.SetValue(view.Query())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		feed:        opts.Feed,
		table:       view,
		config:      cfg,
		log:         log,
		prefsPath:   prefsPath,
		refresh:     refresh,
		theme:       theme,
		darkTheme:   darkTheme,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: ViewDashboard,
		dataTable:   table.New(table.WithFocused(true), table.WithHeight(tableHeight(cfg.PageSize))),
		search:      ti,
		spinner:     sp,
		activity:    viewport.New(80, 20),
	}
	m.applyTheme()
	m.syncTable()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.refresh),
		m.spinner.Tick,
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case exportMsg:
		m.handleExport(msg)
		return m, nil

	case activityMsg:
		m.activityErr = nil
		follow := m.activity.AtBottom()
		m.activity.SetContent(m.renderActivityLines(msg.entries))
		if follow {
			m.activity.GotoBottom()
		}
		return m, nil

	case activityErrMsg:
		m.activityErr = msg.err
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// The search box swallows everything except its own exits
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		return m, nil

	case key.Matches(msg, m.keys.ToggleDark):
		m.setTheme(ToggleDark(m.theme, m.darkTheme))
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.toggleFeed()
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		if m.currentView == ViewActivity {
			m.currentView = ViewDashboard
			return m, nil
		}
		m.currentView = ViewActivity
		return m, m.loadActivity() // Fetch immediately

	case key.Matches(msg, m.keys.Escape):
		if m.currentView == ViewActivity {
			m.currentView = ViewDashboard
			return m, nil
		}
		if m.table.Query() != "" {
			m.search.SetValue("")
			m.applyQuery()
		}
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewActivity:
		return m.handleActivityKey(msg)
	default:
		return m.handleDashboardKey(msg)
	}
}

// handleDashboardKey processes keyboard input for the dashboard view.
func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.SortCol):
		idx := int(msg.String()[0] - '1')
		m.table.ToggleSortAt(idx)
		m.syncTable()
		s := m.table.Sort()
		m.log.WithFields(logrus.Fields{"column": s.Key, "direction": s.Dir.String()}).Debug("sort changed")

	case key.Matches(msg, m.keys.NextPage):
		if m.table.NextPage() {
			m.syncTable()
		}

	case key.Matches(msg, m.keys.PrevPage):
		if m.table.PrevPage() {
			m.syncTable()
		}

	case key.Matches(msg, m.keys.Export):
		page := m.table.Visible()
		return m, exportCmd(m.config.ExportDir, m.table.ExportVisible(), len(page.Rows))

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.dataTable, cmd = m.dataTable.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleSearchKey processes keyboard input while the search box has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.applyQuery()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyQuery()
	return m, cmd
}

// handleActivityKey scrolls the activity log.
func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.activity, cmd = m.activity.Update(msg)
	return m, cmd
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Fetch latest snapshot
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	// Follow the log while it is on screen
	if m.currentView == ViewActivity {
		if cmd := m.loadActivity(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.refresh))

	return m, tea.Batch(cmds...)
}

// applyQuery pushes the search box value into the table.
func (m *Model) applyQuery() {
	m.table.SetQuery(m.search.Value())
	m.syncTable()
}

// toggleFeed pauses a running feed or resumes a stopped one.
func (m *Model) toggleFeed() {
	if m.feed == nil {
		return
	}
	if m.feed.Running() {
		m.feed.Stop()
		m.setStatus("Feed paused", false)
		return
	}
	m.feed.Start()
	m.setStatus("Feed resumed", false)
}

// setTheme switches theme and persists the choice.
func (m *Model) setTheme(t Theme) {
	m.theme = t
	if t.Dark {
		m.darkTheme = t.Name
	}
	m.applyTheme()
	m.log.WithField("theme", t.Name).Info("theme changed")

	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: t.Name, DarkTheme: m.darkTheme}); err != nil {
		m.log.WithError(err).Warn("save preferences failed")
	}
}

// applyTheme restyles the bubbles components for the current theme.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		BorderBottom(true).
		Foreground(lipgloss.Color(m.theme.Accent)).
		Bold(true)
	ts.Cell = ts.Cell.Foreground(lipgloss.Color(m.theme.Text))
	ts.Selected = styles.Selected.Bold(false)
	m.dataTable.SetStyles(ts)

	m.spinner.Style = styles.AccentText
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText

	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

// resize fits the components to the terminal.
func (m *Model) resize() {
	m.help.Width = m.width
	m.activity.Width = max(m.width-4, 10)
	m.activity.Height = max(m.height-headerHeight-footerHeight-3, 3)
	m.syncTable()
}

// setStatus shows a transient message in the footer.
func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// handleExport reports the outcome of an export.
func (m *Model) handleExport(msg exportMsg) {
	if msg.err != nil {
		m.log.WithError(msg.err).Error("export failed")
		m.setStatus("Export failed: "+msg.err.Error(), true)
		return
	}
	m.log.WithFields(logrus.Fields{"path": msg.path, "rows": msg.rows}).Info("exported table page")
	m.setStatus(fmt.Sprintf("Exported %d rows to %s", msg.rows, msg.path), false)
}

// loadActivity reads the log tail when a log file is configured.
func (m Model) loadActivity() tea.Cmd {
	path := strings.TrimSpace(m.config.LogFile)
	if path == "" {
		return nil
	}
	return loadActivityCmd(path)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: title + feed status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: view context
	b.WriteString(m.renderContextBar())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.renderContent())
	b.WriteString("\n")

	// Status + short help + copyright
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewActivity:
		return m.renderActivity()
	default:
		return m.renderDashboard()
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type exportMsg struct {
	path string
	rows int
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func exportCmd(dir string, payload []byte, rows int) tea.Cmd {
	return func() tea.Msg {
		path, err := tableview.WriteExport(dir, payload)
		return exportMsg{path: path, rows: rows, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
