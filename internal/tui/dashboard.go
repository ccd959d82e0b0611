package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/zenith/internal/insight"
	"github.com/manav03panchal/zenith/internal/logging"
	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/storage"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be refreshed.
type refreshMsg struct{}

// insightMsg carries the text of a finished insight request.
type insightMsg struct {
	domain model.Domain
	ticket insight.Ticket
	text   string
}

// InsightFunc produces the insight text for a domain. It never fails; errors
// are reported as text.
type InsightFunc func(ctx context.Context, d model.Domain) string

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	agenda       []model.AgendaItem
	achievements []model.Achievement
	journal      model.JournalEntry
	transactions []model.Transaction

	store    *storage.Store
	insight  InsightFunc
	currency string
	ctx      context.Context

	// One task per tab so that requests on different tabs never interfere.
	tasks   map[model.Domain]*insight.Task
	spinner spinner.Model

	// UI state
	tab        int
	cursor     int
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	refreshInterval time.Duration
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Context         context.Context
	Store           *storage.Store
	Insight         InsightFunc
	Currency        string
	RefreshInterval time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	if config.Context == nil {
		config.Context = context.Background()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StyleSpinner

	tasks := make(map[model.Domain]*insight.Task, len(model.Domains))
	for _, d := range model.Domains {
		tasks[d] = insight.NewTask()
	}

	m := &DashboardModel{
		store:           config.Store,
		insight:         config.Insight,
		currency:        config.Currency,
		ctx:             config.Context,
		tasks:           tasks,
		spinner:         sp,
		refreshInterval: config.RefreshInterval,
	}
	m.loadData()
	return m
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil

	case spinner.TickMsg:
		if !m.anyPending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case insightMsg:
		if task, ok := m.tasks[msg.domain]; ok {
			task.Resolve(msg.ticket, msg.text)
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "right", "l":
		m.setTab(m.tab + 1)
	case "shift+tab", "left", "h":
		m.setTab(m.tab - 1)
	case "1", "2", "3", "4":
		m.setTab(int(msg.String()[0] - '1'))

	case "j", "down":
		if m.currentDomain() == model.DomainAgenda && m.cursor < len(m.agenda)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.currentDomain() == model.DomainAgenda && m.cursor > 0 {
			m.cursor--
		}

	case " ":
		if m.currentDomain() == model.DomainAgenda {
			m.toggleSelected()
		}

	case "i":
		return m, m.requestInsight(m.currentDomain())

	case "r":
		m.loadData()
		m.setMessage("Reloaded", time.Second)
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	// Error message
	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	// Status message
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	d := m.currentDomain()
	switch d {
	case model.DomainAgenda:
		sections = append(sections, (&AgendaComponent{Items: m.agenda, Cursor: m.cursor, Width: m.width}).View())
	case model.DomainHighlights:
		sections = append(sections, (&HighlightsComponent{Achievements: m.achievements, Width: m.width}).View())
	case model.DomainJournal:
		sections = append(sections, (&JournalComponent{Entry: m.journal, Width: m.width}).View())
	case model.DomainFinance:
		sections = append(sections, (&FinanceComponent{Transactions: m.transactions, Currency: m.currency, Width: m.width}).View())
	}

	insightComp := &InsightComponent{Snapshot: m.tasks[d].Snapshot(), Spinner: m.spinner, Width: m.width}
	sections = append(sections, insightComp.View())

	sections = append(sections, HelpBar(d == model.DomainAgenda))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title, date and tab strip.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Zenith")
	date := StyleSubtitle.Render(time.Now().Format("Mon Jan 2"))

	tabs := make([]string, len(model.Domains))
	for i, d := range model.Domains {
		label := fmt.Sprintf("%d %s", i+1, d.Title())
		if i == m.tab {
			tabs[i] = StyleActiveTab.Render(label)
		} else {
			tabs[i] = StyleTab.Render(label)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", date) + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

// loadData copies every domain out of the store.
func (m *DashboardModel) loadData() {
	if m.store == nil {
		return
	}
	m.agenda = m.store.Agenda.Get()
	m.achievements = m.store.Achievements.Get()
	m.journal = m.store.Journal.Get()
	m.transactions = m.store.Transactions.Get()

	if m.cursor >= len(m.agenda) {
		m.cursor = max(len(m.agenda)-1, 0)
	}
	m.err = nil
}

// toggleSelected flips completion of the agenda item under the cursor.
func (m *DashboardModel) toggleSelected() {
	if m.cursor >= len(m.agenda) {
		return
	}
	item, err := m.store.Agenda.ToggleCompleted(m.agenda[m.cursor].ID)
	if err != nil {
		m.err = err
		return
	}
	m.loadData()
	if item.Completed {
		m.setMessage("Completed "+item.Title, 2*time.Second)
	}
}

// requestInsight starts a request on the domain's task. Requests already in
// flight are left running.
func (m *DashboardModel) requestInsight(d model.Domain) tea.Cmd {
	task := m.tasks[d]
	if task == nil || m.insight == nil {
		return nil
	}

	wasPending := m.anyPending()
	ticket := task.Begin()
	logging.DebugLog("insight requested", logging.KeyDomain, d, "ticket", ticket)

	fn, ctx := m.insight, m.ctx
	request := func() tea.Msg {
		return insightMsg{domain: d, ticket: ticket, text: fn(ctx, d)}
	}
	if wasPending {
		return request
	}
	return tea.Batch(request, m.spinner.Tick)
}

func (m *DashboardModel) anyPending() bool {
	for _, t := range m.tasks {
		if t.Snapshot().State == insight.StatePending {
			return true
		}
	}
	return false
}

func (m *DashboardModel) currentDomain() model.Domain {
	return model.Domains[m.tab]
}

func (m *DashboardModel) setTab(i int) {
	n := len(model.Domains)
	m.tab = ((i % n) + n) % n
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that sends a refresh message.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	p := tea.NewProgram(NewDashboardModel(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
