// Package viewer is an interactive terminal view of a section manager.
//
// Every editing key maps onto exactly one section mutation, so the change
// events published on the manager's bus mirror what the user did.
package viewer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/rowkit/internal/errors"
	"github.com/Iron-Ham/rowkit/internal/event"
	"github.com/Iron-Ham/rowkit/internal/item"
	"github.com/Iron-Ham/rowkit/internal/logging"
	"github.com/Iron-Ham/rowkit/internal/manager"
	"github.com/Iron-Ham/rowkit/internal/render"
)

const helpText = "j/k move • space toggle • d delete • K/J reorder • s sort • q quit"

// reloadMsg carries a freshly built table after the definition changed.
type reloadMsg struct {
	manager *manager.Manager
	err     error
}

// activity records the last change event seen on the bus. It is shared by
// pointer so that every copy of the model sees the same value.
type activity struct {
	last    string
	changes int
}

// Model is the bubbletea model for the viewer.
type Model struct {
	manager  *manager.Manager
	opts     render.Options
	styles   *render.Styles
	errStyle lipgloss.Style
	title    string
	cursor   manager.IndexPath
	hasRow   bool
	activity *activity
	status   string
	err      error
	logger   *logging.Logger
	quitting bool

	subscriptions []string
}

// NewModel creates a model over m. The cursor starts on the first row.
func NewModel(m *manager.Manager, title string, opts render.Options, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger()
	}
	model := Model{
		manager:  m,
		opts:     opts,
		styles:   render.StylesFor(opts.Theme),
		errStyle: lipgloss.NewStyle().Foreground(render.GetPalette(opts.Theme).Error),
		title:    title,
		activity: &activity{},
		logger:   logger,
	}
	model.subscribe()
	model.cursor, model.hasRow = model.firstRow()
	return model
}

// subscribe records item changes from the manager's bus.
func (m *Model) subscribe() {
	a := m.activity
	id := m.manager.Bus().Subscribe(event.TypeItemsChanged, func(e event.Event) {
		changed, ok := e.(event.ItemsChangedEvent)
		if !ok {
			return
		}
		a.changes++
		a.last = fmt.Sprintf("%s %v in section %d", changed.Op, changed.Indexes, changed.SectionIndex)
	})
	m.subscriptions = append(m.subscriptions, id)
}

func (m *Model) unsubscribe() {
	for _, id := range m.subscriptions {
		m.manager.Bus().Unsubscribe(id)
	}
	m.subscriptions = nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		return m, nil

	case reloadMsg:
		if msg.err != nil {
			m.err = msg.err
			m.logger.Warn("reload failed", "error", msg.err.Error())
			return m, nil
		}
		m.replaceManager(msg.manager)
		m.err = nil
		m.status = "reloaded"
		return m, nil
	}
	return m, nil
}

func (m *Model) replaceManager(next *manager.Manager) {
	m.unsubscribe()
	if next != m.manager {
		// Detached sections stop publishing to the shared bus.
		m.manager.RemoveAllSections()
	}
	m.manager = next
	m.subscribe()
	m.cursor, m.hasRow = m.firstRow()
}

func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g":
		m.cursor, m.hasRow = m.firstRow()
	case "G":
		rows := m.rows()
		if len(rows) > 0 {
			m.cursor = rows[len(rows)-1]
		}
	case " ", "enter":
		m.err = m.toggle()
	case "d", "x":
		m.err = m.deleteRow()
	case "K":
		m.err = m.moveRow(-1)
	case "J":
		m.err = m.moveRow(1)
	case "s":
		m.err = m.sortSection()
	}

	if m.err != nil {
		m.logger.Debug("edit rejected",
			"key", msg.String(),
			"contract_violation", errors.IsContractViolation(m.err),
			"severity", errors.GetSeverity(m.err).String(),
			"error", m.err.Error(),
		)
	}
	return m, nil
}

// rows lists every addressable row in display order.
func (m Model) rows() []manager.IndexPath {
	var rows []manager.IndexPath
	for si, s := range m.manager.Sections() {
		for ii := range s.Count() {
			rows = append(rows, manager.IndexPath{Section: si, Item: ii})
		}
	}
	return rows
}

func (m Model) firstRow() (manager.IndexPath, bool) {
	rows := m.rows()
	if len(rows) == 0 {
		return manager.IndexPath{}, false
	}
	return rows[0], true
}

func (m *Model) moveCursor(delta int) {
	rows := m.rows()
	if len(rows) == 0 {
		m.hasRow = false
		return
	}
	pos := 0
	for i, p := range rows {
		if p == m.cursor {
			pos = i
			break
		}
	}
	pos = max(0, min(len(rows)-1, pos+delta))
	m.cursor = rows[pos]
	m.hasRow = true
}

// clampCursor keeps the cursor on an existing row after the table shrank.
func (m *Model) clampCursor() {
	rows := m.rows()
	if len(rows) == 0 {
		m.hasRow = false
		return
	}
	for _, p := range rows {
		if p == m.cursor {
			return
		}
	}
	// Fall back to the nearest row before the cursor.
	best := rows[0]
	for _, p := range rows {
		if p.Section < m.cursor.Section || (p.Section == m.cursor.Section && p.Item < m.cursor.Item) {
			best = p
		}
	}
	m.cursor = best
}

func (m Model) toggle() error {
	if !m.hasRow {
		return nil
	}
	it, err := m.manager.ItemAt(m.cursor)
	if err != nil {
		return err
	}
	t, ok := it.(*item.Toggle)
	if !ok {
		return nil
	}
	s, err := m.manager.SectionAt(m.cursor.Section)
	if err != nil {
		return err
	}
	return s.ReplaceItemAtIndex(m.cursor.Item, item.NewToggle(t.Title, !t.On))
}

func (m *Model) deleteRow() error {
	if !m.hasRow {
		return nil
	}
	s, err := m.manager.SectionAt(m.cursor.Section)
	if err != nil {
		return err
	}
	if err := s.RemoveItemAtIndex(m.cursor.Item); err != nil {
		return err
	}
	m.clampCursor()
	return nil
}

// moveRow swaps the row under the cursor with its neighbour.
func (m *Model) moveRow(delta int) error {
	if !m.hasRow {
		return nil
	}
	s, err := m.manager.SectionAt(m.cursor.Section)
	if err != nil {
		return err
	}
	to := m.cursor.Item + delta
	if to < 0 || to >= s.Count() {
		return nil
	}
	if err := s.ExchangeItemsAt(m.cursor.Item, to); err != nil {
		return err
	}
	m.cursor.Item = to
	return nil
}

func (m Model) sortSection() error {
	if !m.hasRow {
		return nil
	}
	s, err := m.manager.SectionAt(m.cursor.Section)
	if err != nil {
		return err
	}
	return s.SortItems()
}

// Cursor returns the highlighted row and whether there is one.
func (m Model) Cursor() (manager.IndexPath, bool) {
	return m.cursor, m.hasRow
}

// Manager returns the table the model is showing.
func (m Model) Manager() *manager.Manager {
	return m.manager
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Header.Render(m.title))
		b.WriteString("\n\n")
	}

	opts := m.opts
	if m.hasRow {
		cursor := m.cursor
		opts.Cursor = &cursor
	}
	b.WriteString(render.Render(m.manager, opts))
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(helpText))
	return b.String()
}

func (m Model) statusLine() string {
	switch {
	case m.err != nil:
		return m.errStyle.Render("error: " + m.err.Error())
	case m.status != "":
		return m.styles.Detail.Render(m.status)
	case m.activity.last != "":
		return m.styles.Detail.Render(fmt.Sprintf("%d changes, last: %s", m.activity.changes, m.activity.last))
	}
	return m.styles.Detail.Render(fmt.Sprintf("%d sections, %d rows", m.manager.Count(), m.manager.TotalItems()))
}
