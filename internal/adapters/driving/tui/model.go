package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/newsdex/internal/core/domain"
)

// DocumentPort is the TUI-facing subset of the document store.
type DocumentPort interface {
	RecentDocuments(ctx context.Context, limit int) ([]domain.Document, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Document, error)
}

// browseLimit bounds how many articles a view loads at once.
const browseLimit = 50

// Model is the Bubble Tea model for the article browser.
type Model struct {
	store    DocumentPort
	input    textinput.Model
	viewport viewport.Model
	docs     []domain.Document
	status   string
	cursor   int
	ready    bool
}

// New creates a browser model over the most recent articles.
func New(store DocumentPort) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Type to search, Enter to run, Esc to clear"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)

	m := Model{store: store, input: ti, viewport: vp}
	m.loadRecent()
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, bh := articleBoxStyle.GetFrameSize()
		_, qh := searchBoxStyle.GetFrameSize()
		reserved := 2 + qh + 1 // header, status, search box, spacer
		vh := msg.Height - reserved - bh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderCurrent())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				m.loadRecent()
			} else {
				m.search(q)
			}
			m.viewport.SetContent(m.renderCurrent())
			return m, nil
		case "esc":
			m.input.SetValue("")
			m.loadRecent()
			m.viewport.SetContent(m.renderCurrent())
			return m, nil
		case "down":
			if len(m.docs) > 0 {
				m.cursor = (m.cursor + 1) % len(m.docs)
				m.viewport.SetContent(m.renderCurrent())
				m.viewport.GotoTop()
				return m, nil
			}
		case "up":
			if len(m.docs) > 0 {
				m.cursor = (m.cursor - 1 + len(m.docs)) % len(m.docs)
				m.viewport.SetContent(m.renderCurrent())
				m.viewport.GotoTop()
				return m, nil
			}
		case "pgdown":
			m.viewport.HalfViewDown()
			return m, nil
		case "pgup":
			m.viewport.HalfViewUp()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the browser layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Newsdex")
	article := articleBoxStyle.Render(m.viewport.View())
	search := searchBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + article + "\n" + search + "\n" + status
}

func (m *Model) loadRecent() {
	docs, err := m.store.RecentDocuments(context.Background(), browseLimit)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.docs = nil
		return
	}
	m.docs = docs
	m.cursor = 0
	m.status = fmt.Sprintf("%d recent article(s). Up/Down to browse, Ctrl-C to quit.", len(docs))
}

func (m *Model) search(query string) {
	docs, err := m.store.Search(context.Background(), query, browseLimit)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.docs = nil
		return
	}
	m.docs = docs
	m.cursor = 0
	m.status = fmt.Sprintf("%d result(s) for %q", len(docs), query)
}

func (m Model) renderCurrent() string {
	if len(m.docs) == 0 {
		return "No articles."
	}
	doc := m.docs[m.cursor]

	var b strings.Builder
	fmt.Fprintf(&b, "Article %d/%d\n", m.cursor+1, len(m.docs))
	b.WriteString(titleStyle.Render(doc.Title))
	b.WriteString("\n")
	if doc.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", doc.Category)
	}
	if !doc.PublishedAt.IsZero() {
		fmt.Fprintf(&b, "Published: %s\n", doc.PublishedAt.Format("2006-01-02 15:04"))
	}
	b.WriteString(linkStyle.Render(doc.Link))
	b.WriteString("\n\n")
	b.WriteString(doc.Body)
	return b.String()
}

var (
	headerStyle     = lipgloss.NewStyle().Bold(true)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	linkStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	articleBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	searchBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
