package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/keydoc/checkdoc"
	"github.com/iw2rmb/keydoc/helpdesc"
)

type chooseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Accept   key.Binding
	Dismiss  key.Binding
}

func defaultChooseKeyMap() chooseKeyMap {
	return chooseKeyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("up", "previous candidate")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "next candidate")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "previous page")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "next page")),
		Accept:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Dismiss:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "decline")),
	}
}

type chooseModel struct {
	candidates   []checkdoc.Candidate
	names        []string
	descriptions *helpdesc.Registry
	styles       Styles
	keys         chooseKeyMap
	maxRows      int

	query    string
	visible  []int
	selected int

	choice string
}

func newChooseModel(candidates []checkdoc.Candidate, descriptions *helpdesc.Registry, styles Styles, maxRows int) chooseModel {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}
	m := chooseModel{
		candidates:   append([]checkdoc.Candidate(nil), candidates...),
		names:        names,
		descriptions: descriptions,
		styles:       styles,
		keys:         defaultChooseKeyMap(),
		maxRows:      maxRows,
	}
	m.refilter()
	return m
}

func (m chooseModel) Init() tea.Cmd { return nil }

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Dismiss):
		m.choice = ""
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Accept):
		// Accepting with nothing highlighted counts as declining; the
		// prompt only ever yields a listed candidate or "".
		if len(m.visible) > 0 {
			m.choice = m.candidates[m.visible[m.selected]].Name
		}
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveSelection(-m.maxRows)
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveSelection(m.maxRows)

	default:
		switch keyMsg.Type {
		case tea.KeyBackspace:
			if m.query != "" {
				runes := []rune(m.query)
				m.query = string(runes[:len(runes)-1])
				m.refilter()
			}
		case tea.KeySpace:
			m.query += " "
			m.refilter()
		case tea.KeyRunes:
			if !keyMsg.Alt && len(keyMsg.Runes) > 0 {
				m.query += string(keyMsg.Runes)
				m.refilter()
			}
		}
	}
	return m, nil
}

func (m *chooseModel) moveSelection(delta int) {
	if len(m.visible) == 0 {
		m.selected = 0
		return
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next > len(m.visible)-1 {
		next = len(m.visible) - 1
	}
	m.selected = next
}

func (m *chooseModel) refilter() {
	m.visible = filterCandidates(m.candidates, m.query)
	if m.selected > len(m.visible)-1 {
		m.selected = 0
	}
}

// filterCandidates returns indices of candidates whose name or description
// contains the query, case-insensitively. An empty query keeps everything.
func filterCandidates(candidates []checkdoc.Candidate, query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	visible := make([]int, 0, len(candidates))
	for i, c := range candidates {
		text := strings.ToLower(c.Name + " " + c.Description)
		if strings.Contains(text, query) {
			visible = append(visible, i)
		}
	}
	return visible
}

func (m chooseModel) describe(c checkdoc.Candidate) string {
	if m.descriptions != nil {
		if d, ok := m.descriptions.Describe(m.names, c.Name); ok {
			return d
		}
	}
	return c.Description
}

func (m chooseModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Question.Render("Keyword:"))
	sb.WriteString(" ")
	sb.WriteString(m.styles.Query.Render(m.query))
	sb.WriteString("\n")

	if len(m.visible) == 0 {
		sb.WriteString(m.styles.Hint.Render("(no matching keyword; enter declines)"))
		return sb.String()
	}

	nameWidth := 0
	for _, idx := range m.visible {
		if n := len(m.candidates[idx].Name); n > nameWidth {
			nameWidth = n
		}
	}

	start, end := visibleWindow(m.selected, len(m.visible), m.maxRows)
	for row := start; row < end; row++ {
		c := m.candidates[m.visible[row]]
		name := c.Name + strings.Repeat(" ", nameWidth-len(c.Name))
		style := m.styles.Item
		if row == m.selected {
			style = m.styles.Selected
		}
		sb.WriteString(style.Render(name))
		if d := m.describe(c); d != "" {
			sb.WriteString("  ")
			sb.WriteString(m.styles.Description.Render(d))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// visibleWindow clamps a maxRows-sized window around selected into [0, n).
func visibleWindow(selected, n, maxRows int) (start, end int) {
	if maxRows <= 0 || maxRows > n {
		maxRows = n
	}
	start = selected - maxRows/2
	if start < 0 {
		start = 0
	}
	if start+maxRows > n {
		start = n - maxRows
	}
	return start, start + maxRows
}
