package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Dismiss key.Binding
}

func defaultConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
		Dismiss: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "no")),
	}
}

type confirmModel struct {
	question string
	styles   Styles
	keys     confirmKeyMap

	accepted bool
}

func newConfirmModel(question string, styles Styles) confirmModel {
	return confirmModel{
		question: question,
		styles:   styles,
		keys:     defaultConfirmKeyMap(),
	}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.accepted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.No), key.Matches(keyMsg, m.keys.Dismiss):
		m.accepted = false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	return m.styles.Question.Render(m.question) + " " + m.styles.Hint.Render("[y/n]")
}
