package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/keydoc/checkdoc"
	"github.com/iw2rmb/keydoc/helpdesc"
	"github.com/iw2rmb/keydoc/keyword"
)

func testCandidates() []checkdoc.Candidate {
	return []checkdoc.Candidate{
		{Name: "lisp", Description: "Lisp support and editing modes"},
		{Name: "local", Description: "site-specific customizations"},
		{Name: "tools", Description: "programming tools"},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func updateChoose(t *testing.T, m chooseModel, msgs ...tea.Msg) chooseModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(chooseModel)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
	}
	return m
}

func TestFilterCandidates(t *testing.T) {
	cands := testCandidates()

	cases := []struct {
		query string
		want  []int
	}{
		{"", []int{0, 1, 2}},
		{"l", []int{0, 1, 2}},
		{"li", []int{0}},
		{"TOOLS", []int{2}},
		{"site", []int{1}},
		{"zzz", []int{}},
	}
	for _, tc := range cases {
		if got := filterCandidates(cands, tc.query); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("filterCandidates(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestChoose_TypeFilterAccept(t *testing.T) {
	m := newChooseModel(testCandidates(), nil, DefaultStyles(), 8)

	m = updateChoose(t, m, keyRunes("tool"))
	if got, want := m.visible, []int{2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("visible = %v, want %v", got, want)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(chooseModel)
	if cmd == nil {
		t.Fatalf("accept should quit the program")
	}
	if m.choice != "tools" {
		t.Fatalf("choice = %q, want %q", m.choice, "tools")
	}
}

func TestChoose_FilterMatchesDescriptions(t *testing.T) {
	// "to" hits "tools" by name and "local" through its description
	// ("customizations"); accept picks the highlighted candidate.
	m := newChooseModel(testCandidates(), nil, DefaultStyles(), 8)

	m = updateChoose(t, m, keyRunes("to"))
	if got, want := m.visible, []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("visible = %v, want %v", got, want)
	}

	m = updateChoose(t, m, tea.KeyMsg{Type: tea.KeyDown})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(chooseModel)
	if m.choice != "tools" {
		t.Fatalf("choice = %q, want %q", m.choice, "tools")
	}
}

func TestChoose_AcceptWithNoMatchDeclines(t *testing.T) {
	m := newChooseModel(testCandidates(), nil, DefaultStyles(), 8)
	m = updateChoose(t, m, keyRunes("zzz"))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(chooseModel)
	if m.choice != "" {
		t.Fatalf("choice = %q, want empty", m.choice)
	}
}

func TestChoose_DismissDeclines(t *testing.T) {
	m := newChooseModel(testCandidates(), nil, DefaultStyles(), 8)
	m = updateChoose(t, m, keyRunes("li"))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(chooseModel)
	if cmd == nil {
		t.Fatalf("dismiss should quit the program")
	}
	if m.choice != "" {
		t.Fatalf("choice = %q, want empty", m.choice)
	}
}

func TestChoose_NavigationClamps(t *testing.T) {
	m := newChooseModel(testCandidates(), nil, DefaultStyles(), 8)

	m = updateChoose(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	if m.selected != 2 {
		t.Fatalf("selected = %d, want clamped to 2", m.selected)
	}

	m = updateChoose(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if m.selected != 0 {
		t.Fatalf("selected = %d, want clamped to 0", m.selected)
	}
}

func TestChoose_BackspaceWidensFilter(t *testing.T) {
	m := newChooseModel(testCandidates(), nil, DefaultStyles(), 8)

	m = updateChoose(t, m, keyRunes("li"), tea.KeyMsg{Type: tea.KeyBackspace})
	if m.query != "l" {
		t.Fatalf("query = %q, want %q", m.query, "l")
	}
	if len(m.visible) != 3 {
		t.Fatalf("visible = %v, want all three", m.visible)
	}
}

func TestChoose_DescriptionsComeFromRegistry(t *testing.T) {
	tbl := keyword.NewTable(map[string]string{
		"lisp":  "from the index",
		"local": "site-specific customizations",
		"tools": "programming tools",
	})
	reg := helpdesc.NewRegistry()
	helpdesc.Install(reg, tbl)

	m := newChooseModel(testCandidates(), reg, DefaultStyles(), 8)
	if got := m.describe(m.candidates[0]); got != "from the index" {
		t.Fatalf("describe = %q, want registry answer", got)
	}

	// Without a recognizing describer the candidate's own text is used.
	m = newChooseModel(testCandidates(), helpdesc.NewRegistry(), DefaultStyles(), 8)
	if got := m.describe(m.candidates[2]); got != "programming tools" {
		t.Fatalf("describe = %q, want fallback", got)
	}
}

func TestChoose_ViewListsCandidates(t *testing.T) {
	m := newChooseModel(testCandidates(), nil, DefaultStyles(), 8)
	view := m.View()
	for _, want := range []string{"lisp", "local", "tools", "programming tools"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestVisibleWindow(t *testing.T) {
	cases := []struct {
		selected, n, maxRows int
		wantStart, wantEnd   int
	}{
		{0, 10, 4, 0, 4},
		{9, 10, 4, 6, 10},
		{5, 10, 4, 3, 7},
		{0, 2, 8, 0, 2},
	}
	for _, tc := range cases {
		start, end := visibleWindow(tc.selected, tc.n, tc.maxRows)
		if start != tc.wantStart || end != tc.wantEnd {
			t.Fatalf("visibleWindow(%d,%d,%d) = (%d,%d), want (%d,%d)",
				tc.selected, tc.n, tc.maxRows, start, end, tc.wantStart, tc.wantEnd)
		}
	}
}
