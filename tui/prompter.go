package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/keydoc/checkdoc"
	"github.com/iw2rmb/keydoc/helpdesc"
)

const defaultMaxVisibleRows = 8

// Prompter answers checkdoc prompts on the user's terminal.
type Prompter struct {
	styles       Styles
	descriptions *helpdesc.Registry
	maxRows      int
	programOpts  []tea.ProgramOption
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithStyles overrides the default prompt styles.
func WithStyles(s Styles) Option {
	return func(p *Prompter) { p.styles = s }
}

// WithDescriptions wires the completion-help describer registry. When set,
// candidate descriptions are resolved through it; candidates keep their own
// description as fallback.
func WithDescriptions(reg *helpdesc.Registry) Option {
	return func(p *Prompter) { p.descriptions = reg }
}

// WithMaxVisibleRows caps the number of candidate rows shown at once.
func WithMaxVisibleRows(n int) Option {
	return func(p *Prompter) { p.maxRows = n }
}

// WithProgramOptions forwards extra options to each Bubble Tea program,
// e.g. tea.WithInput/tea.WithOutput in tests.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(p *Prompter) { p.programOpts = append(p.programOpts, opts...) }
}

func NewPrompter(opts ...Option) *Prompter {
	p := &Prompter{
		styles:  DefaultStyles(),
		maxRows: defaultMaxVisibleRows,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.maxRows <= 0 {
		p.maxRows = defaultMaxVisibleRows
	}
	return p
}

var _ checkdoc.Prompter = (*Prompter)(nil)

// Confirm asks a yes/no question. Esc and ctrl+c count as "no".
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	out, err := p.run(ctx, newConfirmModel(question, p.styles))
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	m, ok := out.(confirmModel)
	if !ok {
		return false, fmt.Errorf("confirm prompt: unexpected final model %T", out)
	}
	return m.accepted, nil
}

// ChooseKeyword presents the candidates with completion-style filtering and
// returns the accepted candidate's name, or "" when the user declined. Only
// listed candidates can be returned.
func (p *Prompter) ChooseKeyword(ctx context.Context, candidates []checkdoc.Candidate) (string, error) {
	out, err := p.run(ctx, newChooseModel(candidates, p.descriptions, p.styles, p.maxRows))
	if err != nil {
		return "", fmt.Errorf("keyword prompt: %w", err)
	}
	m, ok := out.(chooseModel)
	if !ok {
		return "", fmt.Errorf("keyword prompt: unexpected final model %T", out)
	}
	return m.choice, nil
}

func (p *Prompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.programOpts...)
	return tea.NewProgram(m, opts...).Run()
}
