package checkdoc

import "context"

// Candidate is one keyword offered at the completion prompt.
type Candidate struct {
	Name        string
	Description string
}

// Prompter resolves interactive questions during a check. Implementations
// are injected so checks run without a live editing session.
//
// ChooseKeyword returns the chosen candidate name, or "" when the user
// declined (empty input counts as declining, never as an empty insertion).
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
	ChooseKeyword(ctx context.Context, candidates []Candidate) (string, error)
}

type decliningPrompter struct{}

func (decliningPrompter) Confirm(context.Context, string) (bool, error) { return false, nil }

func (decliningPrompter) ChooseKeyword(context.Context, []Candidate) (string, error) {
	return "", nil
}

// Declining returns a Prompter that declines every question. It is the
// batch-mode stand-in: every miss becomes a finding.
func Declining() Prompter { return decliningPrompter{} }
