// Package checkdoc provides the documentation-style checker framework: an
// ordered registry of checkers run against one document at a time, and the
// Keywords header checker.
package checkdoc

import (
	"context"
	"errors"
	"fmt"

	"github.com/iw2rmb/keydoc/document"
)

// ErrCheckerExists is returned by Register when a checker with the same name
// is already registered.
var ErrCheckerExists = errors.New("checkdoc: checker already registered")

// Finding is a reported lint issue with a location. Findings never halt the
// remaining checks.
type Finding struct {
	Check   string
	Path    string
	Pos     document.Pos
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", f.Path, f.Pos.Row+1, f.Pos.Col+1, f.Message)
}

// Run is the per-invocation state handed to each checker.
type Run struct {
	Doc  *document.Document
	Path string

	findings []Finding
}

// Report records a finding. The checker should still return nil so that
// sibling checkers continue to run.
func (r *Run) Report(f Finding) {
	r.findings = append(r.findings, f)
}

// Findings returns the findings reported so far, in report order.
func (r *Run) Findings() []Finding {
	return append([]Finding(nil), r.findings...)
}

// Checker is one document-style check. Returning nil means "done, continue
// with sibling checks" whether or not findings were reported; a non-nil error
// aborts the remaining checks in the registry.
type Checker interface {
	Name() string
	Check(ctx context.Context, run *Run) error
}

// Registry is an explicit, ordered collection of checkers owned by the host.
// Checkers run in registration order.
type Registry struct {
	checkers []Checker
}

func NewRegistry() *Registry { return &Registry{} }

func (g *Registry) Register(c Checker) error {
	for _, existing := range g.checkers {
		if existing.Name() == c.Name() {
			return fmt.Errorf("%w: %s", ErrCheckerExists, c.Name())
		}
	}
	g.checkers = append(g.checkers, c)
	return nil
}

// Unregister removes the checker with the given name. Removing an absent
// name is a no-op.
func (g *Registry) Unregister(name string) {
	for i, c := range g.checkers {
		if c.Name() == name {
			g.checkers = append(g.checkers[:i], g.checkers[i+1:]...)
			return
		}
	}
}

// Names returns registered checker names in run order.
func (g *Registry) Names() []string {
	out := make([]string, 0, len(g.checkers))
	for _, c := range g.checkers {
		out = append(out, c.Name())
	}
	return out
}

// Run executes every registered checker in order against doc and returns the
// collected findings. The first checker error aborts the rest; findings
// reported before the error are still returned.
func (g *Registry) Run(ctx context.Context, doc *document.Document, path string) ([]Finding, error) {
	run := &Run{Doc: doc, Path: path}
	for _, c := range g.checkers {
		if err := ctx.Err(); err != nil {
			return run.Findings(), err
		}
		if err := c.Check(ctx, run); err != nil {
			return run.Findings(), fmt.Errorf("checkdoc: %s: %w", c.Name(), err)
		}
	}
	return run.Findings(), nil
}
