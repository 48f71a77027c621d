package checkdoc

import (
	"context"
	"fmt"
	"strings"

	"github.com/iw2rmb/keydoc/document"
	"github.com/iw2rmb/keydoc/internal/lisphdr"
	"github.com/iw2rmb/keydoc/keyword"
)

const keywordsHeaderPrefix = ";; Keywords: "

// KeywordsChecker verifies that the document's Keywords header names at
// least one keyword known to the documentation index. When it does not, the
// checker asks the user to pick one and inserts it; declining records a
// finding instead.
type KeywordsChecker struct {
	table  *keyword.Table
	prompt Prompter
	ops    hostOps
}

// KeywordsOption configures a KeywordsChecker.
type KeywordsOption func(*KeywordsChecker)

// WithPrompter injects the interactive strategy. Without one the checker
// behaves as if the user declined every prompt.
func WithPrompter(p Prompter) KeywordsOption {
	return func(c *KeywordsChecker) { c.prompt = p }
}

// WithLegacyHost selects the compatibility shim for hosts that lack the
// native keyword-intersection helper and copyright locator.
func WithLegacyHost() KeywordsOption {
	return func(c *KeywordsChecker) { c.ops = legacyOps{table: c.table} }
}

func NewKeywordsChecker(table *keyword.Table, opts ...KeywordsOption) *KeywordsChecker {
	c := &KeywordsChecker{
		table:  table,
		prompt: Declining(),
		ops:    nil,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ops == nil {
		c.ops = nativeOps{table: table}
	}
	if c.prompt == nil {
		c.prompt = Declining()
	}
	return c
}

func (c *KeywordsChecker) Name() string { return "keywords" }

// HasKnownKeyword reports whether the document's Keywords header names at
// least one known keyword. No side effects.
func (c *KeywordsChecker) HasKnownKeyword(d *document.Document) bool {
	_, value, ok := lisphdr.KeywordsLine(d)
	return ok && c.ops.intersectsKnown(value)
}

// Candidates returns the prompt candidates for the checker's table, sorted
// by name.
func (c *KeywordsChecker) Candidates() []Candidate {
	names := c.table.Names()
	out := make([]Candidate, 0, len(names))
	for _, name := range names {
		desc, _ := c.table.Describe(name)
		out = append(out, Candidate{Name: name, Description: desc})
	}
	return out
}

// Check runs the keyword-presence check with interactive remediation.
// It always returns nil for the "no known keyword" condition so that sibling
// checkers keep running; only prompter failures surface as errors.
func (c *KeywordsChecker) Check(ctx context.Context, run *Run) error {
	row, value, hasLine := lisphdr.KeywordsLine(run.Doc)
	if hasLine && c.ops.intersectsKnown(value) {
		return nil
	}

	pos := document.Pos{}
	if hasLine {
		pos = document.Pos{Row: row}
	}

	yes, err := c.prompt.Confirm(ctx, "No recognized documentation keyword found. Add one?")
	if err != nil {
		return fmt.Errorf("confirm prompt: %w", err)
	}
	if yes {
		choice, err := c.prompt.ChooseKeyword(ctx, c.Candidates())
		if err != nil {
			return fmt.Errorf("keyword prompt: %w", err)
		}
		if choice != "" {
			run.Doc.Apply(c.insertionEdit(run.Doc, row, hasLine, value, choice))
			return nil
		}
	}

	msg := "file has no Keywords header line"
	if hasLine {
		msg = "no recognized documentation keyword on the Keywords line"
	}
	run.Report(Finding{
		Check:   c.Name(),
		Path:    run.Path,
		Pos:     pos,
		Message: msg,
	})
	return nil
}

// insertionEdit computes where and how the chosen keyword is written:
// appended to an existing Keywords line, or as a fresh header line after the
// copyright notice (after the summary line when there is no copyright).
// Writers always emit comma-space separators regardless of the existing
// separator style.
func (c *KeywordsChecker) insertionEdit(d *document.Document, row int, hasLine bool, value, choice string) document.TextEdit {
	if hasLine {
		eol := d.EndOfLine(row)
		sep := ", "
		if strings.TrimSpace(value) == "" {
			// Blank value: no leading comma, and no extra space when the
			// line already ends in one.
			sep = " "
			if line := d.Line(row); strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
				sep = ""
			}
		}
		return document.TextEdit{
			Span: document.Span{Start: eol, End: eol},
			Text: sep + choice,
		}
	}

	anchor, ok := c.ops.copyrightEnd(d)
	if !ok {
		if sum, found := lisphdr.SummaryLine(d); found {
			anchor = sum
		} else {
			anchor = 0
		}
	}
	// Inserting "\n<header>" at the end of the anchor line places the new
	// header immediately after it: a blank separator line stays below, and
	// an anchor that is the last content in the buffer gains the needed
	// preceding newline.
	eol := d.EndOfLine(anchor)
	return document.TextEdit{
		Span: document.Span{Start: eol, End: eol},
		Text: "\n" + keywordsHeaderPrefix + choice,
	}
}
