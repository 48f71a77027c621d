// Package lisphdr recognizes the leading metadata comment block of a Lisp
// source file: the summary line, the copyright notice, and the Keywords
// header line.
package lisphdr

import (
	"regexp"
	"strings"

	"github.com/iw2rmb/keydoc/document"
)

var (
	summaryRE  = regexp.MustCompile(`^;;;[ \t]+\S+[ \t]+---[ \t]*`)
	keywordsRE = regexp.MustCompile(`^;;+[ \t]*[Kk]eywords:[ \t]*`)

	copyrightRE = regexp.MustCompile(`Copyright[ \t]+(\(C\)|©)`)

	// Continuation lines of a copyright notice are comment lines indented
	// past the usual single space, e.g. ";;   Free Doc Foundation, Inc."
	continuationRE = regexp.MustCompile(`^;;+[ \t]{2,}\S`)
)

// IsComment reports whether line is a Lisp comment line.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), ";")
}

// headerEnd returns the row just past the leading metadata block: the first
// row that is neither a comment nor blank.
func headerEnd(d *document.Document) int {
	row := 0
	for ; row < d.LineCount(); row++ {
		line := d.Line(row)
		if strings.TrimSpace(line) == "" || IsComment(line) {
			continue
		}
		break
	}
	return row
}

// SummaryLine returns the row of the `;;; NAME --- SUMMARY` first-line
// convention, if present.
func SummaryLine(d *document.Document) (int, bool) {
	if d.LineCount() == 0 {
		return 0, false
	}
	if summaryRE.MatchString(d.Line(0)) {
		return 0, true
	}
	return 0, false
}

// KeywordsLine locates the Keywords header line inside the leading metadata
// block and returns its row and raw value (the text after the colon).
func KeywordsLine(d *document.Document) (row int, value string, ok bool) {
	end := headerEnd(d)
	span, found := d.FindForward(keywordsRE, document.Pos{})
	if !found || span.Start.Row >= end || span.Start.Col != 0 {
		return 0, "", false
	}
	row = span.Start.Row
	line := []rune(d.Line(row))
	value = string(line[span.End.Col:])
	return row, value, true
}

// CopyrightLine returns the row of the LAST line of the copyright notice in
// the leading metadata block, including indented continuation lines and
// consecutive copyright lines.
func CopyrightLine(d *document.Document) (int, bool) {
	end := headerEnd(d)
	start := -1
	for row := 0; row < end; row++ {
		line := d.Line(row)
		if IsComment(line) && copyrightRE.MatchString(line) {
			start = row
			break
		}
	}
	if start < 0 {
		return 0, false
	}

	last := start
	for row := start + 1; row < end; row++ {
		line := d.Line(row)
		if !IsComment(line) {
			break
		}
		if copyrightRE.MatchString(line) || continuationRE.MatchString(line) {
			last = row
			continue
		}
		break
	}
	return last, true
}
