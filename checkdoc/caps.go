package checkdoc

import (
	"strings"

	"github.com/iw2rmb/keydoc/document"
	"github.com/iw2rmb/keydoc/internal/lisphdr"
	"github.com/iw2rmb/keydoc/keyword"
)

// hostOps is the capability surface that differs between host variants.
// The implementation is selected once at checker construction and never
// re-detected per call.
type hostOps interface {
	// intersectsKnown reports whether the raw Keywords header value names
	// at least one known keyword.
	intersectsKnown(value string) bool

	// copyrightEnd returns the row of the last line of the copyright
	// notice, if one exists in the leading metadata block.
	copyrightEnd(d *document.Document) (int, bool)
}

// nativeOps delegates to the modern host built-ins.
type nativeOps struct {
	table *keyword.Table
}

func (o nativeOps) intersectsKnown(value string) bool {
	return o.table.ContainsAny(keyword.SplitList(value))
}

func (o nativeOps) copyrightEnd(d *document.Document) (int, bool) {
	return lisphdr.CopyrightLine(d)
}

// legacyOps is the compatibility shim for older hosts that lack the native
// intersection helper and copyright locator. Results must agree exactly with
// nativeOps for every input.
type legacyOps struct {
	table *keyword.Table
}

func (o legacyOps) intersectsKnown(value string) bool {
	for _, part := range strings.Split(value, ",") {
		for _, tok := range strings.Fields(part) {
			if o.table.Known(tok) {
				return true
			}
		}
	}
	return false
}

func (o legacyOps) copyrightEnd(d *document.Document) (int, bool) {
	start := -1
	for row := 0; row < d.LineCount(); row++ {
		line := d.Line(row)
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !lisphdr.IsComment(line) {
			return 0, false
		}
		if hasCopyrightMark(line) {
			start = row
			break
		}
	}
	if start < 0 {
		return 0, false
	}

	last := start
	for row := start + 1; row < d.LineCount(); row++ {
		line := d.Line(row)
		if !lisphdr.IsComment(line) {
			break
		}
		if hasCopyrightMark(line) || isIndentedContinuation(line) {
			last = row
			continue
		}
		break
	}
	return last, true
}

func hasCopyrightMark(line string) bool {
	for _, mark := range []string{"Copyright (C)", "Copyright ©", "Copyright\t(C)"} {
		if strings.Contains(line, mark) {
			return true
		}
	}
	return false
}

func isIndentedContinuation(line string) bool {
	rest := strings.TrimLeft(line, ";")
	if rest == line {
		return false
	}
	trimmed := strings.TrimLeft(rest, " \t")
	return len(rest)-len(trimmed) >= 2 && trimmed != ""
}
