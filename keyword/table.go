// Package keyword provides the known-keyword table used by the
// documentation-indexing subsystem: the authoritative mapping from
// categorization keyword to human-readable description.
package keyword

import (
	"regexp"
	"sort"
)

// Table is a read-only keyword-to-description mapping. The zero value is an
// empty table.
type Table struct {
	desc map[string]string
}

// NewTable builds a table from the given pairs. The input map is copied.
func NewTable(pairs map[string]string) *Table {
	desc := make(map[string]string, len(pairs))
	for name, d := range pairs {
		if name == "" {
			continue
		}
		desc[name] = d
	}
	return &Table{desc: desc}
}

// Merge returns a new table containing t's entries overlaid with other's.
func (t *Table) Merge(other *Table) *Table {
	out := make(map[string]string, t.Len()+other.Len())
	for name, d := range t.desc {
		out[name] = d
	}
	for name, d := range other.desc {
		out[name] = d
	}
	return &Table{desc: out}
}

// Known reports whether name is a recognized keyword. Case-sensitive.
func (t *Table) Known(name string) bool {
	_, ok := t.desc[name]
	return ok
}

// Describe returns the human-readable description for name.
func (t *Table) Describe(name string) (string, bool) {
	d, ok := t.desc[name]
	return d, ok
}

// Names returns all known keywords in sorted order.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.desc))
	for name := range t.desc {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (t *Table) Len() int { return len(t.desc) }

// ContainsAny reports whether any of the given names is a known keyword.
// This is the native intersection helper; comparison is case-sensitive.
func (t *Table) ContainsAny(names []string) bool {
	for _, name := range names {
		if t.Known(name) {
			return true
		}
	}
	return false
}

var listSepRE = regexp.MustCompile(`[,\s]+`)

// SplitList splits a raw Keywords header value into tokens. Commas and
// whitespace both separate, in any mix; empty tokens are dropped.
func SplitList(s string) []string {
	var out []string
	for _, tok := range listSepRE.Split(s, -1) {
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}
