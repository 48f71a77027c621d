package helpdesc

import "github.com/iw2rmb/keydoc/keyword"

// keywordDescriber recognizes completion sources drawn from the known-keyword
// table and answers with the keyword's index description (reverse lookup).
type keywordDescriber struct {
	table *keyword.Table
}

func (d *keywordDescriber) Recognizes(candidates []string) bool {
	if len(candidates) == 0 {
		return false
	}
	for _, c := range candidates {
		if !d.table.Known(c) {
			return false
		}
	}
	return true
}

func (d *keywordDescriber) Describe(candidate string) (string, bool) {
	return d.table.Describe(candidate)
}

// Installation tracks one describer added to a registry so teardown can
// remove exactly that entry.
type Installation struct {
	reg *Registry
	d   Describer
}

// Install registers a keyword describer for table. A nil registry means the
// add-on is absent; installation is skipped and the returned Installation's
// Uninstall is a no-op.
func Install(reg *Registry, table *keyword.Table) *Installation {
	in := &Installation{reg: reg}
	if reg == nil {
		return in
	}
	in.d = &keywordDescriber{table: table}
	reg.Add(in.d)
	return in
}

// Uninstall removes the installed describer. Safe to call repeatedly and on
// installations that never registered anything.
func (in *Installation) Uninstall() {
	if in == nil || in.reg == nil || in.d == nil {
		return
	}
	in.reg.Remove(in.d)
	in.d = nil
}
