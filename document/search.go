package document

import "regexp"

// FindForward returns the span of the first match of re at or after from,
// scanning line by line. Matches never cross line boundaries.
//
// On the starting row only the tail of the line from from.Col onward is
// searched, so anchors in re apply to that tail, not the full line.
func (d *Document) FindForward(re *regexp.Regexp, from Pos) (Span, bool) {
	from = ClampPos(from, len(d.lines), d.lineLen)

	for row := from.Row; row < len(d.lines); row++ {
		offset := 0
		if row == from.Row {
			offset = from.Col
		}
		tail := string(d.lines[row][offset:])
		loc := re.FindStringIndex(tail)
		if loc == nil {
			continue
		}
		startCol := offset + len([]rune(tail[:loc[0]]))
		endCol := offset + len([]rune(tail[:loc[1]]))
		return Span{
			Start: Pos{Row: row, Col: startCol},
			End:   Pos{Row: row, Col: endCol},
		}, true
	}
	return Span{}, false
}
