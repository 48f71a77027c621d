package document

import "strings"

// Document is the pure document state: text plus a version counter that is
// bumped once per effective mutation.
type Document struct {
	lines   [][]rune
	version uint64
}

func New(text string) *Document {
	return &Document{lines: splitLines(text)}
}

func (d *Document) Text() string {
	var sb strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func (d *Document) Version() uint64 { return d.version }

func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the text of the given row without its trailing newline.
// Out-of-range rows yield "".
func (d *Document) Line(row int) string {
	if row < 0 || row >= len(d.lines) {
		return ""
	}
	return string(d.lines[row])
}

// EndOfLine returns the position just past the last rune of the given row.
func (d *Document) EndOfLine(row int) Pos {
	row = clampInt(row, 0, len(d.lines)-1)
	return Pos{Row: row, Col: len(d.lines[row])}
}

// End returns the position after the last rune of the last line.
func (d *Document) End() Pos {
	return d.EndOfLine(len(d.lines) - 1)
}

// Apply applies a sequence of text edits in order. Each edit's span is
// interpreted against the document state at the time that edit is applied.
// Spans are clamped into current bounds; an empty span with non-empty text
// inserts. The version is bumped once if any edit took effect.
func (d *Document) Apply(edits ...TextEdit) {
	changed := false
	for _, e := range edits {
		if d.replaceSpan(e.Span, e.Text) {
			changed = true
		}
	}
	if changed {
		d.version++
	}
}

func (d *Document) replaceSpan(s Span, text string) bool {
	s = NormalizeSpan(ClampSpan(s, len(d.lines), d.lineLen))
	if s.IsEmpty() && text == "" {
		return false
	}
	if d.textForSpan(s) == text {
		return false
	}

	startRow, startCol := s.Start.Row, s.Start.Col
	endRow, endCol := s.End.Row, s.End.Col

	prefix := append([]rune(nil), d.lines[startRow][:startCol]...)
	suffix := append([]rune(nil), d.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	repl := make([][]rune, 0, len(parts))
	if len(parts) == 1 {
		line := make([]rune, 0, len(prefix)+len(parts[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, []rune(parts[0])...)
		line = append(line, suffix...)
		repl = append(repl, line)
	} else {
		first := append(prefix, []rune(parts[0])...)
		repl = append(repl, first)
		for i := 1; i < len(parts)-1; i++ {
			repl = append(repl, []rune(parts[i]))
		}
		last := append([]rune(parts[len(parts)-1]), suffix...)
		repl = append(repl, last)
	}

	before := d.lines[:startRow]
	after := d.lines[endRow+1:]
	out := make([][]rune, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	if len(out) == 0 {
		out = [][]rune{nil}
	}
	d.lines = out
	return true
}

func (d *Document) textForSpan(s Span) string {
	s = NormalizeSpan(s)
	if s.IsEmpty() {
		return ""
	}
	if s.Start.Row == s.End.Row {
		return string(d.lines[s.Start.Row][s.Start.Col:s.End.Col])
	}

	var sb strings.Builder
	for row := s.Start.Row; row <= s.End.Row; row++ {
		if row > s.Start.Row {
			sb.WriteByte('\n')
		}
		partStart, partEnd := 0, len(d.lines[row])
		if row == s.Start.Row {
			partStart = s.Start.Col
		}
		if row == s.End.Row {
			partEnd = s.End.Col
		}
		sb.WriteString(string(d.lines[row][partStart:partEnd]))
	}
	return sb.String()
}

func (d *Document) lineLen(row int) int {
	if row < 0 || row >= len(d.lines) {
		return 0
	}
	return len(d.lines[row])
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
