package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string. The caller provides
// a mapping from StyleKey to lipgloss.Style.
//
// Consecutive cells with the same StyleKey are merged into runs and
// rendered with a single Style.Render() call per run, which is much
// faster than rendering cell by cell.
//
// Rows are joined with "\n". An empty buffer (W==0 or H==0) returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)

	for y := 0; y < b.H; y++ {
		var sb strings.Builder
		row := b.Cells[y]

		runStart := 0
		runStyle := row[0].Style

		flush := func(end int) {
			chunk := make([]rune, end-runStart)
			for i := runStart; i < end; i++ {
				chunk[i-runStart] = row[i].Ch
			}
			if s, ok := styles[runStyle]; ok {
				sb.WriteString(s.Render(string(chunk)))
			} else {
				sb.WriteString(string(chunk))
			}
		}

		for x := 1; x < b.W; x++ {
			if row[x].Style != runStyle {
				flush(x)
				runStart = x
				runStyle = row[x].Style
			}
		}
		flush(b.W)

		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}
