package list

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/charmbracelet/listadapter/internal/adapter"
	"github.com/charmbracelet/listadapter/internal/tui/util"
)

// Heights of self-measured rows are only known after their view is filled,
// so a layout pass may move rows around and expose new ones. Stop after a few
// passes in case measurements keep changing.
const maxLayoutPasses = 4

type entryKind uint8

const (
	entryHeader entryKind = iota
	entryRow
)

// entry is one section header or row in content coordinates.
type entry struct {
	kind   entryKind
	pos    adapter.Position
	start  int
	height int
	// auto entries are sized by measuring their rendered view.
	auto bool
}

// rebuild asks the data source for the shape of the list. Row views are not
// requested here; self-measured rows start out at their estimate.
func (l *list) rebuild() {
	l.entries = l.entries[:0]
	clear(l.rowIndex)
	if l.source == nil {
		l.computeStarts()
		return
	}

	for section := range l.source.SectionCount() {
		if h := l.headerEntryHeight(section); h > 0 {
			l.entries = append(l.entries, entry{
				kind:   entryHeader,
				pos:    adapter.Position{Section: section, Row: -1},
				height: h,
			})
		}
		for row := range l.source.RowCount(section) {
			pos := adapter.Position{Section: section, Row: row}
			e := entry{kind: entryRow, pos: pos, height: l.source.HeightFor(pos)}
			if e.height == adapter.Automatic {
				e.auto = true
				e.height = max(l.source.EstimatedHeightFor(pos), 1)
			}
			l.rowIndex[pos] = len(l.entries)
			l.entries = append(l.entries, e)
		}
	}
	l.computeStarts()
}

func (l *list) headerEntryHeight(section int) int {
	h := l.source.HeaderHeightFor(section)
	if h != adapter.Automatic {
		return h
	}
	view := l.source.HeaderViewFor(section)
	if view == nil || l.width <= 0 {
		return max(l.source.HeaderEstimatedHeightFor(section), 0)
	}
	return lipgloss.Height(view.Render(l.width))
}

func (l *list) computeStarts() {
	line := l.headerHeight
	for i := range l.entries {
		if i > 0 {
			line += l.gap
		}
		l.entries[i].start = line
		line += l.entries[i].height
	}
	l.contentHeight = line
}

func (l *list) maxOffset() int {
	return max(l.contentHeight-l.height, 0)
}

// visibleEntries returns the indexes of the entries intersecting the
// viewport, in content order.
func (l *list) visibleEntries() []int {
	top, bottom := l.offset, l.offset+l.height
	var visible []int
	for i, e := range l.entries {
		if e.start >= bottom {
			break
		}
		if e.height > 0 && e.start+e.height > top {
			visible = append(visible, i)
		}
	}
	return visible
}

// layoutIfNeeded makes sure every visible row has a filled view and every
// view that scrolled out of sight is back in its reuse pool.
func (l *list) layoutIfNeeded() {
	if !l.needsLayout {
		return
	}
	l.needsLayout = false
	if l.source == nil || l.width <= 0 || l.height <= 0 {
		l.computeStarts()
		return
	}

	for range maxLayoutPasses {
		l.computeStarts()
		l.offset = util.Clamp(l.offset, 0, l.maxOffset())

		visible := l.visibleEntries()
		l.recycleHidden(visible)

		changed := false
		for _, i := range visible {
			e := &l.entries[i]
			if e.kind != entryRow {
				continue
			}
			s, ok := l.cells[e.pos]
			if !ok {
				view := l.source.CellFor(e.pos)
				s = l.cells[e.pos]
				s.view = view
				l.cells[e.pos] = s
			}
			if !e.auto {
				continue
			}
			if h := lipgloss.Height(s.view.Render(l.cellWidth())); h != e.height {
				e.height = h
				changed = true
			}
		}
		if !changed {
			return
		}
	}
	l.computeStarts()
	l.offset = util.Clamp(l.offset, 0, l.maxOffset())
}

func (l *list) recycleHidden(visible []int) {
	keep := make(map[adapter.Position]bool, len(visible))
	for _, i := range visible {
		if e := l.entries[i]; e.kind == entryRow {
			keep[e.pos] = true
		}
	}
	for pos, s := range l.cells {
		if keep[pos] {
			continue
		}
		l.recycle(s)
		delete(l.cells, pos)
	}
}

func (l *list) rowEntries() []int {
	rows := make([]int, 0, len(l.rowIndex))
	for i, e := range l.entries {
		if e.kind == entryRow {
			rows = append(rows, i)
		}
	}
	return rows
}

func (l *list) firstRow() (adapter.Position, bool) {
	for _, e := range l.entries {
		if e.kind == entryRow {
			return e.pos, true
		}
	}
	return adapter.Position{}, false
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func truncate(line string, width int) string {
	return ansi.Truncate(line, width, "")
}
