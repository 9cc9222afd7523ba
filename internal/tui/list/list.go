// Package list is a virtualized, sectioned list for the terminal. It knows
// nothing about the items it shows: counts, heights and views come from an
// adapter.DataSource, and row views are recycled per reuse identifier as they
// scroll out of sight.
package list

import (
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/charmbracelet/listadapter/internal/adapter"
	"github.com/charmbracelet/listadapter/internal/tui/layout"
	"github.com/charmbracelet/listadapter/internal/tui/util"
)

const (
	DefaultSettleDelay       = 150 * time.Millisecond
	DefaultDecelerationFrame = time.Second / 60
	DefaultGap               = 0

	// Lines moved by one mouse wheel notch.
	wheelLines = 3

	// Width of the cursor and selection markers in front of every row.
	gutterWidth = 2
)

type List interface {
	util.Model
	layout.Sizeable
	layout.Focusable
	adapter.Host
	adapter.Measurer

	KeyMap() KeyMap
	Offset() int
	ContentHeight() int
	Cursor() (adapter.Position, bool)
	SetCursor(adapter.Position) tea.Cmd
	MoveCursor(delta int) tea.Cmd
	Selected() []adapter.Position
	SelectCursor() tea.Cmd
	ScrollBy(lines int) tea.Cmd
	ScrollTo(offset int) tea.Cmd
	IsDragging() bool
	IsDecelerating() bool
	// Refresh measures the visible rows again. Call it after cells changed
	// their content outside of a host callback.
	Refresh()
}

// Internal ID management. Scroll messages carry the ID of the list that
// scheduled them so several lists can share one program.
var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type slot struct {
	identifier string
	view       adapter.View
}

type list struct {
	id            int
	width, height int
	gap           int
	focused       bool
	keyMap        KeyMap

	settleDelay       time.Duration
	decelerationFrame time.Duration

	source   adapter.DataSource
	delegate adapter.Delegate

	kinds map[string]adapter.CellFactory
	reuse map[string][]adapter.View
	cells map[adapter.Position]slot

	header       adapter.View
	headerHeight int

	entries       []entry
	rowIndex      map[adapter.Position]int
	contentHeight int
	needsLayout   bool

	offset    int
	cursor    adapter.Position
	hasCursor bool
	selected  map[adapter.Position]bool

	scrollState
}

type ListOption func(*list)

// WithGap sets the number of blank lines between entries.
func WithGap(gap int) ListOption {
	return func(l *list) {
		l.gap = gap
	}
}

// WithSize sets the size of the list.
func WithSize(width, height int) ListOption {
	return func(l *list) {
		l.width = width
		l.height = height
	}
}

// WithKeyMap sets custom key bindings for the list.
func WithKeyMap(k KeyMap) ListOption {
	return func(l *list) {
		l.keyMap = k
	}
}

// WithSettleDelay sets how long a drag has to be quiet before it ends.
func WithSettleDelay(d time.Duration) ListOption {
	return func(l *list) {
		l.settleDelay = d
	}
}

// WithDecelerationFrame sets the interval between deceleration steps.
func WithDecelerationFrame(d time.Duration) ListOption {
	return func(l *list) {
		l.decelerationFrame = d
	}
}

func New(opts ...ListOption) List {
	l := &list{
		id:                nextID(),
		gap:               DefaultGap,
		focused:           true,
		keyMap:            DefaultKeyMap(),
		settleDelay:       DefaultSettleDelay,
		decelerationFrame: DefaultDecelerationFrame,
		kinds:             make(map[string]adapter.CellFactory),
		reuse:             make(map[string][]adapter.View),
		cells:             make(map[adapter.Position]slot),
		rowIndex:          make(map[adapter.Position]int),
		selected:          make(map[adapter.Position]bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Init implements List.
func (l *list) Init() tea.Cmd {
	l.layoutIfNeeded()
	return nil
}

// Update implements List.
func (l *list) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settleMsg:
		return l, l.handleSettle(msg)
	case decelerateMsg:
		return l, l.handleDecelerate(msg)
	case tea.MouseWheelMsg:
		if !l.focused {
			return l, nil
		}
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			return l, l.ScrollBy(-wheelLines)
		case tea.MouseWheelDown:
			return l, l.ScrollBy(wheelLines)
		}
	case tea.KeyPressMsg:
		if !l.focused {
			return l, nil
		}
		return l, l.handleKeyPress(msg)
	}
	return l, nil
}

func (l *list) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, l.keyMap.Down):
		return l.MoveCursor(1)
	case key.Matches(msg, l.keyMap.Up):
		return l.MoveCursor(-1)
	case key.Matches(msg, l.keyMap.ScrollDown):
		return l.ScrollBy(1)
	case key.Matches(msg, l.keyMap.ScrollUp):
		return l.ScrollBy(-1)
	case key.Matches(msg, l.keyMap.HalfPageDown):
		return l.ScrollTo(l.offset + l.height/2)
	case key.Matches(msg, l.keyMap.HalfPageUp):
		return l.ScrollTo(l.offset - l.height/2)
	case key.Matches(msg, l.keyMap.PageDown):
		return l.ScrollTo(l.offset + l.height)
	case key.Matches(msg, l.keyMap.PageUp):
		return l.ScrollTo(l.offset - l.height)
	case key.Matches(msg, l.keyMap.Home):
		return l.ScrollTo(0)
	case key.Matches(msg, l.keyMap.End):
		return l.ScrollTo(l.maxOffset())
	case key.Matches(msg, l.keyMap.Select):
		return l.SelectCursor()
	}
	return nil
}

// View implements List.
func (l *list) View() string {
	l.layoutIfNeeded()
	if l.width <= 0 || l.height <= 0 {
		return ""
	}

	top := l.offset
	bottom := min(l.offset+l.height, l.contentHeight)
	if bottom <= top {
		return ""
	}
	lines := make([]string, bottom-top)

	if l.header != nil && l.headerHeight > 0 {
		l.place(lines, 0, l.headerHeight, l.header.Render(l.width))
	}
	for _, i := range l.visibleEntries() {
		e := l.entries[i]
		switch e.kind {
		case entryHeader:
			if view := l.source.HeaderViewFor(e.pos.Section); view != nil {
				l.place(lines, e.start, e.height, view.Render(l.width))
			}
		case entryRow:
			s, ok := l.cells[e.pos]
			if !ok {
				continue
			}
			l.place(lines, e.start, e.height, l.decorate(e.pos, s.view.Render(l.cellWidth())))
		}
	}
	return joinLines(lines)
}

// place copies the first height lines of block into the viewport lines,
// starting at the absolute content line start.
func (l *list) place(lines []string, start, height int, block string) {
	for i, line := range splitLines(block) {
		if i >= height {
			break
		}
		at := start + i - l.offset
		if at < 0 || at >= len(lines) {
			continue
		}
		lines[at] = truncate(line, l.width)
	}
}

func (l *list) decorate(pos adapter.Position, content string) string {
	cursor, mark := " ", " "
	if l.hasCursor && l.cursor == pos && l.focused {
		cursor = "▌"
	}
	if l.selected[pos] {
		mark = "*"
	}
	blank := fmt.Sprintf("%*s", gutterWidth, "")
	lines := splitLines(content)
	for i := range lines {
		if i == 0 {
			lines[i] = cursor + mark + lines[i]
			continue
		}
		lines[i] = blank + lines[i]
	}
	return joinLines(lines)
}

func (l *list) cellWidth() int {
	return max(l.width-gutterWidth, 0)
}

// SetSize implements List.
func (l *list) SetSize(width int, height int) tea.Cmd {
	widthChanged := width != l.width
	l.width = width
	l.height = height
	if widthChanged {
		// Measured heights depend on the width.
		l.rebuild()
	}
	l.needsLayout = true
	l.layoutIfNeeded()
	return nil
}

// GetSize implements List.
func (l *list) GetSize() (int, int) {
	return l.width, l.height
}

// Focus implements List.
func (l *list) Focus() tea.Cmd {
	l.focused = true
	return nil
}

// Blur implements List.
func (l *list) Blur() tea.Cmd {
	l.focused = false
	return nil
}

// IsFocused implements List.
func (l *list) IsFocused() bool {
	return l.focused
}

func (l *list) KeyMap() KeyMap {
	return l.keyMap
}

func (l *list) Offset() int {
	return l.offset
}

func (l *list) ContentHeight() int {
	l.layoutIfNeeded()
	return l.contentHeight
}

// SetDataSource implements adapter.Host.
func (l *list) SetDataSource(source adapter.DataSource) {
	l.source = source
	l.needsLayout = true
}

// SetDelegate implements adapter.Host.
func (l *list) SetDelegate(delegate adapter.Delegate) {
	l.delegate = delegate
}

// Register implements adapter.Host.
func (l *list) Register(identifier string, kind adapter.CellFactory) {
	l.kinds[identifier] = kind
	// Views built by a replaced factory must not be handed out again.
	delete(l.reuse, identifier)
}

// Dequeue implements adapter.Host.
func (l *list) Dequeue(identifier string, pos adapter.Position) adapter.View {
	kind, ok := l.kinds[identifier]
	if !ok {
		panic(fmt.Sprintf("list: dequeue of unregistered identifier %q", identifier))
	}
	if s, ok := l.cells[pos]; ok {
		l.recycle(s)
	}

	var view adapter.View
	if free := l.reuse[identifier]; len(free) > 0 {
		view = free[len(free)-1]
		l.reuse[identifier] = free[:len(free)-1]
	} else {
		view = kind()
	}
	l.cells[pos] = slot{identifier: identifier, view: view}
	return view
}

// ReloadData implements adapter.Host. Every visible view is recycled, the
// selection is cleared and the layout is rebuilt from the data source.
func (l *list) ReloadData() {
	for pos, s := range l.cells {
		l.recycle(s)
		delete(l.cells, pos)
	}
	clear(l.selected)
	l.rebuild()
	if l.hasCursor {
		if _, ok := l.rowIndex[l.cursor]; !ok {
			l.hasCursor = false
		}
	}
	if !l.hasCursor {
		l.cursor, l.hasCursor = l.firstRow()
	}
	l.needsLayout = true
	l.layoutIfNeeded()
	slog.Debug("Reloaded list", "entries", len(l.entries), "height", l.contentHeight)
}

// SetHeaderView implements adapter.Host. The layout is updated lazily so the
// call is safe while the data source is being replaced.
func (l *list) SetHeaderView(view adapter.View, size adapter.Size) {
	l.header = view
	l.headerHeight = 0
	if view != nil {
		l.headerHeight = max(size.Height, 0)
	}
	l.needsLayout = true
}

// DeselectRow implements adapter.Host.
func (l *list) DeselectRow(pos adapter.Position) {
	delete(l.selected, pos)
}

// CellAt implements adapter.Host.
func (l *list) CellAt(pos adapter.Position) (adapter.View, bool) {
	s, ok := l.cells[pos]
	if !ok {
		return nil, false
	}
	return s.view, true
}

// VisiblePositions implements adapter.Host.
func (l *list) VisiblePositions() []adapter.Position {
	var positions []adapter.Position
	for _, i := range l.visibleEntries() {
		if e := l.entries[i]; e.kind == entryRow {
			positions = append(positions, e.pos)
		}
	}
	return positions
}

// IsScrolling implements adapter.Host.
func (l *list) IsScrolling() bool {
	return l.dragging || l.decelerating
}

// Bounds implements adapter.Host.
func (l *list) Bounds() adapter.Size {
	return adapter.Size{Width: l.width, Height: l.height}
}

// FittingSize implements adapter.Measurer.
func (l *list) FittingSize(view adapter.View, width int) adapter.Size {
	rendered := view.Render(width)
	return adapter.Size{
		Width:  min(lipgloss.Width(rendered), width),
		Height: lipgloss.Height(rendered),
	}
}

func (l *list) Cursor() (adapter.Position, bool) {
	return l.cursor, l.hasCursor
}

// SetCursor moves the cursor to pos and scrolls it into view.
func (l *list) SetCursor(pos adapter.Position) tea.Cmd {
	l.layoutIfNeeded()
	if _, ok := l.rowIndex[pos]; !ok {
		return nil
	}
	l.cursor, l.hasCursor = pos, true
	return l.scrollToCursor()
}

// MoveCursor moves the cursor delta rows, crossing section boundaries.
func (l *list) MoveCursor(delta int) tea.Cmd {
	l.layoutIfNeeded()
	rows := l.rowEntries()
	if len(rows) == 0 {
		return nil
	}
	current := 0
	if l.hasCursor {
		current = slices.Index(rows, l.rowIndex[l.cursor])
	}
	next := util.Clamp(current+delta, 0, len(rows)-1)
	return l.SetCursor(l.entries[rows[next]].pos)
}

func (l *list) Selected() []adapter.Position {
	positions := make([]adapter.Position, 0, len(l.selected))
	for pos := range l.selected {
		positions = append(positions, pos)
	}
	slices.SortFunc(positions, comparePositions)
	return positions
}

// SelectCursor toggles the selection of the row under the cursor. Selecting a
// row deselects any other selected row first. A cursor row scrolled out of
// sight is brought back first, since only a visible row can be selected.
func (l *list) SelectCursor() tea.Cmd {
	if !l.hasCursor || l.delegate == nil {
		return nil
	}
	pos := l.cursor
	var cmd tea.Cmd
	if _, ok := l.cells[pos]; !ok {
		cmd = l.scrollToCursor()
		l.layoutIfNeeded()
		if _, ok := l.cells[pos]; !ok {
			return cmd
		}
	}
	if l.selected[pos] {
		delete(l.selected, pos)
		l.delegate.DidDeselect(pos)
		l.Refresh()
		return cmd
	}
	for _, other := range l.Selected() {
		delete(l.selected, other)
		l.delegate.DidDeselect(other)
	}
	l.selected[pos] = true
	l.delegate.DidSelect(pos)
	l.Refresh()
	return cmd
}

func (l *list) Refresh() {
	l.needsLayout = true
	l.layoutIfNeeded()
}

func (l *list) recycle(s slot) {
	if s.identifier == "" {
		return
	}
	l.reuse[s.identifier] = append(l.reuse[s.identifier], s.view)
}

func comparePositions(a, b adapter.Position) int {
	if a.Section != b.Section {
		return a.Section - b.Section
	}
	return a.Row - b.Row
}
