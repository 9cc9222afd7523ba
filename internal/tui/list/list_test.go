package list

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmbracelet/listadapter/internal/adapter"
)

type stubCell struct {
	text string
}

func (c *stubCell) Render(int) string { return c.text }

type stubHeader struct {
	text   string
	hidden bool
}

func (h *stubHeader) Render(int) string { return h.text }
func (h *stubHeader) Hidden() bool      { return h.hidden }

// fixture wires a list to a real adapter and records what rows were filled
// with.
type fixture struct {
	list    *list
	adapter *adapter.Adapter
	kind    adapter.Kind[*stubCell, string]
	created int
	fills   map[string]adapter.Info
}

func newFixture(t *testing.T, opts ...ListOption) *fixture {
	t.Helper()
	f := &fixture{fills: make(map[string]adapter.Info)}
	f.kind = adapter.NewKind[*stubCell, string]("stub", func() *stubCell {
		f.created++
		return &stubCell{}
	})
	l, ok := New(opts...).(*list)
	require.True(t, ok)
	f.list = l
	f.adapter = adapter.New(l)
	return f
}

func (f *fixture) fill(c *stubCell, item string, info adapter.Info) {
	c.text = item
	f.fills[item] = info
}

func (f *fixture) row(item string) adapter.Row[*stubCell, string] {
	return f.kind.Row(item).WithFill(f.fill)
}

func (f *fixture) rows(n int, height adapter.Height) []adapter.RowDescriptor {
	rows := make([]adapter.RowDescriptor, 0, n)
	for i := range n {
		rows = append(rows, f.row(fmt.Sprintf("row %d", i)).WithHeight(height))
	}
	return rows
}

func run(l *list, cmd tea.Cmd) {
	for cmd != nil {
		_, cmd = l.Update(cmd())
	}
}

func TestListView(t *testing.T) {
	t.Run("sections with headers", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(12, 6))
		f.adapter.SetSections([]adapter.Section{
			adapter.NewSection(
				&adapter.Header{View: &stubHeader{text: "Fruits"}, Height: adapter.Fixed(1)},
				f.row("Apple"), f.row("Banana"),
			),
			adapter.NewSection(adapter.NewHeader(&stubHeader{text: "Veg"}), f.row("Carrot")),
		})

		assert.Equal(t, 5, f.list.ContentHeight())
		golden.RequireEqual(t, []byte(f.list.View()))
	})
	t.Run("self measured rows", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(10, 10))
		f.adapter.SetSections([]adapter.Section{
			adapter.NewSection(nil, f.row("a\nb"), f.row("c\nd\ne")),
		})

		assert.Equal(t, 5, f.list.ContentHeight())
		assert.Equal(t, "▌ a\n  b\n  c\n  d\n  e", f.list.View())
	})
	t.Run("fixed height clips content", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(10, 10))
		f.adapter.SetSections([]adapter.Section{
			adapter.NewSection(nil, f.row("a\nb").WithHeight(adapter.Fixed(1)), f.row("c")),
		})

		assert.Equal(t, "▌ a\n  c", f.list.View())
	})
	t.Run("gap between entries", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(10, 10), WithGap(1))
		f.adapter.SetSections([]adapter.Section{
			adapter.NewSection(nil, f.row("a"), f.row("b")),
		})

		assert.Equal(t, "▌ a\n\n  b", f.list.View())
	})
	t.Run("lines are cut to the width", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(6, 3))
		f.adapter.SetSections([]adapter.Section{
			adapter.NewSection(nil, f.row("abcdefgh")),
		})

		assert.Equal(t, "▌ abcd", f.list.View())
	})
	t.Run("no sections", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(10, 5))
		f.adapter.SetSections(nil)

		assert.Empty(t, f.list.View())
		assert.Empty(t, f.list.VisiblePositions())
		_, ok := f.list.Cursor()
		assert.False(t, ok)
	})
}

func TestListReuse(t *testing.T) {
	t.Parallel()

	f := newFixture(t, WithSize(10, 5))
	f.adapter.SetSections([]adapter.Section{
		adapter.NewSection(nil, f.rows(20, adapter.Fixed(1))...),
	})
	assert.Equal(t, 5, f.created)
	assert.Equal(t, 15, f.list.maxOffset())

	f.list.ScrollBy(10)
	assert.Equal(t, 10, f.list.Offset())
	assert.Equal(t, 5, f.created)
	assert.Len(t, f.list.cells, 5)

	positions := f.list.VisiblePositions()
	require.Len(t, positions, 5)
	assert.Equal(t, adapter.Position{Section: 0, Row: 10}, positions[0])
	assert.Equal(t, adapter.Position{Section: 0, Row: 14}, positions[4])

	view, ok := f.list.CellAt(adapter.Position{Section: 0, Row: 12})
	require.True(t, ok)
	assert.Equal(t, "row 12", view.(*stubCell).text)
	_, ok = f.list.CellAt(adapter.Position{Section: 0, Row: 0})
	assert.False(t, ok)

	f.adapter.SetSections([]adapter.Section{
		adapter.NewSection(nil, f.rows(3, adapter.Fixed(1))...),
	})
	assert.Equal(t, 5, f.created)
	assert.Equal(t, 0, f.list.Offset())
	assert.Len(t, f.list.cells, 3)
}

func TestListDequeueUnregistered(t *testing.T) {
	t.Parallel()

	l := New(WithSize(10, 5))
	assert.Panics(t, func() {
		l.Dequeue("missing", adapter.Position{})
	})
}

func TestListDrag(t *testing.T) {
	t.Run("settles after the delay", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(10, 5), WithSettleDelay(time.Millisecond))
		f.adapter.SetSections([]adapter.Section{
			adapter.NewSection(nil, f.rows(20, adapter.Fixed(1))...),
		})
		assert.False(t, f.fills["row 0"].IsScrolling)

		cmd := f.list.ScrollBy(3)
		require.NotNil(t, cmd)
		assert.True(t, f.list.IsDragging())
		assert.True(t, f.list.IsScrolling())
		assert.True(t, f.fills["row 7"].IsScrolling)

		run(f.list, cmd)
		assert.False(t, f.list.IsDragging())
		for row := 3; row <= 7; row++ {
			info := f.fills[fmt.Sprintf("row %d", row)]
			assert.False(t, info.IsScrolling, "row %d", row)
			assert.Equal(t, adapter.Position{Section: 0, Row: row}, info.Position)
		}
	})
	t.Run("stale settle is ignored", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(10, 5), WithSettleDelay(time.Millisecond))
		f.adapter.SetSections([]adapter.Section{
			adapter.NewSection(nil, f.rows(20, adapter.Fixed(1))...),
		})

		first := f.list.ScrollBy(1)
		second := f.list.ScrollBy(1)
		f.list.Update(first())
		assert.True(t, f.list.IsDragging())

		f.list.Update(second())
		assert.False(t, f.list.IsDragging())
	})
	t.Run("clamped scroll does nothing", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(10, 5))
		f.adapter.SetSections([]adapter.Section{
			adapter.NewSection(nil, f.rows(3, adapter.Fixed(1))...),
		})

		assert.Nil(t, f.list.ScrollBy(-1))
		assert.Nil(t, f.list.ScrollBy(10))
		assert.False(t, f.list.IsDragging())
	})
}

func TestListFling(t *testing.T) {
	t.Parallel()

	f := newFixture(t, WithSize(10, 5), WithDecelerationFrame(time.Millisecond))
	f.adapter.SetSections([]adapter.Section{
		adapter.NewSection(nil, f.rows(20, adapter.Fixed(1))...),
	})

	cmd := f.list.ScrollTo(100)
	require.NotNil(t, cmd)
	assert.True(t, f.list.IsDecelerating())
	assert.False(t, f.list.IsDragging())

	_, cmd = f.list.Update(cmd())
	assert.True(t, f.list.IsScrolling())
	assert.Positive(t, f.list.Offset())

	run(f.list, cmd)
	assert.Equal(t, 15, f.list.Offset())
	assert.False(t, f.list.IsDecelerating())
	for row := 15; row < 20; row++ {
		assert.False(t, f.fills[fmt.Sprintf("row %d", row)].IsScrolling, "row %d", row)
	}

	assert.Nil(t, f.list.ScrollTo(15))
}

func TestListSelection(t *testing.T) {
	t.Run("navigation rows do not stay selected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(10, 5))
		var selected []string
		f.adapter.SetSections([]adapter.Section{adapter.NewSection(nil,
			f.row("a").WithSelect(func(_ *stubCell, item string, _ adapter.Info) bool {
				selected = append(selected, item)
				return false
			}),
		)})

		f.list.SelectCursor()
		assert.Equal(t, []string{"a"}, selected)
		assert.Empty(t, f.list.Selected())
	})
	t.Run("cursor row scrolled away is brought back before selecting", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(10, 2))
		var selected []string
		rows := append([]adapter.RowDescriptor{
			f.row("a").WithSelect(func(_ *stubCell, item string, _ adapter.Info) bool {
				selected = append(selected, item)
				return false
			}),
		}, f.rows(6, adapter.Fixed(1))...)
		f.adapter.SetSections([]adapter.Section{adapter.NewSection(nil, rows...)})

		f.list.ScrollBy(4)
		_, ok := f.list.CellAt(adapter.Position{Section: 0, Row: 0})
		require.False(t, ok)

		cmd := f.list.SelectCursor()
		assert.NotNil(t, cmd)
		assert.Equal(t, 0, f.list.Offset())
		assert.Equal(t, []string{"a"}, selected)
		assert.Empty(t, f.list.Selected())

		f.list.ScrollBy(4)
		f.list.ScrollBy(-4)
		assert.Equal(t, "▌ a", strings.Split(f.list.View(), "\n")[0])
	})
	t.Run("sticky rows stay selected until toggled", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(10, 5))
		var deselected []string
		sticky := func(item string) adapter.RowDescriptor {
			return f.row(item).
				WithSelect(func(*stubCell, string, adapter.Info) bool { return true }).
				WithDeselect(func(_ *stubCell, item string, _ adapter.Info) {
					deselected = append(deselected, item)
				})
		}
		f.adapter.SetSections([]adapter.Section{adapter.NewSection(nil, sticky("a"), sticky("b"))})

		f.list.SelectCursor()
		assert.Equal(t, []adapter.Position{{Section: 0, Row: 0}}, f.list.Selected())
		assert.Equal(t, "▌*a\n  b", f.list.View())

		f.list.MoveCursor(1)
		f.list.SelectCursor()
		assert.Equal(t, []adapter.Position{{Section: 0, Row: 1}}, f.list.Selected())
		assert.Equal(t, []string{"a"}, deselected)

		f.list.SelectCursor()
		assert.Empty(t, f.list.Selected())
		assert.Equal(t, []string{"a", "b"}, deselected)
	})
	t.Run("reload clears the selection", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithSize(10, 5))
		sections := []adapter.Section{adapter.NewSection(nil,
			f.row("a").WithSelect(func(*stubCell, string, adapter.Info) bool { return true }),
		)}
		f.adapter.SetSections(sections)
		f.list.SelectCursor()
		require.Len(t, f.list.Selected(), 1)

		f.adapter.SetSections(sections)
		assert.Empty(t, f.list.Selected())
	})
}

func TestListCursor(t *testing.T) {
	t.Parallel()

	f := newFixture(t, WithSize(10, 3), WithSettleDelay(time.Millisecond))
	f.adapter.SetSections([]adapter.Section{
		adapter.NewSection(adapter.NewHeader(&stubHeader{text: "one"}), f.rows(3, adapter.Fixed(1))...),
		adapter.NewSection(adapter.NewHeader(&stubHeader{text: "two"}), f.rows(2, adapter.Fixed(1))...),
	})

	pos, ok := f.list.Cursor()
	require.True(t, ok)
	assert.Equal(t, adapter.Position{Section: 0, Row: 0}, pos)

	f.list.MoveCursor(3)
	pos, _ = f.list.Cursor()
	assert.Equal(t, adapter.Position{Section: 1, Row: 0}, pos)
	assert.True(t, f.list.IsDragging())
	assert.Equal(t, "two\n▌ row 0", lastLines(f.list.View(), 2))

	f.list.MoveCursor(100)
	pos, _ = f.list.Cursor()
	assert.Equal(t, adapter.Position{Section: 1, Row: 1}, pos)

	assert.Nil(t, f.list.SetCursor(adapter.Position{Section: 4, Row: 0}))
	pos, _ = f.list.Cursor()
	assert.Equal(t, adapter.Position{Section: 1, Row: 1}, pos)
}

func TestListHeaderSlot(t *testing.T) {
	t.Parallel()

	f := newFixture(t, WithSize(20, 5))
	banner := &stubHeader{text: "Banner\nsecond line"}
	f.adapter.SetHeaderView(banner)
	f.adapter.SetSections([]adapter.Section{adapter.NewSection(nil, f.row("a"))})

	assert.Equal(t, "Banner\nsecond line\n▌ a", f.list.View())
	assert.Equal(t, 3, f.list.ContentHeight())

	banner.hidden = true
	f.adapter.ReconcileHeader()
	assert.Equal(t, "▌ a", f.list.View())

	banner.hidden = false
	banner.text = "Banner"
	f.adapter.ReconcileHeader()
	assert.Equal(t, "Banner\n▌ a", f.list.View())
}

func TestListFittingSize(t *testing.T) {
	t.Parallel()

	l := New()
	size := l.FittingSize(&stubCell{text: "ab\nabcd"}, 10)
	assert.Equal(t, adapter.Size{Width: 4, Height: 2}, size)

	size = l.FittingSize(&stubCell{text: "abcdefghijkl"}, 10)
	assert.Equal(t, 10, size.Width)
}

func TestListResize(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.adapter.SetSections([]adapter.Section{adapter.NewSection(nil, f.row("a"))})
	assert.Zero(t, f.created)
	assert.Empty(t, f.list.View())

	f.list.SetSize(10, 5)
	assert.Equal(t, 1, f.created)
	assert.Equal(t, "▌ a", f.list.View())

	w, h := f.list.GetSize()
	assert.Equal(t, 10, w)
	assert.Equal(t, 5, h)
	assert.Equal(t, adapter.Size{Width: 10, Height: 5}, f.list.Bounds())
}

func lastLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	return strings.Join(lines[max(len(lines)-n, 0):], "\n")
}

func TestListBlur(t *testing.T) {
	t.Parallel()

	f := newFixture(t, WithSize(10, 3))
	f.adapter.SetSections([]adapter.Section{
		adapter.NewSection(nil, f.rows(3, adapter.Fixed(1))...),
	})

	f.list.Blur()
	require.False(t, f.list.IsFocused())
	f.list.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	pos, _ := f.list.Cursor()
	assert.Equal(t, adapter.Position{Section: 0, Row: 0}, pos)
	assert.NotContains(t, f.list.View(), "▌")

	f.list.Focus()
	f.list.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	pos, _ = f.list.Cursor()
	assert.Equal(t, adapter.Position{Section: 0, Row: 1}, pos)
}
