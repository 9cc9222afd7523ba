package list

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/charmbracelet/listadapter/internal/tui/util"
)

// scrollState tracks the two scrolling phases reported to the delegate.
// Line scrolling is a drag that ends once no scroll happened for the settle
// delay. Page scrolling is a flick: the drag ends right away handing over to
// a deceleration that eases the offset towards its target frame by frame.
type scrollState struct {
	dragging     bool
	decelerating bool
	target       int
	// generation invalidates ticks scheduled for an earlier scroll.
	generation int
}

type settleMsg struct {
	list       int
	generation int
}

type decelerateMsg struct {
	list       int
	generation int
}

func (l *list) IsDragging() bool {
	return l.dragging
}

func (l *list) IsDecelerating() bool {
	return l.decelerating
}

// ScrollBy drags the content by lines. The drag ends after the settle delay
// unless another scroll happens first.
func (l *list) ScrollBy(lines int) tea.Cmd {
	l.layoutIfNeeded()
	offset := util.Clamp(l.offset+lines, 0, l.maxOffset())
	if offset == l.offset {
		return nil
	}
	l.offset = offset
	return l.drag()
}

// ScrollTo flicks the content to offset and decelerates towards it.
func (l *list) ScrollTo(offset int) tea.Cmd {
	l.layoutIfNeeded()
	target := util.Clamp(offset, 0, l.maxOffset())
	if target == l.offset && !l.decelerating {
		if l.dragging {
			l.endDrag(false)
		}
		return nil
	}

	l.endDrag(true)
	l.decelerating = true
	l.target = target
	l.generation++
	return l.decelerationTick()
}

func (l *list) drag() tea.Cmd {
	l.decelerating = false
	l.dragging = true
	l.generation++
	l.Refresh()

	id, generation := l.id, l.generation
	return tea.Tick(l.settleDelay, func(time.Time) tea.Msg {
		return settleMsg{list: id, generation: generation}
	})
}

func (l *list) endDrag(willDecelerate bool) {
	l.dragging = false
	if l.delegate != nil {
		l.delegate.ScrollDidEndDragging(willDecelerate)
	}
	l.Refresh()
}

func (l *list) handleSettle(msg settleMsg) tea.Cmd {
	if msg.list != l.id || msg.generation != l.generation || !l.dragging {
		return nil
	}
	l.endDrag(false)
	return nil
}

func (l *list) decelerationTick() tea.Cmd {
	id, generation := l.id, l.generation
	return tea.Tick(l.decelerationFrame, func(time.Time) tea.Msg {
		return decelerateMsg{list: id, generation: generation}
	})
}

func (l *list) handleDecelerate(msg decelerateMsg) tea.Cmd {
	if msg.list != l.id || msg.generation != l.generation || !l.decelerating {
		return nil
	}

	// Measuring rows during the animation can shrink the content.
	l.target = util.Clamp(l.target, 0, l.maxOffset())
	remaining := l.target - l.offset
	step := remaining / 2
	if step == 0 {
		step = remaining
	}
	l.offset += step
	l.Refresh()

	if l.offset != l.target {
		return l.decelerationTick()
	}

	l.decelerating = false
	slog.Debug("Scroll settled", "offset", l.offset)
	if l.delegate != nil {
		l.delegate.ScrollDidEndDecelerating()
	}
	l.Refresh()
	return nil
}

// scrollToCursor brings the cursor row into view, dragging the content if it
// has to move.
func (l *list) scrollToCursor() tea.Cmd {
	i, ok := l.rowIndex[l.cursor]
	if !ok {
		return nil
	}
	e := l.entries[i]
	offset := l.offset
	switch {
	case e.start < offset:
		offset = e.start
	case e.start+e.height > offset+l.height:
		offset = e.start + e.height - l.height
	}
	if offset == l.offset {
		return nil
	}
	return l.ScrollBy(offset - l.offset)
}
