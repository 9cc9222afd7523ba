package adapter

import "log/slog"

// HeaderView returns the top header view, if any.
func (a *Adapter) HeaderView() View {
	return a.headerView
}

// SetHeaderView sets the full-width view shown above the first section and
// lays it out right away if the host has a usable size. A nil view removes it.
func (a *Adapter) SetHeaderView(view View) {
	a.headerView = view
	a.headerDirty = true
	a.ReconcileHeader()
}

// ReloadHeaderView measures the top header again even if the host width did
// not change. Use it after the header's content changed its height.
func (a *Adapter) ReloadHeaderView() {
	a.headerDirty = true
	a.ReconcileHeader()
}

// ReconcileHeader brings the host's header slot up to date. Call it on every
// layout pass of the host. The header is measured again only when the host
// width changed, the header was hidden or shown, or a reload was requested.
// While the host has no usable size the work is deferred to a later call.
func (a *Adapter) ReconcileHeader() {
	if a.headerView == nil || isHidden(a.headerView) {
		if a.headerState != headerCleared {
			a.host.SetHeaderView(nil, Size{})
			a.headerState = headerCleared
		}
		a.headerDirty = false
		return
	}

	bounds := a.host.Bounds()
	if bounds.Empty() {
		return
	}

	if !a.headerDirty && a.headerState == headerInstalled && bounds.Width == a.headerWidth {
		return
	}

	if a.measurer == nil {
		panic("adapter: top header set but no measurer is available")
	}
	size := a.measurer.FittingSize(a.headerView, bounds.Width)
	size.Width = bounds.Width
	a.host.SetHeaderView(a.headerView, size)

	slog.Debug("Measured header view", "width", size.Width, "height", size.Height)
	a.headerWidth = bounds.Width
	a.headerState = headerInstalled
	a.headerDirty = false
}

func isHidden(view View) bool {
	h, ok := view.(Hideable)
	return ok && h.Hidden()
}
