// Package adapter turns an immutable description of a sectioned list into
// the index based callbacks a virtualized list host asks for.
//
// Application code builds []Section and hands it to SetSections. The adapter
// registers the cell kinds the host has not seen yet, asks the host to reload
// and then answers the host's count, height, view and selection callbacks by
// delegating to the right Section and RowDescriptor.
package adapter

import (
	"fmt"
	"log/slog"
	"slices"
)

var (
	_ DataSource = (*Adapter)(nil)
	_ Delegate   = (*Adapter)(nil)
)

type headerState uint8

const (
	headerUnset headerState = iota
	headerCleared
	headerInstalled
)

// Adapter is the data source and delegate of one Host. It is not safe for
// concurrent use; the host calls it from its update loop.
type Adapter struct {
	host     Host
	measurer Measurer

	sections   []Section
	registered map[string]struct{}

	headerView  View
	headerState headerState
	headerWidth int
	headerDirty bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithMeasurer sets the measurer used for the top header. By default the host
// is used when it implements Measurer.
func WithMeasurer(m Measurer) Option {
	return func(a *Adapter) {
		a.measurer = m
	}
}

// WithHeaderView sets the initial top header view.
func WithHeaderView(view View) Option {
	return func(a *Adapter) {
		a.headerView = view
		a.headerDirty = true
	}
}

// New creates an adapter and installs it as the host's data source and
// delegate.
func New(host Host, opts ...Option) *Adapter {
	a := &Adapter{
		host:       host,
		registered: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.measurer == nil {
		if m, ok := host.(Measurer); ok {
			a.measurer = m
		}
	}

	host.SetDataSource(a)
	host.SetDelegate(a)
	return a
}

// Sections returns a copy of the current sections.
func (a *Adapter) Sections() []Section {
	return slices.Clone(a.sections)
}

// SetSections replaces every section. New cell kinds are registered with the
// host, the top header is re-measured and the host reloads all content.
func (a *Adapter) SetSections(sections []Section) {
	for i, s := range sections {
		if err := s.validate(i); err != nil {
			panic("adapter: " + err.Error())
		}
	}
	a.sections = slices.Clone(sections)
	a.registerCells()
	a.headerDirty = true
	a.ReconcileHeader()
	a.host.ReloadData()
}

// Registered reports whether identifier has been registered with the host.
func (a *Adapter) Registered(identifier string) bool {
	_, ok := a.registered[identifier]
	return ok
}

func (a *Adapter) registerCells() {
	for _, s := range a.sections {
		for _, row := range s.Rows {
			a.register(row)
		}
	}
}

func (a *Adapter) register(row RowDescriptor) {
	identifier := row.Identifier()
	if _, ok := a.registered[identifier]; ok {
		return
	}
	a.host.Register(identifier, row.CellKind())
	a.registered[identifier] = struct{}{}
	slog.Debug("Registered cell kind", "identifier", identifier)
}

func (a *Adapter) row(pos Position) RowDescriptor {
	return a.sections[pos.Section].Rows[pos.Row]
}

func (a *Adapter) info(pos Position) Info {
	return Info{Position: pos, IsScrolling: a.host.IsScrolling()}
}

// SectionCount implements DataSource.
func (a *Adapter) SectionCount() int {
	return len(a.sections)
}

// RowCount implements DataSource. It answers 0 while there are no sections so
// a host query racing a reload never indexes an empty list.
func (a *Adapter) RowCount(section int) int {
	if len(a.sections) == 0 {
		return 0
	}
	return len(a.sections[section].Rows)
}

// CellFor implements DataSource.
func (a *Adapter) CellFor(pos Position) View {
	row := a.row(pos)
	a.register(row)

	view := a.host.Dequeue(row.Identifier(), pos)
	if view == nil {
		panic(fmt.Sprintf("adapter: host returned no view for %q at %s", row.Identifier(), pos))
	}
	row.Fill(view, a.info(pos))
	return view
}

// HeightFor implements DataSource.
func (a *Adapter) HeightFor(pos Position) int {
	h, _ := a.row(pos).Height().Resolve()
	return h
}

// EstimatedHeightFor implements DataSource.
func (a *Adapter) EstimatedHeightFor(pos Position) int {
	_, h := a.row(pos).Height().Resolve()
	return h
}

// HeaderViewFor implements DataSource.
func (a *Adapter) HeaderViewFor(section int) View {
	return a.sections[section].headerView()
}

// HeaderHeightFor implements DataSource.
func (a *Adapter) HeaderHeightFor(section int) int {
	h, _ := a.sections[section].headerHeight().Resolve()
	return h
}

// HeaderEstimatedHeightFor implements DataSource.
func (a *Adapter) HeaderEstimatedHeightFor(section int) int {
	_, h := a.sections[section].headerHeight().Resolve()
	return h
}

// DidSelect implements Delegate. When the row's select callback is missing or
// returns false the host is told to drop the selection again.
func (a *Adapter) DidSelect(pos Position) {
	row := a.row(pos)
	view, ok := a.host.CellAt(pos)
	if !ok {
		slog.Debug("Ignoring selection of row without a view", "position", pos)
		return
	}
	if !row.DidSelect(view, a.info(pos)) {
		a.host.DeselectRow(pos)
	}
}

// DidDeselect implements Delegate.
func (a *Adapter) DidDeselect(pos Position) {
	row := a.row(pos)
	view, ok := a.host.CellAt(pos)
	if !ok {
		slog.Debug("Ignoring deselection of row without a view", "position", pos)
		return
	}
	row.DidDeselect(view, a.info(pos))
}

// ScrollDidEndDecelerating implements Delegate.
func (a *Adapter) ScrollDidEndDecelerating() {
	a.FillVisibleCells()
}

// ScrollDidEndDragging implements Delegate. A drag that hands over to
// deceleration is finished later by ScrollDidEndDecelerating.
func (a *Adapter) ScrollDidEndDragging(willDecelerate bool) {
	if !willDecelerate {
		a.FillVisibleCells()
	}
}

// FillVisibleCells fills every row on screen again with IsScrolling false.
func (a *Adapter) FillVisibleCells() {
	for _, pos := range a.host.VisiblePositions() {
		view, ok := a.host.CellAt(pos)
		if !ok {
			continue
		}
		a.row(pos).Fill(view, Info{Position: pos})
	}
}
