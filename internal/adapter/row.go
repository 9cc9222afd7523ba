package adapter

import "fmt"

// RowDescriptor is what a Section holds for each row. The adapter only talks
// to rows through this interface; Row is the implementation.
type RowDescriptor interface {
	Identifier() string
	CellKind() CellFactory
	Height() Height
	Fill(view View, info Info)
	DidSelect(view View, info Info) bool
	DidDeselect(view View, info Info)
}

// Kind pairs a cell type with an item type under a stable reuse identifier.
// Declare one Kind per pairing and build rows from it:
//
//	var contactRow = adapter.NewKind[*cells.Detail, Contact]("contact", cells.NewDetail)
//
//	row := contactRow.Row(c).WithFill(func(cell *cells.Detail, c Contact, _ adapter.Info) {
//		cell.SetTitle(c.Name)
//	})
type Kind[C View, T any] struct {
	identifier string
	newCell    func() C
}

// NewKind returns a Kind. It panics if identifier is empty or newCell is nil.
func NewKind[C View, T any](identifier string, newCell func() C) Kind[C, T] {
	if identifier == "" {
		panic("adapter: kind identifier must not be empty")
	}
	if newCell == nil {
		panic(fmt.Sprintf("adapter: kind %q has no cell constructor", identifier))
	}
	return Kind[C, T]{identifier: identifier, newCell: newCell}
}

// Identifier returns the reuse identifier shared by every row of this kind.
func (k Kind[C, T]) Identifier() string {
	return k.identifier
}

// Row returns a row for item with the default height and no callbacks.
func (k Kind[C, T]) Row(item T) Row[C, T] {
	return Row[C, T]{kind: k, item: item, height: DefaultRowHeight}
}

// Row binds one item to a cell kind. Rows are values; the With methods return
// modified copies, so a row placed in a Section never changes.
type Row[C View, T any] struct {
	kind     Kind[C, T]
	item     T
	height   Height
	fill     func(C, T, Info)
	sel      func(C, T, Info) bool
	deselect func(C, T, Info)
}

// WithHeight sets the sizing policy. It panics on a negative height.
func (r Row[C, T]) WithHeight(h Height) Row[C, T] {
	if err := h.Validate(); err != nil {
		panic(fmt.Sprintf("adapter: row %q: %v", r.kind.identifier, err))
	}
	r.height = h
	return r
}

// WithFill sets the callback that configures a dequeued cell for the item.
func (r Row[C, T]) WithFill(fn func(C, T, Info)) Row[C, T] {
	r.fill = fn
	return r
}

// WithSelect sets the selection callback. Returning false tells the host to
// drop the visual selection again; returning true keeps the row selected.
func (r Row[C, T]) WithSelect(fn func(C, T, Info) bool) Row[C, T] {
	r.sel = fn
	return r
}

// WithDeselect sets the deselection callback.
func (r Row[C, T]) WithDeselect(fn func(C, T, Info)) Row[C, T] {
	r.deselect = fn
	return r
}

// Item returns the bound item.
func (r Row[C, T]) Item() T {
	return r.item
}

func (r Row[C, T]) Identifier() string {
	return r.kind.identifier
}

func (r Row[C, T]) CellKind() CellFactory {
	newCell := r.kind.newCell
	return func() View {
		return newCell()
	}
}

func (r Row[C, T]) Height() Height {
	return r.height
}

func (r Row[C, T]) Fill(view View, info Info) {
	if r.fill == nil {
		return
	}
	r.fill(r.cell(view), r.item, info)
}

func (r Row[C, T]) DidSelect(view View, info Info) bool {
	if r.sel == nil {
		return false
	}
	return r.sel(r.cell(view), r.item, info)
}

func (r Row[C, T]) DidDeselect(view View, info Info) {
	if r.deselect == nil {
		return
	}
	r.deselect(r.cell(view), r.item, info)
}

// cell narrows view to the kind's cell type. A mismatch means the host handed
// back a view registered under another identifier.
func (r Row[C, T]) cell(view View) C {
	c, ok := view.(C)
	if !ok {
		var want C
		panic(fmt.Sprintf("adapter: row %q received %T, want %T", r.kind.identifier, view, want))
	}
	return c
}
