package adapter

// View is anything the host can place on screen: a row cell, a section
// header or the top header.
type View interface {
	Render(width int) string
}

// Hideable is implemented by top header views that can be hidden without
// being removed from the adapter.
type Hideable interface {
	Hidden() bool
}

// Size is a width and height in cells.
type Size struct {
	Width, Height int
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// CellFactory creates a new, empty row view for a reuse identifier.
type CellFactory func() View

// DataSource is the query side of the host contract. Every call is
// synchronous and made from the host's update loop.
type DataSource interface {
	SectionCount() int
	RowCount(section int) int
	CellFor(pos Position) View
	HeightFor(pos Position) int
	EstimatedHeightFor(pos Position) int
	HeaderViewFor(section int) View
	HeaderHeightFor(section int) int
	HeaderEstimatedHeightFor(section int) int
}

// Delegate receives selection and scroll notifications from the host.
type Delegate interface {
	DidSelect(pos Position)
	DidDeselect(pos Position)
	ScrollDidEndDecelerating()
	ScrollDidEndDragging(willDecelerate bool)
}

// Host is the virtualized list the adapter drives.
type Host interface {
	SetDataSource(DataSource)
	SetDelegate(Delegate)

	// Register makes a cell kind available under identifier. Registering
	// the same identifier again replaces the factory.
	Register(identifier string, kind CellFactory)
	// Dequeue returns a recycled or new view for identifier. Dequeuing an
	// identifier that was never registered is a programming error.
	Dequeue(identifier string, pos Position) View
	ReloadData()

	// SetHeaderView installs view with size as the full-width header above
	// the first section. A nil view clears the slot.
	SetHeaderView(view View, size Size)
	DeselectRow(pos Position)

	// CellAt returns the view currently on screen at pos, if any.
	CellAt(pos Position) (View, bool)
	VisiblePositions() []Position
	IsScrolling() bool
	Bounds() Size
}

// Measurer computes the size a view wants when its width is fixed and its
// height is compressed as much as its content allows.
type Measurer interface {
	FittingSize(view View, width int) Size
}
