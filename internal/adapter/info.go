package adapter

import "fmt"

// Position addresses a row inside a section.
type Position struct {
	Section int
	Row     int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Section, p.Row)
}

// Info is the context handed to row callbacks. It is built fresh for every
// callback and must not be retained.
type Info struct {
	Position Position
	// IsScrolling is true while the list is being dragged or is
	// decelerating. Rows can skip expensive work while it is set; they are
	// filled again with IsScrolling false once scrolling settles.
	IsScrolling bool
}
