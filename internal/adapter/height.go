package adapter

import "fmt"

// Automatic is reported as a definitive height when the host should size the
// view itself by measuring it at the current width.
const Automatic = -1

// Default heights used when a row or header does not set one.
var (
	DefaultRowHeight    = SelfMeasured(1)
	DefaultHeaderHeight = SelfMeasured(1)
)

type heightKind uint8

const (
	heightFixed heightKind = iota
	heightSelfMeasured
)

// Height is the sizing policy of a row or a section header. The zero value is
// a fixed height of 0.
type Height struct {
	kind  heightKind
	value int
}

// Fixed returns a policy that always answers value.
func Fixed(value int) Height {
	return Height{kind: heightFixed, value: value}
}

// SelfMeasured returns a policy that lets the host measure the view and uses
// estimate before the view has been laid out.
func SelfMeasured(estimate int) Height {
	return Height{kind: heightSelfMeasured, value: estimate}
}

// IsFixed reports whether h is a fixed height.
func (h Height) IsFixed() bool {
	return h.kind == heightFixed
}

// Value returns the fixed value or the estimate.
func (h Height) Value() int {
	return h.value
}

// Resolve returns the definitive height and the estimated height for h.
func (h Height) Resolve() (definitive, estimated int) {
	if h.kind == heightSelfMeasured {
		return Automatic, h.value
	}
	return h.value, h.value
}

// Validate reports an error for negative values.
func (h Height) Validate() error {
	if h.value < 0 {
		return fmt.Errorf("height %s must not be negative", h)
	}
	return nil
}

func (h Height) String() string {
	if h.kind == heightSelfMeasured {
		return fmt.Sprintf("self-measured(%d)", h.value)
	}
	return fmt.Sprintf("fixed(%d)", h.value)
}
