package adapter

import "fmt"

// Header is a section header view with its sizing policy.
type Header struct {
	View   View
	Height Height
}

// NewHeader returns a header using DefaultHeaderHeight.
func NewHeader(view View) *Header {
	return &Header{View: view, Height: DefaultHeaderHeight}
}

// Section is an optional header followed by rows in render order. A section
// without rows renders only its header.
type Section struct {
	Header *Header
	Rows   []RowDescriptor
}

// NewSection returns a section with the given header and rows. header may be
// nil.
func NewSection(header *Header, rows ...RowDescriptor) Section {
	return Section{Header: header, Rows: rows}
}

func (s Section) headerHeight() Height {
	if s.Header == nil {
		return Fixed(0)
	}
	return s.Header.Height
}

func (s Section) headerView() View {
	if s.Header == nil {
		return nil
	}
	return s.Header.View
}

func (s Section) validate(index int) error {
	if s.Header != nil {
		if err := s.Header.Height.Validate(); err != nil {
			return fmt.Errorf("section %d header: %w", index, err)
		}
	}
	for i, row := range s.Rows {
		if row == nil {
			return fmt.Errorf("section %d row %d is nil", index, i)
		}
		if err := row.Height().Validate(); err != nil {
			return fmt.Errorf("section %d row %d: %w", index, i, err)
		}
	}
	return nil
}
