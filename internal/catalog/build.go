package catalog

import (
	"github.com/charmbracelet/listadapter/internal/adapter"
	"github.com/charmbracelet/listadapter/internal/highlight"
	"github.com/charmbracelet/listadapter/internal/tui/components/cells"
)

// Default heights per kind. Notes and details wrap, so they are measured.
const (
	noteEstimate   = 3
	detailEstimate = 2
)

// SelectFunc is told about taps on a row.
type SelectFunc func(entry Entry, pos adapter.Position)

type Builder struct {
	text   adapter.Kind[*cells.Text, Entry]
	detail adapter.Kind[*cells.Detail, Entry]
	code   adapter.Kind[*cells.Code, Entry]
	note   adapter.Kind[*cells.Note, Entry]

	onSelect   SelectFunc
	onDeselect SelectFunc
}

type BuilderOption func(*Builder)

func WithOnSelect(fn SelectFunc) BuilderOption {
	return func(b *Builder) {
		b.onSelect = fn
	}
}

func WithOnDeselect(fn SelectFunc) BuilderOption {
	return func(b *Builder) {
		b.onDeselect = fn
	}
}

func NewBuilder(cache *highlight.Cache, opts ...BuilderOption) *Builder {
	b := &Builder{
		text:   adapter.NewKind[*cells.Text, Entry]("text", cells.NewText),
		detail: adapter.NewKind[*cells.Detail, Entry]("detail", cells.NewDetail),
		code:   adapter.NewKind[*cells.Code, Entry]("code", cells.NewCode(cache)),
		note:   adapter.NewKind[*cells.Note, Entry]("note", cells.NewNote),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Sections converts the document into a fresh set of sections. The
// document must have been validated.
func (b *Builder) Sections(doc *Document) []adapter.Section {
	sections := make([]adapter.Section, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		var header *adapter.Header
		if s.Title != "" {
			header = &adapter.Header{
				View:   cells.NewSectionTitle(s.Title, len(s.Rows)),
				Height: adapter.Fixed(1),
			}
		}
		rows := make([]adapter.RowDescriptor, 0, len(s.Rows))
		for _, e := range s.Rows {
			rows = append(rows, b.Row(e))
		}
		sections = append(sections, adapter.NewSection(header, rows...))
	}
	return sections
}

// Row builds the descriptor for a single entry.
func (b *Builder) Row(e Entry) adapter.RowDescriptor {
	switch e.Kind {
	case KindDetail:
		return finish(b, e, b.detail.Row(e).
			WithHeight(adapter.SelfMeasured(detailEstimate)).
			WithFill(func(c *cells.Detail, e Entry, _ adapter.Info) {
				c.SetTitle(e.Title)
				c.SetSubtitle(e.Subtitle)
			}))
	case KindCode:
		return finish(b, e, b.code.Row(e).
			WithHeight(adapter.SelfMeasured(cells.Lines(e.Source))).
			WithFill(func(c *cells.Code, e Entry, info adapter.Info) {
				c.SetSnippet(e.Snippet())
				c.SetRich(!info.IsScrolling)
			}))
	case KindNote:
		return finish(b, e, b.note.Row(e).
			WithHeight(adapter.SelfMeasured(noteEstimate)).
			WithFill(func(c *cells.Note, e Entry, info adapter.Info) {
				c.SetMarkdown(e.Markdown)
				c.SetRich(!info.IsScrolling)
			}))
	default:
		return finish(b, e, b.text.Row(e).
			WithHeight(adapter.Fixed(1)).
			WithFill(func(c *cells.Text, e Entry, _ adapter.Info) {
				c.SetTitle(e.Title)
			}))
	}
}

// finish applies what every kind shares: the height override and the
// selection callbacks.
func finish[C adapter.View](b *Builder, e Entry, row adapter.Row[C, Entry]) adapter.RowDescriptor {
	if e.Height > 0 {
		row = row.WithHeight(adapter.Fixed(e.Height))
	}
	return row.
		WithSelect(func(_ C, e Entry, info adapter.Info) bool {
			if b.onSelect != nil {
				b.onSelect(e, info.Position)
			}
			return e.Sticky
		}).
		WithDeselect(func(_ C, e Entry, info adapter.Info) {
			if b.onDeselect != nil {
				b.onDeselect(e, info.Position)
			}
		})
}
