package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/listadapter/internal/adapter"
	"github.com/charmbracelet/listadapter/internal/highlight"
	"github.com/charmbracelet/listadapter/internal/tui/components/cells"
	"github.com/stretchr/testify/require"
)

const fruits = `
header:
  text: Produce
sections:
  - title: Fruits
    rows:
      - kind: text
        title: Apple
      - kind: detail
        title: Banana
        subtitle: Yellow
        sticky: true
  - rows:
      - kind: code
        title: snippet
        language: go
        source: |
          a := 1
          b := 2
      - kind: note
        title: note
        markdown: "**hi**"
        height: 2
`

func TestSample(t *testing.T) {
	t.Parallel()

	doc := Sample()
	require.NotEmpty(t, doc.Header.Text)
	require.NotEmpty(t, doc.Sections)
	require.NotEmpty(t, doc.Snippets())
}

func TestParse(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(fruits))
	require.NoError(t, err)
	require.Equal(t, "Produce", doc.Header.Text)
	require.Len(t, doc.Sections, 2)
	require.Equal(t, 4, doc.RowCount())
	require.Equal(t, Entry{Kind: KindDetail, Title: "Banana", Subtitle: "Yellow", Sticky: true}, doc.Sections[0].Rows[1])
	require.Equal(t, []highlight.Snippet{{Source: "a := 1\nb := 2\n", Language: "go"}}, doc.Snippets())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		err  string
	}{
		{
			name: "unknown kind",
			yaml: "sections:\n  - rows:\n      - kind: table\n",
			err:  `section 0 ("") row 0: unknown row kind "table"`,
		},
		{
			name: "code without source",
			yaml: "sections:\n  - title: x\n    rows:\n      - kind: code\n",
			err:  `section 0 ("x") row 0: code row without source`,
		},
		{
			name: "negative height",
			yaml: "sections:\n  - rows:\n      - kind: text\n        height: -1\n",
			err:  `section 0 ("") row 0: negative height -1`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.yaml))
			require.EqualError(t, err, tt.err)
		})
	}

	t.Run("unknown kind is detectable", func(t *testing.T) {
		t.Parallel()
		_, err := Parse([]byte("sections:\n  - rows:\n      - kind: table\n"))
		require.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := Parse([]byte("sections:\n  - rows:\n      - kind: text\n        colour: red\n"))
		require.ErrorContains(t, err, "failed to parse catalog")
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		doc, err := Parse(nil)
		require.NoError(t, err)
		require.Empty(t, doc.Sections)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fruits), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 4, doc.RowCount())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to open catalog")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuilderSections(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(fruits))
	require.NoError(t, err)

	sections := NewBuilder(highlight.NewCache()).Sections(doc)
	require.Len(t, sections, 2)

	require.NotNil(t, sections[0].Header)
	require.Equal(t, adapter.Fixed(1), sections[0].Header.Height)
	require.Nil(t, sections[1].Header)

	rows := sections[0].Rows
	require.Len(t, rows, 2)
	require.Equal(t, "text", rows[0].Identifier())
	require.Equal(t, adapter.Fixed(1), rows[0].Height())
	require.Equal(t, "detail", rows[1].Identifier())
	require.Equal(t, adapter.SelfMeasured(2), rows[1].Height())

	rows = sections[1].Rows
	require.Equal(t, "code", rows[0].Identifier())
	require.Equal(t, adapter.SelfMeasured(2), rows[0].Height())
	require.Equal(t, "note", rows[1].Identifier())
	require.Equal(t, adapter.Fixed(2), rows[1].Height())
}

func TestBuilderFill(t *testing.T) {
	t.Parallel()

	cache := highlight.NewCache()
	b := NewBuilder(cache)
	code := b.Row(Entry{Kind: KindCode, Source: "x := 1", Language: "go"})

	cell := code.CellKind()()
	code.Fill(cell, adapter.Info{IsScrolling: true})
	require.False(t, cell.(*cells.Code).Highlighted())

	code.Fill(cell, adapter.Info{})
	require.True(t, cell.(*cells.Code).Highlighted())
	require.Equal(t, "x := 1", strings.TrimSpace(cell.(*cells.Code).Snippet().Source))

	text := b.Row(Entry{Kind: KindText, Title: "Apple"})
	textCell := text.CellKind()()
	text.Fill(textCell, adapter.Info{})
	require.Equal(t, "Apple", textCell.(*cells.Text).Title())
}

func TestBuilderSelect(t *testing.T) {
	t.Parallel()

	var selected, deselected []string
	b := NewBuilder(highlight.NewCache(),
		WithOnSelect(func(e Entry, _ adapter.Position) {
			selected = append(selected, e.Title)
		}),
		WithOnDeselect(func(e Entry, _ adapter.Position) {
			deselected = append(deselected, e.Title)
		}),
	)

	nav := b.Row(Entry{Kind: KindText, Title: "nav"})
	sticky := b.Row(Entry{Kind: KindDetail, Title: "sticky", Sticky: true})

	pos := adapter.Position{Section: 0, Row: 1}
	require.False(t, nav.DidSelect(nav.CellKind()(), adapter.Info{Position: pos}))
	require.True(t, sticky.DidSelect(sticky.CellKind()(), adapter.Info{Position: pos}))
	sticky.DidDeselect(sticky.CellKind()(), adapter.Info{Position: pos})

	require.Equal(t, []string{"nav", "sticky"}, selected)
	require.Equal(t, []string{"sticky"}, deselected)
}
