// Package catalog describes list contents in YAML and turns them into
// adapter sections.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/listadapter/internal/highlight"
	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindText   Kind = "text"
	KindDetail Kind = "detail"
	KindCode   Kind = "code"
	KindNote   Kind = "note"
)

var ErrUnknownKind = errors.New("unknown row kind")

type Document struct {
	Header   Header    `yaml:"header"`
	Sections []Section `yaml:"sections"`
}

// Header configures the banner shown above the first section.
type Header struct {
	Text   string `yaml:"text"`
	Hidden bool   `yaml:"hidden"`
}

type Section struct {
	Title string  `yaml:"title"`
	Rows  []Entry `yaml:"rows"`
}

type Entry struct {
	Kind     Kind   `yaml:"kind"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	Source   string `yaml:"source,omitempty"`
	Language string `yaml:"language,omitempty"`
	Markdown string `yaml:"markdown,omitempty"`
	// Height pins the row to a fixed number of lines. Zero keeps the
	// kind's default.
	Height int `yaml:"height,omitempty"`
	// Sticky rows stay selected after a tap.
	Sticky bool `yaml:"sticky,omitempty"`
}

//go:embed sample.yaml
var sample []byte

// Sample returns the built-in catalog.
func Sample() *Document {
	doc, err := Parse(sample)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in sample: %v", err))
	}
	return doc
}

func Parse(data []byte) (*Document, error) {
	return Load(bytes.NewReader(data))
}

func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (d *Document) Validate() error {
	for i, section := range d.Sections {
		for j, entry := range section.Rows {
			if err := entry.validate(); err != nil {
				return fmt.Errorf("section %d (%q) row %d: %w", i, section.Title, j, err)
			}
		}
	}
	return nil
}

func (e Entry) validate() error {
	switch e.Kind {
	case KindText, KindDetail, KindNote:
	case KindCode:
		if e.Source == "" {
			return errors.New("code row without source")
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, e.Kind)
	}
	if e.Height < 0 {
		return fmt.Errorf("negative height %d", e.Height)
	}
	return nil
}

// RowCount is the number of rows across all sections.
func (d *Document) RowCount() int {
	var n int
	for _, s := range d.Sections {
		n += len(s.Rows)
	}
	return n
}

// Snippets lists the code rows so they can be highlighted ahead of time.
func (d *Document) Snippets() []highlight.Snippet {
	var snippets []highlight.Snippet
	for _, s := range d.Sections {
		for _, e := range s.Rows {
			if e.Kind == KindCode {
				snippets = append(snippets, e.Snippet())
			}
		}
	}
	return snippets
}

func (e Entry) Snippet() highlight.Snippet {
	return highlight.Snippet{Source: e.Source, Language: e.Language}
}
