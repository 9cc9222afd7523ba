package styles

import (
	"github.com/alecthomas/chroma/v2"
)

// ChromaTheme maps the theme onto chroma token colors for code rows.
func (t *Theme) ChromaTheme() chroma.StyleEntries {
	return chroma.StyleEntries{
		chroma.Text:                hex(t.FgBase),
		chroma.Error:               hex(t.Error),
		chroma.Comment:             "italic " + hex(t.FgMuted),
		chroma.CommentPreproc:      hex(t.Secondary),
		chroma.Keyword:             hex(t.Primary),
		chroma.KeywordType:         hex(t.Tertiary),
		chroma.Operator:            hex(t.Red),
		chroma.Punctuation:         hex(t.FgHalfMuted),
		chroma.Name:                hex(t.FgBase),
		chroma.NameBuiltin:         hex(t.Secondary),
		chroma.NameFunction:        hex(t.Green),
		chroma.NameClass:           "bold " + hex(t.Accent),
		chroma.LiteralString:       hex(t.Yellow),
		chroma.LiteralStringEscape: hex(t.Blue),
		chroma.LiteralNumber:       hex(t.Blue),
		chroma.GenericDeleted:      hex(t.Red),
		chroma.GenericInserted:     hex(t.Green),
		chroma.GenericEmph:         "italic",
		chroma.GenericStrong:       "bold",
		chroma.GenericHeading:      "bold " + hex(t.Secondary),
		chroma.Background:          "bg:" + hex(t.BgBase),
	}
}
