package highlight

import (
	"bytes"
	"image/color"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/listadapter/internal/tui/styles"
)

// SyntaxHighlight renders source with terminal colors. language is a chroma
// lexer name or alias; when empty or unknown the lexer is guessed from the
// source itself.
func SyntaxHighlight(source, language string, bg color.Color) (string, error) {
	l := lexers.Get(language)
	if l == nil {
		l = lexers.Analyse(source)
	}
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	f := formatters.Get("terminal16m")
	if f == nil {
		f = formatters.Fallback
	}

	t := styles.CurrentTheme()
	style := chroma.MustNewStyle(t.Name, t.ChromaTheme())

	s := style
	if bg != nil {
		var err error
		s, err = style.Builder().Transform(
			func(t chroma.StyleEntry) chroma.StyleEntry {
				r, g, b, _ := bg.RGBA()
				t.Background = chroma.NewColour(uint8(r>>8), uint8(g>>8), uint8(b>>8))
				return t
			},
		).Build()
		if err != nil {
			s = chromaStyles.Fallback
		}
	}

	it, err := l.Tokenise(nil, source)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = f.Format(&buf, s, it)
	return buf.String(), err
}
