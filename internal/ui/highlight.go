package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// chromaParts resolves the lexer, style and formatter for a language
// under the current theme.
func chromaParts(language string) (chroma.Lexer, *chroma.Style, chroma.Formatter) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().ChromaStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	return lexer, style, formatter
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer, style, formatter := chromaParts(language)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// HighlightLines highlights code and returns one styled string per
// source line. Each line is formatted on its own so escape sequences
// never leak across line boundaries into the gutter.
func HighlightLines(code, language string) []string {
	plain := strings.Split(code, "\n")
	lexer, style, formatter := chromaParts(language)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plain
	}

	tokenLines := chroma.SplitTokensIntoLines(iterator.Tokens())
	out := make([]string, 0, len(plain))
	for _, tokens := range tokenLines {
		if n := len(tokens); n > 0 {
			last := tokens[n-1]
			last.Value = strings.TrimSuffix(last.Value, "\n")
			tokens = append(tokens[:n-1:n-1], last)
		}
		var buf bytes.Buffer
		if err := formatter.Format(&buf, style, chroma.Literator(tokens...)); err != nil {
			return plain
		}
		out = append(out, buf.String())
	}
	// The lexer drops a trailing empty line; keep the count aligned with
	// the source so line numbers stay right.
	for len(out) < len(plain) {
		out = append(out, "")
	}
	return out[:len(plain)]
}
