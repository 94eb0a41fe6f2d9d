package ui

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// The goldmark parser is stateless once configured; Parse creates its
// own per-call state.
var (
	markdownParser     goldmark.Markdown
	markdownParserOnce sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParser
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// renderMarkdown renders assistant markdown as styled terminal text.
// Soft line breaks inside a paragraph become spaces so the text reflows
// at the transcript width; fenced code blocks are syntax highlighted.
func renderMarkdown(input string, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if width <= 0 {
		width = DefaultWrapWidth
	}
	source := []byte(input)
	doc := getMarkdownParser().Parser().Parse(text.NewReader(source))

	r := &markdownRenderer{source: source, width: width}
	_ = ast.Walk(doc, r.walk)
	return strings.TrimRight(r.out.String(), "\n")
}

// markdownRenderer walks the goldmark AST. Inline content collects in
// a buffer and is wrapped as a unit when its block closes.
type markdownRenderer struct {
	source []byte
	width  int

	out    strings.Builder
	inline strings.Builder

	prefixes      []string
	prefix        string // concatenation of prefixes
	pendingBullet string // replaces prefix on the next emitted line
	lists         []listState
	bold, italic  int
	strike        int
}

type listState struct {
	ordered bool
	counter int
	tight   bool
}

func (r *markdownRenderer) contentWidth() int {
	return max(r.width-lipgloss.Width(r.prefix), 10)
}

func (r *markdownRenderer) pushPrefix(p string) {
	r.prefixes = append(r.prefixes, p)
	r.prefix += p
}

func (r *markdownRenderer) popPrefix() {
	if len(r.prefixes) == 0 {
		return
	}
	top := r.prefixes[len(r.prefixes)-1]
	r.prefixes = r.prefixes[:len(r.prefixes)-1]
	r.prefix = r.prefix[:len(r.prefix)-len(top)]
}

func (r *markdownRenderer) tight() bool {
	return len(r.lists) > 0 && r.lists[len(r.lists)-1].tight
}

// emit writes block text line by line, applying the current prefix.
func (r *markdownRenderer) emit(block string) {
	for _, line := range strings.Split(block, "\n") {
		p := r.prefix
		if r.pendingBullet != "" {
			p, r.pendingBullet = r.pendingBullet, ""
		}
		r.out.WriteString(p + line + "\n")
	}
}

func (r *markdownRenderer) blankLine() {
	if r.out.Len() > 0 && !strings.HasSuffix(r.out.String(), "\n\n") {
		r.out.WriteString("\n")
	}
}

func (r *markdownRenderer) styled(s string) string {
	style := lipgloss.NewStyle().Foreground(ColorText)
	if r.bold > 0 {
		style = style.Bold(true)
	}
	if r.italic > 0 {
		style = style.Italic(true)
	}
	if r.strike > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(s)
}

func (r *markdownRenderer) flush() string {
	s := r.inline.String()
	r.inline.Reset()
	return wrapText(s, r.contentWidth())
}

func (r *markdownRenderer) lines(n ast.Node) string {
	var b strings.Builder
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(r.source))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *markdownRenderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			r.inline.Reset()
			return ast.WalkContinue, nil
		}
		if s := r.flush(); s != "" {
			r.emit(s)
			if !r.tight() {
				r.blankLine()
			}
		}

	case ast.KindHeading:
		if entering {
			r.inline.Reset()
			return ast.WalkContinue, nil
		}
		s := strings.TrimSpace(ansi.Strip(r.inline.String()))
		r.inline.Reset()
		r.blankLine()
		r.emit(MarkdownHeadingStyle.Render(wrapText(s, r.contentWidth())))
		r.blankLine()

	case ast.KindFencedCodeBlock:
		if entering {
			lang := string(n.(*ast.FencedCodeBlock).Language(r.source))
			r.blankLine()
			r.emit(strings.TrimRight(highlightCode(r.lines(n), lang), "\n"))
			r.blankLine()
			return ast.WalkSkipChildren, nil
		}

	case ast.KindCodeBlock:
		if entering {
			r.blankLine()
			r.emit(MutedStyle.Render(r.lines(n)))
			r.blankLine()
			return ast.WalkSkipChildren, nil
		}

	case ast.KindBlockquote:
		if entering {
			r.pushPrefix(MutedStyle.Render("│ "))
		} else {
			r.popPrefix()
			r.blankLine()
		}

	case ast.KindList:
		if entering {
			l := n.(*ast.List)
			r.lists = append(r.lists, listState{ordered: l.IsOrdered(), counter: l.Start, tight: l.IsTight})
		} else {
			r.lists = r.lists[:len(r.lists)-1]
			if !r.tight() {
				r.blankLine()
			}
		}

	case ast.KindListItem:
		if len(r.lists) == 0 {
			break
		}
		top := &r.lists[len(r.lists)-1]
		if entering {
			bullet := "• "
			if top.ordered {
				bullet = fmt.Sprintf("%d. ", top.counter)
				top.counter++
			}
			r.pendingBullet = r.prefix + MutedStyle.Render(bullet)
			r.pushPrefix(strings.Repeat(" ", lipgloss.Width(bullet)))
		} else {
			r.popPrefix()
		}

	case ast.KindThematicBreak:
		if entering {
			r.blankLine()
			r.emit(MarkdownRuleStyle.Render(strings.Repeat("─", r.contentWidth())))
			r.blankLine()
		}

	case ast.KindText:
		if entering {
			t := n.(*ast.Text)
			r.inline.WriteString(r.styled(string(t.Segment.Value(r.source))))
			switch {
			case t.HardLineBreak():
				r.inline.WriteString("\n")
			case t.SoftLineBreak():
				r.inline.WriteString(" ")
			}
		}

	case ast.KindString:
		if entering {
			r.inline.WriteString(r.styled(string(n.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		level := n.(*ast.Emphasis).Level
		delta := 1
		if !entering {
			delta = -1
		}
		if level >= 2 {
			r.bold += delta
		} else {
			r.italic += delta
		}

	case extast.KindStrikethrough:
		if entering {
			r.strike++
		} else {
			r.strike--
		}

	case ast.KindCodeSpan:
		if entering {
			var b strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					b.Write(t.Segment.Value(r.source))
				}
			}
			r.inline.WriteString(MarkdownInlineCodeStyle.Render(b.String()))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindLink:
		if entering {
			link := n.(*ast.Link)
			var label strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					label.Write(t.Segment.Value(r.source))
				}
			}
			r.inline.WriteString(MarkdownLinkStyle.Render(label.String()))
			if dest := string(link.Destination); dest != "" && dest != label.String() {
				r.inline.WriteString(" " + MutedStyle.Render("("+dest+")"))
			}
			return ast.WalkSkipChildren, nil
		}

	case ast.KindAutoLink:
		if entering {
			r.inline.WriteString(MarkdownLinkStyle.Render(string(n.(*ast.AutoLink).URL(r.source))))
		}

	case extast.KindTaskCheckBox:
		if entering {
			if n.(*extast.TaskCheckBox).IsChecked {
				r.inline.WriteString("[x] ")
			} else {
				r.inline.WriteString("[ ] ")
			}
		}
	}
	return ast.WalkContinue, nil
}
