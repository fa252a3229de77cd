package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// textState is the formatting in effect while walking the document.
type textState struct {
	bold   bool
	italic bool
	align  fyne.TextAlign
	size   fyne.ThemeSizeName
}

type richTextBuilder struct {
	segments []widget.RichTextSegment
	line     []*widget.TextSegment
}

// HTMLToSegments converts the small HTML subset used for game titles and descriptions
// into rich text segments. Images are left out; unknown tags keep their text.
func HTMLToSegments(src string) ([]widget.RichTextSegment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse title HTML: %w", err)
	}

	b := &richTextBuilder{}
	b.walk(doc.Find("body"), textState{align: fyne.TextAlignLeading, size: theme.SizeNameText})
	b.flush()
	return b.segments, nil
}

func (b *richTextBuilder) walk(sel *goquery.Selection, state textState) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		switch node.Type {
		case html.TextNode:
			b.text(node.Data, state)
			return
		case html.ElementNode:
		default:
			return
		}

		inner := state
		switch goquery.NodeName(s) {
		case "img", "script", "style", "head", "title":
			return
		case "br":
			b.flush()
			return
		case "b", "strong":
			inner.bold = true
		case "i", "em":
			inner.italic = true
		case "font":
			if size, ok := s.Attr("size"); ok {
				inner.size = fontSize(size, state.size)
			}
		case "center":
			inner.align = fyne.TextAlignCenter
			b.flush()
			b.walk(s, inner)
			b.flush()
			return
		case "p", "div":
			b.flush()
			b.walk(s, inner)
			b.flush()
			return
		}
		b.walk(s, inner)
	})
}

func (b *richTextBuilder) text(data string, state textState) {
	data = collapseSpace(data)
	if data == "" || (data == " " && len(b.line) == 0) {
		return
	}
	b.line = append(b.line, &widget.TextSegment{
		Text: data,
		Style: widget.RichTextStyle{
			Alignment: state.align,
			Inline:    true,
			SizeName:  state.size,
			TextStyle: fyne.TextStyle{Bold: state.bold, Italic: state.italic},
		},
	})
}

// flush ends the current paragraph. Empty paragraphs produce nothing.
func (b *richTextBuilder) flush() {
	if len(b.line) == 0 {
		return
	}
	b.line[0].Text = strings.TrimLeft(b.line[0].Text, " ")
	last := b.line[len(b.line)-1]
	last.Text = strings.TrimRight(last.Text, " ")

	var kept []*widget.TextSegment
	for _, seg := range b.line {
		if seg.Text != "" {
			kept = append(kept, seg)
		}
	}
	b.line = nil
	if len(kept) == 0 {
		return
	}

	align := kept[0].Style.Alignment
	for i, seg := range kept {
		seg.Style.Alignment = align
		seg.Style.Inline = i < len(kept)-1
		b.segments = append(b.segments, seg)
	}
}

// fontSize maps <font size> values to theme sizes. Relative sizes above +1 and
// absolute sizes above 4 become headings.
func fontSize(attr string, current fyne.ThemeSizeName) fyne.ThemeSizeName {
	attr = strings.TrimSpace(attr)
	n, err := strconv.Atoi(strings.TrimPrefix(attr, "+"))
	if err != nil {
		return current
	}
	if !strings.HasPrefix(attr, "+") && !strings.HasPrefix(attr, "-") {
		n -= 3
	}
	switch {
	case n >= 2:
		return theme.SizeNameHeadingText
	case n == 1:
		return theme.SizeNameSubHeadingText
	case n < 0:
		return theme.SizeNameCaptionText
	default:
		return theme.SizeNameText
	}
}

// collapseSpace folds runs of HTML whitespace into single spaces, keeping one at either end.
func collapseSpace(s string) string {
	if s == "" {
		return s
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return " "
	}
	out := strings.Join(fields, " ")
	if isHTMLSpace(s[0]) {
		out = " " + out
	}
	if isHTMLSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isHTMLSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
