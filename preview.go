package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ---------------------------------------------------------------------------
// Print Preview
// ---------------------------------------------------------------------------

// avgGlyphWidth approximates Helvetica's average advance, in ems.
const avgGlyphWidth = 0.5

// drawOp is one recorded drawing operation.
type drawOp struct {
	Kind  string // "text" or "line"
	X, Y  float64
	X2    float64
	Y2    float64
	Text  string
	Style TextStyle
}

// recorder is a Surface that keeps every operation in memory, page by page.
// It backs the plain-text print preview.
type recorder struct {
	pages [][]drawOp
}

func newRecorder() *recorder {
	return &recorder{}
}

func (r *recorder) NewPage() {
	r.pages = append(r.pages, nil)
}

func (r *recorder) add(op drawOp) {
	if len(r.pages) == 0 {
		r.NewPage()
	}
	last := len(r.pages) - 1
	r.pages[last] = append(r.pages[last], op)
}

func (r *recorder) DrawText(x, y float64, text string, style TextStyle) {
	r.add(drawOp{Kind: "text", X: x, Y: y, Text: text, Style: style})
}

func (r *recorder) DrawLine(x1, y1, x2, y2, width float64) {
	r.add(drawOp{Kind: "line", X: x1, Y: y1, X2: x2, Y2: y2, Style: TextStyle{Size: width}})
}

// SplitText wraps greedily on spaces using a fixed average glyph width.
func (r *recorder) SplitText(text string, width float64, style TextStyle) []string {
	glyph := style.Size * avgGlyphWidth
	return wrapWords(text, width, func(s string) float64 {
		return float64(utf8.RuneCountInString(s)) * glyph
	})
}

// PageCount returns the number of pages recorded.
func (r *recorder) PageCount() int {
	return len(r.pages)
}

// texts returns the text runs of page i in drawing order.
func (r *recorder) texts(i int) []string {
	var out []string
	for _, op := range r.pages[i] {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// WritePreview writes a plain-text rendition of every page, top to bottom.
func (r *recorder) WritePreview(w io.Writer) error {
	for i, page := range r.pages {
		if _, err := fmt.Fprintf(w, "==== Página %d/%d ====\n", i+1, len(r.pages)); err != nil {
			return err
		}
		for _, op := range page {
			var err error
			switch op.Kind {
			case "line":
				_, err = fmt.Fprintf(w, "%6.1f  %s\n", op.Y, strings.Repeat("-", 40))
			default:
				_, err = fmt.Fprintf(w, "%6.1f  %s%s\n", op.Y, previewIndent(op), op.Text)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// previewIndent maps the x position of a text run to leading spaces.
func previewIndent(op drawOp) string {
	n := int((op.X - a4.Margin) / 10)
	switch op.Style.Align {
	case AlignCenter:
		n -= utf8.RuneCountInString(op.Text) / 2
	case AlignRight:
		n -= utf8.RuneCountInString(op.Text)
	}
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
