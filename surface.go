package main

import "strings"

// ---------------------------------------------------------------------------
// Drawing Surface
// ---------------------------------------------------------------------------

// FontStyle selects the face of a text run.
type FontStyle int

const (
	Regular FontStyle = iota
	Bold
	Italic
)

// Alignment says which part of the text is anchored at x.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how a text run is drawn.
type TextStyle struct {
	Size  float64
	Face  FontStyle
	Align Alignment
}

// Surface is the drawing target of the renderer. Coordinates are in points
// from the top left corner of the current page; y is the text baseline.
type Surface interface {
	NewPage()
	DrawText(x, y float64, text string, style TextStyle)
	DrawLine(x1, y1, x2, y2, width float64)
	// SplitText wraps text into lines no wider than width.
	SplitText(text string, width float64, style TextStyle) []string
}

// Geometry is the fixed page geometry, in points.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	Margin       float64
	ContentRight float64
}

// a4 is the A4 portrait page every prescription is printed on.
var a4 = Geometry{
	PageWidth:    595,
	PageHeight:   842,
	Margin:       40,
	ContentRight: 555,
}

// CenterX is the horizontal centre of the page.
func (g Geometry) CenterX() float64 {
	return float64(int(g.PageWidth / 2))
}

// wrapWords breaks text into lines no wider than width, as measured by
// measure. Lines break only at ASCII spaces and tabs, so a no-break space
// keeps its neighbours together. A word wider than a line stands alone.
func wrapWords(text string, width float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var line string
		for _, word := range strings.FieldsFunc(para, isBreakSpace) {
			switch {
			case line == "":
				line = word
			case measure(line+" "+word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func isBreakSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}
