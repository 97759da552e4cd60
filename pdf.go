package main

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// ---------------------------------------------------------------------------
// PDF Surface
// ---------------------------------------------------------------------------

const pdfFontFamily = "Helvetica"

// pdfSurface draws onto an fpdf document using the core Helvetica font.
// Text is converted to Windows-1252, the encoding of the core fonts.
type pdfSurface struct {
	pdf *fpdf.Fpdf
}

// pdfMeta is the document information written into the PDF.
type pdfMeta struct {
	Title     string
	Author    string
	CreatedAt time.Time
}

// newPDFSurface creates an empty document. Pages are added by NewPage.
func newPDFSurface(geo Geometry, meta pdfMeta) *pdfSurface {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: geo.PageWidth, Ht: geo.PageHeight},
	})
	pdf.SetMargins(geo.Margin, geo.Margin, geo.PageWidth-geo.ContentRight)
	// Every coordinate is absolute, fpdf must never break pages on its own.
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetCreator(fmt.Sprintf("receituario v%s", version), true)
	if !meta.CreatedAt.IsZero() {
		pdf.SetCreationDate(meta.CreatedAt)
		pdf.SetModificationDate(meta.CreatedAt)
	}

	return &pdfSurface{pdf: pdf}
}

func (s *pdfSurface) NewPage() {
	s.pdf.AddPage()
}

func (s *pdfSurface) setStyle(style TextStyle) {
	fontStyle := ""
	switch style.Face {
	case Bold:
		fontStyle = "B"
	case Italic:
		fontStyle = "I"
	}
	s.pdf.SetFont(pdfFontFamily, fontStyle, style.Size)
}

func (s *pdfSurface) DrawText(x, y float64, text string, style TextStyle) {
	s.setStyle(style)
	txt := toWindows1252(text)

	switch style.Align {
	case AlignCenter:
		x -= s.pdf.GetStringWidth(txt) / 2
	case AlignRight:
		x -= s.pdf.GetStringWidth(txt)
	}
	s.pdf.Text(x, y, txt)
}

func (s *pdfSurface) DrawLine(x1, y1, x2, y2, width float64) {
	s.pdf.SetLineWidth(width)
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *pdfSurface) SplitText(text string, width float64, style TextStyle) []string {
	s.setStyle(style)

	return wrapWords(text, width, func(line string) float64 {
		return s.pdf.GetStringWidth(toWindows1252(line))
	})
}

// PageCount returns the number of pages drawn so far.
func (s *pdfSurface) PageCount() int {
	return s.pdf.PageCount()
}

// output closes the document and returns its bytes. fpdf errors collected
// while drawing are reported here.
func (s *pdfSurface) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// writeTo is a helper for callers that stream the document.
func writeTo(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
