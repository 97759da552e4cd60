package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Document Assembly
// ---------------------------------------------------------------------------

// ErrNoPrescriptions is returned when a document is requested for an empty batch.
var ErrNoPrescriptions = errors.New("no prescriptions to print")

// Generator turns a patient and a batch of prescriptions into a paginated document.
// A Generator holds no per-build state and may be reused.
type Generator struct {
	Geometry   Geometry
	Letterhead Letterhead
	Lookup     MedicineLookup
	MaxPerPage int
	Logger     *slog.Logger
}

// NewGenerator returns a generator for A4 pages with the given letterhead and catalog lookup.
func NewGenerator(head Letterhead, lookup MedicineLookup) *Generator {
	return &Generator{
		Geometry:   a4,
		Letterhead: head,
		Lookup:     lookup,
		MaxPerPage: MaxMedicinesPerPage,
		Logger:     slog.Default(),
	}
}

func (g *Generator) newRenderer(s Surface) *renderer {
	lookup := g.Lookup
	if lookup == nil {
		lookup = func(int) (Medicine, bool) { return Medicine{}, false }
	}
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &renderer{s: s, geo: g.Geometry, head: g.Letterhead, lookup: lookup, log: logger}
}

// Render draws the whole batch onto s and returns the pages it produced.
// Every prescription starts on a new page; medicines overflowing a page
// continue on pages carrying only the header and a continuation note.
// The footer and observations go on the last page of each prescription.
func (g *Generator) Render(s Surface, patient Patient, prescriptions []Prescription) ([]Page, error) {
	if len(prescriptions) == 0 {
		return nil, ErrNoPrescriptions
	}

	r := g.newRenderer(s)
	pages := planDocument(prescriptions, g.MaxPerPage)

	for i, page := range pages {
		rx := prescriptions[page.Prescription]

		s.NewPage()
		r.header()
		if page.First {
			r.patientBlock(patient)
			r.dateBlock(rx.Date)
		} else {
			r.continuationHeader(patient.Name)
		}

		if len(page.Medicines) > 0 {
			r.medicineGroup(page.Medicines, page.StartY)
		}

		lastOfPrescription := i == len(pages)-1 || pages[i+1].Prescription != page.Prescription
		if lastOfPrescription {
			r.footer(rx.Date)
			r.observations(rx.Observations)
		}
	}

	r.log.Debug("Prescription document rendered",
		"patient", patient.Name, "prescriptions", len(prescriptions), "pages", len(pages))
	return pages, nil
}

// Build renders the batch into a PDF document held in memory.
func (g *Generator) Build(patient Patient, prescriptions []Prescription) (*Document, error) {
	if len(prescriptions) == 0 {
		return nil, ErrNoPrescriptions
	}

	created, _ := parseDate(prescriptions[0].Date)
	s := newPDFSurface(g.Geometry, pdfMeta{
		Title:     fmt.Sprintf("%s - %s", g.Letterhead.DocumentTitle, patient.Name),
		Author:    firstOr(g.Letterhead.Titles, ""),
		CreatedAt: created,
	})

	pages, err := g.Render(s, patient, prescriptions)
	if err != nil {
		return nil, err
	}
	return &Document{Pages: pages, surface: s}, nil
}

// BuildPrescription is Build for a single prescription.
func (g *Generator) BuildPrescription(patient Patient, rx Prescription) (*Document, error) {
	return g.Build(patient, []Prescription{rx})
}

// Preview renders the batch onto a recorder for the plain-text print view.
func (g *Generator) Preview(patient Patient, prescriptions []Prescription) (*recorder, error) {
	rec := newRecorder()
	if _, err := g.Render(rec, patient, prescriptions); err != nil {
		return nil, err
	}
	return rec, nil
}

func firstOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return values[0]
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

// Document is a rendered prescription document. Layout is finished; the
// PDF bytes are produced on first export and reused afterwards.
type Document struct {
	Pages []Page

	surface *pdfSurface
	data    []byte
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Bytes returns the encoded PDF.
func (d *Document) Bytes() ([]byte, error) {
	if d.data != nil {
		return d.data, nil
	}
	data, err := d.surface.output()
	if err != nil {
		return nil, err
	}
	d.data = data
	return data, nil
}

// Write streams the encoded PDF to w.
func (d *Document) Write(w io.Writer) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	return writeTo(w, data)
}

// Save writes the encoded PDF to filename.
func (d *Document) Save(filename string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save PDF: %w", err)
	}
	return nil
}

// documentFilename derives "receita_<patient>_<date>.pdf" from the batch.
func documentFilename(patient Patient, prescriptions []Prescription) string {
	parts := []string{"receita"}
	if name := slugify(patient.Name); name != "" {
		parts = append(parts, name)
	}
	if len(prescriptions) > 0 {
		if t, ok := parseDate(prescriptions[0].Date); ok {
			parts = append(parts, t.Format(isoDate))
		}
	}
	return strings.Join(parts, "_") + ".pdf"
}

// documentRef generates a reference number for a delivered document.
// Format: RX-YYYYMMDD-XXXXXXXX
func documentRef(now time.Time) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("RX-%s-%s", now.Format("20060102"), id[:8])
}
