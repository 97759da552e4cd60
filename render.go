package main

import (
	"fmt"
	"log/slog"
	"strings"
)

// ---------------------------------------------------------------------------
// Page Rendering
// ---------------------------------------------------------------------------

const (
	medicineStride       = 60.0
	observationsWidth    = 500.0
	observationsLeading  = 14.0
	observationsFromFoot = 150.0
	footerDateFromFoot   = 140.0
	signatureFromFoot    = 100.0
	addressFromFoot      = 20.0
)

// Letterhead is the institutional text printed on every prescription.
type Letterhead struct {
	Titles        []string `yaml:"titles"`
	DocumentTitle string   `yaml:"document_title"`
	City          string   `yaml:"city"`
	Address       string   `yaml:"address"`
}

// defaultLetterhead is the Perobal municipal health secretariat.
var defaultLetterhead = Letterhead{
	Titles: []string{
		"PREFEITURA MUNICIPAL DE PEROBAL",
		"SECRETARIA MUNICIPAL DE SAÚDE",
	},
	DocumentTitle: "RECEITUÁRIO MÉDICO",
	City:          "Perobal",
	Address:       "Rua Jaracatiá, 1060 - Telefax (044)3625-1225 CEP. 87538-000 PEROBAL - PARANÁ",
}

// renderer draws the blocks of a prescription page at fixed positions.
type renderer struct {
	s      Surface
	geo    Geometry
	head   Letterhead
	lookup MedicineLookup
	log    *slog.Logger
}

func bold(size float64) TextStyle    { return TextStyle{Size: size, Face: Bold} }
func regular(size float64) TextStyle { return TextStyle{Size: size} }

// header draws the letterhead and the separator rule.
func (r *renderer) header() {
	cx := r.geo.CenterX()
	y := 40.0
	for i, title := range r.head.Titles {
		size := 14.0
		if i == 0 {
			size = 18
		}
		r.s.DrawText(cx, y, title, TextStyle{Size: size, Face: Bold, Align: AlignCenter})
		y += 20
	}

	r.s.DrawText(cx, 90, r.head.DocumentTitle, TextStyle{Size: 16, Face: Bold, Align: AlignCenter})
	r.s.DrawLine(r.geo.Margin, 100, r.geo.ContentRight, 100, 1)
}

// continuationHeader replaces the patient and date blocks on overflow pages.
func (r *renderer) continuationHeader(patientName string) {
	r.s.DrawText(r.geo.Margin, 120,
		fmt.Sprintf("Continuação da receita - Paciente: %s", patientName),
		TextStyle{Size: 10, Face: Italic})
}

func (r *renderer) labelValue(y, labelX, valueX float64, label, value string) {
	r.s.DrawText(labelX, y, label, bold(12))
	r.s.DrawText(valueX, y, value, regular(12))
}

func (r *renderer) patientBlock(p Patient) {
	y := 130.0
	r.labelValue(y, r.geo.Margin, 100, "Paciente:", p.Name)
	y += 20

	if cpf := formatCPF(p.CPF); cpf != "" {
		r.labelValue(y, r.geo.Margin, 80, "CPF:", cpf)
		y += 20
	}

	if birth := formatDate(p.BirthDate); birth != "" {
		r.labelValue(y, r.geo.Margin, 120, "Data Nasc.:", birth)
	}
}

// dateBlock sits on the same row as the patient name.
func (r *renderer) dateBlock(date string) {
	r.labelValue(130, 400, 440, "Data:", formatDate(date))
}

// medicineGroup draws a numbered medicine list starting at startY.
// Numbering starts at 1 on every page.
func (r *renderer) medicineGroup(group []PrescribedMedicine, startY float64) {
	x := r.geo.Margin
	r.s.DrawText(x, startY-20, "MEDICAMENTOS PRESCRITOS:", bold(14))

	y := startY
	for i, item := range group {
		med, ok := r.lookup(item.MedicineID)
		if !ok {
			r.log.Warn("Medicine not found in catalog", "medicine_id", item.MedicineID)
		}

		r.s.DrawText(x, y, medicineTitle(i+1, med), bold(12))
		if med.Presentation != "" {
			r.s.DrawText(x, y+15, fmt.Sprintf("    (%s)", med.Presentation), regular(12))
		}
		r.s.DrawText(x, y+30, "    "+item.Dosage, regular(12))

		y += medicineStride
	}
}

// medicineTitle builds "N. Name - Strength", leaving out empty parts.
func medicineTitle(n int, med Medicine) string {
	var parts []string
	if med.Name != "" {
		parts = append(parts, med.Name)
	}
	if med.Strength != "" {
		parts = append(parts, med.Strength)
	}
	title := fmt.Sprintf("%d.", n)
	if len(parts) > 0 {
		title += " " + strings.Join(parts, " - ")
	}
	return title
}

// observations draws the free-text notes above the footer. Blank text draws
// nothing; lines that would reach the signature line are dropped.
func (r *renderer) observations(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	y := r.geo.PageHeight - observationsFromFoot
	r.s.DrawText(r.geo.Margin, y, "OBSERVAÇÕES:", bold(12))

	y += 20
	limit := r.geo.PageHeight - signatureFromFoot
	lines := r.s.SplitText(text, observationsWidth, regular(12))
	for i, line := range lines {
		if y >= limit {
			r.log.Warn("Observations truncated at the signature line",
				"lines", len(lines), "dropped", len(lines)-i)
			return
		}
		r.s.DrawText(r.geo.Margin, y, line, regular(12))
		y += observationsLeading
	}
}

// footer draws the place and date, the signature line and the institutional address.
func (r *renderer) footer(date string) {
	h := r.geo.PageHeight

	r.s.DrawText(420, h-footerDateFromFoot, formatDateLong(r.head.City, date),
		TextStyle{Size: 10, Align: AlignRight})

	sigY := h - signatureFromFoot
	r.s.DrawLine(200, sigY, 400, sigY, 1)
	r.s.DrawText(300, sigY+15, "Assinatura do Profissional", TextStyle{Size: 10, Align: AlignCenter})

	r.s.DrawText(r.geo.CenterX(), h-addressFromFoot, r.head.Address, TextStyle{Size: 8, Align: AlignCenter})
}
