package main

import (
	"strings"
)

// ---------------------------------------------------------------------------
// Domain Types
// ---------------------------------------------------------------------------

// Patient is the person a prescription is issued to.
type Patient struct {
	Name      string `yaml:"name"`
	CPF       string `yaml:"cpf"`
	BirthDate string `yaml:"birth_date"` // YYYY-MM-DD
}

// PrescribedMedicine references a catalog medicine plus its dosage instructions.
type PrescribedMedicine struct {
	MedicineID int    `yaml:"medicine_id"`
	Dosage     string `yaml:"dosage"`
}

// Prescription is one dated prescription. Medicine order is print order.
type Prescription struct {
	Date         string               `yaml:"date"` // YYYY-MM-DD
	Medicines    []PrescribedMedicine `yaml:"medicines"`
	Observations string               `yaml:"observations"`
	Renewals     int                  `yaml:"renewals"` // extra copies for continuous treatment
}

// Medicine is an entry of the medicine catalog.
type Medicine struct {
	ID           int    `yaml:"id"`
	Name         string `yaml:"name"`
	Strength     string `yaml:"strength"`
	Presentation string `yaml:"presentation"`
}

// MedicineLookup resolves a medicine id. It must not block.
type MedicineLookup func(id int) (Medicine, bool)

// formatCPF formats an 11 digit CPF as 000.000.000-00.
// Anything else is returned trimmed but otherwise untouched.
func formatCPF(cpf string) string {
	cpf = strings.TrimSpace(cpf)

	digits := make([]byte, 0, 11)
	for i := 0; i < len(cpf); i++ {
		c := cpf[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		case c == '.' || c == '-' || c == ' ':
		default:
			return cpf
		}
	}
	if len(digits) != 11 {
		return cpf
	}

	d := string(digits)
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}
