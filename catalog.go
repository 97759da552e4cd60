package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Medicine Catalog
// ---------------------------------------------------------------------------

// Catalog maps medicine ids to catalog entries.
type Catalog map[int]Medicine

// standardMedicines is the list of specialised medicines dispensed by the
// municipal pharmacy. Ids follow list order, starting at 1.
var standardMedicines = [][3]string{
	{"AMITRIPTILINA", "25MG", "COMPRIMIDO"},
	{"ÁCIDO VALPROICO", "250MG", "COMPRIMIDO"},
	{"ÁCIDO VALPROICO", "500MG", "COMPRIMIDO"},
	{"ÁCIDO VALPROICO", "50MG/ML", "SUSPENSÃO ORAL"},
	{"BIPERIDENO CLORIDRATO", "2MG", "COMPRIMIDO"},
	{"CARBAMAZEPINA", "200MG", "COMPRIMIDO"},
	{"CARBAMAZEPINA", "20MG/ML", "SUSPENSÃO"},
	{"CARBONATO DE LÍTIO", "300MG", "COMPRIMIDO"},
	{"CLOMIPRAMINA CLORIDRATO", "25MG", "COMPRIMIDO"},
	{"CLONAZEPAM", "2MG", "COMPRIMIDO"},
	{"CLONAZEPAM", "2.5MG/ML", "SOLUÇÃO ORAL"},
	{"CLORPROMAZINA CLORIDRATO", "25MG", "COMPRIMIDO"},
	{"CLORPROMAZINA CLORIDRATO", "100MG", "COMPRIMIDO"},
	{"DESVENLAFAXINA SUCCINATO", "50MG", "COMPRIMIDO"},
	{"DIAZEPAM", "5MG", "COMPRIMIDO"},
	{"DIAZEPAM", "10MG", "COMPRIMIDO"},
	{"ESCITALOPRAM", "10MG", "COMPRIMIDO"},
	{"FENITOÍNA SÓDICA", "100MG", "COMPRIMIDO"},
	{"FENOBARBITAL", "100MG", "COMPRIMIDO"},
	{"FENOBARBITAL", "40MG/ML", "SOLUÇÃO ORAL"},
	{"FLUOXETINA", "20MG", "CÁPSULA/COMPRIMIDO"},
	{"HALOPERIDOL", "1MG", "COMPRIMIDO"},
	{"HALOPERIDOL", "5MG", "COMPRIMIDO"},
	{"HALOPERIDOL", "2MG/ML", "SOLUÇÃO ORAL"},
	{"HALOPERIDOL DECANOATO", "50MG/ML", "SOLUÇÃO INJETÁVEL"},
	{"IMIPRAMINA CLORIDRATO", "25MG", "COMPRIMIDO"},
	{"LEVOMEPROMAZINA", "25MG", "COMPRIMIDO"},
	{"LEVOMEPROMAZINA", "100MG", "COMPRIMIDO"},
	{"MIRTAZAPINA", "30MG", "COMPRIMIDO"},
	{"NORTRIPTILINA CLORIDRATO", "25MG", "COMPRIMIDO"},
	{"OXCARBAZEPINA", "600MG", "COMPRIMIDO"},
	{"OXCARBAZEPINA", "60MG/ML", "SOLUÇÃO ORAL"},
	{"PAROXETINA CLORIDRATO", "20MG", "COMPRIMIDO"},
	{"PREGABALINA", "75MG", "COMPRIMIDO"},
	{"SERTRALINA CLORIDRATO", "50MG", "COMPRIMIDO"},
	{"VENLAFAXINA CLORIDRATO", "75MG", "COMPRIMIDO"},
}

// defaultCatalog returns the standard medicine catalog.
func defaultCatalog() Catalog {
	c := make(Catalog, len(standardMedicines))
	for i, m := range standardMedicines {
		c[i+1] = Medicine{ID: i + 1, Name: m[0], Strength: m[1], Presentation: m[2]}
	}
	return c
}

// loadCatalog reads a YAML list of medicines.
func loadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var entries []Medicine
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog file %s has no medicines", path)
	}

	c := make(Catalog, len(entries))
	for _, m := range entries {
		if strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("medicine %d has no name", m.ID)
		}
		if _, dup := c[m.ID]; dup {
			return nil, fmt.Errorf("duplicate medicine id %d", m.ID)
		}
		c[m.ID] = m
	}
	return c, nil
}

// Lookup implements MedicineLookup.
func (c Catalog) Lookup(id int) (Medicine, bool) {
	m, ok := c[id]
	return m, ok
}
