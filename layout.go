package main

// ---------------------------------------------------------------------------
// Page Layout
// ---------------------------------------------------------------------------

const (
	// MaxMedicinesPerPage is the page capacity of the medicine list.
	MaxMedicinesPerPage = 8

	firstPageStartY        = 220.0
	continuationPageStartY = 160.0
)

// Page describes one physical page of a prescription document.
type Page struct {
	Prescription int // index into the batch
	Number       int // 1-based position in the whole document
	First        bool
	Medicines    []PrescribedMedicine
	StartY       float64
}

// partition splits items into consecutive groups of at most maxPerPage.
// Order is preserved and no group is empty; no items yields no groups.
func partition(items []PrescribedMedicine, maxPerPage int) [][]PrescribedMedicine {
	if maxPerPage <= 0 {
		maxPerPage = MaxMedicinesPerPage
	}

	groups := make([][]PrescribedMedicine, 0, (len(items)+maxPerPage-1)/maxPerPage)
	for start := 0; start < len(items); start += maxPerPage {
		end := start + maxPerPage
		if end > len(items) {
			end = len(items)
		}
		groups = append(groups, items[start:end:end])
	}
	return groups
}

// planPages lays one prescription out on pages. A prescription without
// medicines still gets a page for its header and footer.
func planPages(index int, rx Prescription, maxPerPage int) []Page {
	groups := partition(rx.Medicines, maxPerPage)
	if len(groups) == 0 {
		return []Page{{Prescription: index, First: true, StartY: firstPageStartY}}
	}

	pages := make([]Page, len(groups))
	for g, group := range groups {
		pages[g] = Page{
			Prescription: index,
			First:        g == 0,
			Medicines:    group,
			StartY:       continuationPageStartY,
		}
		if g == 0 {
			pages[g].StartY = firstPageStartY
		}
	}
	return pages
}

// planDocument lays out a whole batch. Each prescription starts on a fresh page.
func planDocument(prescriptions []Prescription, maxPerPage int) []Page {
	var pages []Page
	for i, rx := range prescriptions {
		pages = append(pages, planPages(i, rx, maxPerPage)...)
	}
	for i := range pages {
		pages[i].Number = i + 1
	}
	return pages
}
