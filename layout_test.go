package main

import (
	"reflect"
	"testing"
)

func medicines(n int) []PrescribedMedicine {
	items := make([]PrescribedMedicine, n)
	for i := range items {
		items[i] = PrescribedMedicine{MedicineID: i%36 + 1, Dosage: "dose " + string(rune('A'+i%26))}
	}
	return items
}

func TestPartition(t *testing.T) {
	for n := 0; n <= 33; n++ {
		items := medicines(n)
		groups := partition(items, MaxMedicinesPerPage)

		wantGroups := (n + MaxMedicinesPerPage - 1) / MaxMedicinesPerPage
		if len(groups) != wantGroups {
			t.Fatalf("partition(%d items) = %d groups, want %d", n, len(groups), wantGroups)
		}

		var joined []PrescribedMedicine
		for i, g := range groups {
			if len(g) == 0 {
				t.Errorf("partition(%d items) group %d is empty", n, i)
			}
			if i < len(groups)-1 && len(g) != MaxMedicinesPerPage {
				t.Errorf("partition(%d items) group %d has %d items, want %d", n, i, len(g), MaxMedicinesPerPage)
			}
			if len(g) > MaxMedicinesPerPage {
				t.Errorf("partition(%d items) group %d exceeds page capacity", n, i)
			}
			joined = append(joined, g...)
		}
		if n > 0 && !reflect.DeepEqual(joined, items) {
			t.Errorf("partition(%d items) does not preserve order", n)
		}
	}
}

func TestPartitionGroupsDoNotAlias(t *testing.T) {
	items := medicines(10)
	groups := partition(items, 8)

	groups[0] = append(groups[0], PrescribedMedicine{MedicineID: 99})
	if items[8].MedicineID == 99 {
		t.Error("appending to a group overwrote the next item of the input")
	}
}

func TestPartitionInvalidCapacity(t *testing.T) {
	groups := partition(medicines(9), 0)
	if len(groups) != 2 {
		t.Errorf("partition with capacity 0 = %d groups, want 2 (default capacity)", len(groups))
	}
}

func TestPlanPages(t *testing.T) {
	tests := []struct {
		name       string
		medicines  int
		wantPages  int
		wantStartY []float64
	}{
		{"no medicines", 0, 1, []float64{220}},
		{"one medicine", 1, 1, []float64{220}},
		{"full page", 8, 1, []float64{220}},
		{"one over", 9, 2, []float64{220, 160}},
		{"three pages", 17, 3, []float64{220, 160, 160}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := planPages(2, Prescription{Medicines: medicines(tt.medicines)}, MaxMedicinesPerPage)
			if len(pages) != tt.wantPages {
				t.Fatalf("planPages() = %d pages, want %d", len(pages), tt.wantPages)
			}
			for i, p := range pages {
				if p.Prescription != 2 {
					t.Errorf("page %d prescription = %d, want 2", i, p.Prescription)
				}
				if p.First != (i == 0) {
					t.Errorf("page %d First = %v", i, p.First)
				}
				if p.StartY != tt.wantStartY[i] {
					t.Errorf("page %d StartY = %v, want %v", i, p.StartY, tt.wantStartY[i])
				}
			}
		})
	}
}

func TestPlanDocumentNumbersPages(t *testing.T) {
	batch := []Prescription{
		{Medicines: medicines(9)},
		{Medicines: medicines(1)},
		{},
	}

	pages := planDocument(batch, MaxMedicinesPerPage)
	if len(pages) != 4 {
		t.Fatalf("planDocument() = %d pages, want 4", len(pages))
	}

	wantRx := []int{0, 0, 1, 2}
	for i, p := range pages {
		if p.Number != i+1 {
			t.Errorf("page %d Number = %d, want %d", i, p.Number, i+1)
		}
		if p.Prescription != wantRx[i] {
			t.Errorf("page %d Prescription = %d, want %d", i, p.Prescription, wantRx[i])
		}
	}
}
