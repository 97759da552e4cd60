package main

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestToWindows1252(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii", "Paciente:", "Paciente:"},
		{"accents", "Março", "Mar\xe7o"},
		{"em dash", "a — b", "a \x97 b"},
		{"decomposed accent", "Sau\u0301de", "Sa\xfade"},
		{"unsupported rune", "dose ☺", "dose ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toWindows1252(tt.input)
			if got != tt.expected {
				t.Errorf("toWindows1252(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWindows1252RoundTrip(t *testing.T) {
	for _, s := range []string{"RECEITUÁRIO MÉDICO", "OBSERVAÇÕES:", "Continuação — Paciente", "€ 10"} {
		got, err := charmap.Windows1252.NewDecoder().String(toWindows1252(s))
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"José Araújo", "jose_araujo"},
		{"  Maria  da   Silva ", "maria_da_silva"},
		{"Ção-Ñandú 2", "cao_nandu_2"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := slugify(tt.input); got != tt.expected {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
