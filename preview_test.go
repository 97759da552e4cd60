package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRecorderSplitText(t *testing.T) {
	rec := newRecorder()
	style := regular(10) // 5pt per glyph

	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"fits", "uma linha", 100, []string{"uma linha"}},
		{"wraps on spaces", "aaaa bbbb cccc", 50, []string{"aaaa bbbb", "cccc"}},
		{"keeps long word whole", "abcdefghijklmnop", 20, []string{"abcdefghijklmnop"}},
		{"hard line breaks", "um\ndois", 100, []string{"um", "dois"}},
		{"accents count as one glyph", "ação ação", 45, []string{"ação ação"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rec.SplitText(tt.text, tt.width, style)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("SplitText(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestRecorderDrawBeforeNewPage(t *testing.T) {
	rec := newRecorder()
	rec.DrawText(40, 100, "solto", regular(12))

	if rec.PageCount() != 1 {
		t.Fatalf("PageCount() = %d, want 1", rec.PageCount())
	}
	if got := rec.texts(0); len(got) != 1 || got[0] != "solto" {
		t.Errorf("texts(0) = %v", got)
	}
}

func TestWritePreview(t *testing.T) {
	rec := newRecorder()
	rec.NewPage()
	rec.DrawText(297, 90, "RECEITUÁRIO MÉDICO", TextStyle{Size: 16, Face: Bold, Align: AlignCenter})
	rec.DrawLine(40, 100, 555, 100, 1)
	rec.DrawText(40, 130, "Paciente:", bold(12))
	rec.NewPage()
	rec.DrawText(40, 120, "Continuação", TextStyle{Size: 10, Face: Italic})

	var buf bytes.Buffer
	if err := rec.WritePreview(&buf); err != nil {
		t.Fatalf("WritePreview() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"==== Página 1/2 ====",
		"RECEITUÁRIO MÉDICO",
		" 100.0  ----",
		" 130.0  Paciente:",
		"==== Página 2/2 ====",
		" 120.0  Continuação",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q in:\n%s", want, out)
		}
	}
}
