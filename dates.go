package main

import (
	"fmt"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Dates
// ---------------------------------------------------------------------------

// isoDate is the date layout used in request files and HTML date inputs.
const isoDate = "2006-01-02"

// dateLayouts are tried in order by parseDate.
var dateLayouts = []string{
	isoDate,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// parseDate parses a date in any of the accepted layouts.
// Only the calendar date is kept, no time zone shifting happens.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// formatDate formats a date string as DD/MM/YYYY. Invalid input yields "".
func formatDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return ""
	}
	return t.Format("02/01/2006")
}

// formatDateLong formats a date as "City, D de Month de YYYY". Invalid input yields "".
func formatDateLong(city, s string) string {
	t, ok := parseDate(s)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s, %d de %s de %d", city, t.Day(), monthNames[t.Month()-1], t.Year())
}
