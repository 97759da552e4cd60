package main

import (
	"time"

	"github.com/rickar/cal/v2"
)

// ---------------------------------------------------------------------------
// Renewal Calendar
// ---------------------------------------------------------------------------

func fixedHoliday(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{
		Name:  name,
		Type:  cal.ObservancePublic,
		Month: month,
		Day:   day,
		Func:  cal.CalcDayOfMonth,
	}
}

func easterHoliday(name string, offset int) *cal.Holiday {
	return &cal.Holiday{
		Name:   name,
		Type:   cal.ObservancePublic,
		Offset: offset,
		Func:   cal.CalcEasterOffset,
	}
}

// brazilHolidays are the national days the clinic is closed.
var brazilHolidays = []*cal.Holiday{
	fixedHoliday("Confraternização Universal", time.January, 1),
	easterHoliday("Carnaval", -47),
	easterHoliday("Sexta-feira Santa", -2),
	fixedHoliday("Tiradentes", time.April, 21),
	fixedHoliday("Dia do Trabalho", time.May, 1),
	easterHoliday("Corpus Christi", 60),
	fixedHoliday("Independência do Brasil", time.September, 7),
	fixedHoliday("Nossa Senhora Aparecida", time.October, 12),
	fixedHoliday("Finados", time.November, 2),
	fixedHoliday("Proclamação da República", time.November, 15),
	{
		Name:      "Dia Nacional de Zumbi e da Consciência Negra",
		Type:      cal.ObservancePublic,
		StartYear: 2024,
		Month:     time.November,
		Day:       20,
		Func:      cal.CalcDayOfMonth,
	},
	fixedHoliday("Natal", time.December, 25),
}

// newClinicCalendar creates a Monday to Friday calendar with Brazilian national holidays.
func newClinicCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.Name = "Secretaria Municipal de Saúde"
	c.Description = "Clinic opening days"
	c.AddHoliday(brazilHolidays...)
	return c
}

// nextWorkday returns date itself when the clinic is open, otherwise the next open day.
func nextWorkday(c *cal.BusinessCalendar, date time.Time) time.Time {
	for i := 0; i < 366 && !c.IsWorkday(date); i++ {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// renewalDates returns count dates spaced intervalDays after start, each
// moved forward to a workday. start itself is not included.
func renewalDates(c *cal.BusinessCalendar, start time.Time, count, intervalDays int) []time.Time {
	dates := make([]time.Time, 0, count)
	for k := 1; k <= count; k++ {
		dates = append(dates, nextWorkday(c, start.AddDate(0, 0, k*intervalDays)))
	}
	return dates
}

// expandRenewals replaces every prescription that asks for renewals by the
// original plus one copy per renewal date, keeping batch order.
func expandRenewals(c *cal.BusinessCalendar, prescriptions []Prescription, intervalDays int, warn func(msg string, args ...any)) []Prescription {
	out := make([]Prescription, 0, len(prescriptions))
	for _, rx := range prescriptions {
		renewals := rx.Renewals
		rx.Renewals = 0
		out = append(out, rx)
		if renewals <= 0 {
			continue
		}

		start, ok := parseDate(rx.Date)
		if !ok {
			warn("Cannot schedule renewals without a valid date", "date", rx.Date, "renewals", renewals)
			continue
		}
		for _, d := range renewalDates(c, start, renewals, intervalDays) {
			renewal := rx
			renewal.Date = d.Format(isoDate)
			renewal.Medicines = append([]PrescribedMedicine(nil), rx.Medicines...)
			out = append(out, renewal)
		}
	}
	return out
}
