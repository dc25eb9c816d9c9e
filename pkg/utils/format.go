package utils

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ShortMonths is the canonical id-ID short month ordering.
var ShortMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Ags", "Sep", "Okt", "Nov", "Des"}

var longMonths = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var weekdays = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var printer = message.NewPrinter(language.Indonesian)

const Dash = "-"

// ShortMonth returns the id-ID short name of m.
func ShortMonth(m time.Month) string {
	return ShortMonths[m-1]
}

// MonthIndex returns the canonical position of a short month name, or -1.
func MonthIndex(name string) int {
	for i, m := range ShortMonths {
		if m == name {
			return i
		}
	}
	return -1
}

// Number formats v with id-ID grouping ("1.250.000", "12,5").
func Number(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Rupiah formats a positive amount as "Rp 1.250.000"; zero renders as a dash.
func Rupiah(v float64) string {
	if v == 0 {
		return Dash
	}
	return "Rp " + Number(v)
}

// DateTime renders t like id-ID toLocaleString: "18/10/2026, 14.30.05".
func DateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return Dash
	}
	return t.In(location(loc)).Format("2/1/2006, 15.04.05")
}

// LongDateTime renders "Minggu, 18 Oktober 2026 pukul 14.30".
func LongDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return Dash
	}
	t = t.In(location(loc))
	return fmt.Sprintf("%s, %d %s %d pukul %s",
		weekdays[t.Weekday()], t.Day(), longMonths[t.Month()-1], t.Year(), t.Format("15.04"))
}

// OrDash returns s, or a dash when s is blank.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dash
	}
	return s
}

// Initial returns the first letter of name for avatars, or fallback.
func Initial(name, fallback string) string {
	for _, r := range strings.TrimSpace(name) {
		return strings.ToUpper(string(r))
	}
	return fallback
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
