package parser

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// canonicalDateLayout is the zero-padded ISO form used as the aggregation key.
const canonicalDateLayout = "2006-01-02"

// excelEpochOffsetDays is the day count between the spreadsheet epoch
// (1899-12-30) and the Unix epoch (1970-01-01).
const excelEpochOffsetDays = 25569

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// slashLayouts is the fixed disambiguation order for slash-separated dates.
// Day-first beats month-first.
var slashLayouts = []string{
	"02/01/2006",
	"01/02/2006",
	"2/1/2006",
	"1/2/2006",
}

// freeFormLayouts are the accepted spellings for dates that are neither ISO
// nor slash-separated.
var freeFormLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006.01.02",
	"02-01-2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// NormalizeDate coerces a raw spreadsheet cell value to a canonical
// YYYY-MM-DD string. Spreadsheet serial numbers, native instants and a fixed
// set of string spellings are recognized; anything else is returned unchanged
// so the row schema rejects it with a format error instead of the row being
// dropped silently.
func NormalizeDate(v any) any {
	switch d := v.(type) {
	case float64:
		return serialToDate(d)
	case int:
		return serialToDate(float64(d))
	case int64:
		return serialToDate(float64(d))
	case time.Time:
		if d.IsZero() {
			return v
		}
		return d.Format(canonicalDateLayout)
	case string:
		return normalizeDateString(d)
	default:
		return v
	}
}

// serialToDate converts a spreadsheet day-count serial. The serial is
// interpreted as UTC midnight and the UTC calendar fields are rebuilt as a
// local date, so the calendar day never shifts with the host timezone.
func serialToDate(serial float64) string {
	unixDays := serial - excelEpochOffsetDays
	t := time.Unix(int64(unixDays*86400), 0).UTC()
	local := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return local.Format(canonicalDateLayout)
}

func normalizeDateString(s string) any {
	raw := strings.TrimSpace(s)

	if isoDateRe.MatchString(raw) {
		if t, err := time.Parse(canonicalDateLayout, raw); err == nil {
			return t.Format(canonicalDateLayout)
		}
		return s
	}

	if strings.Contains(raw, "/") {
		for _, layout := range slashLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.Format(canonicalDateLayout)
			}
		}
		return s
	}

	for _, layout := range freeFormLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(canonicalDateLayout)
		}
	}

	return s
}

// WeekdayNamer returns the display name for a weekday in the target locale.
type WeekdayNamer func(time.Weekday) string

// frenchWeekdays indexed by time.Weekday (Sunday first).
var frenchWeekdays = [7]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

// FrenchWeekdayName is the default WeekdayNamer.
func FrenchWeekdayName(d time.Weekday) string {
	return frenchWeekdays[d]
}

// capitalizeFirst upper-cases the first rune only, leaving the rest intact.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}
