package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PeriodKind discriminates the period representations found in stored
// submissions: the current half-year buckets and the legacy raw month
// numbers from older records.
type PeriodKind int

const (
	PeriodUnknown PeriodKind = iota
	PeriodHalfYear
	PeriodLegacyMonth
)

// PeriodSpec is a parsed submission period. Ordinal is 1 or 2 for
// half-year buckets and the raw month number for legacy records, so it
// doubles as the chronological sort key within a year.
type PeriodSpec struct {
	Kind    PeriodKind
	Ordinal int
}

const (
	PeriodFirstHalf  = "first-half"
	PeriodSecondHalf = "second-half"

	labelUnknown = "Tidak diketahui"
)

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var monthShort = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// ParsePeriod converts a raw period value from a stored submission into
// a PeriodSpec. Half-year bucket strings and numeric month values (in
// any numeric encoding the drivers produce) are recognized; everything
// else parses to PeriodUnknown rather than failing.
func ParsePeriod(raw interface{}) PeriodSpec {
	switch v := raw.(type) {
	case string:
		switch strings.TrimSpace(strings.ToLower(v)) {
		case PeriodFirstHalf:
			return PeriodSpec{Kind: PeriodHalfYear, Ordinal: 1}
		case PeriodSecondHalf:
			return PeriodSpec{Kind: PeriodHalfYear, Ordinal: 2}
		}
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return PeriodSpec{Kind: PeriodLegacyMonth, Ordinal: n}
		}
		return PeriodSpec{Kind: PeriodUnknown}
	case int:
		return PeriodSpec{Kind: PeriodLegacyMonth, Ordinal: v}
	case int32:
		return PeriodSpec{Kind: PeriodLegacyMonth, Ordinal: int(v)}
	case int64:
		return PeriodSpec{Kind: PeriodLegacyMonth, Ordinal: int(v)}
	case float64:
		return PeriodSpec{Kind: PeriodLegacyMonth, Ordinal: int(v)}
	default:
		return PeriodSpec{Kind: PeriodUnknown}
	}
}

// MonthNumber resolves an Indonesian month name (full or three-letter
// form, case-insensitive) to its 1-12 number. Returns 0 for anything
// unrecognized.
func MonthNumber(name string) int {
	name = strings.TrimSpace(strings.ToLower(name))
	for i := range monthNames {
		if name == strings.ToLower(monthNames[i]) || name == strings.ToLower(monthShort[i]) {
			return i + 1
		}
	}
	return 0
}

// MonthName returns the full Indonesian month name for 1-12. Numbers
// outside that range pass through as their literal text so old records
// with broken month values still render.
func MonthName(m int) string {
	if m >= 1 && m <= 12 {
		return monthNames[m-1]
	}
	return strconv.Itoa(m)
}

// Label renders the report header form, e.g. "Periode Januari-Juni 2025".
func (p PeriodSpec) Label(year int) string {
	switch p.Kind {
	case PeriodHalfYear:
		if p.Ordinal == 2 {
			return fmt.Sprintf("Periode Juli-Desember %d", year)
		}
		return fmt.Sprintf("Periode Januari-Juni %d", year)
	case PeriodLegacyMonth:
		return fmt.Sprintf("Periode %s %d", MonthName(p.Ordinal), year)
	default:
		return labelUnknown
	}
}

// ShortLabel renders the two-line chart axis form, e.g. "Jan-Jun\n2025".
func (p PeriodSpec) ShortLabel(year int) string {
	switch p.Kind {
	case PeriodHalfYear:
		if p.Ordinal == 2 {
			return fmt.Sprintf("Jul-Des\n%d", year)
		}
		return fmt.Sprintf("Jan-Jun\n%d", year)
	case PeriodLegacyMonth:
		if p.Ordinal >= 1 && p.Ordinal <= 12 {
			return fmt.Sprintf("%s\n%d", monthShort[p.Ordinal-1], year)
		}
		return fmt.Sprintf("%d\n%d", p.Ordinal, year)
	default:
		return labelUnknown
	}
}

// ContainsMonth reports whether a 1-12 month number falls inside the
// period: exact match for legacy month records, range membership for
// half-year buckets. Unknown periods never match.
func (p PeriodSpec) ContainsMonth(month int) bool {
	switch p.Kind {
	case PeriodHalfYear:
		if p.Ordinal == 2 {
			return month >= 7 && month <= 12
		}
		return month >= 1 && month <= 6
	case PeriodLegacyMonth:
		return p.Ordinal == month
	default:
		return false
	}
}
