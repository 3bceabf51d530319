package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"ternakku/internal/model"
)

// ErrNilResults marks API misuse: a nil result list where the caller
// should pass an empty one.
var ErrNilResults = errors.New("scoring: nil results list")

// Filter narrows a result list. Zero-value fields are inactive; active
// fields combine with AND semantics. Month is an Indonesian month name
// (full or short form), Year a four-digit year in whatever string form
// the query layer hands over, Name a case-insensitive substring of the
// respondent name.
type Filter struct {
	Month string
	Year  string
	Name  string
}

// compile validates the filter and resolves its typed fields. A month
// name outside the table or a non-numeric year is a caller mistake,
// reported as an error instead of silently matching nothing.
func (f Filter) compile() (month, year int, name string, err error) {
	if f.Month != "" {
		month = model.MonthNumber(f.Month)
		if month == 0 {
			return 0, 0, "", fmt.Errorf("scoring: unknown month %q", f.Month)
		}
	}
	if f.Year != "" {
		year, err = strconv.Atoi(strings.TrimSpace(f.Year))
		if err != nil {
			return 0, 0, "", fmt.Errorf("scoring: invalid year %q", f.Year)
		}
	}
	return month, year, strings.ToLower(strings.TrimSpace(f.Name)), nil
}

// FilterResults applies the filter to an evaluated result list. The
// empty filter is the identity. A nil list is a usage error, matching
// the treatment of nil submissions in EvaluateAll.
func FilterResults(results []model.EvaluationResult, f Filter) ([]model.EvaluationResult, error) {
	if results == nil {
		return nil, ErrNilResults
	}
	month, year, name, err := f.compile()
	if err != nil {
		return nil, err
	}

	out := make([]model.EvaluationResult, 0, len(results))
	for _, res := range results {
		if month != 0 && !res.Period.ContainsMonth(month) {
			continue
		}
		if year != 0 && res.Year != year {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(res.RespondentName), name) {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

// SortChronological orders results oldest first by (year, period
// ordinal), so a trend chart reads left to right. The sort is stable:
// records sharing a period keep their fetch order.
func SortChronological(results []model.EvaluationResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Year != results[j].Year {
			return results[i].Year < results[j].Year
		}
		return results[i].Period.Ordinal < results[j].Period.Ordinal
	})
}

// Latest returns the most recent result, the single-value access
// pattern behind the dashboard score card. The second return is false
// for an empty list.
func Latest(results []model.EvaluationResult) (model.EvaluationResult, bool) {
	if len(results) == 0 {
		return model.EvaluationResult{}, false
	}
	best := results[0]
	for _, res := range results[1:] {
		if res.Year > best.Year ||
			(res.Year == best.Year && res.Period.Ordinal > best.Period.Ordinal) {
			best = res
		}
	}
	return best, true
}
