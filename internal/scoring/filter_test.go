package scoring

import (
	"errors"
	"reflect"
	"testing"

	"ternakku/internal/model"
)

func sampleResults(t *testing.T) []model.EvaluationResult {
	t.Helper()
	subs := []model.Submission{
		{ID: "s1", RespondentName: "Pak Budi", GroupID: "A",
			Period: model.PeriodSecondHalf, Year: 2024, Answers: []int{5, 5}},
		{ID: "s2", RespondentName: "Bu Sari", GroupID: "A",
			Period: model.PeriodFirstHalf, Year: 2025, Answers: []int{4, 4}},
		{ID: "s3", RespondentName: "Pak Joko", GroupID: "B",
			Period: 3, Year: 2025, Answers: []int{3, 3}}, // legacy March record
		{ID: "s4", // no respondent name
			Period: model.PeriodFirstHalf, Year: 2024, Answers: []int{2, 2}},
	}
	results, _, err := EvaluateAll(subs, 2025)
	if err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}
	return results
}

func ids(results []model.EvaluationResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.SubmissionID
	}
	return out
}

func TestFilterResults(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "empty filter is identity", filter: Filter{}, want: []string{"s1", "s2", "s3", "s4"}},
		{name: "year match", filter: Filter{Year: "2025"}, want: []string{"s2", "s3"}},
		{name: "month inside first half bucket", filter: Filter{Month: "Maret"}, want: []string{"s2", "s3", "s4"}},
		{name: "short month form", filter: Filter{Month: "agu"}, want: []string{"s1"}},
		{name: "legacy month exact match", filter: Filter{Month: "Maret", Year: "2025"}, want: []string{"s2", "s3"}},
		{name: "name search is case-insensitive substring", filter: Filter{Name: "pak"}, want: []string{"s1", "s3"}},
		{name: "absent name never matches a search", filter: Filter{Name: "a", Year: "2024"}, want: []string{"s1"}},
		{name: "filters AND together", filter: Filter{Year: "2025", Name: "sari"}, want: []string{"s2"}},
		{name: "no match yields empty list", filter: Filter{Year: "1999"}, want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FilterResults(sampleResults(t), tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(ids(got), tc.want) {
				t.Fatalf("filtered ids = %v, want %v", ids(got), tc.want)
			}
		})
	}
}

func TestFilterResultsIdempotent(t *testing.T) {
	results := sampleResults(t)

	direct, err := FilterResults(results, Filter{Year: "2025"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	identity, err := FilterResults(results, Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	composed, err := FilterResults(identity, Filter{Year: "2025"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids(direct), ids(composed)) {
		t.Fatalf("composition differs: %v vs %v", ids(direct), ids(composed))
	}

	again, err := FilterResults(direct, Filter{Year: "2025"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids(direct), ids(again)) {
		t.Fatalf("re-filtering changed output: %v vs %v", ids(direct), ids(again))
	}
}

func TestFilterResultsUsageErrors(t *testing.T) {
	t.Run("nil list", func(t *testing.T) {
		_, err := FilterResults(nil, Filter{})
		if !errors.Is(err, ErrNilResults) {
			t.Fatalf("err = %v, want ErrNilResults", err)
		}
	})
	t.Run("unknown month name", func(t *testing.T) {
		if _, err := FilterResults([]model.EvaluationResult{}, Filter{Month: "Smarch"}); err == nil {
			t.Fatal("expected error for unknown month")
		}
	})
	t.Run("non-numeric year", func(t *testing.T) {
		if _, err := FilterResults([]model.EvaluationResult{}, Filter{Year: "dua ribu"}); err == nil {
			t.Fatal("expected error for non-numeric year")
		}
	})
}

func TestSortChronological(t *testing.T) {
	results := sampleResults(t)
	SortChronological(results)
	// 2024 first-half, 2024 second-half, 2025 first-half, 2025 March.
	// The legacy March record carries ordinal 3, after the first-half
	// bucket's ordinal 1 within the same year.
	want := []string{"s4", "s1", "s2", "s3"}
	if !reflect.DeepEqual(ids(results), want) {
		t.Fatalf("chronological order = %v, want %v", ids(results), want)
	}
}

func TestLatest(t *testing.T) {
	results := sampleResults(t)
	latest, ok := Latest(results)
	if !ok {
		t.Fatal("expected a latest result")
	}
	if latest.SubmissionID != "s3" {
		t.Fatalf("latest = %s, want s3", latest.SubmissionID)
	}

	if _, ok := Latest(nil); ok {
		t.Fatal("empty list should have no latest result")
	}
}
