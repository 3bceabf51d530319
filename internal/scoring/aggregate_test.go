package scoring

import (
	"errors"
	"testing"

	"ternakku/internal/model"
)

func TestAggregateByGroup(t *testing.T) {
	subs := []model.Submission{
		// Group A: 80 and 60 -> average 70.
		{ID: "s1", RespondentName: "Citra", GroupID: "A", GroupName: "Maju Bersama",
			Period: model.PeriodFirstHalf, Year: 2025, Answers: []int{4, 4, 4, 4, 4}},
		{ID: "s2", RespondentName: "Agus", GroupID: "A", GroupName: "Maju Bersama",
			Period: model.PeriodFirstHalf, Year: 2025, Answers: []int{3, 3, 3, 3, 3}},
		// Group B: single member.
		{ID: "s3", RespondentName: "Dewi", GroupID: "B", GroupName: "Sumber Rejeki",
			Period: model.PeriodFirstHalf, Year: 2025, Answers: []int{5, 5, 5, 5, 5}},
		// No group: excluded from this view.
		{ID: "s4", RespondentName: "Eko",
			Period: model.PeriodFirstHalf, Year: 2025, Answers: []int{5, 5}},
	}

	groups, err := AggregateByGroup(subs, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	// Groups come back sorted by ID.
	if groups[0].GroupID != "A" || groups[1].GroupID != "B" {
		t.Fatalf("group order = %s, %s", groups[0].GroupID, groups[1].GroupID)
	}

	a := groups[0]
	if a.Average != 70 {
		t.Fatalf("group A average = %d, want 70", a.Average)
	}
	if len(a.Members) != 2 {
		t.Fatalf("group A has %d members, want 2", len(a.Members))
	}
	if a.Members[0].ScorePercent != 80 || a.Members[1].ScorePercent != 60 {
		t.Fatalf("member order = %d, %d, want 80, 60", a.Members[0].ScorePercent, a.Members[1].ScorePercent)
	}
	if a.GroupName != "Maju Bersama" {
		t.Fatalf("group A name = %q", a.GroupName)
	}

	if got := groups[1].Average; got != 100 {
		t.Fatalf("group B average = %d, want 100", got)
	}
}

func TestAggregateByGroupTieBreak(t *testing.T) {
	subs := []model.Submission{
		{ID: "s1", RespondentName: "Wati", GroupID: "A", Year: 2025, Answers: []int{4}},
		{ID: "s2", RespondentName: "Budi", GroupID: "A", Year: 2025, Answers: []int{4}},
		{ID: "s3", RespondentName: "Ani", GroupID: "A", Year: 2025, Answers: []int{4}},
	}

	groups, err := AggregateByGroup(subs, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := []string{
		groups[0].Members[0].RespondentName,
		groups[0].Members[1].RespondentName,
		groups[0].Members[2].RespondentName,
	}
	if names[0] != "Ani" || names[1] != "Budi" || names[2] != "Wati" {
		t.Fatalf("tied members not in name order: %v", names)
	}
}

func TestAggregateByGroupNilInput(t *testing.T) {
	_, err := AggregateByGroup(nil, 2025)
	if !errors.Is(err, ErrNilSubmissions) {
		t.Fatalf("err = %v, want ErrNilSubmissions", err)
	}
}

func TestAggregateByGroupEmptyInput(t *testing.T) {
	groups, err := AggregateByGroup([]model.Submission{}, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("got %d groups, want 0", len(groups))
	}
}
