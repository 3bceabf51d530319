package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"ternakku/internal/cache"
	"ternakku/internal/model"
	"ternakku/internal/repository"
	"ternakku/internal/scoring"
)

// In-memory fakes. They keep the service tests hermetic; the mongo and
// redis implementations are thin enough to trust to integration runs.

type fakeSubmissionRepo struct {
	subs []model.Submission
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, sub *model.Submission) (string, error) {
	if sub.ID == "" {
		sub.ID = "sub-generated"
	}
	r.subs = append(r.subs, *sub)
	return sub.ID, nil
}

func (r *fakeSubmissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	for i := range r.subs {
		if r.subs[i].ID == id {
			return &r.subs[i], nil
		}
	}
	return nil, nil
}

func (r *fakeSubmissionRepo) List(ctx context.Context, filter repository.SubmissionFilter) ([]model.Submission, error) {
	out := []model.Submission{}
	for _, sub := range r.subs {
		if filter.RespondentID != "" && sub.RespondentID != filter.RespondentID {
			continue
		}
		if filter.GroupID != "" && sub.GroupID != filter.GroupID {
			continue
		}
		if filter.Year != 0 && sub.Year != filter.Year {
			continue
		}
		out = append(out, sub)
	}
	return out, nil
}

func (r *fakeSubmissionRepo) ExistsForPeriod(ctx context.Context, respondentID string, period interface{}, year int) (bool, error) {
	for _, sub := range r.subs {
		if sub.RespondentID == respondentID && sub.Period == period && sub.Year == year {
			return true, nil
		}
	}
	return false, nil
}

type fakeGroupRepo struct {
	groups map[string]*model.Group
}

func (r *fakeGroupRepo) Create(ctx context.Context, group *model.Group) (string, error) {
	return group.ID, nil
}

func (r *fakeGroupRepo) GetByID(ctx context.Context, id string) (*model.Group, error) {
	return r.groups[id], nil
}

func (r *fakeGroupRepo) List(ctx context.Context) ([]model.Group, error) { return nil, nil }
func (r *fakeGroupRepo) Update(ctx context.Context, group *model.Group) error {
	return nil
}
func (r *fakeGroupRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeLeaderboard struct {
	scores map[string]map[string]int
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{scores: map[string]map[string]int{}}
}

func (c *fakeLeaderboard) UpdateScore(ctx context.Context, periodKey, groupID string, average int) error {
	if c.scores[periodKey] == nil {
		c.scores[periodKey] = map[string]int{}
	}
	c.scores[periodKey][groupID] = average
	return nil
}

func (c *fakeLeaderboard) ranked(periodKey string) []cache.LeaderboardEntry {
	entries := []cache.LeaderboardEntry{}
	for id, avg := range c.scores[periodKey] {
		entries = append(entries, cache.LeaderboardEntry{GroupID: id, Average: avg})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Average != entries[j].Average {
			return entries[i].Average > entries[j].Average
		}
		return entries[i].GroupID < entries[j].GroupID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func (c *fakeLeaderboard) GetTop(ctx context.Context, periodKey string, limit int) ([]cache.LeaderboardEntry, error) {
	entries := c.ranked(periodKey)
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (c *fakeLeaderboard) GetRank(ctx context.Context, periodKey, groupID string) (int64, error) {
	for _, e := range c.ranked(periodKey) {
		if e.GroupID == groupID {
			return int64(e.Rank), nil
		}
	}
	return -1, nil
}

func (c *fakeLeaderboard) Clear(ctx context.Context, periodKey string) error {
	delete(c.scores, periodKey)
	return nil
}

type fakeReportCache struct {
	store map[string][]model.GroupAggregate
	hits  int
	fail  bool
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{store: map[string][]model.GroupAggregate{}}
}

func (c *fakeReportCache) GetAggregates(ctx context.Context, periodKey string) ([]model.GroupAggregate, error) {
	if c.fail {
		return nil, errors.New("cache down")
	}
	if groups, ok := c.store[periodKey]; ok {
		c.hits++
		return groups, nil
	}
	return nil, nil
}

func (c *fakeReportCache) SetAggregates(ctx context.Context, periodKey string, groups []model.GroupAggregate) error {
	if c.fail {
		return errors.New("cache down")
	}
	c.store[periodKey] = groups
	return nil
}

func (c *fakeReportCache) Invalidate(ctx context.Context, periodKey string) error {
	delete(c.store, periodKey)
	return nil
}

type fakeBroadcaster struct {
	msgTypes []string
	payloads []interface{}
}

func (b *fakeBroadcaster) BroadcastDashboard(msgType string, payload interface{}) {
	b.msgTypes = append(b.msgTypes, msgType)
	b.payloads = append(b.payloads, payload)
}

func newTestReportService(subs []model.Submission, groups map[string]*model.Group) (*ReportService, *fakeLeaderboard, *fakeReportCache) {
	lb := newFakeLeaderboard()
	rc := newFakeReportCache()
	svc := NewReportService(
		&fakeSubmissionRepo{subs: subs},
		&fakeGroupRepo{groups: groups},
		lb,
		rc,
	)
	return svc, lb, rc
}

func TestGroupLeaderboard(t *testing.T) {
	subs := []model.Submission{
		{ID: "s1", RespondentName: "Pak Budi", GroupID: "g1", GroupName: "Maju Bersama",
			Period: "first-half", Year: 2025, Answers: []interface{}{5.0, 4.0, 5.0, 4.0, 5.0}},
		{ID: "s2", RespondentName: "Bu Sari", GroupID: "g1", GroupName: "Maju Bersama",
			Period: "first-half", Year: 2025, Answers: []interface{}{3.0, 3.0, 3.0, 3.0, 3.0}},
		{ID: "s3", RespondentName: "Pak Joko", GroupID: "g2",
			Period: "first-half", Year: 2025, Answers: []interface{}{5.0, 5.0, 5.0, 5.0, 5.0}},
		// Other period, must not leak in.
		{ID: "s4", RespondentName: "Pak Budi", GroupID: "g1",
			Period: "second-half", Year: 2025, Answers: []interface{}{1.0, 1.0, 1.0, 1.0, 1.0}},
	}
	groups := map[string]*model.Group{
		"g2": {ID: "g2", Name: "Ternak Sejahtera"},
	}

	svc, lb, rc := newTestReportService(subs, groups)
	ctx := context.Background()

	got, err := svc.GroupLeaderboard(ctx, "first-half", 2025)
	if err != nil {
		t.Fatalf("GroupLeaderboard: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}

	// g1: (92 + 60) / 2 = 76
	if got[0].GroupID != "g1" || got[0].Average != 76 {
		t.Errorf("g1: got id=%s average=%d, want g1/76", got[0].GroupID, got[0].Average)
	}
	if got[0].Members[0].RespondentName != "Pak Budi" {
		t.Errorf("g1 top member = %q, want Pak Budi", got[0].Members[0].RespondentName)
	}
	// g2's name comes from the roster since the submission lacks one.
	if got[1].GroupName != "Ternak Sejahtera" {
		t.Errorf("g2 name = %q, want roster name", got[1].GroupName)
	}

	// The ZSET mirrors the averages.
	if lb.scores["2025-1"]["g2"] != 100 {
		t.Errorf("leaderboard score for g2 = %d, want 100", lb.scores["2025-1"]["g2"])
	}

	// Second call is served from the cache.
	if _, err := svc.GroupLeaderboard(ctx, "first-half", 2025); err != nil {
		t.Fatalf("second GroupLeaderboard: %v", err)
	}
	if rc.hits != 1 {
		t.Errorf("cache hits = %d, want 1", rc.hits)
	}
}

func TestGroupLeaderboardSurvivesCacheFailure(t *testing.T) {
	subs := []model.Submission{
		{ID: "s1", GroupID: "g1", Period: "first-half", Year: 2025, Answers: []interface{}{5.0}},
	}
	svc, _, rc := newTestReportService(subs, nil)
	rc.fail = true

	got, err := svc.GroupLeaderboard(context.Background(), "first-half", 2025)
	if err != nil {
		t.Fatalf("GroupLeaderboard with broken cache: %v", err)
	}
	if len(got) != 1 || got[0].Average != 100 {
		t.Errorf("got %+v, want one group at 100", got)
	}
}

func TestTopGroups(t *testing.T) {
	subs := []model.Submission{
		{ID: "s1", GroupID: "g1", Period: "first-half", Year: 2025, Answers: []interface{}{4.0, 4.0}},
		{ID: "s2", GroupID: "g2", Period: "first-half", Year: 2025, Answers: []interface{}{5.0, 5.0}},
	}
	svc, _, _ := newTestReportService(subs, nil)
	ctx := context.Background()

	// The ZSET starts cold; TopGroups rebuilds it from the submissions.
	entries, err := svc.TopGroups(ctx, "first-half", 2025, 10)
	if err != nil {
		t.Fatalf("TopGroups: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].GroupID != "g2" || entries[0].Average != 100 || entries[0].Rank != 1 {
		t.Errorf("top entry = %+v, want g2/100/1", entries[0])
	}
	if entries[1].GroupID != "g1" || entries[1].Rank != 2 {
		t.Errorf("second entry = %+v, want g1 at rank 2", entries[1])
	}

	t.Run("limit", func(t *testing.T) {
		entries, err := svc.TopGroups(ctx, "first-half", 2025, 1)
		if err != nil {
			t.Fatalf("TopGroups: %v", err)
		}
		if len(entries) != 1 || entries[0].GroupID != "g2" {
			t.Errorf("entries = %+v, want only g2", entries)
		}
	})
}

func TestRefreshDropsVanishedGroups(t *testing.T) {
	subs := []model.Submission{
		{ID: "s1", GroupID: "g1", Period: "first-half", Year: 2025, Answers: []interface{}{4.0}},
	}
	svc, lb, _ := newTestReportService(subs, nil)

	// A group with no remaining submissions must not survive a rebuild.
	lb.scores["2025-1"] = map[string]int{"gone": 55}

	if err := svc.Refresh(context.Background(), "first-half", 2025); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if _, ok := lb.scores["2025-1"]["gone"]; ok {
		t.Error("stale group still ranked after refresh")
	}
	if lb.scores["2025-1"]["g1"] != 80 {
		t.Errorf("g1 score = %d, want 80", lb.scores["2025-1"]["g1"])
	}
}

func TestRefreshBroadcasts(t *testing.T) {
	subs := []model.Submission{
		{ID: "s1", GroupID: "g1", Period: "first-half", Year: 2025, Answers: []interface{}{4.0, 4.0}},
	}
	svc, _, rc := newTestReportService(subs, nil)
	b := &fakeBroadcaster{}
	svc.SetBroadcaster(b)

	// Pre-warm with stale content the refresh must replace.
	rc.store["2025-1"] = []model.GroupAggregate{}

	if err := svc.Refresh(context.Background(), "first-half", 2025); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(b.msgTypes) != 1 || b.msgTypes[0] != MsgLeaderboardUpdate {
		t.Fatalf("broadcasts = %v, want one %s", b.msgTypes, MsgLeaderboardUpdate)
	}
	if len(rc.store["2025-1"]) != 1 {
		t.Errorf("cache holds %d groups after refresh, want 1", len(rc.store["2025-1"]))
	}
}

func TestDashboard(t *testing.T) {
	subs := []model.Submission{
		{ID: "s1", RespondentID: "u1", Period: "second-half", Year: 2024, Answers: []interface{}{3.0, 3.0}},
		{ID: "s2", RespondentID: "u1", Period: "first-half", Year: 2025, Answers: []interface{}{5.0, 5.0}},
		{ID: "s3", RespondentID: "other", Period: "first-half", Year: 2025, Answers: []interface{}{1.0}},
	}
	svc, _, _ := newTestReportService(subs, nil)

	dash, err := svc.Dashboard(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if !dash.HasEvaluation {
		t.Fatal("HasEvaluation = false, want true")
	}
	if dash.LatestScore != 100 || dash.LatestPeriod != "Periode Januari-Juni 2025" {
		t.Errorf("latest = %d %q, want 100 / Periode Januari-Juni 2025", dash.LatestScore, dash.LatestPeriod)
	}
	if len(dash.Trend) != 2 {
		t.Fatalf("trend length = %d, want 2", len(dash.Trend))
	}
	// Oldest first.
	if dash.Trend[0].ScorePercent != 60 || dash.Trend[1].ScorePercent != 100 {
		t.Errorf("trend = %+v, want 60 then 100", dash.Trend)
	}
}

func TestDashboardGroupRank(t *testing.T) {
	subs := []model.Submission{
		{ID: "s1", RespondentID: "u1", GroupID: "g1", Period: "first-half", Year: 2025, Answers: []interface{}{3.0}},
	}
	svc, lb, _ := newTestReportService(subs, nil)
	lb.scores["2025-1"] = map[string]int{"g1": 60, "g2": 100}

	dash, err := svc.Dashboard(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dash.GroupRank != 2 {
		t.Errorf("GroupRank = %d, want 2", dash.GroupRank)
	}
}

func TestDashboardNoSubmissions(t *testing.T) {
	svc, _, _ := newTestReportService(nil, nil)

	dash, err := svc.Dashboard(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dash.HasEvaluation {
		t.Error("HasEvaluation = true for empty history")
	}
	if len(dash.Trend) != 0 {
		t.Errorf("trend = %+v, want empty", dash.Trend)
	}
}

func TestTabularReport(t *testing.T) {
	subs := []model.Submission{
		{ID: "s1", RespondentName: "Pak Budi", Period: "second-half", Year: 2024, Answers: []interface{}{4.0, 4.0}},
		{ID: "s2", Period: "first-half", Year: 2025, Answers: []interface{}{5.0}},
		{ID: "s3", RespondentName: "Bu Sari", Period: 3, Year: 2025, Answers: []interface{}{3.0, "x"}},
	}
	svc, _, _ := newTestReportService(subs, nil)

	rows, anomalies, err := svc.TabularReport(context.Background(), scoring.Filter{})
	if err != nil {
		t.Fatalf("TabularReport: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	// Chronological order with 1-based numbering and the name fallback.
	if rows[0].No != 1 || rows[0].Name != "Pak Budi" || rows[0].Score != "80%" {
		t.Errorf("row 1 = %+v", rows[0])
	}
	if rows[1].Name != "Tanpa Nama" || rows[1].Score != "100%" {
		t.Errorf("row 2 = %+v", rows[1])
	}
	if rows[2].PeriodLabel != "Periode Maret 2025" {
		t.Errorf("row 3 period = %q", rows[2].PeriodLabel)
	}
	// The "x" answer scores zero and is surfaced as an anomaly.
	if len(anomalies) != 1 || anomalies[0].SubmissionID != "s3" {
		t.Errorf("anomalies = %+v, want one for s3", anomalies)
	}

	t.Run("year filter", func(t *testing.T) {
		rows, _, err := svc.TabularReport(context.Background(), scoring.Filter{Year: "2025"})
		if err != nil {
			t.Fatalf("TabularReport: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("rows = %d, want 2", len(rows))
		}
		if rows[0].No != 1 {
			t.Errorf("numbering restarts per report, got first No = %d", rows[0].No)
		}
	})

	t.Run("invalid month", func(t *testing.T) {
		if _, _, err := svc.TabularReport(context.Background(), scoring.Filter{Month: "Smarch"}); err == nil {
			t.Fatal("expected error for unknown month")
		}
	})
}

func TestSubmissionCreateDuplicate(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	groupRepo := &fakeGroupRepo{groups: map[string]*model.Group{
		"g1": {ID: "g1", Name: "Maju Bersama"},
	}}
	reportSvc, _, _ := newTestReportService(nil, nil)
	reportSvc.submissionRepo = repo
	svc := NewSubmissionService(repo, groupRepo, reportSvc)
	ctx := context.Background()

	sub := &model.Submission{
		RespondentID: "u1",
		GroupID:      "g1",
		Period:       "first-half",
		Year:         2025,
		Answers:      []model.AnswerEntry{{QuestionID: "q1", Answer: "4"}},
	}
	if _, err := svc.Create(ctx, sub); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if sub.GroupName != "Maju Bersama" {
		t.Errorf("group name = %q, want embedded roster name", sub.GroupName)
	}

	dup := &model.Submission{
		RespondentID: "u1",
		Period:       "first-half",
		Year:         2025,
		Answers:      []model.AnswerEntry{{QuestionID: "q1", Answer: "5"}},
	}
	if _, err := svc.Create(ctx, dup); !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("second create: got %v, want ErrDuplicateSubmission", err)
	}

	// A different period is fine.
	next := &model.Submission{
		RespondentID: "u1",
		Period:       "second-half",
		Year:         2025,
		Answers:      []model.AnswerEntry{{QuestionID: "q1", Answer: "5"}},
	}
	if _, err := svc.Create(ctx, next); err != nil {
		t.Fatalf("next period create: %v", err)
	}
}
