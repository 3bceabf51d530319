package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"ternakku/internal/cache"
	"ternakku/internal/model"
	"ternakku/internal/repository"
	"ternakku/internal/scoring"
)

// ReportService wires the scoring core to the data store and caches.
// It owns the "default to the current year" convenience so the core
// stays pure; everything it returns is recomputed from submissions,
// never stored.
type ReportService struct {
	submissionRepo repository.SubmissionRepo
	groupRepo      repository.GroupRepo
	leaderboard    cache.LeaderboardCache
	reports        cache.ReportCache
	broadcaster    Broadcaster
}

// NewReportService creates a new report service
func NewReportService(
	submissionRepo repository.SubmissionRepo,
	groupRepo repository.GroupRepo,
	leaderboard cache.LeaderboardCache,
	reports cache.ReportCache,
) *ReportService {
	return &ReportService{
		submissionRepo: submissionRepo,
		groupRepo:      groupRepo,
		leaderboard:    leaderboard,
		reports:        reports,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *ReportService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

func periodCacheKey(period model.PeriodSpec, year int) string {
	return fmt.Sprintf("%d-%d", year, period.Ordinal)
}

// GroupLeaderboard returns the per-group aggregates for one period,
// served from the report cache when warm.
func (s *ReportService) GroupLeaderboard(ctx context.Context, rawPeriod interface{}, year int) ([]model.GroupAggregate, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	period := model.ParsePeriod(rawPeriod)
	key := periodCacheKey(period, year)

	if cached, err := s.reports.GetAggregates(ctx, key); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		// A broken cache should not take the report down.
		log.Printf("report cache read failed: %v", err)
	}

	groups, err := s.computeAggregates(ctx, period, year)
	if err != nil {
		return nil, err
	}

	if err := s.reports.SetAggregates(ctx, key, groups); err != nil {
		log.Printf("report cache write failed: %v", err)
	}
	s.syncLeaderboard(ctx, key, groups)
	return groups, nil
}

// TopGroups serves the ranked leaderboard straight from the redis
// ZSET, rebuilding it from the submissions when cold.
func (s *ReportService) TopGroups(ctx context.Context, rawPeriod interface{}, year, limit int) ([]cache.LeaderboardEntry, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	if limit <= 0 {
		limit = 10
	}
	period := model.ParsePeriod(rawPeriod)
	key := periodCacheKey(period, year)

	entries, err := s.leaderboard.GetTop(ctx, key, limit)
	if err != nil {
		log.Printf("leaderboard read failed: %v", err)
	}
	if len(entries) > 0 {
		return entries, nil
	}

	groups, err := s.computeAggregates(ctx, period, year)
	if err != nil {
		return nil, err
	}
	s.syncLeaderboard(ctx, key, groups)
	return s.leaderboard.GetTop(ctx, key, limit)
}

// syncLeaderboard rebuilds a period's ZSET so it mirrors the current
// aggregates exactly; groups deleted since the last rebuild drop out
// here.
func (s *ReportService) syncLeaderboard(ctx context.Context, key string, groups []model.GroupAggregate) {
	if err := s.leaderboard.Clear(ctx, key); err != nil {
		log.Printf("leaderboard clear failed for %s: %v", key, err)
	}
	for _, g := range groups {
		if err := s.leaderboard.UpdateScore(ctx, key, g.GroupID, g.Average); err != nil {
			log.Printf("leaderboard update failed for group %s: %v", g.GroupID, err)
		}
	}
}

func (s *ReportService) computeAggregates(ctx context.Context, period model.PeriodSpec, year int) ([]model.GroupAggregate, error) {
	subs, err := s.submissionRepo.List(ctx, repository.SubmissionFilter{Year: year})
	if err != nil {
		return nil, err
	}

	inPeriod := make([]model.Submission, 0, len(subs))
	for _, sub := range subs {
		if model.ParsePeriod(sub.Period) == period {
			inPeriod = append(inPeriod, sub)
		}
	}

	groups, err := scoring.AggregateByGroup(inPeriod, year)
	if err != nil {
		return nil, err
	}
	s.resolveGroupNames(ctx, groups)
	return groups, nil
}

// resolveGroupNames fills names missing on the submissions themselves
// from the group roster, and applies the no-name member fallback.
func (s *ReportService) resolveGroupNames(ctx context.Context, groups []model.GroupAggregate) {
	for i := range groups {
		if groups[i].GroupName == "" {
			group, err := s.groupRepo.GetByID(ctx, groups[i].GroupID)
			if err == nil && group != nil {
				groups[i].GroupName = group.Name
			}
		}
		for j := range groups[i].Members {
			if groups[i].Members[j].RespondentName == "" {
				groups[i].Members[j].RespondentName = "Tanpa Nama"
			}
		}
	}
}

// Refresh recomputes the aggregates for a period after a new submission
// and pushes the update to connected dashboards.
func (s *ReportService) Refresh(ctx context.Context, rawPeriod interface{}, year int) error {
	period := model.ParsePeriod(rawPeriod)
	key := periodCacheKey(period, year)

	if err := s.reports.Invalidate(ctx, key); err != nil {
		log.Printf("report cache invalidate failed: %v", err)
	}

	groups, err := s.computeAggregates(ctx, period, year)
	if err != nil {
		return err
	}
	if err := s.reports.SetAggregates(ctx, key, groups); err != nil {
		log.Printf("report cache write failed: %v", err)
	}
	s.syncLeaderboard(ctx, key, groups)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastDashboard(MsgLeaderboardUpdate, map[string]interface{}{
			"periodKey": key,
			"groups":    groups,
		})
	}
	return nil
}

// Dashboard builds the farmer dashboard card and trend series for one
// respondent: the latest score plus the full chronological history.
func (s *ReportService) Dashboard(ctx context.Context, respondentID string) (*model.Dashboard, error) {
	subs, err := s.submissionRepo.List(ctx, repository.SubmissionFilter{RespondentID: respondentID})
	if err != nil {
		return nil, err
	}

	results, _, err := scoring.EvaluateAll(subs, time.Now().Year())
	if err != nil {
		return nil, err
	}

	dash := &model.Dashboard{Trend: []model.TrendPoint{}}
	latest, ok := scoring.Latest(results)
	if ok {
		dash.HasEvaluation = true
		dash.LatestScore = latest.ScorePercent
		dash.LatestPeriod = latest.PeriodLabel
		if latest.GroupID != "" {
			key := periodCacheKey(latest.Period, latest.Year)
			rank, err := s.leaderboard.GetRank(ctx, key, latest.GroupID)
			if err != nil {
				log.Printf("leaderboard rank read failed: %v", err)
			} else if rank > 0 {
				dash.GroupRank = rank
			}
		}
	}

	scoring.SortChronological(results)
	for _, res := range results {
		dash.Trend = append(dash.Trend, model.TrendPoint{
			Label:        res.ShortLabel,
			ScorePercent: res.ScorePercent,
		})
	}
	return dash, nil
}

// TabularReport builds the numbered export rows behind the report table
// and its PDF download, applying the month/year/name filters. The
// returned anomalies list is the data-quality side channel; scores are
// unaffected by it.
func (s *ReportService) TabularReport(ctx context.Context, filter scoring.Filter) ([]model.ReportRow, []scoring.Anomaly, error) {
	subs, err := s.submissionRepo.List(ctx, repository.SubmissionFilter{})
	if err != nil {
		return nil, nil, err
	}

	results, anomalies, err := scoring.EvaluateAll(subs, time.Now().Year())
	if err != nil {
		return nil, nil, err
	}
	results, err = scoring.FilterResults(results, filter)
	if err != nil {
		return nil, nil, err
	}
	scoring.SortChronological(results)

	rows := make([]model.ReportRow, 0, len(results))
	for i, res := range results {
		name := res.RespondentName
		if name == "" {
			name = "Tanpa Nama"
		}
		rows = append(rows, model.ReportRow{
			No:          i + 1,
			Name:        name,
			PeriodLabel: res.PeriodLabel,
			Year:        res.Year,
			Score:       fmt.Sprintf("%d%%", res.ScorePercent),
		})
	}
	return rows, anomalies, nil
}
