package scoring

import (
	"math"
	"sort"

	"ternakku/internal/model"
)

// AggregateByGroup evaluates every submission and buckets the results
// per farmer group for the leaderboard view. Submissions without a
// group are left out here (they still show up in the chronological
// report). Members sort by score descending with name ascending as the
// tie-break; groups sort by ID so output is stable across calls.
func AggregateByGroup(subs []model.Submission, defaultYear int) ([]model.GroupAggregate, error) {
	results, _, err := EvaluateAll(subs, defaultYear)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[string]*model.GroupAggregate)
	order := make([]string, 0)
	for _, res := range results {
		if res.GroupID == "" {
			continue
		}
		agg, ok := byGroup[res.GroupID]
		if !ok {
			agg = &model.GroupAggregate{GroupID: res.GroupID, GroupName: res.GroupName}
			byGroup[res.GroupID] = agg
			order = append(order, res.GroupID)
		}
		if agg.GroupName == "" {
			agg.GroupName = res.GroupName
		}
		agg.Members = append(agg.Members, res)
	}

	sort.Strings(order)
	out := make([]model.GroupAggregate, 0, len(order))
	for _, id := range order {
		agg := byGroup[id]
		sort.SliceStable(agg.Members, func(i, j int) bool {
			a, b := agg.Members[i], agg.Members[j]
			if a.ScorePercent != b.ScorePercent {
				return a.ScorePercent > b.ScorePercent
			}
			return a.RespondentName < b.RespondentName
		})
		agg.Average = averagePercent(agg.Members)
		out = append(out, *agg)
	}
	return out, nil
}

func averagePercent(members []model.EvaluationResult) int {
	if len(members) == 0 {
		return 0
	}
	sum := 0
	for _, m := range members {
		sum += m.ScorePercent
	}
	return int(math.Round(float64(sum) / float64(len(members))))
}
