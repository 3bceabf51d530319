package scoring

import (
	"errors"
	"math"

	"ternakku/internal/model"
)

// ErrNilSubmissions marks API misuse: a nil submission list where the
// caller should have passed an (possibly empty) slice. Bad record
// content never produces this; individual records degrade instead.
var ErrNilSubmissions = errors.New("scoring: nil submissions list")

// Anomaly records one answer entry that failed integer parsing and was
// silently scored 0. Collected alongside evaluation so operators can
// audit data quality without the score output changing.
type Anomaly struct {
	SubmissionID string `json:"submissionId"`
	Respondent   string `json:"respondent"`
	AnswerIndex  int    `json:"answerIndex"`
	RawValue     string `json:"rawValue"`
}

// Evaluate computes the percentage score and period labels for one
// submission. defaultYear replaces an absent year; callers wanting the
// usual behavior pass time.Now().Year(), callers wanting reproducible
// output pin it. Evaluate never fails: malformed input degrades to a
// zero score and the unknown-period label.
func Evaluate(sub model.Submission, defaultYear int) model.EvaluationResult {
	return evaluate(sub, defaultYear, nil)
}

func evaluate(sub model.Submission, defaultYear int, rec func(index int, value string)) model.EvaluationResult {
	scores := NormalizeCollect(sub.Answers, rec)

	percent := 0
	if len(scores) > 0 {
		sum := 0
		for _, s := range scores {
			sum += s
		}
		percent = int(math.Round(float64(sum) / (float64(len(scores)) * likertMax) * 100))
	}

	year := sub.Year
	if year == 0 {
		year = defaultYear
	}
	period := model.ParsePeriod(sub.Period)

	// The generic no-name fallback is presentation concern; keeping the
	// raw name here lets name search treat absent names as never
	// matching.
	return model.EvaluationResult{
		SubmissionID:   sub.ID,
		RespondentName: sub.RespondentName,
		GroupID:        sub.GroupID,
		GroupName:      sub.GroupName,
		Period:         period,
		Year:           year,
		PeriodLabel:    period.Label(year),
		ShortLabel:     period.ShortLabel(year),
		ScorePercent:   percent,
	}
}

// EvaluateAll evaluates every submission and side-collects parse
// anomalies. A nil list is a usage error; an empty one evaluates to an
// empty result set.
func EvaluateAll(subs []model.Submission, defaultYear int) ([]model.EvaluationResult, []Anomaly, error) {
	if subs == nil {
		return nil, nil, ErrNilSubmissions
	}

	results := make([]model.EvaluationResult, 0, len(subs))
	var anomalies []Anomaly
	for _, sub := range subs {
		id, name := sub.ID, sub.DisplayName()
		results = append(results, evaluate(sub, defaultYear, func(index int, value string) {
			anomalies = append(anomalies, Anomaly{
				SubmissionID: id,
				Respondent:   name,
				AnswerIndex:  index,
				RawValue:     value,
			})
		}))
	}
	return results, anomalies, nil
}
