package model

// EvaluationResult is the computed score for one submission. Derived on
// demand, never persisted.
type EvaluationResult struct {
	SubmissionID   string     `json:"submissionId"`
	RespondentName string     `json:"respondentName"`
	GroupID        string     `json:"groupId,omitempty"`
	GroupName      string     `json:"groupName,omitempty"`
	Period         PeriodSpec `json:"-"`
	Year           int        `json:"year"`
	PeriodLabel    string     `json:"periodLabel"`
	ShortLabel     string     `json:"shortLabel"`
	ScorePercent   int        `json:"scorePercent"`
}

// GroupAggregate is one farmer group's evaluated roster with its
// average score, used for the leaderboard view. Members are sorted by
// score descending, name ascending on ties.
type GroupAggregate struct {
	GroupID   string             `json:"groupId"`
	GroupName string             `json:"groupName"`
	Members   []EvaluationResult `json:"members"`
	Average   int                `json:"average"`
}

// ReportRow is one line of the tabular/PDF export.
type ReportRow struct {
	No          int    `json:"no"`
	Name        string `json:"name"`
	PeriodLabel string `json:"periodLabel"`
	Year        int    `json:"year"`
	Score       string `json:"score"`
}

// TrendPoint is one chart point of the chronological series, oldest
// first so the line reads left to right.
type TrendPoint struct {
	Label        string `json:"label"`
	ScorePercent int    `json:"scorePercent"`
}

// Dashboard is the data behind the farmer-facing dashboard cards.
// GroupRank is the 1-based leaderboard position of the farmer's group
// for the latest evaluated period; zero when unranked.
type Dashboard struct {
	HasEvaluation bool         `json:"hasEvaluation"`
	LatestScore   int          `json:"latestScore"`
	LatestPeriod  string       `json:"latestPeriod"`
	GroupRank     int64        `json:"groupRank,omitempty"`
	Trend         []TrendPoint `json:"trend"`
}
