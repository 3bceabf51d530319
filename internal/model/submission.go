package model

import "time"

// Submission is one respondent's questionnaire answers for one period.
// Created once per respondent per period by the questionnaire-fill flow
// and treated as immutable afterwards.
//
// Period and Answers stay loosely typed on purpose: the collection
// holds two generations of records. Period is either a half-year bucket
// string ("first-half"/"second-half") or a raw month number, Answers is
// either an array of numeric Likert scores or an array of
// {questionId, answer} objects. scoring.Normalize and ParsePeriod own
// the decoding.
type Submission struct {
	ID             string      `json:"id" bson:"_id,omitempty"`
	RespondentID   string      `json:"respondentId,omitempty" bson:"respondentId,omitempty"`
	RespondentName string      `json:"respondentName,omitempty" bson:"respondentName,omitempty"`
	GroupID        string      `json:"groupId,omitempty" bson:"groupId,omitempty"`
	GroupName      string      `json:"groupName,omitempty" bson:"groupName,omitempty"`
	Period         interface{} `json:"period,omitempty" bson:"period,omitempty"`
	Year           int         `json:"year,omitempty" bson:"year,omitempty"`
	Answers        interface{} `json:"answers,omitempty" bson:"answers,omitempty"`
	CreatedAt      time.Time   `json:"createdAt" bson:"createdAt"`
}

// AnswerEntry is the object form of a single answer in newer records.
// The answer text is integer-parsed during normalization; non-numeric
// text scores 0.
type AnswerEntry struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	Answer     string `json:"answer" bson:"answer"`
}

// DisplayName returns the respondent name or the generic fallback used
// everywhere an old record has none.
func (s *Submission) DisplayName() string {
	if s.RespondentName != "" {
		return s.RespondentName
	}
	return "Tanpa Nama"
}
