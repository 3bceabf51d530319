// Package scoring converts raw questionnaire submissions into
// normalized Likert scores, percentage evaluations and the grouped
// reports the dashboard and export views consume. Everything here is a
// pure function over in-memory data; the repositories fetch, this
// package computes.
package scoring

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"ternakku/internal/model"
)

// likertMax is the top of the 1-5 rating scale every question uses.
const likertMax = 5

// Normalize converts a submission's raw answer field into an ordered
// list of integer scores. Two stored shapes are supported: a plain
// array of numbers (copied as-is, no range check) and an array of
// {questionId, answer} objects whose answer text is integer-parsed.
// Parse failures score 0, unrecognized shapes normalize to an empty
// list. Normalize never panics and always returns a list.
func Normalize(raw interface{}) []int {
	return NormalizeCollect(raw, nil)
}

// NormalizeCollect is Normalize with a diagnostics hook: rec is called
// for every entry that failed integer parsing (and so scored 0), with
// the entry index and its raw text. Scoring output is identical to
// Normalize; the hook only exists so operators can audit data quality.
func NormalizeCollect(raw interface{}, rec func(index int, value string)) []int {
	items, ok := toSlice(raw)
	if !ok {
		return []int{}
	}

	scores := make([]int, 0, len(items))
	for i, item := range items {
		if n, ok := toInt(item); ok {
			scores = append(scores, n)
			continue
		}
		text, found := answerText(item)
		if !found {
			// Not a number and not an answer object. Same silent
			// zero the object form gets for non-numeric text.
			if rec != nil {
				rec(i, stringify(item))
			}
			scores = append(scores, 0)
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			if rec != nil {
				rec(i, text)
			}
			scores = append(scores, 0)
			continue
		}
		scores = append(scores, n)
	}
	return scores
}

// toSlice unwraps the array encodings the JSON and BSON decoders
// produce for the answers field.
func toSlice(raw interface{}) ([]interface{}, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, false
	case []interface{}:
		return v, true
	case bson.A:
		return v, true
	case []int:
		out := make([]interface{}, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	case []model.AnswerEntry:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// answerText extracts the answer string from the object-shaped entry in
// whichever decoding it arrives: a typed AnswerEntry, a JSON map or a
// BSON document.
func answerText(v interface{}) (string, bool) {
	switch e := v.(type) {
	case model.AnswerEntry:
		return e.Answer, true
	case *model.AnswerEntry:
		return e.Answer, true
	case map[string]interface{}:
		return textField(e)
	case bson.M:
		return textField(e)
	case bson.D:
		return textField(e.Map())
	default:
		return "", false
	}
}

func textField(m map[string]interface{}) (string, bool) {
	raw, ok := m["answer"]
	if !ok {
		return "", false
	}
	switch s := raw.(type) {
	case string:
		return s, true
	default:
		// A numeric answer inside the object form still counts.
		if n, ok := toInt(raw); ok {
			return strconv.Itoa(n), true
		}
		return "", false
	}
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
