package model

import "time"

// AnswerState distinguishes the three states a question can be in for a
// snapshot. "Answered unknown" is deliberately separate from "unanswered":
// an unknown answer is present but carries no numeric information.
type AnswerState int

const (
	Unanswered AnswerState = iota
	AnsweredUnknown
	Answered
)

// Answer is the tagged view of a single response entry
type Answer struct {
	State AnswerState
	Value int // meaningful only when State == Answered
}

// ResponseSnapshot is one assessment attempt's answers, immutable once
// submitted. A new submission creates a new snapshot.
type ResponseSnapshot struct {
	ID           string         `json:"id" bson:"_id"`
	AssessmentID string         `json:"assessmentId" bson:"assessmentId"`
	Answers      map[string]int `json:"answers" bson:"answers"`
	SubmittedAt  time.Time      `json:"submittedAt" bson:"submittedAt"`
}

// Answer returns the tagged state of a question within this snapshot
func (s *ResponseSnapshot) Answer(questionID string) Answer {
	if s == nil {
		return Answer{State: Unanswered}
	}
	v, ok := s.Answers[questionID]
	if !ok {
		return Answer{State: Unanswered}
	}
	if v == UnknownValue {
		return Answer{State: AnsweredUnknown}
	}
	return Answer{State: Answered, Value: v}
}
