package model

// MaturityTier is the discrete classification of a numeric score
type MaturityTier string

const (
	TierBeginner     MaturityTier = "beginner"
	TierIntermediate MaturityTier = "intermediate"
	TierAdvanced     MaturityTier = "advanced"
)

// Warning codes for inconsistent but recoverable response input
const (
	WarnIneligibleAnswer   = "ineligible_answer"
	WarnEligibleUnanswered = "eligible_unanswered"
)

// Warning flags a response inconsistency. Warnings travel with results and
// are never raised as errors.
type Warning struct {
	Code       string `json:"code"`
	QuestionID string `json:"questionId"`
	Message    string `json:"message"`
}

// CategoryScore is the aggregated result for one category. A category with
// no contributing answers is marked InsufficientData; its Score and Tier are
// meaningless in that case and zero must not be read as "low maturity".
type CategoryScore struct {
	Category         string       `json:"category"`
	Score            float64      `json:"score"`
	InsufficientData bool         `json:"insufficientData"`
	Contributing     int          `json:"contributing"`
	UnknownCount     int          `json:"unknownCount"`
	Tier             MaturityTier `json:"tier,omitempty"`
}

// ScoreReport is the full scoring output for one snapshot. Overall is nil
// when no category has a defined score.
type ScoreReport struct {
	Overall     *float64                 `json:"overall"`
	OverallTier MaturityTier             `json:"overallTier,omitempty"`
	ByCategory  map[string]CategoryScore `json:"byCategory"`
	Warnings    []Warning                `json:"warnings,omitempty"`
}
