package model

// UnknownValue is the reserved option value meaning "respondent does not
// know". It never participates in scoring or dependency gating.
const UnknownValue = -1

// MaturityLevel orders questions by how advanced the capability they probe is
type MaturityLevel string

const (
	LevelBeginner     MaturityLevel = "beginner"
	LevelIntermediate MaturityLevel = "intermediate"
	LevelAdvanced     MaturityLevel = "advanced"
)

// Importance weighs a question inside roadmap impact classification
type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

// Relevance grades how much a question matters to a given role. It is
// reporting metadata only and never affects which questions are eligible.
type Relevance string

const (
	RelevanceNone   Relevance = "none"
	RelevanceLow    Relevance = "low"
	RelevanceMedium Relevance = "medium"
	RelevanceHigh   Relevance = "high"
)

// Option is one selectable answer. Value is 0-100 on the common maturity
// scale, or UnknownValue.
type Option struct {
	Value int    `json:"value" bson:"value"`
	Label string `json:"label" bson:"label"`
}

// IsUnknown reports whether this option is the "don't know" sentinel
func (o Option) IsUnknown() bool {
	return o.Value == UnknownValue
}

// Dependency gates a question on a prior answer. The gate is satisfied only
// when the referenced question has been answered with a non-sentinel value
// of at least MinValue.
type Dependency struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	MinValue   int    `json:"minValue" bson:"minValue"`
}

// Question is an immutable catalog entry
type Question struct {
	ID             string               `json:"id" bson:"_id"`
	Category       string               `json:"category" bson:"category"`
	Weight         float64              `json:"weight" bson:"weight"` // defaults to 1 when 0
	MaturityLevel  MaturityLevel        `json:"maturityLevel" bson:"maturityLevel"`
	Importance     Importance           `json:"importance" bson:"importance"`
	AssessmentType string               `json:"assessmentType" bson:"assessmentType"`
	RoleRelevance  map[string]Relevance `json:"roleRelevance,omitempty" bson:"roleRelevance,omitempty"`
	ImpactArea     string               `json:"impactArea,omitempty" bson:"impactArea,omitempty"`
	Dependencies   []Dependency         `json:"dependencies,omitempty" bson:"dependencies,omitempty"`
	Options        []Option             `json:"options" bson:"options"`
	Prompt         string               `json:"prompt" bson:"prompt"`
	// Improvement copy carried into recommendations untouched. Localization
	// belongs to the content source, not the engine.
	ActionLabel       string `json:"actionLabel,omitempty" bson:"actionLabel,omitempty"`
	ActionDescription string `json:"actionDescription,omitempty" bson:"actionDescription,omitempty"`
}

// EffectiveWeight returns the question weight with the default applied
func (q *Question) EffectiveWeight() float64 {
	if q.Weight <= 0 {
		return 1
	}
	return q.Weight
}

// MaxOptionValue returns the highest non-sentinel option value, or -1 when
// the question has no scorable options.
func (q *Question) MaxOptionValue() int {
	max := -1
	for _, o := range q.Options {
		if o.IsUnknown() {
			continue
		}
		if o.Value > max {
			max = o.Value
		}
	}
	return max
}
