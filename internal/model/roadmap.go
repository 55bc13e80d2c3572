package model

import "time"

// Gap measures the distance between a current score and the maximum
// achievable one. QuestionID is empty for category-level gaps.
type Gap struct {
	QuestionID string  `json:"questionId,omitempty"`
	Category   string  `json:"category"`
	Current    float64 `json:"current"`
	Max        float64 `json:"max"`
	Deficit    float64 `json:"deficit"` // (max - current) / max, in [0,1]
}

// ImpactLevel classifies how much closing a gap moves maturity
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// EffortLevel classifies how expensive closing a gap is
type EffortLevel string

const (
	EffortLow    EffortLevel = "low"
	EffortMedium EffortLevel = "medium"
	EffortHigh   EffortLevel = "high"
)

// PhaseBand is the time band a recommendation lands in
type PhaseBand string

const (
	BandShort  PhaseBand = "short"
	BandMedium PhaseBand = "medium"
	BandLong   PhaseBand = "long"
)

// Timeline is the expected implementation window for a recommendation
type Timeline struct {
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Unit string `json:"unit"`
}

// Recommendation is one ranked roadmap entry. Label and Description are
// passed through from the catalog unmodified.
type Recommendation struct {
	ID          string      `json:"id" bson:"id"`
	QuestionID  string      `json:"questionId" bson:"questionId"`
	Category    string      `json:"category" bson:"category"`
	ImpactArea  string      `json:"impactArea,omitempty" bson:"impactArea,omitempty"`
	Priority    int         `json:"priority" bson:"priority"` // 1..N, lower is more urgent
	Impact      ImpactLevel `json:"impact" bson:"impact"`
	Effort      EffortLevel `json:"effort" bson:"effort"`
	ROI         float64     `json:"roiScore" bson:"roiScore"`
	Timeline    Timeline    `json:"timeline" bson:"timeline"`
	QuickWin    bool        `json:"quickWin" bson:"quickWin"`
	Label       string      `json:"label,omitempty" bson:"label,omitempty"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
}

// RoadmapPhase groups recommendations of one band, already ranked
type RoadmapPhase struct {
	Index           int              `json:"index" bson:"index"`
	Band            PhaseBand        `json:"band" bson:"band"`
	Recommendations []Recommendation `json:"recommendations" bson:"recommendations"`
}

// Roadmap is the prioritized improvement plan for one assessment
type Roadmap struct {
	AssessmentID   string                     `json:"assessmentId" bson:"_id"`
	CatalogVersion string                     `json:"catalogVersion" bson:"catalogVersion"`
	GeneratedAt    time.Time                  `json:"generatedAt" bson:"generatedAt"`
	Phases         []RoadmapPhase             `json:"phases" bson:"phases"`
	byID           map[string]*Recommendation `json:"-" bson:"-"`
}

// Index rebuilds the id lookup from the phase lists. Call after decoding a
// roadmap from storage.
func (r *Roadmap) Index() {
	r.byID = make(map[string]*Recommendation)
	for i := range r.Phases {
		recs := r.Phases[i].Recommendations
		for j := range recs {
			r.byID[recs[j].ID] = &recs[j]
		}
	}
}

// Recommendation looks up a recommendation by id in O(1)
func (r *Roadmap) Recommendation(id string) (*Recommendation, bool) {
	if r.byID == nil {
		r.Index()
	}
	rec, ok := r.byID[id]
	return rec, ok
}

// All returns every recommendation across phases in priority order
func (r *Roadmap) All() []Recommendation {
	var all []Recommendation
	for _, p := range r.Phases {
		all = append(all, p.Recommendations...)
	}
	return all
}
