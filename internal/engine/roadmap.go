package engine

import (
	"sort"
	"time"

	"maturitymap/internal/model"
)

// Impact/effort derivation policy. The thresholds are calibrated against
// the 0/33/66/100 option scale; they are a documented ordering policy, not
// a guaranteed real-world ratio.
const (
	highImpactThreshold   = 1.2
	mediumImpactThreshold = 0.5
)

var importanceFactor = map[model.Importance]float64{
	model.ImportanceLow:    1,
	model.ImportanceMedium: 1.5,
	model.ImportanceHigh:   2,
}

var impactWeight = map[model.ImpactLevel]float64{
	model.ImpactLow:    1,
	model.ImpactMedium: 2,
	model.ImpactHigh:   3,
}

var effortWeight = map[model.EffortLevel]float64{
	model.EffortLow:    1,
	model.EffortMedium: 2,
	model.EffortHigh:   3,
}

var bandTimeline = map[model.PhaseBand]model.Timeline{
	model.BandShort:  {Min: 1, Max: 3, Unit: "months"},
	model.BandMedium: {Min: 3, Max: 6, Unit: "months"},
	model.BandLong:   {Min: 6, Max: 12, Unit: "months"},
}

var bandOrder = []model.PhaseBand{model.BandShort, model.BandMedium, model.BandLong}

// BuildRoadmap turns measured gaps into the phased, ranked improvement
// plan. Only question-level gaps with a positive deficit become
// recommendations; category gaps inform scoring output but carry no source
// question to act on.
//
// Output is deterministic for a fixed input: recommendation ids derive from
// question ids and all ordering is explicit (band, ROI descending, question
// id ascending).
func BuildRoadmap(gaps []model.Gap, c *Catalog, assessmentID string, now time.Time) *model.Roadmap {
	var recs []model.Recommendation
	for _, gap := range gaps {
		if gap.QuestionID == "" || gap.Deficit <= 0 {
			continue
		}
		q, ok := c.Question(gap.QuestionID)
		if !ok {
			continue
		}
		recs = append(recs, buildRecommendation(gap, q))
	}

	sort.Slice(recs, func(i, j int) bool {
		bi, bj := bandIndex(bandFor(recs[i].Effort)), bandIndex(bandFor(recs[j].Effort))
		if bi != bj {
			return bi < bj
		}
		if recs[i].ROI != recs[j].ROI {
			return recs[i].ROI > recs[j].ROI
		}
		return recs[i].QuestionID < recs[j].QuestionID
	})
	for i := range recs {
		recs[i].Priority = i + 1
	}

	roadmap := &model.Roadmap{
		AssessmentID:   assessmentID,
		CatalogVersion: c.Version(),
		GeneratedAt:    now.UTC(),
	}
	for i, band := range bandOrder {
		phase := model.RoadmapPhase{Index: i, Band: band, Recommendations: []model.Recommendation{}}
		for _, rec := range recs {
			if bandFor(rec.Effort) == band {
				phase.Recommendations = append(phase.Recommendations, rec)
			}
		}
		roadmap.Phases = append(roadmap.Phases, phase)
	}
	roadmap.Index()
	return roadmap
}

func buildRecommendation(gap model.Gap, q *model.Question) model.Recommendation {
	impact := classifyImpact(gap, q)
	effort := classifyEffort(q.MaturityLevel)
	band := bandFor(effort)

	return model.Recommendation{
		ID:          "rec-" + q.ID,
		QuestionID:  q.ID,
		Category:    q.Category,
		ImpactArea:  q.ImpactArea,
		Impact:      impact,
		Effort:      effort,
		ROI:         roiScore(impact, effort, gap.Deficit),
		Timeline:    bandTimeline[band],
		QuickWin:    band == model.BandShort && impact != model.ImpactLow,
		Label:       q.ActionLabel,
		Description: q.ActionDescription,
	}
}

// classifyImpact combines deficit magnitude, question weight and declared
// importance: a heavy, important question with a large deficit scores high.
func classifyImpact(gap model.Gap, q *model.Question) model.ImpactLevel {
	points := gap.Deficit * q.EffectiveWeight() * importanceFactor[importanceOrDefault(q.Importance)]
	switch {
	case points >= highImpactThreshold:
		return model.ImpactHigh
	case points >= mediumImpactThreshold:
		return model.ImpactMedium
	default:
		return model.ImpactLow
	}
}

// classifyEffort maps maturity level to effort: foundational changes are
// typically cheaper than advanced-capability changes.
func classifyEffort(level model.MaturityLevel) model.EffortLevel {
	switch level {
	case model.LevelAdvanced:
		return model.EffortHigh
	case model.LevelIntermediate:
		return model.EffortMedium
	default:
		return model.EffortLow
	}
}

// roiScore increases with impact and deficit and decreases with effort.
// Used purely for ordering.
func roiScore(impact model.ImpactLevel, effort model.EffortLevel, deficit float64) float64 {
	return impactWeight[impact] * (1 + deficit) / effortWeight[effort]
}

func bandFor(effort model.EffortLevel) model.PhaseBand {
	switch effort {
	case model.EffortHigh:
		return model.BandLong
	case model.EffortMedium:
		return model.BandMedium
	default:
		return model.BandShort
	}
}

func bandIndex(b model.PhaseBand) int {
	for i, band := range bandOrder {
		if band == b {
			return i
		}
	}
	return len(bandOrder)
}

func importanceOrDefault(imp model.Importance) model.Importance {
	if imp == "" {
		return model.ImportanceMedium
	}
	return imp
}
