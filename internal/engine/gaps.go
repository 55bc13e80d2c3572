package engine

import (
	"sort"

	"maturitymap/internal/model"
)

// ComputeGaps measures the distance to the maximum achievable score, per
// question and per category. Ineligible questions are skipped: a
// recommendation behind an unmet prerequisite would be unreachable advice.
// This stage only measures; ranking happens in BuildRoadmap.
func ComputeGaps(c *Catalog, snap *model.ResponseSnapshot, report *model.ScoreReport) ([]model.Gap, error) {
	eligible := c.Eligible(snap)
	var gaps []model.Gap

	for _, q := range c.ordered {
		if !eligible[q.ID] {
			continue
		}
		ans := snap.Answer(q.ID)
		if ans.State != model.Answered {
			continue
		}
		max := q.MaxOptionValue()
		if max <= 0 {
			continue
		}
		if ans.Value < 0 || ans.Value > 100 {
			return nil, &RangeError{What: "answer " + q.ID, Value: float64(ans.Value)}
		}
		if ans.Value >= max {
			continue
		}
		gaps = append(gaps, model.Gap{
			QuestionID: q.ID,
			Category:   q.Category,
			Current:    float64(ans.Value),
			Max:        float64(max),
			Deficit:    (float64(max) - float64(ans.Value)) / float64(max),
		})
	}

	// Category-level gaps for every defined score below the ceiling,
	// in stable category order
	categories := make([]string, 0, len(report.ByCategory))
	for category := range report.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		cs := report.ByCategory[category]
		if cs.InsufficientData || cs.Score >= 100 {
			continue
		}
		gaps = append(gaps, model.Gap{
			Category: cs.Category,
			Current:  cs.Score,
			Max:      100,
			Deficit:  (100 - cs.Score) / 100,
		})
	}

	return gaps, nil
}
