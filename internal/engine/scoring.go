package engine

import (
	"fmt"
	"sort"

	"maturitymap/internal/model"
)

// ComputeScores aggregates a snapshot into per-category and overall scores.
//
// Only answered, non-sentinel values contribute. A category with zero
// contributing answers is marked InsufficientData and excluded from the
// overall mean; it is never reported as zero. Answers to questions that are
// not currently eligible still count, but each one is surfaced as an
// ineligible_answer warning on the report.
func ComputeScores(c *Catalog, snap *model.ResponseSnapshot) (*model.ScoreReport, error) {
	type bucket struct {
		weighted float64
		weight   float64
		count    int
		unknown  int
	}
	buckets := make(map[string]*bucket)
	for _, q := range c.ordered {
		if _, ok := buckets[q.Category]; !ok {
			buckets[q.Category] = &bucket{}
		}
	}

	eligible := c.Eligible(snap)
	var warnings []model.Warning

	for _, q := range c.ordered {
		ans := snap.Answer(q.ID)
		switch ans.State {
		case model.Unanswered:
			if eligible[q.ID] && len(snap.Answers) > 0 {
				warnings = append(warnings, model.Warning{
					Code:       model.WarnEligibleUnanswered,
					QuestionID: q.ID,
					Message:    fmt.Sprintf("question %s is eligible but has no answer", q.ID),
				})
			}
			continue
		case model.AnsweredUnknown:
			buckets[q.Category].unknown++
			continue
		}

		if ans.Value < 0 || ans.Value > 100 {
			return nil, &RangeError{What: "answer " + q.ID, Value: float64(ans.Value)}
		}
		if !eligible[q.ID] {
			warnings = append(warnings, model.Warning{
				Code:       model.WarnIneligibleAnswer,
				QuestionID: q.ID,
				Message:    fmt.Sprintf("question %s was answered but its dependencies are not satisfied", q.ID),
			})
		}

		b := buckets[q.Category]
		w := q.EffectiveWeight()
		b.weighted += float64(ans.Value) * w
		b.weight += w
		b.count++
	}

	report := &model.ScoreReport{
		ByCategory: make(map[string]model.CategoryScore, len(buckets)),
		Warnings:   warnings,
	}

	var overallWeighted, overallWeight float64
	for category, b := range buckets {
		cs := model.CategoryScore{
			Category:     category,
			Contributing: b.count,
			UnknownCount: b.unknown,
		}
		if b.count == 0 {
			cs.InsufficientData = true
		} else {
			cs.Score = b.weighted / b.weight
			tier, err := Classify(cs.Score)
			if err != nil {
				return nil, err
			}
			cs.Tier = tier
			overallWeighted += cs.Score * b.weight
			overallWeight += b.weight
		}
		report.ByCategory[category] = cs
	}

	if overallWeight > 0 {
		overall := overallWeighted / overallWeight
		report.Overall = &overall
		tier, err := Classify(overall)
		if err != nil {
			return nil, err
		}
		report.OverallTier = tier
	}

	sort.Slice(report.Warnings, func(i, j int) bool {
		if report.Warnings[i].QuestionID != report.Warnings[j].QuestionID {
			return report.Warnings[i].QuestionID < report.Warnings[j].QuestionID
		}
		return report.Warnings[i].Code < report.Warnings[j].Code
	})

	return report, nil
}
