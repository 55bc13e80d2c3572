package engine

import "maturitymap/internal/model"

// Eligible computes the set of questions whose dependency gates are
// satisfied by the snapshot. Gates are conjunctive: every listed dependency
// must be answered with a non-sentinel value >= its MinValue. An unknown
// answer leaves a gate closed; the gate is about demonstrated knowledge,
// not mere presence of a response.
//
// The result is recomputed fresh on every call so a late answer can unlock
// questions mid-session.
func (c *Catalog) Eligible(snap *model.ResponseSnapshot) map[string]bool {
	eligible := make(map[string]bool, len(c.questions))
	for id, q := range c.questions {
		eligible[id] = c.gatesOpen(q, snap)
	}
	return eligible
}

// EligibleIDs returns the eligible question ids in stable id order
func (c *Catalog) EligibleIDs(snap *model.ResponseSnapshot) []string {
	eligible := c.Eligible(snap)
	ids := make([]string, 0, len(eligible))
	for _, q := range c.ordered {
		if eligible[q.ID] {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

func (c *Catalog) gatesOpen(q *model.Question, snap *model.ResponseSnapshot) bool {
	for _, dep := range q.Dependencies {
		ans := snap.Answer(dep.QuestionID)
		if ans.State != model.Answered || ans.Value < dep.MinValue {
			return false
		}
	}
	return true
}
