package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maturitymap/internal/model"
)

// threeQuestionCatalog mirrors the canonical gating setup: q1 free, q2
// unlocked at 33, q3 (other category) unlocked at 66.
func threeQuestionCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog("v1", []model.Question{
		question("q1", "a"),
		question("q2", "a", model.Dependency{QuestionID: "q1", MinValue: 33}),
		question("q3", "b", model.Dependency{QuestionID: "q1", MinValue: 66}),
	})
	require.NoError(t, err)
	return c
}

func snapshot(answers map[string]int) *model.ResponseSnapshot {
	return &model.ResponseSnapshot{ID: "snap", AssessmentID: "a", Answers: answers}
}

func TestEligible(t *testing.T) {
	c := threeQuestionCatalog(t)

	tests := []struct {
		name    string
		answers map[string]int
		want    []string
	}{
		{
			name:    "no answers opens only dependency-free questions",
			answers: nil,
			want:    []string{"q1"},
		},
		{
			name:    "mid answer unlocks the lower gate only",
			answers: map[string]int{"q1": 50},
			want:    []string{"q1", "q2"},
		},
		{
			name:    "threshold is inclusive",
			answers: map[string]int{"q1": 66},
			want:    []string{"q1", "q2", "q3"},
		},
		{
			name:    "unknown answer does not satisfy a gate",
			answers: map[string]int{"q1": model.UnknownValue},
			want:    []string{"q1"},
		},
		{
			name:    "zero answer is present but below both gates",
			answers: map[string]int{"q1": 0},
			want:    []string{"q1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.EligibleIDs(snapshot(tt.answers)))
		})
	}
}

func TestEligible_ConjunctiveGates(t *testing.T) {
	c, err := NewCatalog("v1", []model.Question{
		question("q1", "a"),
		question("q2", "a"),
		question("q3", "a",
			model.Dependency{QuestionID: "q1", MinValue: 33},
			model.Dependency{QuestionID: "q2", MinValue: 33},
		),
	})
	require.NoError(t, err)

	// One satisfied gate is not enough
	assert.NotContains(t, c.EligibleIDs(snapshot(map[string]int{"q1": 100})), "q3")

	// All gates satisfied
	assert.Contains(t, c.EligibleIDs(snapshot(map[string]int{"q1": 100, "q2": 33})), "q3")
}

func TestEligible_LateAnswerUnlocks(t *testing.T) {
	c := threeQuestionCatalog(t)

	before := c.Eligible(snapshot(map[string]int{"q1": 50}))
	assert.False(t, before["q3"])

	// Resolution has no hidden state: a better answer on the same catalog
	// retroactively unlocks q3
	after := c.Eligible(snapshot(map[string]int{"q1": 80}))
	assert.True(t, after["q3"])
}

func TestEligible_NilSnapshot(t *testing.T) {
	c := threeQuestionCatalog(t)
	assert.Equal(t, []string{"q1"}, c.EligibleIDs(nil))
}
