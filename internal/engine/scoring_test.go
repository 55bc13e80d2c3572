package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maturitymap/internal/model"
)

func TestComputeScores_WeightedMean(t *testing.T) {
	qa := question("qa", "a")
	qa.Weight = 3
	qb := question("qb", "a")
	qb.Weight = 1

	c, err := NewCatalog("v1", []model.Question{qa, qb})
	require.NoError(t, err)

	report, err := ComputeScores(c, snapshot(map[string]int{"qa": 100, "qb": 0}))
	require.NoError(t, err)

	cs := report.ByCategory["a"]
	assert.False(t, cs.InsufficientData)
	assert.InDelta(t, 75.0, cs.Score, 1e-9) // (100*3 + 0*1) / 4
	assert.Equal(t, 2, cs.Contributing)
	assert.Equal(t, model.TierAdvanced, cs.Tier)

	require.NotNil(t, report.Overall)
	assert.InDelta(t, 75.0, *report.Overall, 1e-9)
}

func TestComputeScores_PartialAnswers(t *testing.T) {
	// q2 unlocked but unanswered: category "a" reflects q1 alone, "b" has
	// no data at all.
	c := threeQuestionCatalog(t)

	report, err := ComputeScores(c, snapshot(map[string]int{"q1": 50}))
	require.NoError(t, err)

	a := report.ByCategory["a"]
	assert.False(t, a.InsufficientData)
	assert.InDelta(t, 50.0, a.Score, 1e-9)
	assert.Equal(t, 1, a.Contributing)

	b := report.ByCategory["b"]
	assert.True(t, b.InsufficientData)
	assert.Equal(t, 0, b.Contributing)

	require.NotNil(t, report.Overall)
	assert.InDelta(t, 50.0, *report.Overall, 1e-9)
}

func TestComputeScores_SentinelExclusion(t *testing.T) {
	c := threeQuestionCatalog(t)

	// Answering "don't know" everywhere yields insufficient data, never a
	// zero score.
	report, err := ComputeScores(c, snapshot(map[string]int{
		"q1": model.UnknownValue,
		"q2": model.UnknownValue,
		"q3": model.UnknownValue,
	}))
	require.NoError(t, err)

	a := report.ByCategory["a"]
	assert.True(t, a.InsufficientData)
	assert.Equal(t, 0, a.Contributing)
	assert.Equal(t, 2, a.UnknownCount)

	assert.True(t, report.ByCategory["b"].InsufficientData)
	assert.Nil(t, report.Overall)
}

func TestComputeScores_SentinelDoesNotDilute(t *testing.T) {
	c, err := NewCatalog("v1", []model.Question{
		question("q1", "a"),
		question("q2", "a"),
	})
	require.NoError(t, err)

	// The unknown answer must not enter the denominator: score stays 100.
	report, err := ComputeScores(c, snapshot(map[string]int{
		"q1": 100,
		"q2": model.UnknownValue,
	}))
	require.NoError(t, err)

	cs := report.ByCategory["a"]
	assert.InDelta(t, 100.0, cs.Score, 1e-9)
	assert.Equal(t, 1, cs.Contributing)
	assert.Equal(t, 1, cs.UnknownCount)
}

func TestComputeScores_Monotonicity(t *testing.T) {
	c := threeQuestionCatalog(t)

	// Raising a single answer never lowers its category score
	prev := -1.0
	for _, v := range []int{0, 33, 66, 100} {
		report, err := ComputeScores(c, snapshot(map[string]int{"q1": v}))
		require.NoError(t, err)
		score := report.ByCategory["a"].Score
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestComputeScores_IneligibleAnswerWarns(t *testing.T) {
	c := threeQuestionCatalog(t)

	// q3 requires q1 >= 66; an answer for it at q1=50 is inconsistent but
	// scoring proceeds.
	report, err := ComputeScores(c, snapshot(map[string]int{"q1": 50, "q3": 100}))
	require.NoError(t, err)

	assert.False(t, report.ByCategory["b"].InsufficientData)

	codes := map[string]string{}
	for _, w := range report.Warnings {
		codes[w.QuestionID] = w.Code
	}
	assert.Equal(t, model.WarnIneligibleAnswer, codes["q3"])
	assert.Equal(t, model.WarnEligibleUnanswered, codes["q2"])
}

func TestComputeScores_RangeError(t *testing.T) {
	c := threeQuestionCatalog(t)

	_, err := ComputeScores(c, snapshot(map[string]int{"q1": 150}))
	require.Error(t, err)

	var rangeErr *RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestComputeScores_Deterministic(t *testing.T) {
	c := threeQuestionCatalog(t)
	snap := snapshot(map[string]int{"q1": 66, "q2": 33, "q3": model.UnknownValue})

	first, err := ComputeScores(c, snap)
	require.NoError(t, err)
	second, err := ComputeScores(c, snap)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
