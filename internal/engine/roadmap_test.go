package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maturitymap/internal/model"
)

func mixedCatalog(t *testing.T) *Catalog {
	t.Helper()

	foundation := question("q-foundation", "gov")
	foundation.Weight = 2
	foundation.Importance = model.ImportanceHigh
	foundation.MaturityLevel = model.LevelBeginner
	foundation.ImpactArea = "visibility"
	foundation.ActionLabel = "Lay the foundation"

	process := question("q-process", "gov")
	process.MaturityLevel = model.LevelIntermediate
	process.Importance = model.ImportanceMedium

	expert := question("q-expert", "ops")
	expert.MaturityLevel = model.LevelAdvanced
	expert.Importance = model.ImportanceHigh

	minor := question("q-minor", "ops")
	minor.Weight = 0.5
	minor.Importance = model.ImportanceLow
	minor.MaturityLevel = model.LevelBeginner

	c, err := NewCatalog("v1", []model.Question{foundation, process, expert, minor})
	require.NoError(t, err)
	return c
}

func buildTestRoadmap(t *testing.T, c *Catalog, answers map[string]int) *model.Roadmap {
	t.Helper()
	snap := snapshot(answers)
	report, err := ComputeScores(c, snap)
	require.NoError(t, err)
	gaps, err := ComputeGaps(c, snap, report)
	require.NoError(t, err)
	return BuildRoadmap(gaps, c, "assessment-1", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
}

func TestBuildRoadmap_PhaseShapeAndPartition(t *testing.T) {
	c := mixedCatalog(t)
	roadmap := buildTestRoadmap(t, c, map[string]int{
		"q-foundation": 0,
		"q-process":    33,
		"q-expert":     33,
		"q-minor":      66,
	})

	require.Len(t, roadmap.Phases, 3)
	assert.Equal(t, model.BandShort, roadmap.Phases[0].Band)
	assert.Equal(t, model.BandMedium, roadmap.Phases[1].Band)
	assert.Equal(t, model.BandLong, roadmap.Phases[2].Band)

	// Every recommendation lands in exactly one phase
	seen := map[string]int{}
	for _, p := range roadmap.Phases {
		for _, rec := range p.Recommendations {
			seen[rec.ID]++
			assert.Equal(t, bandTimeline[p.Band], rec.Timeline)
		}
	}
	require.Len(t, seen, 4)
	for id, count := range seen {
		assert.Equal(t, 1, count, "recommendation %s", id)
	}
}

func TestBuildRoadmap_PriorityOrdering(t *testing.T) {
	c := mixedCatalog(t)
	roadmap := buildTestRoadmap(t, c, map[string]int{
		"q-foundation": 0,
		"q-process":    33,
		"q-expert":     33,
		"q-minor":      66,
	})

	all := roadmap.All()
	require.NotEmpty(t, all)

	// Ranks are 1..N in listed order, phases first, ROI descending inside
	// a phase.
	lastBand := -1
	for i, rec := range all {
		assert.Equal(t, i+1, rec.Priority)
		band := bandIndex(bandFor(rec.Effort))
		assert.GreaterOrEqual(t, band, lastBand)
		if i > 0 && band == lastBand {
			assert.GreaterOrEqual(t, all[i-1].ROI, rec.ROI)
		}
		lastBand = band
	}

	// Nothing in "long" outranks anything in "short"
	for _, short := range roadmap.Phases[0].Recommendations {
		for _, long := range roadmap.Phases[2].Recommendations {
			assert.Less(t, short.Priority, long.Priority)
		}
	}
}

func TestBuildRoadmap_ROITieBrokenByQuestionID(t *testing.T) {
	// Two identical questions produce identical ROI; order must fall back
	// to ascending question id, not insertion order.
	qa := question("q-bbb", "a")
	qb := question("q-aaa", "a")
	c, err := NewCatalog("v1", []model.Question{qa, qb})
	require.NoError(t, err)

	roadmap := buildTestRoadmap(t, c, map[string]int{"q-bbb": 33, "q-aaa": 33})
	all := roadmap.All()
	require.Len(t, all, 2)
	assert.Equal(t, "q-aaa", all[0].QuestionID)
	assert.Equal(t, "q-bbb", all[1].QuestionID)
}

func TestBuildRoadmap_QuickWinPrecision(t *testing.T) {
	c := mixedCatalog(t)
	roadmap := buildTestRoadmap(t, c, map[string]int{
		"q-foundation": 0,
		"q-process":    0,
		"q-expert":     0,
		"q-minor":      66,
	})

	for _, p := range roadmap.Phases {
		for _, rec := range p.Recommendations {
			if rec.QuickWin {
				// Quick wins are cheap AND valuable
				assert.Equal(t, model.BandShort, p.Band, "quick win %s outside short band", rec.ID)
				assert.NotEqual(t, model.ImpactLow, rec.Impact, "low-impact quick win %s", rec.ID)
			}
			if p.Band == model.BandShort && rec.Impact == model.ImpactLow {
				assert.False(t, rec.QuickWin, "cheap but low-impact %s flagged quick win", rec.ID)
			}
		}
	}

	// The heavy foundational gap is the archetypal quick win
	rec, ok := roadmap.Recommendation("rec-q-foundation")
	require.True(t, ok)
	assert.True(t, rec.QuickWin)
	assert.Equal(t, model.ImpactHigh, rec.Impact)
	assert.Equal(t, model.EffortLow, rec.Effort)

	// The small, low-importance gap is cheap but not a quick win
	minor, ok := roadmap.Recommendation("rec-q-minor")
	require.True(t, ok)
	assert.Equal(t, model.ImpactLow, minor.Impact)
	assert.False(t, minor.QuickWin)
}

func TestBuildRoadmap_Deterministic(t *testing.T) {
	c := mixedCatalog(t)
	answers := map[string]int{
		"q-foundation": 33,
		"q-process":    33,
		"q-expert":     66,
		"q-minor":      0,
	}

	first := buildTestRoadmap(t, c, answers)
	second := buildTestRoadmap(t, c, answers)
	assert.Equal(t, first.Phases, second.Phases)
}

func TestBuildRoadmap_PassthroughAndLookup(t *testing.T) {
	c := mixedCatalog(t)
	roadmap := buildTestRoadmap(t, c, map[string]int{"q-foundation": 0})

	rec, ok := roadmap.Recommendation("rec-q-foundation")
	require.True(t, ok)
	assert.Equal(t, "q-foundation", rec.QuestionID)
	assert.Equal(t, "gov", rec.Category)
	assert.Equal(t, "visibility", rec.ImpactArea)
	assert.Equal(t, "Lay the foundation", rec.Label)

	_, ok = roadmap.Recommendation("rec-missing")
	assert.False(t, ok)
}

func TestBuildRoadmap_CategoryGapsAreNotCandidates(t *testing.T) {
	c := mixedCatalog(t)
	roadmap := buildTestRoadmap(t, c, map[string]int{"q-foundation": 33})

	// One question gap plus one category gap in, one recommendation out
	assert.Len(t, roadmap.All(), 1)
}

func TestBuildRoadmap_EmptyGaps(t *testing.T) {
	c := mixedCatalog(t)
	roadmap := BuildRoadmap(nil, c, "assessment-1", time.Now())

	require.Len(t, roadmap.Phases, 3)
	for _, p := range roadmap.Phases {
		assert.Empty(t, p.Recommendations)
	}
}
