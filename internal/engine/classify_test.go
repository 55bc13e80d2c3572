package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maturitymap/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  model.MaturityTier
	}{
		{0, model.TierBeginner},
		{32.9, model.TierBeginner},
		{33, model.TierIntermediate}, // lower bound inclusive
		{65.9, model.TierIntermediate},
		{66, model.TierAdvanced},
		{100, model.TierAdvanced}, // top tier includes 100
	}

	for _, tt := range tests {
		tier, err := Classify(tt.score)
		require.NoError(t, err)
		assert.Equal(t, tt.want, tier, "score %v", tt.score)
	}
}

func TestClassify_OutOfRange(t *testing.T) {
	for _, score := range []float64{-0.1, -1, 100.1, 200} {
		_, err := Classify(score)
		require.Error(t, err, "score %v", score)

		var rangeErr *RangeError
		assert.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, score, rangeErr.Value)
	}
}
