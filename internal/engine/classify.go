package engine

import "maturitymap/internal/model"

// Tier boundaries match the 0/33/66/100 steps the catalog option scale
// already uses. Lower bound inclusive, upper bound exclusive, 100 lands in
// the top tier.
const (
	tierIntermediateFloor = 33
	tierAdvancedFloor     = 66
)

// Classify maps a score in [0,100] onto a maturity tier. Out-of-range
// scores are a contract violation upstream and fail with *RangeError
// instead of being clamped.
func Classify(score float64) (model.MaturityTier, error) {
	if score < 0 || score > 100 {
		return "", &RangeError{What: "score", Value: score}
	}
	switch {
	case score < tierIntermediateFloor:
		return model.TierBeginner, nil
	case score < tierAdvancedFloor:
		return model.TierIntermediate, nil
	default:
		return model.TierAdvanced, nil
	}
}
