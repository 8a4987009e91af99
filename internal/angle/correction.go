package angle

import "math"

const (
	// DefaultToleranceDeg is how far pitch may deviate from -90° (and
	// roll from 0°) while the capture still counts as perpendicular.
	DefaultToleranceDeg = 5.0

	// Correction factors are clamped to this range; the upper bound
	// absorbs the near-90° blow-up of the cosine correction.
	MinCorrectionFactor = 1.0
	MaxCorrectionFactor = 3.0

	// Above this pitch magnitude the shot is nearly perpendicular and
	// only roll contributes to the correction.
	nearPerpendicularPitchDeg = 85.0
)

// CorrectionFactor computes the multiplicative area correction for a
// capture at the given camera angles. Negative pitch means tilted down;
// sign is ignored for both axes. The result is always within
// [MinCorrectionFactor, MaxCorrectionFactor] for any real input.
func CorrectionFactor(pitchDeg, rollDeg float64) float64 {
	pitchRad := degToRad(math.Abs(pitchDeg))
	rollRad := degToRad(math.Abs(rollDeg))

	var factor float64
	if math.Abs(pitchDeg) > nearPerpendicularPitchDeg {
		factor = 1.0 / math.Cos(rollRad)
	} else {
		effective := math.Sqrt(pitchRad*pitchRad + rollRad*rollRad)
		factor = 1.0 / math.Cos(effective)
	}

	return clamp(factor, MinCorrectionFactor, MaxCorrectionFactor)
}

// IsPerpendicular reports whether the camera pointed approximately
// straight down: pitch within toleranceDeg of ±90° and roll within
// toleranceDeg of level.
func IsPerpendicular(pitchDeg, rollDeg, toleranceDeg float64) bool {
	perpendicularPitch := math.Abs(math.Abs(pitchDeg)-90.0) <= toleranceDeg
	minimalRoll := math.Abs(rollDeg) <= toleranceDeg
	return perpendicularPitch && minimalRoll
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// clamp also normalizes the ±Inf and negative-cosine results that appear
// past 90° of effective tilt.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
