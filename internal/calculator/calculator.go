package calculator

import (
	apperrors "go-area-metrics/internal/errors"
	"go-area-metrics/pkg/geometry"
	"go-area-metrics/pkg/models"
)

// AreaCalculator computes angle-corrected areas for pixel-space polygons.
type AreaCalculator interface {
	// CorrectedArea computes the corrected-area result for one polygon.
	// A nil reading is treated as missing angle data, never an error.
	CorrectedArea(polygon geometry.Polygon, scale geometry.PixelScale, reading *models.CameraAngleReading) (models.AreaResult, error)

	// Aggregate folds many polygons into project totals under a single
	// reading and scale.
	Aggregate(polygons []geometry.Polygon, scale geometry.PixelScale, reading *models.CameraAngleReading) (models.ProjectAggregate, error)

	// Summarize renders a human-readable summary of a corrected-area
	// result.
	Summarize(polygon geometry.Polygon, scale geometry.PixelScale, result models.AreaResult, reading *models.CameraAngleReading) string
}

// areaCalculator implements AreaCalculator. It holds no mutable state: one
// instance is safe to share across concurrent callers.
type areaCalculator struct {
	parallelThreshold int
}

// NewAreaCalculator creates a calculator with the default parallel batch
// threshold.
func NewAreaCalculator() AreaCalculator {
	return NewAreaCalculatorWithThreshold(defaultParallelThreshold)
}

// NewAreaCalculatorWithThreshold creates a calculator that fans project
// aggregation out across CPUs once a batch reaches the given size.
func NewAreaCalculatorWithThreshold(parallelThreshold int) AreaCalculator {
	if parallelThreshold < 1 {
		parallelThreshold = defaultParallelThreshold
	}
	return &areaCalculator{parallelThreshold: parallelThreshold}
}

// CorrectedArea converts a polygon's pixel area to ground area and applies
// the capture-angle correction. The factor is multiplied in whenever the
// reading carries angle data, even for perpendicular captures where it is
// 1.0 anyway; CorrectionApplied only flags non-perpendicular captures for
// reporting. The caller must supply a usable scale: no defaulting happens
// here.
func (c *areaCalculator) CorrectedArea(polygon geometry.Polygon, scale geometry.PixelScale, reading *models.CameraAngleReading) (models.AreaResult, error) {
	if err := scale.Validate(); err != nil {
		return models.AreaResult{}, apperrors.NewValidationError("invalid pixel scale", err)
	}

	pixelArea := polygon.AreaPixels()
	apparentM2 := pixelArea * scale.MetersPerPixelX * scale.MetersPerPixelY

	result := models.AreaResult{
		PixelArea:        pixelArea,
		ApparentAreaM2:   apparentM2,
		CorrectedAreaM2:  apparentM2,
		CorrectionFactor: 1.0,
	}

	if reading != nil && reading.HasAngleData {
		result.CorrectionFactor = reading.CorrectionFactor
		result.CorrectedAreaM2 = apparentM2 * reading.CorrectionFactor
		result.CorrectionApplied = !reading.IsPerpendicular
	}

	result.ApparentAreaSqFt = result.ApparentAreaM2 * models.SquareMetersToSquareFeet
	result.CorrectedAreaSqFt = result.CorrectedAreaM2 * models.SquareMetersToSquareFeet

	result.DifferenceM2 = result.CorrectedAreaM2 - result.ApparentAreaM2
	if result.ApparentAreaM2 > 0 {
		result.DifferencePercent = (result.CorrectedAreaM2/result.ApparentAreaM2 - 1.0) * 100
	}

	return result, nil
}
