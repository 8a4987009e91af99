package calculator

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	apperrors "go-area-metrics/internal/errors"
	"go-area-metrics/pkg/geometry"
	"go-area-metrics/pkg/models"
)

// defaultParallelThreshold is the batch size at which per-polygon
// computation fans out across CPUs.
const defaultParallelThreshold = 64

// Aggregate computes an AreaResult and perimeter for every polygon and
// folds them into project totals. Totals are plain sums; the difference
// percentage comes from the aggregate totals rather than a mean of
// per-polygon percentages, so differently sized polygons never bias it.
func (c *areaCalculator) Aggregate(polygons []geometry.Polygon, scale geometry.PixelScale, reading *models.CameraAngleReading) (models.ProjectAggregate, error) {
	if err := scale.Validate(); err != nil {
		return models.ProjectAggregate{}, apperrors.NewValidationError("invalid pixel scale", err)
	}

	aggregate := models.ProjectAggregate{
		Results:      make([]models.AreaResult, len(polygons)),
		PerimetersM:  make([]float64, len(polygons)),
		PolygonCount: len(polygons),
		CorrectionSummary: models.CorrectionSummary{
			AverageFactor: 1.0,
		},
	}

	if len(polygons) >= c.parallelThreshold {
		c.computeParallel(polygons, scale, reading, &aggregate)
	} else {
		c.computeSequential(polygons, scale, reading, &aggregate)
	}

	// Fold in input order so results are identical regardless of how
	// the compute phase was scheduled.
	apparent := make([]float64, len(polygons))
	corrected := make([]float64, len(polygons))
	var appliedFactors []float64
	for i, result := range aggregate.Results {
		apparent[i] = result.ApparentAreaM2
		corrected[i] = result.CorrectedAreaM2
		if result.CorrectionApplied {
			appliedFactors = append(appliedFactors, result.CorrectionFactor)
		}
	}

	aggregate.TotalApparentM2 = floats.Sum(apparent)
	aggregate.TotalCorrectedM2 = floats.Sum(corrected)
	aggregate.TotalPerimeterM = floats.Sum(aggregate.PerimetersM)
	aggregate.TotalApparentSqFt = aggregate.TotalApparentM2 * models.SquareMetersToSquareFeet
	aggregate.TotalCorrectedSqFt = aggregate.TotalCorrectedM2 * models.SquareMetersToSquareFeet

	summary := &aggregate.CorrectionSummary
	summary.Applied = len(appliedFactors) > 0
	if summary.Applied {
		summary.AverageFactor = stat.Mean(appliedFactors, nil)
	}
	summary.TotalDifferenceM2 = aggregate.TotalCorrectedM2 - aggregate.TotalApparentM2
	if aggregate.TotalApparentM2 > 0 {
		summary.TotalDifferencePercent = (aggregate.TotalCorrectedM2/aggregate.TotalApparentM2 - 1.0) * 100
	}

	return aggregate, nil
}

func (c *areaCalculator) computeSequential(polygons []geometry.Polygon, scale geometry.PixelScale, reading *models.CameraAngleReading, aggregate *models.ProjectAggregate) {
	for i, polygon := range polygons {
		// Scale was validated up front; per-polygon calls cannot fail.
		result, _ := c.CorrectedArea(polygon, scale, reading)
		aggregate.Results[i] = result
		aggregate.PerimetersM[i] = polygon.PerimeterMeters(scale)
	}
}

// computeParallel maps polygons onto indexed result slots from worker
// goroutines. Each slot is written by exactly one worker, so the phase is
// race-free and deterministic.
func (c *areaCalculator) computeParallel(polygons []geometry.Polygon, scale geometry.PixelScale, reading *models.CameraAngleReading, aggregate *models.ProjectAggregate) {
	numWorkers := runtime.NumCPU()
	if numWorkers > len(polygons) {
		numWorkers = len(polygons)
	}
	chunk := (len(polygons) + numWorkers - 1) / numWorkers // ceil division

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(polygons) {
			end = len(polygons)
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				result, _ := c.CorrectedArea(polygons[i], scale, reading)
				aggregate.Results[i] = result
				aggregate.PerimetersM[i] = polygons[i].PerimeterMeters(scale)
			}
		}(start, end)
	}
	wg.Wait()
}
