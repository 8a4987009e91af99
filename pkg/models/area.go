package models

// SquareMetersToSquareFeet converts m² measurements for imperial reporting.
const SquareMetersToSquareFeet = 10.764

// AreaResult is the corrected-area computation for a single polygon.
// Computed fresh per call; never cached.
type AreaResult struct {
	PixelArea         float64 `json:"pixel_area"`
	ApparentAreaM2    float64 `json:"apparent_area_m2"`
	CorrectedAreaM2   float64 `json:"corrected_area_m2"`
	ApparentAreaSqFt  float64 `json:"apparent_area_sqft"`
	CorrectedAreaSqFt float64 `json:"corrected_area_sqft"`
	CorrectionFactor  float64 `json:"correction_factor"`

	// CorrectionApplied reports whether the capture was classified as
	// non-perpendicular. The factor is multiplied in whenever angle data
	// exists; this flag only drives presentation.
	CorrectionApplied bool `json:"correction_applied"`

	DifferenceM2      float64 `json:"difference_m2"`
	DifferencePercent float64 `json:"difference_percent"`
}

// CorrectionSummary summarizes angle correction across a project.
type CorrectionSummary struct {
	Applied bool `json:"applied"`

	// AverageFactor is the mean correction factor over polygons where
	// correction was applied, 1.0 when none were.
	AverageFactor float64 `json:"average_factor"`

	// Difference fields are derived from the aggregate totals, never from
	// a mean of per-polygon percentages, so large and small polygons
	// weigh in proportionally.
	TotalDifferenceM2      float64 `json:"total_difference_m2"`
	TotalDifferencePercent float64 `json:"total_difference_percent"`
}

// ProjectAggregate folds per-polygon results into project-level totals.
type ProjectAggregate struct {
	Results []AreaResult `json:"results"`

	// PerimetersM holds the perimeter of each polygon, index-aligned
	// with Results.
	PerimetersM []float64 `json:"perimeters_m"`

	TotalApparentM2    float64 `json:"total_apparent_m2"`
	TotalCorrectedM2   float64 `json:"total_corrected_m2"`
	TotalApparentSqFt  float64 `json:"total_apparent_sqft"`
	TotalCorrectedSqFt float64 `json:"total_corrected_sqft"`
	TotalPerimeterM    float64 `json:"total_perimeter_m"`
	PolygonCount       int     `json:"polygon_count"`

	CorrectionSummary CorrectionSummary `json:"correction_summary"`
}
