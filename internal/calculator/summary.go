package calculator

import (
	"fmt"
	"strings"

	"go-area-metrics/pkg/geometry"
	"go-area-metrics/pkg/models"
)

// Summarize renders a human-readable account of a corrected-area result
// for presentation collaborators. The reading is optional and only
// contributes the camera angles to the correction block.
func (c *areaCalculator) Summarize(polygon geometry.Polygon, scale geometry.PixelScale, result models.AreaResult, reading *models.CameraAngleReading) string {
	var width, height float64
	if bounds, ok := polygon.Bounds(scale); ok {
		width, height = bounds.WidthMeters, bounds.HeightMeters
	}

	var b strings.Builder
	b.WriteString("Area Summary:\n")
	fmt.Fprintf(&b, "- Corrected Area: %.2f m² (%.1f sq ft)\n", result.CorrectedAreaM2, result.CorrectedAreaSqFt)
	fmt.Fprintf(&b, "- Apparent Area: %.2f m²\n", result.ApparentAreaM2)
	fmt.Fprintf(&b, "- Perimeter: %.1f meters\n", polygon.PerimeterMeters(scale))
	fmt.Fprintf(&b, "- Dimensions: %.1fm × %.1fm\n", width, height)
	fmt.Fprintf(&b, "- Points: %d\n", len(polygon))
	fmt.Fprintf(&b, "- Resolution: %.3f m/pixel", scale.MetersPerPixelX)

	if result.CorrectionApplied {
		b.WriteString("\n\nAngle Correction Applied:\n")
		fmt.Fprintf(&b, "- Correction Factor: %.3f\n", result.CorrectionFactor)
		fmt.Fprintf(&b, "- Area Increase: %.2f m² (%.1f%%)", result.DifferenceM2, result.DifferencePercent)
		if reading != nil {
			fmt.Fprintf(&b, "\n- Camera Pitch: %.1f°\n- Camera Roll: %.1f°", reading.PitchDeg, reading.RollDeg)
		}
	}

	return b.String()
}
