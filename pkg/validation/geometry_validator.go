package validation

import (
	"fmt"

	"go-area-metrics/pkg/geometry"
)

// Thresholds defines configurable limits for measurement input validation
type Thresholds struct {
	MinPolygonPoints int
	MaxPolygonPoints int

	// Pixel-scale sanity bounds in meters per pixel. Real imagery sits
	// between millimeter-level macro shots and satellite tiles.
	MinMetersPerPixel float64
	MaxMetersPerPixel float64
}

// DefaultThresholds returns the default validation thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinPolygonPoints:  geometry.MinPolygonPoints,
		MaxPolygonPoints:  10000,
		MinMetersPerPixel: 0.0001,
		MaxMetersPerPixel: 100.0,
	}
}

// Issue represents a single validation finding
type Issue struct {
	Type        string  `json:"type"`
	Message     string  `json:"message"`
	Severity    string  `json:"severity"` // "error", "warning", "info"
	ActualValue float64 `json:"actual_value,omitempty"`
	Threshold   float64 `json:"threshold,omitempty"`
}

// GeometryValidator checks polygons and pixel scales before measurement.
// Findings are reported in full so callers can distinguish every failing
// dimension; the validator never rejects on its own.
type GeometryValidator struct {
	thresholds Thresholds
}

// NewGeometryValidator creates a validator with default thresholds
func NewGeometryValidator() *GeometryValidator {
	return &GeometryValidator{thresholds: DefaultThresholds()}
}

// NewGeometryValidatorWithThresholds creates a validator with custom thresholds
func NewGeometryValidatorWithThresholds(thresholds Thresholds) *GeometryValidator {
	return &GeometryValidator{thresholds: thresholds}
}

// ValidatePolygon reports structural issues with a polygon
func (gv *GeometryValidator) ValidatePolygon(polygon geometry.Polygon) []Issue {
	var issues []Issue

	result := polygon.Validate()
	if !result.HasMinimumPoints {
		issues = append(issues, Issue{
			Type:        "too_few_points",
			Message:     result.ErrorMessage,
			Severity:    "error",
			ActualValue: float64(result.PointCount),
			Threshold:   float64(gv.thresholds.MinPolygonPoints),
		})
		return issues
	}

	if gv.thresholds.MaxPolygonPoints > 0 && result.PointCount > gv.thresholds.MaxPolygonPoints {
		issues = append(issues, Issue{
			Type:        "too_many_points",
			Message:     fmt.Sprintf("polygon exceeds %d points", gv.thresholds.MaxPolygonPoints),
			Severity:    "warning",
			ActualValue: float64(result.PointCount),
			Threshold:   float64(gv.thresholds.MaxPolygonPoints),
		})
	}

	if !result.HasArea {
		issues = append(issues, Issue{
			Type:     "no_area",
			Message:  result.ErrorMessage,
			Severity: "error",
		})
	}
	if result.IsSelfIntersecting {
		issues = append(issues, Issue{
			Type:     "self_intersecting",
			Message:  result.ErrorMessage,
			Severity: "error",
		})
	}

	return issues
}

// ValidateScale reports issues with a pixel scale. A non-positive scale is
// an error; an implausible ground sample distance is only a warning.
func (gv *GeometryValidator) ValidateScale(scale geometry.PixelScale) []Issue {
	var issues []Issue

	if err := scale.Validate(); err != nil {
		issues = append(issues, Issue{
			Type:     "degenerate_scale",
			Message:  err.Error(),
			Severity: "error",
		})
		return issues
	}

	axes := []struct {
		axis  string
		value float64
	}{
		{"x", scale.MetersPerPixelX},
		{"y", scale.MetersPerPixelY},
	}
	for _, a := range axes {
		axis, value := a.axis, a.value
		if value < gv.thresholds.MinMetersPerPixel {
			issues = append(issues, Issue{
				Type:        "scale_implausibly_fine",
				Message:     fmt.Sprintf("%s-axis resolution of %g m/pixel is finer than any aerial capture", axis, value),
				Severity:    "warning",
				ActualValue: value,
				Threshold:   gv.thresholds.MinMetersPerPixel,
			})
		}
		if value > gv.thresholds.MaxMetersPerPixel {
			issues = append(issues, Issue{
				Type:        "scale_implausibly_coarse",
				Message:     fmt.Sprintf("%s-axis resolution of %g m/pixel is coarser than any usable imagery", axis, value),
				Severity:    "warning",
				ActualValue: value,
				Threshold:   gv.thresholds.MaxMetersPerPixel,
			})
		}
	}

	return issues
}

// ConvertIssuesToMessages flattens issues into plain strings for result
// payloads
func (gv *GeometryValidator) ConvertIssuesToMessages(issues []Issue) []string {
	if len(issues) == 0 {
		return nil
	}
	messages := make([]string, len(issues))
	for i, issue := range issues {
		messages[i] = issue.Message
	}
	return messages
}

// HasErrors reports whether any issue has error severity
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == "error" {
			return true
		}
	}
	return false
}
