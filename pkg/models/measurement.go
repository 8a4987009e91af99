package models

import (
	"time"

	"go-area-metrics/pkg/geometry"
)

// Measurement is the service-level result for a single polygon: the
// corrected area together with perimeter, bounds, the reading that was
// applied, and the structural validation detail.
type Measurement struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	ProcessingTimeSec float64   `json:"processing_time_sec"`

	Area       AreaResult                `json:"area"`
	PerimeterM float64                   `json:"perimeter_m"`
	Bounds     *geometry.Bounds          `json:"bounds,omitempty"`
	Validation geometry.ValidationResult `json:"validation"`
	Reading    CameraAngleReading        `json:"reading"`

	// Errors carries non-fatal validation messages; the measurement is
	// still computed so callers can decide to reject or repair.
	Errors []string `json:"errors,omitempty"`
}

// ProjectMeasurement is the service-level result for a batch of polygons.
type ProjectMeasurement struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	ProcessingTimeSec float64   `json:"processing_time_sec"`

	Aggregate ProjectAggregate   `json:"aggregate"`
	Reading   CameraAngleReading `json:"reading"`

	Errors []string `json:"errors,omitempty"`
}
