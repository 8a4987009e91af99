package service

import (
	"context"
	"math"
	"testing"

	"go-area-metrics/internal/angle"
	"go-area-metrics/internal/config"
	apperrors "go-area-metrics/internal/errors"
	"go-area-metrics/pkg/geometry"
	"go-area-metrics/pkg/models"
)

const floatTolerance = 1e-9

var square100 = geometry.Polygon{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}

func TestMeasurePolygon_DefaultScale(t *testing.T) {
	svc := NewMeasurementService(nil)

	// No scale in the options: the configured default of 0.10 m/pixel
	// applies, so the 100x100 pixel square covers 100 m².
	measurement, err := svc.MeasurePolygon(context.Background(), square100, DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if measurement.ID == "" {
		t.Error("Expected a measurement ID")
	}
	if math.Abs(measurement.Area.ApparentAreaM2-100.0) > floatTolerance {
		t.Errorf("Expected apparent area 100 m², got %v", measurement.Area.ApparentAreaM2)
	}
	if math.Abs(measurement.PerimeterM-40.0) > floatTolerance {
		t.Errorf("Expected perimeter 40 m, got %v", measurement.PerimeterM)
	}
	if !measurement.Validation.IsValid {
		t.Errorf("Expected valid polygon, got %q", measurement.Validation.ErrorMessage)
	}
	if len(measurement.Errors) != 0 {
		t.Errorf("Expected no validation messages, got %v", measurement.Errors)
	}
	if measurement.Reading.HasAngleData {
		t.Error("Expected an explicit no-angle-data reading")
	}
	if measurement.Reading.Source != models.AngleSourceNone {
		t.Errorf("Expected reading source none, got %q", measurement.Reading.Source)
	}
}

func TestMeasurePolygon_WithReading(t *testing.T) {
	svc := NewMeasurementService(nil)
	opts := DefaultOptions().
		WithUniformScale(0.1).
		WithReading(models.CameraAngleReading{
			HasAngleData:     true,
			PitchDeg:         -60,
			RollDeg:          5,
			IsPerpendicular:  false,
			CorrectionFactor: 1.155,
			Source:           models.AngleSourceEXIF,
			ImageType:        models.ImageTypeDrone,
		})

	measurement, err := svc.MeasurePolygon(context.Background(), square100, opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if math.Abs(measurement.Area.CorrectedAreaM2-115.5) > floatTolerance {
		t.Errorf("Expected corrected area 115.5 m², got %v", measurement.Area.CorrectedAreaM2)
	}
	if !measurement.Area.CorrectionApplied {
		t.Error("Expected CorrectionApplied for an oblique reading")
	}
	if measurement.Reading.CorrectionFactor != 1.155 {
		t.Errorf("Expected the applied reading to be echoed, got %+v", measurement.Reading)
	}
}

func TestMeasurePolygon_Bounds(t *testing.T) {
	svc := NewMeasurementService(nil)

	measurement, err := svc.MeasurePolygon(context.Background(), square100, DefaultOptions().WithUniformScale(0.1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if measurement.Bounds == nil {
		t.Fatal("Expected bounds by default")
	}
	if measurement.Bounds.WidthMeters != 10.0 || measurement.Bounds.HeightMeters != 10.0 {
		t.Errorf("Expected 10x10 m bounds, got %+v", measurement.Bounds)
	}

	opts := DefaultOptions().WithUniformScale(0.1)
	opts.SkipBounds = true
	measurement, err = svc.MeasurePolygon(context.Background(), square100, opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if measurement.Bounds != nil {
		t.Error("Expected bounds to be skipped")
	}
}

func TestMeasurePolygon_MalformedGeometryIsNotAnError(t *testing.T) {
	svc := NewMeasurementService(nil)
	crossing := geometry.Polygon{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 20, Y: 80}, {X: 80, Y: 80}}

	measurement, err := svc.MeasurePolygon(context.Background(), crossing, DefaultOptions())
	if err != nil {
		t.Fatalf("Expected malformed geometry to be reported, not returned: %v", err)
	}

	if measurement.Validation.IsValid {
		t.Error("Expected invalid validation result")
	}
	if !measurement.Validation.IsSelfIntersecting {
		t.Error("Expected self-intersection to be flagged")
	}
	if len(measurement.Errors) == 0 {
		t.Error("Expected validation messages in the measurement")
	}
}

func TestMeasurePolygon_SkipValidation(t *testing.T) {
	svc := NewMeasurementService(nil)

	measurement, err := svc.MeasurePolygon(context.Background(),
		geometry.Polygon{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 100}},
		DefaultOptions().WithoutValidation())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(measurement.Errors) != 0 {
		t.Errorf("Expected no messages with validation skipped, got %v", measurement.Errors)
	}
	// The structural result is always attached regardless.
	if measurement.Validation.HasArea {
		t.Error("Expected the collinear polygon's validation result to report no area")
	}
}

func TestMeasurePolygon_DegenerateScale(t *testing.T) {
	svc := NewMeasurementService(nil)

	_, err := svc.MeasurePolygon(context.Background(), square100,
		DefaultOptions().WithScale(geometry.PixelScale{}))
	if err == nil {
		t.Fatal("Expected an error for a degenerate scale")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected a validation error, got %v", err)
	}
	if apperrors.GetStatusCode(err) != 400 {
		t.Errorf("Expected status 400, got %d", apperrors.GetStatusCode(err))
	}
}

func TestMeasureProject(t *testing.T) {
	svc := NewMeasurementService(nil)
	polygons := []geometry.Polygon{
		{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 40}, {X: 0, Y: 40}},
		{{X: 0, Y: 0}, {X: 90, Y: 0}, {X: 90, Y: 50}, {X: 0, Y: 50}},
		{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 30}, {X: 0, Y: 30}},
	}
	opts := DefaultOptions().
		WithUniformScale(0.075).
		WithReading(models.CameraAngleReading{
			HasAngleData:     true,
			IsPerpendicular:  false,
			CorrectionFactor: 1.035,
		})

	measurement, err := svc.MeasureProject(context.Background(), polygons, opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if measurement.ID == "" {
		t.Error("Expected a measurement ID")
	}
	if measurement.Aggregate.PolygonCount != 3 {
		t.Errorf("Expected 3 polygons, got %d", measurement.Aggregate.PolygonCount)
	}
	if math.Abs(measurement.Aggregate.TotalApparentM2-45.0) > floatTolerance {
		t.Errorf("Expected total apparent 45 m², got %v", measurement.Aggregate.TotalApparentM2)
	}
	if math.Abs(measurement.Aggregate.TotalCorrectedM2-46.575) > floatTolerance {
		t.Errorf("Expected total corrected 46.575 m², got %v", measurement.Aggregate.TotalCorrectedM2)
	}
	if len(measurement.Errors) != 0 {
		t.Errorf("Expected no validation messages, got %v", measurement.Errors)
	}
}

func TestMeasureProject_CollectsIssuesAcrossPolygons(t *testing.T) {
	svc := NewMeasurementService(nil)
	polygons := []geometry.Polygon{
		square100,
		{{X: 0, Y: 0}, {X: 100, Y: 100}}, // too few points
		{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 100}}, // collinear
	}

	measurement, err := svc.MeasureProject(context.Background(), polygons, DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(measurement.Errors) != 2 {
		t.Errorf("Expected 2 validation messages, got %v", measurement.Errors)
	}
}

func TestMeasureProject_DegenerateScale(t *testing.T) {
	svc := NewMeasurementService(nil)

	_, err := svc.MeasureProject(context.Background(), []geometry.Polygon{square100},
		DefaultOptions().WithUniformScale(-1))
	if err == nil {
		t.Fatal("Expected an error for a degenerate scale")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected a validation error, got %v", err)
	}
}

func TestExtractReading_Passthrough(t *testing.T) {
	svc := NewMeasurementService(nil)

	reading := svc.ExtractReading(angle.TagMap{Tags: map[string]string{
		"Make":              "DJI",
		"Model":             "FC3582",
		"GimbalPitchDegree": "-89.9",
	}})

	if !reading.HasAngleData {
		t.Fatal("Expected angle data")
	}
	if reading.ImageType != models.ImageTypeDJIDrone {
		t.Errorf("Expected dji_drone, got %q", reading.ImageType)
	}

	description := svc.DescribeReading(reading)
	if description == "" {
		t.Error("Expected a description")
	}
	if _, ok := svc.ReadingWarning(reading); ok {
		t.Error("Expected no warning for a perpendicular capture")
	}
}

func TestNewMeasurementService_CustomTolerance(t *testing.T) {
	cfg := config.Default()
	cfg.AngleToleranceDeg = 15.0
	svc := NewMeasurementService(cfg)

	// Pitch -80 is outside the default 5 degree tolerance but inside 15.
	reading := svc.ExtractReading(angle.TagMap{Tags: map[string]string{
		"GimbalPitchDegree": "-80",
	}})
	if !reading.IsPerpendicular {
		t.Error("Expected -80 pitch to classify as perpendicular at 15 degree tolerance")
	}
}
