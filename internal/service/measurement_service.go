package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-area-metrics/internal/angle"
	"go-area-metrics/internal/calculator"
	"go-area-metrics/internal/config"
	"go-area-metrics/internal/logger"
	"go-area-metrics/pkg/geometry"
	"go-area-metrics/pkg/models"
	"go-area-metrics/pkg/validation"
)

// MeasurementService is the orchestration facade embedding services talk
// to: it composes the angle extractor, polygon geometry, and the area
// calculator into complete measurement results.
type MeasurementService interface {
	// MeasurePolygon measures a single polygon.
	MeasurePolygon(ctx context.Context, polygon geometry.Polygon, opts MeasurementOptions) (*models.Measurement, error)

	// MeasureProject measures a batch of polygons and aggregates them
	// into project totals.
	MeasureProject(ctx context.Context, polygons []geometry.Polygon, opts MeasurementOptions) (*models.ProjectMeasurement, error)

	// ExtractReading resolves a camera angle reading from an image
	// metadata source.
	ExtractReading(src angle.Source) models.CameraAngleReading

	// DescribeReading renders a reading for presentation layers.
	DescribeReading(reading models.CameraAngleReading) string

	// ReadingWarning returns an accuracy warning for oblique captures,
	// when one applies.
	ReadingWarning(reading models.CameraAngleReading) (string, bool)
}

// measurementService implements MeasurementService. All collaborators are
// stateless, so one service instance is safe to share across concurrent
// requests.
type measurementService struct {
	cfg        *config.Config
	extractor  *angle.Extractor
	calculator calculator.AreaCalculator
	validator  *validation.GeometryValidator
}

// NewMeasurementService creates a measurement service from engine
// configuration.
func NewMeasurementService(cfg *config.Config) MeasurementService {
	if cfg == nil {
		cfg = config.Default()
	}

	thresholds := validation.DefaultThresholds()
	thresholds.MaxPolygonPoints = cfg.MaxPolygonPoints

	return &measurementService{
		cfg:        cfg,
		extractor:  angle.NewExtractorWithTolerance(cfg.AngleToleranceDeg),
		calculator: calculator.NewAreaCalculatorWithThreshold(cfg.ParallelThreshold),
		validator:  validation.NewGeometryValidatorWithThresholds(thresholds),
	}
}

// MeasurePolygon measures one polygon. Malformed geometry is reported in
// the result, not as an error; only a degenerate pixel scale fails the
// call.
func (s *measurementService) MeasurePolygon(ctx context.Context, polygon geometry.Polygon, opts MeasurementOptions) (*models.Measurement, error) {
	start := time.Now()

	scale := s.resolveScale(opts)
	reading := s.resolveReading(opts)

	area, err := s.calculator.CorrectedArea(polygon, scale, opts.Reading)
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"points": len(polygon),
		}).Error("Polygon measurement rejected")
		return nil, err
	}

	measurement := &models.Measurement{
		ID:         uuid.NewString(),
		Timestamp:  start,
		Area:       area,
		PerimeterM: polygon.PerimeterMeters(scale),
		Reading:    reading,
		Validation: polygon.Validate(),
	}

	if !opts.SkipBounds {
		if bounds, ok := polygon.Bounds(scale); ok {
			measurement.Bounds = &bounds
		}
	}

	if !opts.SkipValidation {
		issues := s.validator.ValidatePolygon(polygon)
		issues = append(issues, s.validator.ValidateScale(scale)...)
		measurement.Errors = s.validator.ConvertIssuesToMessages(issues)
	}

	measurement.ProcessingTimeSec = time.Since(start).Seconds()

	logger.WithFields(logrus.Fields{
		"measurement_id":     measurement.ID,
		"points":             len(polygon),
		"pixel_area":         area.PixelArea,
		"corrected_area_m2":  area.CorrectedAreaM2,
		"correction_applied": area.CorrectionApplied,
		"valid":              measurement.Validation.IsValid,
	}).Info("Polygon measured")

	return measurement, nil
}

// MeasureProject measures a batch of polygons under one reading and scale
// and folds them into project totals.
func (s *measurementService) MeasureProject(ctx context.Context, polygons []geometry.Polygon, opts MeasurementOptions) (*models.ProjectMeasurement, error) {
	start := time.Now()

	scale := s.resolveScale(opts)
	reading := s.resolveReading(opts)

	aggregate, err := s.calculator.Aggregate(polygons, scale, opts.Reading)
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"polygon_count": len(polygons),
		}).Error("Project measurement rejected")
		return nil, err
	}

	measurement := &models.ProjectMeasurement{
		ID:        uuid.NewString(),
		Timestamp: start,
		Aggregate: aggregate,
		Reading:   reading,
	}

	if !opts.SkipValidation {
		var issues []validation.Issue
		for _, polygon := range polygons {
			issues = append(issues, s.validator.ValidatePolygon(polygon)...)
		}
		issues = append(issues, s.validator.ValidateScale(scale)...)
		measurement.Errors = s.validator.ConvertIssuesToMessages(issues)
	}

	measurement.ProcessingTimeSec = time.Since(start).Seconds()

	logger.WithFields(logrus.Fields{
		"measurement_id":     measurement.ID,
		"polygon_count":      aggregate.PolygonCount,
		"total_corrected_m2": aggregate.TotalCorrectedM2,
		"correction_applied": aggregate.CorrectionSummary.Applied,
	}).Info("Project measured")

	return measurement, nil
}

// ExtractReading resolves the camera orientation for an image metadata
// source. Missing or malformed metadata degrades to an uncorrected
// reading.
func (s *measurementService) ExtractReading(src angle.Source) models.CameraAngleReading {
	reading := s.extractor.Extract(src)

	logger.WithFields(logrus.Fields{
		"has_angle_data":    reading.HasAngleData,
		"image_type":        reading.ImageType,
		"source":            reading.Source,
		"correction_factor": reading.CorrectionFactor,
	}).Debug("Camera angle reading extracted")

	return reading
}

// DescribeReading renders a reading for presentation layers.
func (s *measurementService) DescribeReading(reading models.CameraAngleReading) string {
	return s.extractor.Describe(reading)
}

// ReadingWarning returns an accuracy warning for oblique captures.
func (s *measurementService) ReadingWarning(reading models.CameraAngleReading) (string, bool) {
	return s.extractor.Warn(reading)
}

// resolveScale substitutes the configured default for callers whose image
// carried no geospatial reference. This is the only place defaulting
// happens; the calculator itself rejects unusable scales.
func (s *measurementService) resolveScale(opts MeasurementOptions) geometry.PixelScale {
	if opts.Scale == nil {
		return s.cfg.DefaultScale()
	}
	return *opts.Scale
}

// resolveReading reports the reading that was applied, an explicit
// no-angle-data reading when the caller had none.
func (s *measurementService) resolveReading(opts MeasurementOptions) models.CameraAngleReading {
	if opts.Reading == nil {
		return models.CameraAngleReading{
			IsPerpendicular:  true,
			CorrectionFactor: 1.0,
			ImageType:        models.ImageTypeUnknown,
			Source:           models.AngleSourceNone,
		}
	}
	return *opts.Reading
}
