package service

import (
	"go-area-metrics/pkg/geometry"
	"go-area-metrics/pkg/models"
)

// MeasurementOptions provides flexible configuration for a measurement
// request.
type MeasurementOptions struct {
	// Scale is the ground sample distance of the source image. Nil means
	// the image carried no geospatial reference and the configured
	// default (conventionally 0.10 m/pixel) is substituted.
	Scale *geometry.PixelScale

	// Reading is the camera angle reading for the source image. Nil
	// means no angle data: areas are reported uncorrected.
	Reading *models.CameraAngleReading

	// SkipValidation disables the structural checks when the caller has
	// already validated the polygons.
	SkipValidation bool

	// SkipBounds drops the bounding box from single-polygon results.
	SkipBounds bool
}

// DefaultOptions returns default measurement options
func DefaultOptions() MeasurementOptions {
	return MeasurementOptions{}
}

// WithScale sets an explicit pixel scale
func (opts MeasurementOptions) WithScale(scale geometry.PixelScale) MeasurementOptions {
	opts.Scale = &scale
	return opts
}

// WithUniformScale sets the same ground sample distance on both axes
func (opts MeasurementOptions) WithUniformScale(metersPerPixel float64) MeasurementOptions {
	scale := geometry.UniformScale(metersPerPixel)
	opts.Scale = &scale
	return opts
}

// WithReading attaches a camera angle reading
func (opts MeasurementOptions) WithReading(reading models.CameraAngleReading) MeasurementOptions {
	opts.Reading = &reading
	return opts
}

// WithoutValidation skips the structural polygon checks
func (opts MeasurementOptions) WithoutValidation() MeasurementOptions {
	opts.SkipValidation = true
	return opts
}
