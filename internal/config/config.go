package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-area-metrics/pkg/geometry"
)

// Config carries the tunable parameters of the measurement engine. All
// values have working defaults; the environment only overrides them.
type Config struct {
	// DefaultPixelSizeM is substituted on both axes when a caller
	// supplies no pixel scale (images without a geospatial reference).
	DefaultPixelSizeM float64

	// AngleToleranceDeg is the perpendicularity tolerance for camera
	// pitch and roll.
	AngleToleranceDeg float64

	// MaxPolygonPoints rejects inputs beyond anything an interactive
	// editor would produce.
	MaxPolygonPoints int

	// ParallelThreshold is the batch size at which project aggregation
	// fans out across CPUs.
	ParallelThreshold int
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		DefaultPixelSizeM: parseFloatOrDefault("DEFAULT_PIXEL_SIZE_M", geometry.DefaultMetersPerPixel),
		AngleToleranceDeg: parseFloatOrDefault("ANGLE_TOLERANCE_DEG", 5.0),
		MaxPolygonPoints:  parseIntOrDefault("MAX_POLYGON_POINTS", 10000),
		ParallelThreshold: parseIntOrDefault("PARALLEL_THRESHOLD", 64),
	}

	if cfg.DefaultPixelSizeM <= 0 {
		return nil, fmt.Errorf("DEFAULT_PIXEL_SIZE_M must be > 0 (got %g)", cfg.DefaultPixelSizeM)
	}
	if cfg.AngleToleranceDeg <= 0 || cfg.AngleToleranceDeg >= 90 {
		return nil, fmt.Errorf("ANGLE_TOLERANCE_DEG must be in (0, 90) (got %g)", cfg.AngleToleranceDeg)
	}
	if cfg.MaxPolygonPoints < geometry.MinPolygonPoints {
		return nil, fmt.Errorf("MAX_POLYGON_POINTS must be >= %d (got %d)", geometry.MinPolygonPoints, cfg.MaxPolygonPoints)
	}
	if cfg.ParallelThreshold < 1 {
		return nil, fmt.Errorf("PARALLEL_THRESHOLD must be >= 1 (got %d)", cfg.ParallelThreshold)
	}
	return cfg, nil
}

// Default returns the engine configuration without consulting the
// environment.
func Default() *Config {
	return &Config{
		DefaultPixelSizeM: geometry.DefaultMetersPerPixel,
		AngleToleranceDeg: 5.0,
		MaxPolygonPoints:  10000,
		ParallelThreshold: 64,
	}
}

// DefaultScale is the scale substituted for callers that supply none.
func (c *Config) DefaultScale() geometry.PixelScale {
	return geometry.UniformScale(c.DefaultPixelSizeM)
}

func parseFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return defaultValue
}
