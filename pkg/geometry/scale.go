package geometry

import "fmt"

// DefaultMetersPerPixel is the conventional ground sample distance assumed
// when an image carries no geospatial reference: 10 cm per pixel.
const DefaultMetersPerPixel = 0.10

// PixelScale is the ground sample distance of an image, per axis. Both
// values must be strictly positive; the engine never infers a scale.
type PixelScale struct {
	MetersPerPixelX float64 `json:"meters_per_pixel_x"`
	MetersPerPixelY float64 `json:"meters_per_pixel_y"`
}

// DefaultScale returns the conventional fallback scale for images without
// a geospatial reference.
func DefaultScale() PixelScale {
	return PixelScale{
		MetersPerPixelX: DefaultMetersPerPixel,
		MetersPerPixelY: DefaultMetersPerPixel,
	}
}

// UniformScale returns a scale with the same ground sample distance on
// both axes.
func UniformScale(metersPerPixel float64) PixelScale {
	return PixelScale{
		MetersPerPixelX: metersPerPixel,
		MetersPerPixelY: metersPerPixel,
	}
}

// Validate reports a degenerate scale. Zero or negative values are a
// contract violation by the caller and must fail fast rather than
// propagate negative or NaN areas.
func (s PixelScale) Validate() error {
	if !(s.MetersPerPixelX > 0) || !(s.MetersPerPixelY > 0) {
		return fmt.Errorf("degenerate pixel scale: %g x %g meters/pixel", s.MetersPerPixelX, s.MetersPerPixelY)
	}
	return nil
}
