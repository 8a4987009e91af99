package geometry

import (
	"math"
)

// MinPolygonPoints is the smallest point count that encloses any area.
const MinPolygonPoints = 3

// Point is a pixel coordinate in image space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Polygon is an ordered sequence of pixel points. Order is significant and
// defines the edges; the ring is implicitly closed from the last point back
// to the first. Points are not deduplicated.
type Polygon []Point

// AreaPixels returns the enclosed area in square pixels using the shoelace
// formula over the implicit closed ring. Polygons with fewer than three
// points enclose nothing and yield 0.
func (p Polygon) AreaPixels() float64 {
	if len(p) < MinPolygonPoints {
		return 0.0
	}

	// Integer cross products keep the sum exact for pixel coordinates.
	var sum int64
	for i := range p {
		j := (i + 1) % len(p)
		sum += int64(p[i].X)*int64(p[j].Y) - int64(p[j].X)*int64(p[i].Y)
	}

	return math.Abs(float64(sum)) / 2.0
}

// PerimeterMeters returns the ring perimeter in meters, scaling each edge
// per axis before taking its Euclidean length. The wraparound edge from the
// last point back to the first is included. Fewer than three points yield 0.
func (p Polygon) PerimeterMeters(scale PixelScale) float64 {
	if len(p) < MinPolygonPoints {
		return 0.0
	}

	perimeter := 0.0
	for i := range p {
		j := (i + 1) % len(p)
		dx := float64(p[j].X-p[i].X) * scale.MetersPerPixelX
		dy := float64(p[j].Y-p[i].Y) * scale.MetersPerPixelY
		perimeter += math.Sqrt(dx*dx + dy*dy)
	}

	return perimeter
}

// Bounds describes the axis-aligned bounding box of a polygon in pixels and
// meters.
type Bounds struct {
	MinX         int     `json:"min_x_pixels"`
	MinY         int     `json:"min_y_pixels"`
	MaxX         int     `json:"max_x_pixels"`
	MaxY         int     `json:"max_y_pixels"`
	WidthPixels  int     `json:"width_pixels"`
	HeightPixels int     `json:"height_pixels"`
	WidthMeters  float64 `json:"width_meters"`
	HeightMeters float64 `json:"height_meters"`
}

// Bounds returns the bounding box of the polygon. The second return is
// false for an empty polygon, whose bounds are undefined.
func (p Polygon) Bounds(scale PixelScale) (Bounds, bool) {
	if len(p) == 0 {
		return Bounds{}, false
	}

	b := Bounds{MinX: p[0].X, MinY: p[0].Y, MaxX: p[0].X, MaxY: p[0].Y}
	for _, pt := range p[1:] {
		if pt.X < b.MinX {
			b.MinX = pt.X
		}
		if pt.X > b.MaxX {
			b.MaxX = pt.X
		}
		if pt.Y < b.MinY {
			b.MinY = pt.Y
		}
		if pt.Y > b.MaxY {
			b.MaxY = pt.Y
		}
	}

	b.WidthPixels = b.MaxX - b.MinX
	b.HeightPixels = b.MaxY - b.MinY
	b.WidthMeters = float64(b.WidthPixels) * scale.MetersPerPixelX
	b.HeightMeters = float64(b.HeightPixels) * scale.MetersPerPixelY
	return b, true
}
