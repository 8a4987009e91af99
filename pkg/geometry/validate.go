package geometry

// ValidationResult is the structural validity report for a polygon. Every
// failing dimension is distinguishable; validation never raises.
type ValidationResult struct {
	IsValid            bool   `json:"is_valid"`
	PointCount         int    `json:"point_count"`
	HasMinimumPoints   bool   `json:"has_minimum_points"`
	HasArea            bool   `json:"has_area"`
	IsSelfIntersecting bool   `json:"is_self_intersecting"`
	ErrorMessage       string `json:"error_message,omitempty"`
}

// Validate checks, in order, that the polygon has at least three points,
// encloses a non-zero area, and forms a simple (non-self-intersecting)
// ring. It returns at the first failing check with a populated message.
func (p Polygon) Validate() ValidationResult {
	result := ValidationResult{PointCount: len(p)}

	if len(p) < MinPolygonPoints {
		result.ErrorMessage = "polygon must have at least 3 points"
		return result
	}
	result.HasMinimumPoints = true

	if p.AreaPixels() <= 0 {
		result.ErrorMessage = "polygon has no area"
		return result
	}
	result.HasArea = true

	if p.selfIntersects() {
		result.IsSelfIntersecting = true
		result.ErrorMessage = "polygon is self-intersecting"
		return result
	}

	result.IsValid = true
	return result
}

// selfIntersects tests every pair of non-adjacent ring edges for a planar
// intersection. Adjacent edges share a vertex and are skipped; any other
// contact makes the ring non-simple.
func (p Polygon) selfIntersects() bool {
	n := len(p)
	for i := 0; i < n; i++ {
		a1 := p[i]
		a2 := p[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip the shared-vertex neighbors, including the
			// wraparound pair (first edge, last edge).
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1 := p[j]
			b2 := p[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// orientation returns 0 for collinear triples, 1 for clockwise and 2 for
// counterclockwise turns.
func orientation(p, q, r Point) int {
	val := int64(q.Y-p.Y)*int64(r.X-q.X) - int64(q.X-p.X)*int64(r.Y-q.Y)
	switch {
	case val == 0:
		return 0
	case val > 0:
		return 1
	default:
		return 2
	}
}

// onSegment reports whether q lies on segment pr, assuming the three
// points are collinear.
func onSegment(p, q, r Point) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

// segmentsIntersect implements the standard orientation test for segment
// intersection, including the collinear-overlap cases.
func segmentsIntersect(p1, p2, q1, q2 Point) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(p1, q1, p2) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, p2) {
		return true
	}
	if o3 == 0 && onSegment(q1, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(q1, p2, q2) {
		return true
	}

	return false
}
