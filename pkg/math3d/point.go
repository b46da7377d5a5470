package math3d

// Point is a location in space: a Tuple with w fixed to 1.
// Build points with P; a zero Point has w = 0 and reports KindVector.
type Point struct {
	Tuple
}

// P creates a new Point.
func P(x, y, z float64) Point {
	return Point{T(x, y, z, 1)}
}

// Origin returns the point (0, 0, 0).
func Origin() Point {
	return P(0, 0, 0)
}

// Translate moves p by v.
func (p Point) Translate(v Vector) Point {
	return P(p.X+v.X, p.Y+v.Y, p.Z+v.Z)
}

// VectorTo returns the displacement q - p.
func (p Point) VectorTo(q Point) Vector {
	return V(q.X-p.X, q.Y-p.Y, q.Z-p.Z)
}
