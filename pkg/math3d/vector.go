package math3d

import "math"

// Vector is a direction or displacement: a Tuple with w fixed to 0.
// The zero Vector is the zero vector.
type Vector struct {
	Tuple
}

// V creates a new Vector.
func V(x, y, z float64) Vector {
	return Vector{T(x, y, z, 0)}
}

// Plus returns the vector sum a + b.
func (a Vector) Plus(b Vector) Vector {
	return V(a.X+b.X, a.Y+b.Y, a.Z+b.Z)
}

// Minus returns the vector difference a - b.
func (a Vector) Minus(b Vector) Vector {
	return V(a.X-b.X, a.Y-b.Y, a.Z-b.Z)
}

// Magnitude returns the Euclidean length of (x, y, z).
func (a Vector) Magnitude() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Normalize returns the unit vector in the same direction.
// Normalizing the zero vector gives NaN components; callers must guard.
func (a Vector) Normalize() Vector {
	m := a.Magnitude()
	return V(a.X/m, a.Y/m, a.Z/m)
}

// Dot returns the dot product a · b.
func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b; b.Cross(a) is its negation.
func (a Vector) Cross(b Vector) Vector {
	return V(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Reflect returns the reflection of a around normal n.
func (a Vector) Reflect(n Vector) Vector {
	k := 2 * a.Dot(n)
	return a.Minus(V(n.X*k, n.Y*k, n.Z*k))
}
