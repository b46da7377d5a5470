// Package math3d provides the tuple algebra used by the tracer: points,
// vectors and bare 4-tuples sharing one representation.
//
// The renderer uses a left-handed coordinate system.
package math3d

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for approximate float comparisons.
// Anything comparing tracer values should use it through FloatEqual.
const Epsilon = 0.00001

// FloatEqual reports whether a and b differ by less than Epsilon.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Kind classifies a tuple by its w component.
type Kind int

const (
	kindUnset  Kind = iota // literal Tuple, never classified
	KindVector             // w == 0
	KindPoint              // w == 1
	KindBare               // anything else
)

func (k Kind) String() string {
	switch k {
	case KindVector:
		return "VECTOR"
	case KindPoint:
		return "POINT"
	default:
		return "BARE_TUPLE"
	}
}

func kindOf(w float64) Kind {
	switch w {
	case 1:
		return KindPoint
	case 0:
		return KindVector
	}
	return KindBare
}

// Tuple is a 4-component value (x, y, z, w).
//
// The kind is fixed when the tuple is built with T (or P / V) and is not
// recomputed if W is changed afterwards. A Tuple written as a composite
// literal has no stored kind and is classified from its current W.
type Tuple struct {
	X, Y, Z, W float64
	kind       Kind
}

// T creates a new Tuple and classifies it from w.
func T(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w, kind: kindOf(w)}
}

// Kind returns the classification computed at construction.
func (t Tuple) Kind() Kind {
	if t.kind == kindUnset {
		return kindOf(t.W)
	}
	return t.kind
}

// IsPoint reports whether t is classified as a point.
func (t Tuple) IsPoint() bool { return t.Kind() == KindPoint }

// IsVector reports whether t is classified as a vector.
func (t Tuple) IsVector() bool { return t.Kind() == KindVector }

// AsPoint returns t as a Point if its kind is KindPoint.
func (t Tuple) AsPoint() (Point, bool) {
	if !t.IsPoint() {
		return Point{}, false
	}
	return Point{t}, true
}

// AsVector returns t as a Vector if its kind is KindVector.
func (t Tuple) AsVector() (Vector, bool) {
	if !t.IsVector() {
		return Vector{}, false
	}
	return Vector{t}, true
}

// Add returns the component-wise sum t + b.
// point + vector is a point, vector + vector a vector, point + point is bare.
func (t Tuple) Add(b Tuple) Tuple {
	return T(t.X+b.X, t.Y+b.Y, t.Z+b.Z, t.W+b.W)
}

// Sub returns the component-wise difference t - b.
// point - point is a vector, point - vector a point.
func (t Tuple) Sub(b Tuple) Tuple {
	return T(t.X-b.X, t.Y-b.Y, t.Z-b.Z, t.W-b.W)
}

// Negate negates all four components, w included.
// A negated point has w = -1 and is therefore bare.
func (t Tuple) Negate() Tuple {
	return T(-t.X, -t.Y, -t.Z, -t.W)
}

// Scale multiplies all four components by s.
// Scaling a point by anything but 1 makes it bare.
func (t Tuple) Scale(s float64) Tuple {
	return T(t.X*s, t.Y*s, t.Z*s, t.W*s)
}

// Div returns t scaled by 1/s. Dividing by zero yields Inf/NaN components.
func (t Tuple) Div(s float64) Tuple {
	return t.Scale(1 / s)
}

// Equal reports whether a and b match component-wise within Epsilon.
// The stored kind is not compared.
func Equal(a, b Tuple) bool {
	return FloatEqual(a.X, b.X) &&
		FloatEqual(a.Y, b.Y) &&
		FloatEqual(a.Z, b.Z) &&
		FloatEqual(a.W, b.W)
}

func (t Tuple) String() string {
	return fmt.Sprintf("%s(%g, %g, %g, %g)", t.Kind(), t.X, t.Y, t.Z, t.W)
}
