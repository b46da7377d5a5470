package math3d

import (
	"testing"
)

func BenchmarkTupleAdd(b *testing.B) {
	p := P(1, 2, 3)
	v := V(4, 5, 6)

	for b.Loop() {
		_ = p.Add(v.Tuple)
	}
}

func BenchmarkTupleScale(b *testing.B) {
	t := T(1, 2, 3, 1)

	for b.Loop() {
		_ = t.Scale(2.5)
	}
}

func BenchmarkVectorNormalize(b *testing.B) {
	v := V(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVectorCross(b *testing.B) {
	v1 := V(1, 2, 3)
	v2 := V(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVectorDot(b *testing.B) {
	v1 := V(1, 2, 3)
	v2 := V(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkEqual(b *testing.B) {
	t1 := T(1, 2, 3, 1)
	t2 := T(1, 2, 3.000001, 1)

	for b.Loop() {
		_ = Equal(t1, t2)
	}
}
