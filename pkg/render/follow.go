package render

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/tracer/pkg/math3d"
)

// Follower eases a marker toward a moving target with critically damped
// springs, one per axis.
type Follower struct {
	pos    math3d.Point
	velX   float64
	velY   float64
	velZ   float64
	spring harmonica.Spring
}

// NewFollower creates a follower resting at start, updated fps times a second.
func NewFollower(fps int, start math3d.Point) *Follower {
	return &Follower{
		pos: start,
		// Frequency 8.0 keeps up with a tick per frame, damping 1.0 = no overshoot
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}
}

// Update moves the follower one frame toward target and returns its position.
func (f *Follower) Update(target math3d.Point) math3d.Point {
	var x, y, z float64
	x, f.velX = f.spring.Update(f.pos.X, f.velX, target.X)
	y, f.velY = f.spring.Update(f.pos.Y, f.velY, target.Y)
	z, f.velZ = f.spring.Update(f.pos.Z, f.velZ, target.Z)
	f.pos = math3d.P(x, y, z)
	return f.pos
}

// Position returns the current position.
func (f *Follower) Position() math3d.Point {
	return f.pos
}

// Reset puts the follower at rest on p.
func (f *Follower) Reset(p math3d.Point) {
	f.pos = p
	f.velX, f.velY, f.velZ = 0, 0, 0
}
