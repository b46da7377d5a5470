// Package sim fires projectiles through a simple environment, one tick at a
// time, using the math3d tuple types.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taigrr/tracer/pkg/math3d"
)

var (
	// ErrMaxTicks is returned when a projectile is still airborne after the
	// tick limit.
	ErrMaxTicks = errors.New("projectile did not land")
	// ErrInvalidLimit is returned for a non-positive tick limit.
	ErrInvalidLimit = errors.New("tick limit must be positive")
)

// Projectile is a position and the velocity applied on the next tick.
type Projectile struct {
	Position math3d.Point
	Velocity math3d.Vector
}

// Environment holds the forces applied to a projectile every tick.
type Environment struct {
	Gravity math3d.Vector
	Wind    math3d.Vector
}

// Launch creates a projectile at pos moving along dir with the given speed.
// dir must be non-zero.
func Launch(pos math3d.Point, dir math3d.Vector, speed float64) Projectile {
	n := dir.Normalize()
	return Projectile{Position: pos, Velocity: math3d.V(n.X*speed, n.Y*speed, n.Z*speed)}
}

// Landed reports whether the projectile has reached the ground (y <= 0).
func (p Projectile) Landed() bool {
	return p.Position.Y <= 0
}

// Tick advances the projectile by one step.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Translate(p.Velocity),
		Velocity: p.Velocity.Plus(env.Gravity).Plus(env.Wind),
	}
}

// Simulate ticks p until it lands and returns every state, starting with p.
// The trajectory so far is returned along with any error.
func Simulate(ctx context.Context, env Environment, p Projectile, maxTicks int) ([]Projectile, error) {
	if maxTicks <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, maxTicks)
	}

	log := Logger()
	path := []Projectile{p}
	for tick := 1; !p.Landed(); tick++ {
		if tick > maxTicks {
			return path, fmt.Errorf("%w after %d ticks", ErrMaxTicks, maxTicks)
		}
		if err := ctx.Err(); err != nil {
			return path, fmt.Errorf("simulate: %w", err)
		}

		p = Tick(env, p)
		path = append(path, p)
		log.Debug("tick",
			slog.Int("tick", tick),
			slog.Float64("x", p.Position.X),
			slog.Float64("y", p.Position.Y),
			slog.Float64("z", p.Position.Z))
	}

	log.Info("landed",
		slog.Int("ticks", len(path)-1),
		slog.Float64("distance", path[0].Position.VectorTo(p.Position).Magnitude()))
	return path, nil
}
