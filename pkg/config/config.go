// Package config reads projectile run files. Files use the gcfg (INI-like)
// format; see Example.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/sim"
)

// Example is a complete run file with every parameter set to its default.
const Example = `[Projectile]

# Starting position of the projectile.
Position = 0, 1, 0
# Launch direction. Any non-zero vector, it is normalized.
Direction = 1, 1, 0
# Launch speed in units per tick.
Speed = 1

[Environment]

# Forces added to the velocity every tick.
Gravity = 0, -0.1, 0
Wind = -0.01, 0, 0

[Run]

# Give up if the projectile is still airborne after this many ticks.
MaxTicks = 1000
# Playback rate for live mode.
FPS = 30`

// Triple is an "x, y, z" value.
type Triple [3]float64

// UnmarshalText parses three comma separated numbers.
func (t *Triple) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), ",")
	if len(parts) != 3 {
		return fmt.Errorf("want 3 components, got %d in %q", len(parts), text)
	}
	for i, s := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		t[i] = f
	}
	return nil
}

func (t Triple) String() string {
	return fmt.Sprintf("%g, %g, %g", t[0], t[1], t[2])
}

// Point returns t as a point.
func (t Triple) Point() math3d.Point { return math3d.P(t[0], t[1], t[2]) }

// Vector returns t as a vector.
func (t Triple) Vector() math3d.Vector { return math3d.V(t[0], t[1], t[2]) }

func (t Triple) finite() bool {
	for _, f := range t {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

type ProjectileConfig struct {
	Position, Direction Triple
	Speed               float64
}

type EnvironmentConfig struct {
	Gravity, Wind Triple
}

type RunConfig struct {
	MaxTicks int
	FPS      int
}

// Config is a full run file.
type Config struct {
	Projectile  ProjectileConfig
	Environment EnvironmentConfig
	Run         RunConfig
}

// Default returns the configuration described by Example.
func Default() *Config {
	return &Config{
		Projectile: ProjectileConfig{
			Position:  Triple{0, 1, 0},
			Direction: Triple{1, 1, 0},
			Speed:     1,
		},
		Environment: EnvironmentConfig{
			Gravity: Triple{0, -0.1, 0},
			Wind:    Triple{-0.01, 0, 0},
		},
		Run: RunConfig{MaxTicks: 1000, FPS: 30},
	}
}

// Read loads a run file on top of the defaults and validates it.
func Read(path string) (*Config, error) {
	con := Default()
	if err := gcfg.ReadFileInto(con, path); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := con.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return con, nil
}

// Parse is Read for an in-memory file.
func Parse(text string) (*Config, error) {
	con := Default()
	if err := gcfg.ReadStringInto(con, text); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := con.Validate(); err != nil {
		return nil, err
	}
	return con, nil
}

// Validate checks for values the simulation cannot run with.
func (con *Config) Validate() error {
	var errs []error
	p := con.Projectile
	if !p.Position.finite() {
		errs = append(errs, errors.New("Projectile.Position must be finite"))
	}
	if !p.Direction.finite() {
		errs = append(errs, errors.New("Projectile.Direction must be finite"))
	} else if p.Direction.Vector().Magnitude() == 0 {
		errs = append(errs, errors.New("Projectile.Direction must be non-zero"))
	}
	if math.IsNaN(p.Speed) || math.IsInf(p.Speed, 0) || p.Speed < 0 {
		errs = append(errs, fmt.Errorf("Projectile.Speed must be a finite non-negative number, got %g", p.Speed))
	}
	if !con.Environment.Gravity.finite() {
		errs = append(errs, errors.New("Environment.Gravity must be finite"))
	}
	if !con.Environment.Wind.finite() {
		errs = append(errs, errors.New("Environment.Wind must be finite"))
	}
	if con.Run.MaxTicks <= 0 {
		errs = append(errs, fmt.Errorf("Run.MaxTicks must be positive, got %d", con.Run.MaxTicks))
	}
	if con.Run.FPS <= 0 {
		errs = append(errs, fmt.Errorf("Run.FPS must be positive, got %d", con.Run.FPS))
	}
	return errors.Join(errs...)
}

// Env builds the simulation environment.
func (con *Config) Env() sim.Environment {
	return sim.Environment{
		Gravity: con.Environment.Gravity.Vector(),
		Wind:    con.Environment.Wind.Vector(),
	}
}

// Launch builds the launched projectile.
func (con *Config) Launch() sim.Projectile {
	p := con.Projectile
	return sim.Launch(p.Position.Point(), p.Direction.Vector(), p.Speed)
}
