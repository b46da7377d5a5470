package sim

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/tracer/pkg/math3d"
)

func classic() (Environment, Projectile) {
	env := Environment{
		Gravity: math3d.V(0, -0.1, 0),
		Wind:    math3d.V(-0.01, 0, 0),
	}
	return env, Launch(math3d.P(0, 1, 0), math3d.V(1, 1, 0), 1)
}

func TestLaunch(t *testing.T) {
	p := Launch(math3d.P(0, 1, 0), math3d.V(3, 4, 0), 10)

	assert.True(t, p.Position.IsPoint())
	assert.True(t, p.Velocity.IsVector())
	assert.InDelta(t, 6, p.Velocity.X, math3d.Epsilon)
	assert.InDelta(t, 8, p.Velocity.Y, math3d.Epsilon)
	assert.InDelta(t, 10, p.Velocity.Magnitude(), math3d.Epsilon)
}

func TestTick(t *testing.T) {
	env, p := classic()
	next := Tick(env, p)

	s := 1 / math.Sqrt2
	assert.True(t, math3d.Equal(next.Position.Tuple, math3d.P(s, 1+s, 0).Tuple), "position %v", next.Position)
	assert.True(t, math3d.Equal(next.Velocity.Tuple, math3d.V(s-0.01, s-0.1, 0).Tuple), "velocity %v", next.Velocity)
	assert.Equal(t, math3d.KindPoint, next.Position.Kind())
	assert.Equal(t, math3d.KindVector, next.Velocity.Kind())
}

func TestSimulateLands(t *testing.T) {
	env, p := classic()

	path, err := Simulate(context.Background(), env, p, 1000)
	require.NoError(t, err)
	require.Len(t, path, 18)

	assert.Equal(t, p, path[0])
	last := path[len(path)-1]
	assert.True(t, last.Landed())
	assert.InDelta(t, 10.6608, last.Position.X, 1e-3)
	for _, step := range path[1 : len(path)-1] {
		assert.False(t, step.Landed())
	}
}

func TestSimulateAlreadyLanded(t *testing.T) {
	env, _ := classic()
	p := Launch(math3d.P(0, 0, 0), math3d.V(1, 1, 0), 1)

	path, err := Simulate(context.Background(), env, p, 10)
	require.NoError(t, err)
	assert.Len(t, path, 1)
}

func TestSimulateMaxTicks(t *testing.T) {
	env := Environment{Gravity: math3d.V(0, 0, 0), Wind: math3d.V(0, 0, 0)}
	p := Launch(math3d.P(0, 1, 0), math3d.V(1, 1, 0), 1)

	path, err := Simulate(context.Background(), env, p, 5)
	require.True(t, errors.Is(err, ErrMaxTicks), "%v", err)
	assert.Len(t, path, 6)
}

func TestSimulateInvalidLimit(t *testing.T) {
	env, p := classic()

	path, err := Simulate(context.Background(), env, p, 0)
	require.True(t, errors.Is(err, ErrInvalidLimit), "%v", err)
	assert.Nil(t, path)
}

func TestSimulateCanceled(t *testing.T) {
	env, p := classic()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path, err := Simulate(ctx, env, p, 1000)
	require.True(t, errors.Is(err, context.Canceled), "%v", err)
	assert.Len(t, path, 1)
}

func TestSimulateLogs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	env, p := classic()
	_, err := Simulate(context.Background(), env, p, 1000)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=tick")
	assert.Contains(t, out, "msg=landed")
	assert.Contains(t, out, "ticks=17")
}

func TestLaunchInfiniteSpeed(t *testing.T) {
	p := Launch(math3d.P(0, 1, 0), math3d.V(1, 0, 0), math.Inf(1))

	assert.True(t, p.Velocity.IsVector())
	assert.True(t, math.IsInf(p.Velocity.X, 1), "velocity %v", p.Velocity)
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
