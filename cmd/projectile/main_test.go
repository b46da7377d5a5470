package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/taigrr/tracer/pkg/config"
	"github.com/taigrr/tracer/pkg/sim"
)

func TestPrintPath(t *testing.T) {
	con := config.Default()
	path, err := sim.Simulate(context.Background(), con.Env(), con.Launch(), con.Run.MaxTicks)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	var buf bytes.Buffer
	if err := printPath(&buf, path); err != nil {
		t.Fatalf("printPath: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(path)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), len(path)+1)
	}
	if !strings.Contains(lines[0], "tick") || !strings.Contains(lines[1], "1.0000") {
		t.Errorf("unexpected table start:\n%s\n%s", lines[0], lines[1])
	}
}

func TestPositions(t *testing.T) {
	con := config.Default()
	p := con.Launch()
	points := positions([]sim.Projectile{p, sim.Tick(con.Env(), p)})
	if len(points) != 2 || !points[1].IsPoint() {
		t.Errorf("positions = %v", points)
	}
}
