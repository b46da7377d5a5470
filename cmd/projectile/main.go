// projectile - fire a projectile and watch where it lands.
// Exercises the tracer's point and vector algebra one tick at a time.
//
// Controls (live mode):
//
//	Space - Replay
//	Esc   - Quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/tracer/pkg/config"
	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/render"
	"github.com/taigrr/tracer/pkg/sim"
)

var (
	configPath = flag.String("config", "", "Path to run file (gcfg format)")
	maxTicks   = flag.Int("max-ticks", 0, "Override the tick limit from the run file")
	live       = flag.Bool("live", false, "Animate the trajectory in the terminal")
	targetFPS  = flag.Int("fps", 0, "Override live playback FPS from the run file")
	verbose    = flag.Bool("v", false, "Log every tick")
	example    = flag.Bool("example", false, "Print an example run file and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "projectile - fire a projectile through gravity and wind\n\n")
		fmt.Fprintf(os.Stderr, "Usage: projectile [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nLive controls:\n")
		fmt.Fprintf(os.Stderr, "  Space  - Replay\n")
		fmt.Fprintf(os.Stderr, "  Esc    - Quit\n")
	}
	flag.Parse()

	if *example {
		fmt.Println(config.Example)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	sim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	con := config.Default()
	if *configPath != "" {
		var err error
		if con, err = config.Read(*configPath); err != nil {
			return nil, err
		}
	}
	if *maxTicks > 0 {
		con.Run.MaxTicks = *maxTicks
	}
	if *targetFPS > 0 {
		con.Run.FPS = *targetFPS
	}
	return con, nil
}

func run() error {
	con, err := loadConfig()
	if err != nil {
		return err
	}

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	path, err := sim.Simulate(ctx, con.Env(), con.Launch(), con.Run.MaxTicks)
	if err != nil && !errors.Is(err, sim.ErrMaxTicks) {
		return err
	}

	if *live {
		if lerr := runLive(ctx, cancel, path, con.Run.FPS); lerr != nil {
			return lerr
		}
	} else if perr := printPath(os.Stdout, path); perr != nil {
		return perr
	}
	return err
}

func printPath(out io.Writer, path []sim.Projectile) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "tick\tx\ty\tz\tspeed\t")
	for i, p := range path {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			i, p.Position.X, p.Position.Y, p.Position.Z, p.Velocity.Magnitude())
	}
	return w.Flush()
}

func positions(path []sim.Projectile) []math3d.Point {
	points := make([]math3d.Point, len(path))
	for i, p := range path {
		points[i] = p.Position
	}
	return points
}

func runLive(ctx context.Context, cancel context.CancelFunc, path []sim.Projectile, fps int) error {
	if len(path) == 0 {
		return nil
	}
	points := positions(path)
	bounds := render.BoundsOf(points)

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	plot := render.NewPlot(width, height*2)
	follower := render.NewFollower(fps, points[0])
	tick := 0

	replay := make(chan struct{}, 1)
	resized := make(chan [2]int, 1)

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				select {
				case resized <- [2]int{ev.Width, ev.Height}:
				default:
				}
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("space"):
					select {
					case replay <- struct{}{}:
					default:
					}
				}
			}
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	targetDuration := time.Second / time.Duration(fps)
	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		case size := <-resized:
			width, height = size[0], size[1]
			term.Erase()
			term.Resize(width, height)
			plot = render.NewPlot(width, height*2)
		case <-replay:
			tick = 0
			follower.Reset(points[0])
		default:
		}

		now := time.Now()

		marker := follower.Update(points[tick])
		if tick < len(points)-1 {
			tick++
		}

		plot.Clear(render.ColorBackground)
		ground := math3d.P(bounds.Min.X, 0, 0)
		gx0, gy := bounds.Project(ground, plot.Width, plot.Height)
		gx1, _ := bounds.Project(ground.Translate(math3d.V(bounds.Size().X, 0, 0)), plot.Width, plot.Height)
		plot.DrawLine(gx0, gy, gx1, gy, render.ColorGround)
		plot.DrawPath(points[:tick+1], bounds, render.ColorPath)
		plot.DrawMarker(marker, bounds, render.ColorMarker)

		plot.Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
