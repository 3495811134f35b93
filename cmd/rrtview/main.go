// Command rrtview is an interactive terminal viewer for the rrt planner.
//
// It loads a map file, renders the terrain grid, and grows the search tree
// live: left click sets the start cell, right click sets the end cell, and
// every change of endpoints restarts the planning session. Press q or Escape
// to quit.
//
// Configuration (flags override environment, a .env file is honored):
//
//	rrtview [map file]
//	RRTGRID_MAP    – map file path (when no argument is given)
//	RRTGRID_SEED   – explicit planner seed (0 = wall clock)
//	RRTGRID_STEPS  – growth steps per frame (default 8)
package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mrpeteypoo/rrtgrid/gridmap"
	"github.com/mrpeteypoo/rrtgrid/internal/telemetry"
	"github.com/mrpeteypoo/rrtgrid/rrt"
)

const defaultStepsPerFrame = 8

func main() {
	// A .env file is optional; env vars may be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("note: .env file not loaded: %v", err)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("warning: telemetry setup failed: %v", err)
		telemetry.Noop()
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("error shutting down telemetry: %v", err)
			}
		}()
	}

	mapPath := os.Getenv("RRTGRID_MAP")
	if len(os.Args) > 1 {
		mapPath = os.Args[1]
	}
	if mapPath == "" {
		log.Fatal("no map file: pass a path argument or set RRTGRID_MAP")
	}

	grid, err := gridmap.LoadFile(mapPath)
	if err != nil {
		log.Fatalf("failed to load map: %v", err)
	}

	v := &viewer{
		grid:    grid,
		planner: rrt.New(rrt.WithSeed(envInt64("RRTGRID_SEED", 0))),
		steps:   int(envInt64("RRTGRID_STEPS", defaultStepsPerFrame)),
	}
	if err := v.run(ctx); err != nil {
		log.Fatalf("viewer error: %v", err)
	}
}

func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("warning: ignoring %s=%q: %v", key, raw, err)
		return fallback
	}

	return v
}

// viewer owns the screen and the single active planning session.
type viewer struct {
	grid    *gridmap.GridMap
	planner *rrt.Planner
	steps   int

	start, end rrt.Point
	span       trace.Span
	grown      int
}

func (v *viewer) run(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.EnableMouse()
	screen.Clear()

	if err := v.restart(ctx); err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Rune() == 'q' {
					close(quit)
					v.endSpan()
					return nil
				}
			case *tcell.EventMouse:
				if err := v.handleMouse(ctx, e); err != nil {
					close(quit)
					return err
				}
			}
		case <-ticker.C:
			v.grow()
			v.draw(screen)
			screen.Show()
		}
	}
}

// restart begins a fresh session between the current endpoints.
func (v *viewer) restart(ctx context.Context) error {
	v.endSpan()
	if err := v.planner.PrepareTree(v.grid, v.start, v.end); err != nil {
		return err
	}
	_, v.span = telemetry.Tracer().Start(ctx, "plan",
		trace.WithAttributes(
			attribute.String("map", v.grid.SourceLocation()),
			attribute.String("start", v.start.String()),
			attribute.String("end", v.end.String()),
		))
	v.grown = 0

	return nil
}

func (v *viewer) endSpan() {
	if v.span == nil {
		return
	}
	v.span.SetAttributes(
		attribute.Int("steps", v.grown),
		attribute.Int("nodes", v.planner.NodeCount()),
		attribute.Bool("finished", v.planner.HasFinished()),
	)
	v.span.End()
	v.span = nil
}

func (v *viewer) grow() {
	if v.planner.HasFinished() {
		v.endSpan()
		return
	}
	for i := 0; i < v.steps; i++ {
		v.planner.GenerateBranch()
		v.grown++
	}
}

// handleMouse turns clicks into new start/end cells. Only cells that pass
// the land probe (OutOfBounds reference admits everything traversable) may
// become endpoints, mirroring the pointer validation rule of the planner.
func (v *viewer) handleMouse(ctx context.Context, e *tcell.EventMouse) error {
	x, y := e.Position()
	cell := rrt.Point{X: x, Y: y}
	if !v.planner.IsValidTile(cell, gridmap.OutOfBounds) {
		return nil
	}

	changed := false
	if e.Buttons()&tcell.Button1 != 0 && cell != v.start {
		v.start = cell
		changed = true
	}
	if e.Buttons()&tcell.Button2 != 0 && cell != v.end {
		v.end = cell
		changed = true
	}
	if !changed {
		return nil
	}

	return v.restart(ctx)
}

// draw renders terrain, tree nodes, endpoints and — once finished — the
// extracted route.
func (v *viewer) draw(screen tcell.Screen) {
	for y := 0; y < v.grid.Height(); y++ {
		for x := 0; x < v.grid.Width(); x++ {
			kind, err := v.grid.Tile(x, y)
			if err != nil {
				continue
			}
			screen.SetContent(x, y, kind.Rune(), nil, terrainStyle(kind))
		}
	}

	nodeStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	v.planner.Edges(func(_, child rrt.Point) {
		screen.SetContent(child.X, child.Y, '+', nil, nodeStyle)
	})

	if path, err := v.planner.Path(); err == nil {
		routeStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		for _, p := range path {
			screen.SetContent(p.X, p.Y, '*', nil, routeStyle)
		}
	}

	markStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	screen.SetContent(v.start.X, v.start.Y, 'A', nil, markStyle)
	screen.SetContent(v.end.X, v.end.Y, 'B', nil, markStyle)
}

func terrainStyle(kind gridmap.TerrainKind) tcell.Style {
	base := tcell.StyleDefault
	switch kind {
	case gridmap.Terrain:
		return base.Foreground(tcell.ColorDarkGreen)
	case gridmap.OutOfBounds:
		return base.Foreground(tcell.ColorGray)
	case gridmap.Tree:
		return base.Foreground(tcell.ColorGreen)
	case gridmap.Swamp:
		return base.Foreground(tcell.ColorOlive)
	case gridmap.Water:
		return base.Foreground(tcell.ColorBlue)
	default:
		return base
	}
}
