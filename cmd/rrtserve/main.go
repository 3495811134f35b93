// Command rrtserve exposes the rrt planner over HTTP and WebSocket so a
// browser can render tree growth live.
//
// Endpoints:
//
//	GET /map – the loaded grid as JSON (dimensions plus tile rows).
//	GET /ws  – WebSocket; a client submits {"action":"plan",...} and the
//	           server streams batched tree edges followed by the final path.
//
// Configuration (environment, with optional .env file):
//
//	RRTGRID_MAP  – map file path (or first CLI argument)
//	RRTGRID_ADDR – listen address (default ":8080")
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mrpeteypoo/rrtgrid/gridmap"
	"github.com/mrpeteypoo/rrtgrid/internal/telemetry"
	"github.com/mrpeteypoo/rrtgrid/rrt"
)

const (
	growthBatch   = 512
	growthBudget  = 2_000_000
	batchInterval = 50 * time.Millisecond
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func main() {
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

	addr := os.Getenv("RRTGRID_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	r := gin.Default()
	r.GET("/map", handleMap(grid))
	r.GET("/ws", handleWebsocket(grid))

	log.Printf("serving %s on %s", grid.SourceLocation(), addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// handleMap serializes the grid once per request; the grid is immutable so
// no locking is needed.
func handleMap(grid *gridmap.GridMap) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows := make([]string, grid.Height())
		for y := 0; y < grid.Height(); y++ {
			row := make([]rune, grid.Width())
			for x := 0; x < grid.Width(); x++ {
				kind, _ := grid.Tile(x, y)
				row[x] = kind.Rune()
			}
			rows[y] = string(row)
		}
		c.JSON(http.StatusOK, gin.H{
			"width":  grid.Width(),
			"height": grid.Height(),
			"source": grid.SourceLocation(),
			"rows":   rows,
		})
	}
}

// planRequest is the client's planning command.
type planRequest struct {
	Action string `json:"action"`
	Start  cell   `json:"start"`
	End    cell   `json:"end"`
	Seed   int64  `json:"seed"`
}

type cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type edge struct {
	From cell `json:"from"`
	To   cell `json:"to"`
}

// client serializes writes to one WebSocket connection and owns at most one
// running planning session at a time.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	stop    chan struct{}
	done    sync.WaitGroup
}

func (cl *client) send(v any) error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()

	return cl.conn.WriteJSON(v)
}

// cancel stops the running session, if any, and waits for it to exit.
func (cl *client) cancel() {
	if cl.stop != nil {
		close(cl.stop)
		cl.done.Wait()
		cl.stop = nil
	}
}

func handleWebsocket(grid *gridmap.GridMap) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("ws upgrade error: %v", err)
			return
		}
		defer conn.Close()

		cl := &client{conn: conn}
		defer cl.cancel()

		for {
			var req planRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			if req.Action != "plan" {
				_ = cl.send(gin.H{"type": "error", "error": "unknown action: " + req.Action})
				continue
			}

			// A new plan supersedes the previous session.
			cl.cancel()
			cl.stop = make(chan struct{})
			cl.done.Add(1)
			go runSession(grid, cl, req, cl.stop)
		}
	}
}

// runSession drives one planning session, streaming growth batches until
// the goal is reached, the step budget is exhausted, or the client cancels.
func runSession(grid *gridmap.GridMap, cl *client, req planRequest, stop <-chan struct{}) {
	defer cl.done.Done()

	_, span := telemetry.Tracer().Start(context.Background(), "plan")
	defer span.End()

	session := uuid.NewString()
	span.SetAttributes(attribute.String("session", session))

	planner := rrt.New(rrt.WithSeed(req.Seed))
	start := rrt.Point{X: req.Start.X, Y: req.Start.Y}
	end := rrt.Point{X: req.End.X, Y: req.End.Y}
	if err := planner.PrepareTree(grid, start, end); err != nil {
		_ = cl.send(gin.H{"type": "error", "session": session, "error": err.Error()})
		return
	}
	_ = cl.send(gin.H{"type": "session", "session": session, "start": req.Start, "end": req.End})

	sent := make(map[edge]bool)
	steps := 0
	for !planner.HasFinished() && steps < growthBudget {
		select {
		case <-stop:
			_ = cl.send(gin.H{"type": "cancelled", "session": session})
			return
		default:
		}

		for i := 0; i < growthBatch; i++ {
			planner.GenerateBranch()
		}
		steps += growthBatch

		var fresh []edge
		planner.Edges(func(parent, child rrt.Point) {
			e := edge{From: cell{parent.X, parent.Y}, To: cell{child.X, child.Y}}
			if !sent[e] {
				sent[e] = true
				fresh = append(fresh, e)
			}
		})
		if len(fresh) > 0 {
			if err := cl.send(gin.H{
				"type": "growth", "session": session,
				"edges": fresh, "nodes": planner.NodeCount(), "steps": steps,
			}); err != nil {
				return
			}
		}
		time.Sleep(batchInterval)
	}

	span.SetAttributes(
		attribute.Int("steps", steps),
		attribute.Int("nodes", planner.NodeCount()),
		attribute.Bool("finished", planner.HasFinished()),
	)

	if !planner.HasFinished() {
		_ = cl.send(gin.H{"type": "aborted", "session": session, "steps": steps})
		return
	}
	path, err := planner.Path()
	if err != nil {
		_ = cl.send(gin.H{"type": "error", "session": session, "error": err.Error()})
		return
	}
	route := make([]cell, len(path))
	for i, p := range path {
		route[i] = cell{X: p.X, Y: p.Y}
	}
	_ = cl.send(gin.H{"type": "finished", "session": session, "path": route, "nodes": planner.NodeCount(), "steps": steps})
}
