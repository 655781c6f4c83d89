package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/greyfall/tacnav/internal/config"
	"github.com/greyfall/tacnav/internal/grid"
	"github.com/greyfall/tacnav/internal/nav"
)

const (
	NavConfigPath = "config/nav.yaml"
	MapPath       = "config/map.yaml"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// mapFile is the yaml map fixture consumed by the simulator.
type mapFile struct {
	Width    int               `yaml:"width"`
	Height   int               `yaml:"height"`
	Walls    [][2]int          `yaml:"walls"`
	Entities map[string][2]int `yaml:"entities"`
	Queries  [][4]int          `yaml:"queries"` // sx, sy, ex, ey
}

func run(ctx context.Context) error {
	cfgPath := NavConfigPath
	if p := os.Getenv("TACNAV_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadNav(cfgPath)
	if err != nil {
		return fmt.Errorf("loading nav config: %w", err)
	}

	mapPath := MapPath
	if p := os.Getenv("TACNAV_MAP"); p != "" {
		mapPath = p
	}
	m, queries, err := loadMap(mapPath)
	if err != nil {
		return fmt.Errorf("loading map: %w", err)
	}
	slog.Info("map loaded",
		"width", m.Width, "height", m.Height,
		"walls", len(m.Walls), "entities", len(m.Entities))

	engine := nav.NewEngine(m, cfg)
	engine.PrecomputePaths()

	// The reachable batch is off the query critical path; run it next
	// to the sample queries.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		engine.PrecomputeReachableTiles()
		return nil
	})
	g.Go(func() error {
		for _, q := range queries {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			start := grid.Coord{X: q[0], Y: q[1]}
			end := grid.Coord{X: q[2], Y: q[3]}
			path := engine.ResolvePath(start, end)
			slog.Info("query resolved",
				"start", start, "end", end,
				"length", len(path), "found", len(path) > 0)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for id, pos := range m.Entities {
		tiles := engine.GetReachableTiles(pos, 7)
		slog.Info("movement range", "entity", id, "anchor", pos, "tiles", len(tiles))
	}

	slog.Info("done", "cachedPaths", engine.PathCacheLen())
	return nil
}

// loadMap reads the yaml map fixture into the engine's input surface.
func loadMap(path string) (*grid.Map, [][4]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading map %s: %w", path, err)
	}
	var mf mapFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, nil, fmt.Errorf("parsing map %s: %w", path, err)
	}
	if mf.Width <= 0 || mf.Height <= 0 {
		return nil, nil, fmt.Errorf("map %s: invalid dimensions %dx%d", path, mf.Width, mf.Height)
	}

	m := &grid.Map{
		Width:    mf.Width,
		Height:   mf.Height,
		Walls:    make([]grid.Coord, 0, len(mf.Walls)),
		Entities: make(map[string]grid.Coord, len(mf.Entities)),
	}
	for _, w := range mf.Walls {
		m.Walls = append(m.Walls, grid.Coord{X: w[0], Y: w[1]})
	}
	for id, pos := range mf.Entities {
		m.Entities[id] = grid.Coord{X: pos[0], Y: pos[1]}
	}
	return m, mf.Queries, nil
}
