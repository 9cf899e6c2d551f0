package life

import (
	"io"
	"log"
	"strconv"
	"time"

	"lifegrid/pkg/core"
)

var _ core.Sim = (*Life)(nil)

// Life drives one Game of Life grid: it owns the grid state, the stepping
// clock and the pattern catalog, and applies commands from a shell. All
// methods must be called from a single goroutine.
type Life struct {
	cfg     Config
	state   *core.GridState
	clock   *core.FixedStep
	catalog *Catalog
	gen     int
	cells   []uint8
	logger  *log.Logger
}

// New returns a stopped, all-dead simulation with the default catalog.
func New(cfg Config) *Life {
	return NewWithCatalog(cfg, DefaultCatalog())
}

// NewWithCatalog returns a simulation seeded from the provided catalog.
func NewWithCatalog(cfg Config, catalog *Catalog) *Life {
	clock := core.NewFixedStep(cfg.Interval)
	clock.SetOverflow(cfg.Overflow)
	state := core.NewGridState(cfg.Size)
	cfg.Size = state.Size()
	cfg.Interval = clock.Interval()
	return &Life{
		cfg:     cfg,
		state:   state,
		clock:   clock,
		catalog: catalog,
		logger:  log.New(io.Discard, "", 0),
	}
}

// SetLogger routes diagnostic output to l. A nil logger silences it.
func (l *Life) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	l.logger = logger
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Size, H: l.cfg.Size} }

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// Cells exposes the current grid as a row-major 0/1 buffer for renderers.
// The buffer is reused between calls.
func (l *Life) Cells() []uint8 {
	l.cells = l.state.Snapshot().Binary(l.cells)
	return l.cells
}

// Snapshot returns a read-only copy of the grid.
func (l *Life) Snapshot() core.Grid { return l.state.Snapshot() }

// RunState reports whether the clock is running.
func (l *Life) RunState() core.RunState { return l.clock.State() }

// Patterns lists the catalog names for menus.
func (l *Life) Patterns() []string { return l.catalog.Names() }

// Generation counts steps since the grid was last cleared, stamped or reset.
func (l *Life) Generation() int { return l.gen }

// ToggleCell flips a single cell.
func (l *Life) ToggleCell(x, y int) error {
	if err := l.state.Toggle(x, y); err != nil {
		return err
	}
	l.logger.Printf("toggled cell (%d,%d)", x, y)
	return nil
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.state.Clear()
	l.gen = 0
	l.logger.Printf("grid cleared")
}

// ToggleRun starts or stops the clock and returns the new state.
func (l *Life) ToggleRun() core.RunState {
	state := l.clock.Toggle()
	l.logger.Printf("simulation %s", state)
	return state
}

// ApplyPattern replaces the grid with the named catalog pattern.
func (l *Life) ApplyPattern(name string) error {
	stamped, err := l.catalog.Apply(name, l.state)
	if err != nil {
		return err
	}
	l.gen = 0
	if p, ok := l.catalog.Lookup(name); ok && len(p.Cells) > stamped {
		l.logger.Printf("loaded pattern %s: %d cells, %d outside the grid", name, stamped, len(p.Cells)-stamped)
		return nil
	}
	l.logger.Printf("loaded pattern %s: %d cells", name, stamped)
	return nil
}

// Tick feeds an elapsed time delta into the clock and steps once when an
// interval has passed. It reports whether a generation was computed.
func (l *Life) Tick(delta time.Duration) (bool, error) {
	due, err := l.clock.Advance(delta)
	if err != nil || !due {
		return false, err
	}
	l.Step()
	return true, nil
}

// Step computes and publishes the next generation regardless of the clock.
func (l *Life) Step() {
	cur := l.state.Snapshot()
	next := NextGeneration(cur, l.cfg.Policy)
	// Sizes always match: both come from l.state.
	_ = l.state.Publish(next)
	l.gen++
	l.logger.Printf("generation %d: alive %d -> %d", l.gen, cur.Population(), next.Population())
}

// Reset clears the grid for seed 0 and otherwise fills it with a soup
// generated from seed according to the configured seed mode.
func (l *Life) Reset(seed int64) {
	l.gen = 0
	if seed == 0 {
		l.state.Clear()
		return
	}
	var soup core.Grid
	switch l.cfg.SeedMode {
	case SeedNoiseMode:
		soup = SeedNoise(l.cfg.Size, seed, l.cfg.Density, l.cfg.NoiseScale)
	default:
		soup = SeedRandom(l.cfg.Size, seed, l.cfg.Density)
	}
	_ = l.state.Publish(soup)
	l.logger.Printf("reset with %s seed %d: %d alive", l.cfg.SeedMode, seed, soup.Population())
}

// Parameters describes the simulation for status displays.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "n", Label: "Size", Type: core.ParamTypeInt, Value: strconv.Itoa(l.cfg.Size)},
				{Key: "policy", Label: "Edges", Type: core.ParamTypeString, Value: l.cfg.Policy.String()},
				{Key: "population", Label: "Alive", Type: core.ParamTypeInt, Value: strconv.Itoa(l.state.Snapshot().Population())},
			},
		},
		{
			Name: "Clock",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: l.clock.State().String()},
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(l.gen)},
				{Key: "interval", Label: "Interval", Type: core.ParamTypeDuration, Value: l.clock.Interval().String()},
				{Key: "overflow", Label: "Overflow", Type: core.ParamTypeString, Value: l.clock.Overflow().String()},
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				{Key: "seed_mode", Label: "Mode", Type: core.ParamTypeString, Value: string(l.cfg.SeedMode)},
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(l.cfg.Density, 'f', -1, 64)},
			},
		},
	}}
}
