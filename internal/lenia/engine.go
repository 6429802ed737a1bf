package lenia

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/NeueNeo/lenia/internal/core"
	"github.com/NeueNeo/lenia/internal/species"
	pcore "github.com/NeueNeo/lenia/pkg/core"
)

// Settings bundles every value the stepping rule reads. A copy is sampled
// once at the start of each tick and held fixed for its duration, so no
// external update can change a parameter partway through a step.
type Settings struct {
	R           int
	Beta        []float64
	KernelSigma float64

	Mu    float64
	Sigma float64

	DT      float64
	Speed   int
	Running bool
}

// Validate rejects configurations the engine must never run with. R is not
// range-checked upward here; the kernel table clamps it to maxKernelRadius.
func (s Settings) Validate() error {
	if s.R <= 0 {
		return fmt.Errorf("lenia: kernel radius must be positive, got %d", s.R)
	}
	if len(s.Beta) == 0 {
		return fmt.Errorf("lenia: beta ring weights must not be empty")
	}
	if len(s.Beta) > 4 {
		return fmt.Errorf("lenia: at most 4 beta ring weights supported, got %d", len(s.Beta))
	}
	for i, b := range s.Beta {
		if b < 0 || math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("lenia: beta[%d] must be a non-negative number, got %v", i, b)
		}
	}
	if !(s.KernelSigma > 0) {
		return fmt.Errorf("lenia: kernel sigma must be positive, got %v", s.KernelSigma)
	}
	if !(s.Sigma > 0) {
		return fmt.Errorf("lenia: growth sigma must be positive, got %v", s.Sigma)
	}
	if !(s.DT > 0) || math.IsInf(s.DT, 0) {
		return fmt.Errorf("lenia: dt must be a positive finite number, got %v", s.DT)
	}
	if s.Speed < 1 {
		return fmt.Errorf("lenia: speed must be at least 1, got %d", s.Speed)
	}
	return nil
}

func (s Settings) clone() Settings {
	s.Beta = append([]float64(nil), s.Beta...)
	return s
}

// World advances a continuous-valued field on a toroidal grid under the
// Lenia update rule. The two field buffers are owned exclusively by the
// world and swapped after every completed tick, so readers of Values always
// see a buffer that is stable between ticks.
type World struct {
	cfg Config

	w, h int
	cur  *core.FloatGrid
	nxt  *core.FloatGrid

	catalog *species.Catalog
	current species.Species

	// pending is the latest accepted configuration; active is the copy a
	// tick works against. Updates land in pending and take effect at the
	// next tick boundary.
	pending Settings
	active  Settings

	table      kernelTable
	tableDirty bool

	diagnostics bool
	potential   []float64

	rng *pcore.RNG
}

// New returns a Lenia world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Lenia world configured from the provided options.
// The startup species falls back to the catalog default when the configured
// name is unknown.
func NewWithConfig(cfg Config) *World {
	catalog := species.NewCatalog()
	sp, ok := catalog.ByName(cfg.Species)
	if !ok {
		sp = catalog.Default()
	}
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		cur:     core.NewFloatGrid(cfg.Width, cfg.Height),
		nxt:     core.NewFloatGrid(cfg.Width, cfg.Height),
		catalog: catalog,
		rng:     pcore.NewRNG(cfg.Seed),
	}
	w.w = w.cur.W
	w.h = w.cur.H
	w.adoptSpecies(sp)
	w.pending.Running = true
	w.active = w.pending.clone()
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "lenia" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Values exposes the current field buffer. The slice contents are stable
// until the next tick completes.
func (w *World) Values() []float64 { return w.cur.Cells() }

// Catalog exposes the compiled-in species presets.
func (w *World) Catalog() *species.Catalog { return w.catalog }

// CurrentSpecies returns a copy of the preset the run parameters started
// from. Direct setting overrides may have since detached from it.
func (w *World) CurrentSpecies() species.Species { return w.current.Clone() }

// SpeciesName reports the name of the preset the run started from.
func (w *World) SpeciesName() string { return w.current.Name }

// Settings returns a copy of the latest accepted configuration.
func (w *World) Settings() Settings { return w.pending.clone() }

// ApplySettings validates and installs a new configuration. Invalid updates
// are rejected with an error and the previous configuration stays active.
// The update takes effect at the next tick boundary.
func (w *World) ApplySettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s = s.clone()
	if w.kernelChanged(s) {
		w.tableDirty = true
	}
	w.pending = s
	return nil
}

func (w *World) kernelChanged(s Settings) bool {
	if s.R != w.pending.R || s.KernelSigma != w.pending.KernelSigma {
		return true
	}
	if len(s.Beta) != len(w.pending.Beta) {
		return true
	}
	for i := range s.Beta {
		if s.Beta[i] != w.pending.Beta[i] {
			return true
		}
	}
	return false
}

// SelectSpecies switches to the named preset and respawns the field with the
// preset's seed mode. An unknown name is rejected and leaves both the field
// and the current parameters unchanged.
func (w *World) SelectSpecies(name string) error {
	sp, ok := w.catalog.ByName(name)
	if !ok {
		return fmt.Errorf("lenia: unknown species %q", name)
	}
	running := w.pending.Running
	w.adoptSpecies(sp)
	w.pending.Running = running
	w.Spawn(sp.Mode)
	return nil
}

// adoptSpecies installs the preset parameters into pending. Run parameters
// are detached from the preset: hand-tuned dt and speed survive a species
// switch, falling back to the session config on first adoption.
func (w *World) adoptSpecies(sp species.Species) {
	dt := w.pending.DT
	if dt <= 0 {
		dt = w.cfg.Params.DT
	}
	speed := w.pending.Speed
	if speed < 1 {
		speed = w.cfg.Params.Speed
	}
	w.current = sp
	w.pending = Settings{
		R:           sp.R,
		Beta:        append([]float64(nil), sp.Beta...),
		KernelSigma: sp.KernelSigma,
		Mu:          sp.Mu,
		Sigma:       sp.Sigma,
		DT:          dt,
		Speed:       speed,
		Running:     w.pending.Running,
	}
	w.tableDirty = true
}

// SetRunning pauses or resumes the tick loop. Pausing takes effect before
// the next tick begins; ticks themselves are never interrupted.
func (w *World) SetRunning(running bool) {
	w.pending.Running = running
}

// Running reports whether Step will advance the field.
func (w *World) Running() bool { return w.pending.Running }

// EnableDiagnostics toggles recording of the per-cell local potential.
func (w *World) EnableDiagnostics(on bool) {
	w.diagnostics = on
	if on && w.potential == nil {
		w.potential = make([]float64, w.w*w.h)
	}
}

// Potential exposes the local potential recorded during the last tick, or
// nil when diagnostics are disabled.
func (w *World) Potential() []float64 {
	if !w.diagnostics {
		return nil
	}
	return w.potential
}

// Reset reseeds the randomness and respawns the field using the current
// species' seed mode. A zero seed falls back to the configured session seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pcore.NewRNG(effective)
	w.Spawn(w.current.Mode)
}

// Step runs the configured number of ticks when the simulation is running.
// Ticks execute strictly sequentially, each sampling the pending settings
// once and ending with its own buffer swap.
func (w *World) Step() {
	if !w.pending.Running {
		return
	}
	n := w.pending.Speed
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		w.beginTick()
		w.tick()
	}
}

// StepOnce advances exactly one tick regardless of the running flag.
func (w *World) StepOnce() {
	w.beginTick()
	w.tick()
}

func (w *World) beginTick() {
	w.active = w.pending.clone()
	if w.tableDirty || w.table.offsets == nil {
		w.table = buildKernelTable(w.active.R, w.active.Beta, w.active.KernelSigma)
		w.tableDirty = false
	}
}

// tick computes the full convolution+growth+integrate+clamp pass and then
// commits the buffer swap. The per-cell work is spread across row bands;
// each band writes a disjoint region of the next buffer, so the pass is
// deterministic and appears atomic to callers.
func (w *World) tick() {
	rows := w.h
	workers := runtime.GOMAXPROCS(0)
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		w.tickRows(0, rows)
	} else {
		chunk := (rows + workers - 1) / workers
		var wg sync.WaitGroup
		for start := 0; start < rows; start += chunk {
			end := start + chunk
			if end > rows {
				end = rows
			}
			wg.Add(1)
			go func(s, e int) {
				defer wg.Done()
				w.tickRows(s, e)
			}(start, end)
		}
		wg.Wait()
	}
	w.cur, w.nxt = w.nxt, w.cur
}

func (w *World) tickRows(y0, y1 int) {
	s := w.active
	width, height := w.w, w.h
	cur := w.cur.Cells()
	nxt := w.nxt.Cells()
	offsets := w.table.offsets
	kernelSum := w.table.sum

	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			var weighted float64
			for _, o := range offsets {
				nx := ((x+o.dx)%width + width) % width
				ny := ((y+o.dy)%height + height) % height
				weighted += o.weight * sanitize(cur[ny*width+nx])
			}
			u := 0.0
			if kernelSum > kernelSumEpsilon {
				u = weighted / kernelSum
			}
			idx := y*width + x
			if w.diagnostics {
				w.potential[idx] = u
			}
			v := sanitize(cur[idx]) + s.DT*Growth(u, s.Mu, s.Sigma)
			nxt[idx] = clamp01(v)
		}
	}
}

// sanitize substitutes 0 for any sampled value that is NaN, infinite, or
// outside [0, 1]. Anomalies are recovered locally and never propagated.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
		return 0
	}
	return v
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Mass returns the total of all cell values in the current buffer.
func (w *World) Mass() float64 {
	var total float64
	for _, v := range w.cur.Cells() {
		total += sanitize(v)
	}
	return total
}

// ActiveCells counts cells whose value exceeds the given threshold.
func (w *World) ActiveCells(threshold float64) int {
	count := 0
	for _, v := range w.cur.Cells() {
		if sanitize(v) > threshold {
			count++
		}
	}
	return count
}
