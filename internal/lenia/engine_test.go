package lenia

import (
	"math"
	"slices"
	"testing"

	"github.com/NeueNeo/lenia/internal/species"
)

func testWorld(w, h int, name string) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Species = name
	return NewWithConfig(cfg)
}

func TestClearFieldStaysZero(t *testing.T) {
	world := testWorld(32, 32, "orbium")
	world.Spawn(species.SeedClear)

	for i := 0; i < 10; i++ {
		world.StepOnce()
	}
	for i, v := range world.Values() {
		if v != 0 {
			t.Fatalf("cell %d = %v after stepping a cleared field, want exactly 0", i, v)
		}
	}
}

func TestCellValuesStayInRange(t *testing.T) {
	world := testWorld(48, 48, "orbium")
	world.Reset(7)
	world.Spawn(species.SeedRandomBlob)

	s := world.Settings()
	s.DT = 0.5
	if err := world.ApplySettings(s); err != nil {
		t.Fatalf("ApplySettings: %v", err)
	}

	for i := 0; i < 30; i++ {
		world.StepOnce()
		for j, v := range world.Values() {
			if math.IsNaN(v) || v < 0 || v > 1 {
				t.Fatalf("tick %d cell %d = %v outside [0, 1]", i, j, v)
			}
		}
	}
}

func TestDeterministicWithExplicitPattern(t *testing.T) {
	pattern := [][]float64{
		{0, 0.4, 0.8, 0.4, 0},
		{0.4, 0.9, 1, 0.9, 0.4},
		{0.8, 1, 1, 1, 0.8},
		{0.4, 0.9, 1, 0.9, 0.4},
		{0, 0.4, 0.8, 0.4, 0},
	}

	run := func() []float64 {
		world := testWorld(40, 40, "orbium")
		world.StampPattern(pattern)
		for i := 0; i < 20; i++ {
			world.StepOnce()
		}
		return append([]float64(nil), world.Values()...)
	}

	first := run()
	second := run()
	if !slices.Equal(first, second) {
		t.Fatal("identical pattern and parameters must reproduce identical fields")
	}
}

func TestToroidalTranslationInvariance(t *testing.T) {
	const size = 32
	const shift = 16

	settings := Settings{
		R:           3,
		Beta:        []float64{1},
		KernelSigma: 0.15,
		Mu:          0.15,
		Sigma:       0.02,
		DT:          0.1,
		Speed:       1,
		Running:     true,
	}

	seedAt := func(world *World, ox, oy int) {
		cells := world.Values()
		blob := [][]float64{
			{0.2, 0.6, 0.2},
			{0.6, 1, 0.6},
			{0.2, 0.6, 0.2},
		}
		for dy, row := range blob {
			for dx, v := range row {
				x := ((ox+dx)%size + size) % size
				y := ((oy+dy)%size + size) % size
				cells[y*size+x] = v
			}
		}
	}

	worldA := testWorld(size, size, "orbium")
	worldB := testWorld(size, size, "orbium")
	for _, world := range []*World{worldA, worldB} {
		world.Spawn(species.SeedClear)
		if err := world.ApplySettings(settings); err != nil {
			t.Fatalf("ApplySettings: %v", err)
		}
	}
	// Same blob near the edge of A and shifted by half the field in B.
	seedAt(worldA, size-2, size-2)
	seedAt(worldB, size-2+shift, size-2+shift)

	for i := 0; i < 8; i++ {
		worldA.StepOnce()
		worldB.StepOnce()
	}

	a := worldA.Values()
	b := worldB.Values()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sx := (x + shift) % size
			sy := (y + shift) % size
			if math.Abs(a[y*size+x]-b[sy*size+sx]) > 1e-12 {
				t.Fatalf("cell (%d,%d): %v vs shifted %v; torus translation must not change dynamics",
					x, y, a[y*size+x], b[sy*size+sx])
			}
		}
	}
}

func TestPausedFieldIsFrozen(t *testing.T) {
	world := testWorld(32, 32, "orbium")
	world.Reset(3)

	before := append([]float64(nil), world.Values()...)
	world.SetRunning(false)
	for i := 0; i < 5; i++ {
		world.Step()
	}
	if !slices.Equal(before, world.Values()) {
		t.Fatal("Step must not mutate the field while paused")
	}

	world.SetRunning(true)
	world.Step()
	if slices.Equal(before, world.Values()) {
		t.Fatal("Step must advance the field after resuming")
	}
}

func TestSpeedRunsMultipleTicksPerStep(t *testing.T) {
	fast := testWorld(32, 32, "orbium")
	slow := testWorld(32, 32, "orbium")
	fast.Reset(11)
	slow.Reset(11)

	s := fast.Settings()
	s.Speed = 3
	if err := fast.ApplySettings(s); err != nil {
		t.Fatalf("ApplySettings: %v", err)
	}

	fast.Step()
	for i := 0; i < 3; i++ {
		slow.Step()
	}
	if !slices.Equal(fast.Values(), slow.Values()) {
		t.Fatal("speed=3 single Step must equal three speed=1 Steps")
	}
}

func TestRejectedSettingsKeepPrevious(t *testing.T) {
	world := testWorld(16, 16, "orbium")
	before := world.Settings()

	invalid := []Settings{
		{R: 0, Beta: []float64{1}, KernelSigma: 0.15, Mu: 0.15, Sigma: 0.017, DT: 0.1, Speed: 1},
		{R: 13, Beta: nil, KernelSigma: 0.15, Mu: 0.15, Sigma: 0.017, DT: 0.1, Speed: 1},
		{R: 13, Beta: []float64{1, 1, 1, 1, 1}, KernelSigma: 0.15, Mu: 0.15, Sigma: 0.017, DT: 0.1, Speed: 1},
		{R: 13, Beta: []float64{-1}, KernelSigma: 0.15, Mu: 0.15, Sigma: 0.017, DT: 0.1, Speed: 1},
		{R: 13, Beta: []float64{1}, KernelSigma: 0, Mu: 0.15, Sigma: 0.017, DT: 0.1, Speed: 1},
		{R: 13, Beta: []float64{1}, KernelSigma: 0.15, Mu: 0.15, Sigma: 0, DT: 0.1, Speed: 1},
		{R: 13, Beta: []float64{1}, KernelSigma: 0.15, Mu: 0.15, Sigma: 0.017, DT: 0, Speed: 1},
		{R: 13, Beta: []float64{1}, KernelSigma: 0.15, Mu: 0.15, Sigma: 0.017, DT: 0.1, Speed: 0},
	}
	for i, s := range invalid {
		if err := world.ApplySettings(s); err == nil {
			t.Fatalf("invalid settings %d accepted", i)
		}
	}

	after := world.Settings()
	if after.R != before.R || after.Mu != before.Mu || after.Sigma != before.Sigma ||
		after.KernelSigma != before.KernelSigma || !slices.Equal(after.Beta, before.Beta) {
		t.Fatal("rejected updates must leave the previous configuration intact")
	}
}

func TestNumericAnomalyRecoveredLocally(t *testing.T) {
	world := testWorld(24, 24, "orbium")
	world.Reset(5)

	cells := world.Values()
	cells[10] = math.NaN()
	cells[20] = math.Inf(1)
	cells[30] = -3
	cells[40] = 7

	world.StepOnce()
	for i, v := range world.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
			t.Fatalf("cell %d = %v after anomaly injection; anomalies must not propagate", i, v)
		}
	}
}

func TestUnknownSpeciesLeavesStateUnchanged(t *testing.T) {
	world := testWorld(32, 32, "orbium")
	world.Reset(9)

	beforeSettings := world.Settings()
	beforeField := append([]float64(nil), world.Values()...)

	if err := world.SelectSpecies("does-not-exist"); err == nil {
		t.Fatal("unknown species name must be rejected")
	}
	if world.SpeciesName() != "orbium" {
		t.Fatalf("species changed to %q on rejected lookup", world.SpeciesName())
	}
	after := world.Settings()
	if after.R != beforeSettings.R || after.Mu != beforeSettings.Mu || !slices.Equal(after.Beta, beforeSettings.Beta) {
		t.Fatal("rejected species lookup must leave parameters unchanged")
	}
	if !slices.Equal(beforeField, world.Values()) {
		t.Fatal("rejected species lookup must leave the field unchanged")
	}
}

func TestSelectSpeciesRespawnsField(t *testing.T) {
	world := testWorld(64, 64, "orbium")
	world.Reset(2)

	if err := world.SelectSpecies("geminium"); err != nil {
		t.Fatalf("SelectSpecies: %v", err)
	}
	if world.SpeciesName() != "geminium" {
		t.Fatalf("species = %q, want geminium", world.SpeciesName())
	}
	s := world.Settings()
	if s.R != 18 || len(s.Beta) != 3 {
		t.Fatalf("settings not adopted from preset: R=%d beta=%v", s.R, s.Beta)
	}
	if world.Mass() == 0 {
		t.Fatal("species switch must respawn a non-empty field")
	}
}

func TestPotentialDiagnostics(t *testing.T) {
	world := testWorld(32, 32, "orbium")
	world.Reset(4)

	if world.Potential() != nil {
		t.Fatal("potential must be nil while diagnostics are disabled")
	}
	world.EnableDiagnostics(true)
	world.StepOnce()

	potential := world.Potential()
	if len(potential) != 32*32 {
		t.Fatalf("potential length = %d, want %d", len(potential), 32*32)
	}
	var peak float64
	for i, u := range potential {
		if math.IsNaN(u) || u < 0 || u > 1 {
			t.Fatalf("potential[%d] = %v outside [0, 1]", i, u)
		}
		if u > peak {
			peak = u
		}
	}
	if peak == 0 {
		t.Fatal("seeded field must produce non-zero potential somewhere")
	}
}

func TestMassStaysBoundedOrbiumScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("512x512 scenario is slow; skipped with -short")
	}

	cfg := DefaultConfig()
	cfg.Width = 512
	cfg.Height = 512
	cfg.Species = "orbium"
	cfg.Params.DT = 0.1
	world := NewWithConfig(cfg)
	world.Reset(1337)

	s := world.Settings()
	s.Sigma = 0.015
	if err := world.ApplySettings(s); err != nil {
		t.Fatalf("ApplySettings: %v", err)
	}

	total := float64(512 * 512)
	for i := 0; i < 100; i++ {
		world.StepOnce()
		mass := world.Mass()
		if mass < total*0.001 {
			t.Fatalf("tick %d: field collapsed, mass %v", i, mass)
		}
		if mass > total*0.5 {
			t.Fatalf("tick %d: field saturated, mass %v", i, mass)
		}
	}
}
