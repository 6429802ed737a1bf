//go:build ebiten

package app

import (
	"time"

	"github.com/NeueNeo/lenia/internal/core"
	"github.com/NeueNeo/lenia/internal/lenia"
	"github.com/NeueNeo/lenia/internal/render"
	"github.com/NeueNeo/lenia/internal/species"
	"github.com/NeueNeo/lenia/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the Lenia world to the ebiten.Game interface. The frame loop
// invokes the engine once per displayed frame; sim ticks are paced by a
// FixedStep controller so the tick rate is independent of the refresh rate.
type Game struct {
	world   *lenia.World
	painter *render.FieldPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep

	scale    int
	hudWidth int
	seed     int64
	tickOnce bool
}

// New constructs a Game for the provided world.
func New(world *lenia.World, cfg *Config) *Game {
	size := world.Size()
	return &Game{
		world:    world,
		painter:  render.NewFieldPainter(size.W, size.H),
		hud:      ui.NewHUD(world, cfg.HUDWidth),
		overlay:  ui.NewOverlay(world, cfg.Scale),
		timer:    core.NewFixedStep(cfg.TPS),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
}

// Reset respawns the field with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.SetRunning(!g.world.Running())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Spawn(species.SeedClear)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.world.Spawn(species.SeedBlob)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.world.Spawn(species.SeedRandomBlob)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.world.Spawn(species.SeedSpeciesBlob)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleSpecies(1)
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.world.Size().W * g.scale)
	}

	if g.tickOnce {
		g.world.StepOnce()
		g.tickOnce = false
	} else if g.timer.ShouldStep() {
		g.world.Step()
	}
	return nil
}

func (g *Game) cycleSpecies(direction int) {
	catalog := g.world.Catalog()
	if catalog.Len() == 0 {
		return
	}
	i := catalog.IndexOf(g.world.SpeciesName())
	next := ((i+direction)%catalog.Len() + catalog.Len()) % catalog.Len()
	_ = g.world.SelectSpecies(catalog.At(next).Name)
}

// Draw renders the current field, overlay, and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Values(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.world.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
