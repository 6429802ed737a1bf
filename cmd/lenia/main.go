//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/NeueNeo/lenia/internal/app"
	"github.com/NeueNeo/lenia/internal/lenia"
	"github.com/NeueNeo/lenia/internal/species"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	worldCfg := lenia.DefaultConfig()
	worldCfg.Width = cfg.Width
	worldCfg.Height = cfg.Height
	worldCfg.Seed = cfg.Seed
	worldCfg.Species = cfg.Species
	worldCfg.Params.DT = cfg.DT
	worldCfg.Params.Speed = cfg.Speed

	world := lenia.NewWithConfig(worldCfg)
	if _, ok := world.Catalog().ByName(cfg.Species); !ok {
		log.Fatalf("unknown species %q (available: %v)", cfg.Species, world.Catalog().Names())
	}
	world.Reset(cfg.Seed)
	if mode, ok := species.ParseSeedMode(cfg.Mode); ok && mode != world.CurrentSpecies().Mode {
		world.Spawn(mode)
	}

	game := app.New(world, cfg)
	size := world.Size()

	ebiten.SetWindowTitle("lenia — " + world.SpeciesName())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
