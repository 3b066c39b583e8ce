//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"volcano/internal/app"
	"volcano/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	tcfg := terrain.FromMap(cfg.Overrides.Map())
	gen, err := terrain.NewWithConfig(tcfg)
	if err != nil {
		log.Fatalf("terrain: %v", err)
	}
	gen.SetLogger(log.Default())

	game := app.New(gen, cfg, tcfg.Seed)
	size := gen.Size()

	ebiten.SetWindowTitle("volcano")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
