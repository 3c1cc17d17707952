//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/MdMxMyr/Automata-engine/internal/app"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/briansbrain"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/elementary"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	plan, err := cfg.ResolvePlan()
	if err != nil {
		log.Fatalf("plan: %v", err)
	}
	sim, err := app.NewSimulation(*cfg, plan)
	if err != nil {
		log.Fatalf("simulation: %v", err)
	}

	game := app.New(sim)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("automata - " + cfg.Species)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
