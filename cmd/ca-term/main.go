package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/MdMxMyr/Automata-engine/internal/app"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/briansbrain"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/elementary"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/life"
	"github.com/MdMxMyr/Automata-engine/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Height, cfg.Width = 400, 600
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.New(screen, sim).Run(ctx)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("stopped at generation %d", sim.Census().Generation)
}
