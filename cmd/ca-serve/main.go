package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MdMxMyr/Automata-engine/internal/app"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/briansbrain"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/elementary"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/life"
	"github.com/MdMxMyr/Automata-engine/internal/stream"
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

	server := stream.NewServer(sim)
	httpServer := &http.Server{Addr: cfg.Addr, Handler: server.Handler()}

	go func() {
		log.Printf("Stream server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := server.Run(ctx)

	log.Println("Shutting down stream server...")
	server.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
