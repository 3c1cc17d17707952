package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters shared by every driver.
type Config struct {
	Height      int
	Width       int
	Resolution  int
	Species     string
	TypeID      string
	Color       string
	Opacity     int
	Rule        int
	TPS         int
	Seed        int64
	Workers     int
	Generations int
	Plan        string
	Addr        string
	Scale       int
}

// NewConfig returns a Config populated with sensible defaults: a 1000x1000
// canvas at 10px per cell running one translucent white Life species at ten
// generations per second.
func NewConfig() *Config {
	return &Config{
		Height:     1000,
		Width:      1000,
		Resolution: 10,
		Species:    "life",
		TypeID:     "cell-1",
		Color:      "255,255,255",
		Opacity:    100,
		Rule:       110,
		TPS:        10,
		Seed:       time.Now().UnixNano(),
		Workers:    1,
		Addr:       ":8080",
		Scale:      1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Resolution, "resolution", c.Resolution, "cell size in pixels")
	fs.StringVar(&c.Species, "species", c.Species, "species to seed when no plan is given")
	fs.StringVar(&c.TypeID, "type", c.TypeID, "type id of the seeded species")
	fs.StringVar(&c.Color, "color", c.Color, "r,g,b color of the seeded species")
	fs.IntVar(&c.Opacity, "opacity", c.Opacity, "opacity of the seeded species (0-255)")
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram code for the elementary species (0-255)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation pass (1 = sequential)")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 = run forever)")
	fs.StringVar(&c.Plan, "plan", c.Plan, "JSON seed plan file")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address for the stream server")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
}

// ResolvePlan loads the plan file when one is configured and otherwise
// builds the single-species plan described by the flags.
func (c *Config) ResolvePlan() (Plan, error) {
	if c.Plan == "" {
		return DefaultPlan(c), nil
	}
	return LoadPlan(c.Plan)
}
