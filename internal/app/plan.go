package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MdMxMyr/Automata-engine/internal/core"
	"github.com/MdMxMyr/Automata-engine/pkg/automata"
)

// Plan lists the seeding steps applied to a fresh grid.
type Plan struct {
	Seeds []SeedSpec `json:"seeds"`
}

// SeedSpec seeds one species. All, Cells and Random may be combined.
type SeedSpec struct {
	Species    string         `json:"species"`
	TypeID     string         `json:"type_id"`
	All        bool           `json:"all"`
	Cells      [][2]int       `json:"cells"`
	Random     int            `json:"random"`
	Properties map[string]any `json:"properties"`
}

// DefaultPlan seeds every cell with the species described by the flags.
func DefaultPlan(cfg *Config) Plan {
	return Plan{Seeds: []SeedSpec{{
		Species: cfg.Species,
		TypeID:  cfg.TypeID,
		All:     true,
		Properties: map[string]any{
			automata.PropColor:   cfg.Color,
			automata.PropOpacity: strconv.Itoa(cfg.Opacity),
			"rule":               strconv.Itoa(cfg.Rule),
		},
	}}}
}

// LoadPlan reads a JSON seed plan.
func LoadPlan(path string) (Plan, error) {
	var plan Plan
	file, err := os.Open(path)
	if err != nil {
		return plan, fmt.Errorf("open plan: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&plan); err != nil {
		return plan, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if len(plan.Seeds) == 0 {
		return plan, fmt.Errorf("plan %s has no seeds", path)
	}
	return plan, nil
}

// Apply seeds g according to the plan.
func (p Plan) Apply(g *automata.Grid) error {
	for i, spec := range p.Seeds {
		species, ok := core.Lookup(spec.Species)
		if !ok {
			return fmt.Errorf("seed %d: unknown species %q (known: %s)", i, spec.Species, strings.Join(core.SpeciesNames(), ", "))
		}
		typeID := spec.TypeID
		if typeID == "" {
			typeID = spec.Species
		}
		props := spec.properties(species)
		if spec.All {
			if err := g.SeedAll(typeID, props, species.New); err != nil {
				return fmt.Errorf("seed %d: %w", i, err)
			}
		}
		for _, pos := range spec.Cells {
			if err := g.SeedCell(pos[0], pos[1], typeID, props, species.New); err != nil {
				return fmt.Errorf("seed %d: %w", i, err)
			}
		}
		for n := 0; n < spec.Random; n++ {
			if err := g.RandomCell().Populate(typeID, props, species.New); err != nil {
				return fmt.Errorf("seed %d: %w", i, err)
			}
		}
	}
	return nil
}

// properties merges the species defaults with the spec's overrides. String
// values go through the species' flag parser so "255,0,0" style colors work
// in plans as well as on the command line.
func (s SeedSpec) properties(species core.Species) automata.Properties {
	flat := map[string]string{}
	typed := automata.Properties{}
	for k, v := range s.Properties {
		if str, ok := v.(string); ok {
			flat[k] = str
			continue
		}
		typed[k] = v
	}
	props := species.FromMap(flat)
	for k, v := range typed {
		props[k] = v
	}
	return props
}
