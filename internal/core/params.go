package core

import (
	"sort"
	"strconv"

	"github.com/MdMxMyr/Automata-engine/pkg/automata"
	"github.com/zyedidia/generic/mapset"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form values.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single reported value.
type Parameter struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  ParamType `json:"type"`
	Value string    `json:"value"`
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string      `json:"name"`
	Params []Parameter `json:"params"`
}

// ParameterSnapshot captures what a HUD or status endpoint shows.
type ParameterSnapshot struct {
	Groups []ParameterGroup `json:"groups"`
}

// SpeciesCount is the census line for one type id.
type SpeciesCount struct {
	TypeID string `json:"type_id"`
	Total  int    `json:"total"`
	Active int    `json:"active"`
}

// Census summarizes a grid at one generation.
type Census struct {
	Generation int            `json:"generation"`
	Rows       int            `json:"rows"`
	Cols       int            `json:"cols"`
	Resolution int            `json:"resolution"`
	Occupied   int            `json:"occupied"`
	// Mixed counts cells hosting more than one distinct type id.
	Mixed      int            `json:"mixed"`
	Species    []SpeciesCount `json:"species"`
}

// TakeCensus counts automata per type id, sorted by type id.
func TakeCensus(g *automata.Grid) Census {
	c := Census{
		Generation: g.Generation(),
		Rows:       g.Rows(),
		Cols:       g.Cols(),
		Resolution: g.Resolution(),
	}
	totals := map[string]int{}
	active := map[string]int{}
	for _, pop := range g.Populations() {
		if len(pop) > 0 {
			c.Occupied++
		}
		types := mapset.New[string]()
		for _, a := range pop {
			types.Put(a.TypeID())
			totals[a.TypeID()]++
			if a.State() > 0 {
				active[a.TypeID()]++
			}
		}
		if types.Size() > 1 {
			c.Mixed++
		}
	}
	for id, total := range totals {
		c.Species = append(c.Species, SpeciesCount{TypeID: id, Total: total, Active: active[id]})
	}
	sort.Slice(c.Species, func(i, j int) bool { return c.Species[i].TypeID < c.Species[j].TypeID })
	return c
}

// Active returns the number of active automata of typeID.
func (c Census) Active(typeID string) int {
	for _, s := range c.Species {
		if s.TypeID == typeID {
			return s.Active
		}
	}
	return 0
}

// Parameters renders the census as a parameter snapshot.
func (c Census) Parameters() ParameterSnapshot {
	groups := []ParameterGroup{
		{
			Name: "Grid",
			Params: []Parameter{
				intParam("generation", "Generation", c.Generation),
				intParam("rows", "Rows", c.Rows),
				intParam("cols", "Cols", c.Cols),
				intParam("resolution", "Resolution", c.Resolution),
				intParam("occupied", "Occupied cells", c.Occupied),
				intParam("mixed", "Mixed cells", c.Mixed),
			},
		},
	}
	species := ParameterGroup{Name: "Species"}
	for _, s := range c.Species {
		species.Params = append(species.Params, Parameter{
			Key:   s.TypeID,
			Label: s.TypeID,
			Type:  ParamTypeString,
			Value: strconv.Itoa(s.Active) + "/" + strconv.Itoa(s.Total),
		})
	}
	groups = append(groups, species)
	return ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
