package core

import (
	"sort"

	"github.com/MdMxMyr/Automata-engine/pkg/automata"
)

// Species bundles everything a driver needs to seed one automaton kind.
type Species struct {
	Name string
	// New constructs one automaton for a cell.
	New automata.Constructor
	// FromMap turns flag-style key/value pairs into seed properties.
	FromMap func(cfg map[string]string) automata.Properties
}

var species = map[string]Species{}

// Register adds a species under its name. Incomplete entries are ignored.
func Register(s Species) {
	if s.Name == "" || s.New == nil {
		return
	}
	if s.FromMap == nil {
		s.FromMap = func(map[string]string) automata.Properties { return automata.DefaultProperties() }
	}
	species[s.Name] = s
}

// Lookup returns the species registered under name.
func Lookup(name string) (Species, bool) {
	s, ok := species[name]
	return s, ok
}

// SpeciesNames lists registered species in sorted order.
func SpeciesNames() []string {
	names := make([]string, 0, len(species))
	for name := range species {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
