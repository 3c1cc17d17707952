package core

import (
	"strconv"
	"strings"

	"github.com/MdMxMyr/Automata-engine/pkg/automata"
)

// PropertiesFromMap converts the shared color/opacity/state keys of a
// flag-style map into automaton properties, starting from the defaults.
// Malformed values are ignored.
func PropertiesFromMap(cfg map[string]string) automata.Properties {
	props := automata.DefaultProperties()
	if cfg == nil {
		return props
	}
	if v, ok := cfg["color"]; ok {
		if rgb, ok := ParseColor(v); ok {
			props[automata.PropColor] = rgb
		}
	}
	if v, ok := cfg["opacity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			props[automata.PropOpacity] = parsed
		}
	}
	if v, ok := cfg["state"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			props[automata.PropState] = parsed
		}
	}
	return props
}

// ParseColor parses "r,g,b" with components in [0,255].
func ParseColor(s string) ([]int, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, false
	}
	rgb := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return nil, false
		}
		rgb[i] = v
	}
	return rgb, true
}
