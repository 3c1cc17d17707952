package automata

import (
	"image/color"
	"maps"
)

// Properties is the opaque configuration bag attached to an automaton. The
// engine never interprets it; species and renderers agree on keys.
type Properties map[string]any

// Well-known property keys used by the bundled species and renderers.
const (
	PropColor   = "color"
	PropOpacity = "opacity"
	PropState   = "state"
)

// DefaultProperties returns the properties used when a seed supplies none.
func DefaultProperties() Properties {
	return Properties{
		PropColor:   []int{100, 50, 255},
		PropOpacity: 255,
	}
}

// Clone returns a shallow copy so automata never share one bag.
func (p Properties) Clone() Properties {
	if p == nil {
		return Properties{}
	}
	return maps.Clone(p)
}

// Int reads an integer value, accepting the numeric types JSON decoding and
// Go literals produce. ok is false when the key is missing or not numeric.
func (p Properties) Int(key string) (int, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	return toInt(v)
}

// IntOr returns the integer at key or def.
func (p Properties) IntOr(key string, def int) int {
	if v, ok := p.Int(key); ok {
		return v
	}
	return def
}

// String reads a string value.
func (p Properties) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// Color resolves the color and opacity keys into an NRGBA value. Missing or
// malformed entries fall back to the defaults.
func (p Properties) Color() color.NRGBA {
	out := color.NRGBA{R: 100, G: 50, B: 255, A: 255}
	switch c := p[PropColor].(type) {
	case color.Color:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		out.R, out.G, out.B = n.R, n.G, n.B
	case []int:
		if len(c) >= 3 {
			out.R, out.G, out.B = clampByte(c[0]), clampByte(c[1]), clampByte(c[2])
		}
	case [3]int:
		out.R, out.G, out.B = clampByte(c[0]), clampByte(c[1]), clampByte(c[2])
	case []any:
		if len(c) >= 3 {
			var rgb [3]uint8
			for i := 0; i < 3; i++ {
				v, ok := toInt(c[i])
				if !ok {
					return out
				}
				rgb[i] = clampByte(v)
			}
			out.R, out.G, out.B = rgb[0], rgb[1], rgb[2]
		}
	}
	if a, ok := p.Int(PropOpacity); ok {
		out.A = clampByte(a)
	}
	return out
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
