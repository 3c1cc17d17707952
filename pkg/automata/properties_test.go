package automata

import (
	"encoding/json"
	"image/color"
	"testing"
)

func TestColorCoercion(t *testing.T) {
	var decoded Properties
	if err := json.Unmarshal([]byte(`{"color":[10,20,300],"opacity":128}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	cases := []struct {
		name  string
		props Properties
		want  color.NRGBA
	}{
		{"defaults", DefaultProperties(), color.NRGBA{R: 100, G: 50, B: 255, A: 255}},
		{"nil", nil, color.NRGBA{R: 100, G: 50, B: 255, A: 255}},
		{"ints", Properties{PropColor: []int{1, 2, 3}, PropOpacity: 4}, color.NRGBA{R: 1, G: 2, B: 3, A: 4}},
		{"array", Properties{PropColor: [3]int{7, 8, 9}}, color.NRGBA{R: 7, G: 8, B: 9, A: 255}},
		{"color.Color", Properties{PropColor: color.RGBA{R: 5, G: 6, B: 7, A: 255}}, color.NRGBA{R: 5, G: 6, B: 7, A: 255}},
		{"json", decoded, color.NRGBA{R: 10, G: 20, B: 255, A: 128}},
		{"malformed", Properties{PropColor: []any{"a", 1, 2}}, color.NRGBA{R: 100, G: 50, B: 255, A: 255}},
		{"short", Properties{PropColor: []int{1}}, color.NRGBA{R: 100, G: 50, B: 255, A: 255}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.props.Color(); got != tc.want {
				t.Fatalf("Color() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPropertiesCloneIsShallowCopy(t *testing.T) {
	p := Properties{PropState: 1}
	c := p.Clone()
	c[PropState] = 2
	if p[PropState] != 1 {
		t.Fatalf("clone shares storage with original")
	}
	if got := Properties(nil).Clone(); got == nil {
		t.Fatalf("clone of nil must be an empty bag")
	}
}

func TestPropertiesIntAndString(t *testing.T) {
	p := Properties{"a": 3, "b": float64(4), "c": "x"}
	if v, ok := p.Int("a"); !ok || v != 3 {
		t.Fatalf("Int(a) = %d, %v", v, ok)
	}
	if v, ok := p.Int("b"); !ok || v != 4 {
		t.Fatalf("Int(b) = %d, %v", v, ok)
	}
	if _, ok := p.Int("c"); ok {
		t.Fatalf("Int(c) should not coerce a string")
	}
	if v := p.IntOr("missing", 9); v != 9 {
		t.Fatalf("IntOr = %d, want 9", v)
	}
	if s, ok := p.String("c"); !ok || s != "x" {
		t.Fatalf("String(c) = %q, %v", s, ok)
	}
}
