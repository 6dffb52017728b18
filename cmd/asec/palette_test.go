package main

import (
	"reflect"
	"testing"

	"github.com/palettekit/ase"
)

func TestPaletteRoundtrip(t *testing.T) {
	groups := []ase.Group{{
		Name: "brand",
		Blocks: []ase.ColorBlock{
			{Name: "primary", Color: ase.RGB{R: 1, G: 0.5, B: 0}, Type: ase.Global},
			{Name: "ink", Color: ase.CMYK{C: 0.25, M: 0.5, Y: 0.75, K: 1}, Type: ase.Spot},
		},
	}}
	colors := []ase.ColorBlock{
		{Name: "mid", Color: ase.Gray{V: 0.5}, Type: ase.Normal},
		{Name: "lab", Color: ase.Lab{L: 50, A: -20.5, B: 30.25}, Type: ase.Normal},
	}

	gotGroups, gotColors, err := fromPalette(toPalette(groups, colors))
	if err != nil {
		t.Fatalf("fromPalette failed: %v", err)
	}
	if !reflect.DeepEqual(gotGroups, groups) {
		t.Fatalf("groups mismatch:\n got: %#v\nwant: %#v", gotGroups, groups)
	}
	if !reflect.DeepEqual(gotColors, colors) {
		t.Fatalf("colors mismatch:\n got: %#v\nwant: %#v", gotColors, colors)
	}
}

func TestFromPaletteColorRejectsBadInput(t *testing.T) {
	cases := []paletteColor{
		{Name: "x", Mode: "hsl", Values: []float32{0, 0, 0}},
		{Name: "x", Mode: "rgb", Values: []float32{1}},
		{Name: "x", Mode: "gray", Values: []float32{0.5}, Type: "tint"},
	}
	for _, c := range cases {
		if _, err := fromPaletteColor(c); err == nil {
			t.Fatalf("expected error for %+v, got nil", c)
		}
	}
}
