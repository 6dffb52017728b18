package main

import (
	"fmt"

	"github.com/palettekit/ase"
)

// paletteDoc is the JSON representation asec converts to and from.
type paletteDoc struct {
	Groups []paletteGroup `json:"groups,omitempty"`
	Colors []paletteColor `json:"colors,omitempty"`
}

type paletteGroup struct {
	Name   string         `json:"name"`
	Colors []paletteColor `json:"colors"`
}

type paletteColor struct {
	Name string `json:"name"`
	// Mode is one of cmyk, rgb, lab, gray; Values carries the
	// channels in declaration order.
	Mode   string    `json:"mode"`
	Values []float32 `json:"values"`
	// Type is one of global, spot, normal; defaults to normal.
	Type string `json:"type,omitempty"`
}

func toPalette(groups []ase.Group, colors []ase.ColorBlock) paletteDoc {
	var doc paletteDoc
	for _, g := range groups {
		pg := paletteGroup{Name: g.Name, Colors: []paletteColor{}}
		for _, b := range g.Blocks {
			pg.Colors = append(pg.Colors, toPaletteColor(b))
		}
		doc.Groups = append(doc.Groups, pg)
	}
	for _, b := range colors {
		doc.Colors = append(doc.Colors, toPaletteColor(b))
	}
	return doc
}

func toPaletteColor(b ase.ColorBlock) paletteColor {
	pc := paletteColor{Name: b.Name, Type: colorTypeName(b.Type)}
	switch c := b.Color.(type) {
	case ase.CMYK:
		pc.Mode = "cmyk"
		pc.Values = []float32{c.C, c.M, c.Y, c.K}
	case ase.RGB:
		pc.Mode = "rgb"
		pc.Values = []float32{c.R, c.G, c.B}
	case ase.Lab:
		pc.Mode = "lab"
		pc.Values = []float32{c.L, c.A, c.B}
	case ase.Gray:
		pc.Mode = "gray"
		pc.Values = []float32{c.V}
	}
	return pc
}

func colorTypeName(t ase.ColorType) string {
	switch t {
	case ase.Global:
		return "global"
	case ase.Spot:
		return "spot"
	}
	return "normal"
}

func fromPalette(doc paletteDoc) ([]ase.Group, []ase.ColorBlock, error) {
	var groups []ase.Group
	for _, pg := range doc.Groups {
		g := ase.Group{Name: pg.Name}
		for _, pc := range pg.Colors {
			b, err := fromPaletteColor(pc)
			if err != nil {
				return nil, nil, fmt.Errorf("group %q: %w", pg.Name, err)
			}
			g.Blocks = append(g.Blocks, b)
		}
		groups = append(groups, g)
	}
	var colors []ase.ColorBlock
	for _, pc := range doc.Colors {
		b, err := fromPaletteColor(pc)
		if err != nil {
			return nil, nil, err
		}
		colors = append(colors, b)
	}
	return groups, colors, nil
}

func fromPaletteColor(pc paletteColor) (ase.ColorBlock, error) {
	var b ase.ColorBlock
	b.Name = pc.Name

	switch pc.Type {
	case "", "normal":
		b.Type = ase.Normal
	case "global":
		b.Type = ase.Global
	case "spot":
		b.Type = ase.Spot
	default:
		return b, fmt.Errorf("color %q: unknown type %q", pc.Name, pc.Type)
	}

	want := map[string]int{"cmyk": 4, "rgb": 3, "lab": 3, "gray": 1}[pc.Mode]
	if want == 0 {
		return b, fmt.Errorf("color %q: unknown mode %q", pc.Name, pc.Mode)
	}
	if len(pc.Values) != want {
		return b, fmt.Errorf("color %q: mode %s needs %d values, got %d",
			pc.Name, pc.Mode, want, len(pc.Values))
	}

	v := pc.Values
	switch pc.Mode {
	case "cmyk":
		b.Color = ase.CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]}
	case "rgb":
		b.Color = ase.RGB{R: v[0], G: v[1], B: v[2]}
	case "lab":
		b.Color = ase.Lab{L: v[0], A: v[1], B: v[2]}
	case "gray":
		b.Color = ase.Gray{V: v[0]}
	}
	return b, nil
}
