package ase_test

import (
	"bytes"
	"fmt"

	"github.com/palettekit/ase"
)

func ExampleEncode() {
	color := ase.ColorBlock{Name: "name", Color: ase.Gray{V: 0.5}, Type: ase.Normal}
	data := ase.Encode(nil, []ase.ColorBlock{color})
	fmt.Println(len(data))
	// Output: 40
}

func ExampleDecode() {
	group := ase.Group{
		Name: "Aurora",
		Blocks: []ase.ColorBlock{
			{Name: "#BF616A", Color: ase.RGB{R: 0.7490196, G: 0.38039216, B: 0.41568628}, Type: ase.Normal},
			{Name: "#D08770", Color: ase.RGB{R: 0.8156863, G: 0.5294118, B: 0.4392157}, Type: ase.Normal},
			{Name: "#EBCB8B", Color: ase.RGB{R: 0.92156863, G: 0.79607844, B: 0.54509807}, Type: ase.Normal},
		},
	}
	data := ase.Encode([]ase.Group{group}, nil)

	groups, colors, err := ase.Decode(bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
	fmt.Println(groups[0].Name, len(groups[0].Blocks), len(colors))
	// Output: Aurora 3 0
}
