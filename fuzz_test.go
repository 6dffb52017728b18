package ase

import (
	"bytes"
	"testing"
)

func FuzzDecode(f *testing.F) {
	f.Add(Encode(nil, nil))
	f.Add(Encode(nil, []ColorBlock{{Name: "name", Color: Gray{V: 0.5}, Type: Normal}}))
	f.Add(Encode([]Group{testGroup()}, nil))

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _, _ = Decode(bytes.NewReader(data))
	})
}

func FuzzParseColorBlock(f *testing.F) {
	seed := Encode(nil, []ColorBlock{{Name: "name", Color: Gray{V: 0.5}, Type: Normal}})
	// skip the 12-byte header and the 6-byte block framing
	f.Add(seed[18:])

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = parseColorBlock(data)
	})
}
