package ase

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/palettekit/ase/internal"
)

// groupHold tracks which of the two group layouts the decoder is
// currently assembling. Conformant writers emit a GroupStart whose
// payload already carries the full color list; others emit a bare name
// and stream the colors as top-level entries until the GroupEnd.
type groupHold int

const (
	holdEmpty    groupHold = iota
	holdBuilding           // group open, colors arriving as top-level entries
	holdBuilt              // group payload was complete, awaiting its GroupEnd
)

// maxPaddingSkips caps how many spurious zero words after a GroupEnd
// tag are absorbed before a zero tag is reported as a bad block type.
const maxPaddingSkips = 2

// Decode reads an ASE file from r and returns the top-level groups and
// top-level colors in file order.
//
// The decoder accepts both group layouts found in the wild: the
// conformant one, where the GroupStart payload carries the full color
// list, and the non-conformant one, where only the name is embedded
// and the colors follow as separate top-level entries. It also absorbs
// up to two spurious zero words some writers emit after a GroupEnd.
func Decode(r io.Reader) ([]Group, []ColorBlock, error) {
	var word [4]byte

	if _, err := io.ReadFull(r, word[:]); err != nil {
		return nil, nil, &Error{Kind: ErrIO, Detail: "read signature", Err: err}
	}
	if word != fileSignature {
		return nil, nil, &Error{Kind: ErrFileSignature, Detail: fmt.Sprintf("got %q", word[:])}
	}

	if _, err := io.ReadFull(r, word[:]); err != nil {
		return nil, nil, &Error{Kind: ErrIO, Detail: "read version", Err: err}
	}
	if v := binary.BigEndian.Uint32(word[:]); v != fileVersion {
		return nil, nil, &Error{Kind: ErrFileVersion, Detail: fmt.Sprintf("got 0x%08x", v)}
	}

	if _, err := io.ReadFull(r, word[:]); err != nil {
		return nil, nil, &Error{Kind: ErrIO, Detail: "read block count", Err: err}
	}

	var (
		groups []Group
		colors []ColorBlock

		hold groupHold
		held Group

		remaining = binary.BigEndian.Uint32(word[:])
		// disarmed until a GroupEnd is seen
		padSkips = maxPaddingSkips
	)

	var tagBuf [2]byte
	for remaining > 0 {
		if _, err := io.ReadFull(r, tagBuf[:]); err != nil {
			return nil, nil, &Error{Kind: ErrIO, Detail: "read block type", Err: err}
		}
		tag := binary.BigEndian.Uint16(tagBuf[:])

		if tag == 0 && padSkips < maxPaddingSkips {
			// Spurious zero-length word after a GroupEnd. Discard it
			// without consuming a block slot.
			padSkips++
			continue
		}

		var bt blockType
		switch blockType(tag) {
		case blockColorEntry, blockGroupStart, blockGroupEnd:
			bt = blockType(tag)
		default:
			return nil, nil, &Error{Kind: ErrBlockType, Detail: fmt.Sprintf("got 0x%04x", tag)}
		}

		// A fully-built group must close before any other block.
		if bt != blockGroupEnd && hold == holdBuilt {
			return nil, nil, &Error{Kind: ErrGroupEnd, Detail: "group not terminated"}
		}

		var payload []byte
		if bt == blockGroupEnd {
			// GroupEnd carries no length field; arm the padding skip.
			padSkips = 0
		} else {
			padSkips = maxPaddingSkips
			if _, err := io.ReadFull(r, word[:]); err != nil {
				return nil, nil, &Error{Kind: ErrIO, Detail: "read block length", Err: err}
			}
			payload = make([]byte, binary.BigEndian.Uint32(word[:]))
			if _, err := io.ReadFull(r, payload); err != nil {
				return nil, nil, &Error{Kind: ErrIO, Detail: "read block payload", Err: err}
			}
		}

		switch bt {
		case blockGroupStart:
			g, err := parseGroup(payload)
			if err != nil {
				return nil, nil, err
			}
			if hold != holdEmpty {
				return nil, nil, &Error{Kind: ErrGroupEnd, Detail: "group started inside open group"}
			}
			if len(g.Blocks) == 0 {
				hold = holdBuilding
			} else {
				// The embedded colors were counted as one block in the
				// header; give the pending GroupEnd its own slot.
				remaining++
				hold = holdBuilt
			}
			held = g

		case blockGroupEnd:
			if hold == holdEmpty {
				return nil, nil, &Error{Kind: ErrGroupEnd, Detail: "GroupEnd without open group"}
			}
			groups = append(groups, held)
			hold = holdEmpty
			held = Group{}

		case blockColorEntry:
			b, err := parseColorBlock(payload)
			if err != nil {
				return nil, nil, err
			}
			switch hold {
			case holdBuilding:
				held.Blocks = append(held.Blocks, b)
			case holdEmpty:
				colors = append(colors, b)
			case holdBuilt:
				return nil, nil, &Error{Kind: ErrGroupEnd, Detail: "color entry inside built group"}
			}
		}

		remaining--
	}

	switch hold {
	case holdBuilding:
		// The stream ended without an explicit GroupEnd. Keep the
		// group anyway.
		groups = append(groups, held)
	case holdBuilt:
		return nil, nil, &Error{Kind: ErrGroupEnd, Detail: "stream ended before GroupEnd"}
	}

	return groups, colors, nil
}

// parseGroup decodes a GroupStart payload: the group name, then as
// many embedded color blocks as the payload carries.
func parseGroup(data []byte) (Group, error) {
	var g Group

	name, pos, err := parseName(data)
	if err != nil {
		return g, err
	}
	g.Name = name

	// Embedded color list. Some writers size the group payload past
	// the last color; stop quietly at the first thing that is not a
	// complete ColorEntry and let the caller account for the rest.
	for {
		if len(data)-pos < 6 {
			break
		}
		if blockType(binary.BigEndian.Uint16(data[pos:])) != blockColorEntry {
			break
		}
		n := int(binary.BigEndian.Uint32(data[pos+2:]))
		if len(data)-pos-6 < n {
			break
		}
		block, err := parseColorBlock(data[pos+6 : pos+6+n])
		if err != nil {
			break
		}
		g.Blocks = append(g.Blocks, block)
		pos += 6 + n
	}
	return g, nil
}

// parseColorBlock decodes a ColorEntry payload: name, color value and
// color type.
func parseColorBlock(data []byte) (ColorBlock, error) {
	var b ColorBlock

	name, pos, err := parseName(data)
	if err != nil {
		return b, err
	}

	color, err := parseColorValue(data[pos:])
	if err != nil {
		return b, err
	}

	// The color type is a u16; its value lives in the low byte right
	// after the channel payload.
	typePos := pos + 4 + int(color.payloadLen()) + 1
	if typePos >= len(data) {
		return b, &Error{Kind: ErrTruncated, Detail: "missing color type"}
	}
	switch t := ColorType(data[typePos]); t {
	case Global, Spot, Normal:
		b.Type = t
	default:
		return b, &Error{Kind: ErrColorType, Detail: fmt.Sprintf("got %d", data[typePos])}
	}

	b.Name = name
	b.Color = color
	return b, nil
}

// parseName reads the leading name of a block: a u16 count of UTF-16
// units including the null terminator, then that many units. It
// returns the name and the offset of the first byte after it.
func parseName(data []byte) (string, int, error) {
	if len(data) < 2 {
		return "", 0, &Error{Kind: ErrTruncated, Detail: "missing name length"}
	}
	units := int(binary.BigEndian.Uint16(data))
	end := 2 + 2*units
	if units == 0 || len(data) < end {
		return "", 0, &Error{Kind: ErrTruncated, Detail: "name shorter than declared"}
	}
	// drop the null terminator
	raw := make([]uint16, units-1)
	for i := range raw {
		raw[i] = binary.BigEndian.Uint16(data[2+2*i:])
	}
	name, err := internal.DecodeUTF16(raw)
	if err != nil {
		return "", 0, &Error{Kind: ErrUTF16, Detail: "name", Err: err}
	}
	return name, end, nil
}

// parseColorValue decodes the 4-byte format tag and the channel
// payload that follows it.
func parseColorValue(data []byte) (ColorValue, error) {
	if len(data) < 4 {
		return nil, &Error{Kind: ErrTruncated, Detail: "missing color format tag"}
	}
	var tag [4]byte
	copy(tag[:], data)
	payload := data[4:]

	channel := func(i int) float32 {
		return math.Float32frombits(binary.BigEndian.Uint32(payload[4*i:]))
	}

	switch tag {
	case tagCMYK:
		if len(payload) < 16 {
			return nil, &Error{Kind: ErrTruncated, Detail: "CMYK payload"}
		}
		return CMYK{C: channel(0), M: channel(1), Y: channel(2), K: channel(3)}, nil
	case tagRGB:
		if len(payload) < 12 {
			return nil, &Error{Kind: ErrTruncated, Detail: "RGB payload"}
		}
		return RGB{R: channel(0), G: channel(1), B: channel(2)}, nil
	case tagLab:
		if len(payload) < 12 {
			return nil, &Error{Kind: ErrTruncated, Detail: "LAB payload"}
		}
		// L is stored scaled down by 100 on disk.
		return Lab{L: channel(0) * 100, A: channel(1), B: channel(2)}, nil
	case tagGray:
		if len(payload) < 4 {
			return nil, &Error{Kind: ErrTruncated, Detail: "Gray payload"}
		}
		return Gray{V: channel(0)}, nil
	}
	return nil, &Error{Kind: ErrColorFormat, Detail: fmt.Sprintf("got %q", tag[:])}
}
