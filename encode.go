package ase

import "github.com/palettekit/ase/internal"

// Encode serializes groups followed by top-level colors into a
// complete ASE file, in the given order. It never fails.
func Encode(groups []Group, colors []ColorBlock) []byte {
	size := 12
	for i := range groups {
		// tag (2) + length field (4) + payload + GroupEnd tag (2)
		size += 6 + int(groups[i].length()) + 2
	}
	for i := range colors {
		size += 6 + int(colors[i].length())
	}
	buf := internal.NewBuffer(size)

	buf.WriteSlice(fileSignature[:])
	buf.WriteU32(fileVersion)
	buf.WriteU32(uint32(len(groups) + len(colors)))

	for i := range groups {
		groups[i].write(buf)
	}
	for i := range colors {
		colors[i].write(buf)
	}
	return buf.Bytes()
}

// write emits the complete block: tag, length field and payload.
func (b *ColorBlock) write(buf *internal.Buffer) {
	buf.WriteU16(uint16(blockColorEntry))
	buf.WriteU32(b.length())
	// name length counts UTF-16 units plus the null terminator
	buf.WriteU16(uint16(internal.UTF16Len(b.Name) + 1))
	buf.WriteUTF16String(b.Name)

	tag := b.Color.tag()
	buf.WriteSlice(tag[:])
	writeChannels(buf, b.Color)
	buf.WriteU16(uint16(b.Type))
}

// length is the block payload size: name length field (2), UTF-16 name
// with terminator, format tag (4), channel payload, color type (2).
func (b *ColorBlock) length() uint32 {
	return 2 + 2*uint32(internal.UTF16Len(b.Name)) + 2 + 4 + b.Color.payloadLen() + 2
}

// write emits the GroupStart block with the embedded color list,
// terminated by a GroupEnd tag.
func (g *Group) write(buf *internal.Buffer) {
	buf.WriteU16(uint16(blockGroupStart))
	buf.WriteU32(g.length())
	buf.WriteU16(uint16(internal.UTF16Len(g.Name) + 1))
	buf.WriteUTF16String(g.Name)

	for i := range g.Blocks {
		g.Blocks[i].write(buf)
	}
	buf.WriteU16(uint16(blockGroupEnd))
}

// length covers the name and every embedded block including each
// block's own tag and length fields. The trailing GroupEnd tag is not
// part of the group payload.
func (g *Group) length() uint32 {
	n := 2 + 2*uint32(internal.UTF16Len(g.Name)) + 2
	for i := range g.Blocks {
		n += g.Blocks[i].length() + 6
	}
	return n
}

func writeChannels(buf *internal.Buffer, v ColorValue) {
	switch c := v.(type) {
	case CMYK:
		buf.WriteF32(c.C)
		buf.WriteF32(c.M)
		buf.WriteF32(c.Y)
		buf.WriteF32(c.K)
	case RGB:
		buf.WriteF32(c.R)
		buf.WriteF32(c.G)
		buf.WriteF32(c.B)
	case Lab:
		// L is stored scaled down by 100 on disk.
		buf.WriteF32(c.L / 100)
		buf.WriteF32(c.A)
		buf.WriteF32(c.B)
	case Gray:
		buf.WriteF32(c.V)
	}
}
