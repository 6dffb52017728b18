package ase

// fileSignature holds the magic bytes every ASE file starts with.
var fileSignature = [4]byte{'A', 'S', 'E', 'F'}

// fileVersion is the only supported format version, 1.0.
const fileVersion uint32 = 0x00010000

// blockType identifies a block in the file body.
type blockType uint16

const (
	blockColorEntry blockType = 0x0001
	blockGroupStart blockType = 0xC001
	blockGroupEnd   blockType = 0xC002
)

// Four-byte ASCII color format tags. The tag uniquely determines the
// variant and its channel payload length.
var (
	tagCMYK = [4]byte{'C', 'M', 'Y', 'K'}
	tagRGB  = [4]byte{'R', 'G', 'B', ' '}
	tagLab  = [4]byte{'L', 'A', 'B', ' '}
	tagGray = [4]byte{'G', 'r', 'a', 'y'}
)

// ColorType specifies how a color behaves in a document.
type ColorType uint16

const (
	// Global colors act like color references: edits to the swatch
	// propagate through the whole artwork.
	Global ColorType = 0
	// Spot colors support tint-based derived swatches and are
	// inherently global.
	Spot ColorType = 1
	// Normal colors are plain process colors, mixed from RGB or CMYK
	// depending on the document color mode.
	Normal ColorType = 2
)

// ColorValue is the channel data of a swatch in one of the four color
// spaces the format supports: CMYK, RGB, Lab or Gray.
type ColorValue interface {
	// tag returns the 4-byte ASCII format identifier.
	tag() [4]byte
	// payloadLen returns the channel payload size in bytes, tag excluded.
	payloadLen() uint32
}

// CMYK is a four-channel process color. Channels range over [0,1].
type CMYK struct {
	C, M, Y, K float32
}

// RGB is a three-channel color. Channels range over [0,1].
type RGB struct {
	R, G, B float32
}

// Lab is a CIELAB color. L ranges over [0,100]; on disk it is stored
// scaled down by 100.
type Lab struct {
	L, A, B float32
}

// Gray is a single-channel grayscale color over [0,1].
type Gray struct {
	V float32
}

func (CMYK) tag() [4]byte { return tagCMYK }
func (RGB) tag() [4]byte  { return tagRGB }
func (Lab) tag() [4]byte  { return tagLab }
func (Gray) tag() [4]byte { return tagGray }

func (CMYK) payloadLen() uint32 { return 16 }
func (RGB) payloadLen() uint32  { return 12 }
func (Lab) payloadLen() uint32  { return 12 }
func (Gray) payloadLen() uint32 { return 4 }

// ColorBlock is a single named color.
type ColorBlock struct {
	// Name is the label associated with the color.
	Name string
	// Color is the channel data of the swatch.
	Color ColorValue
	// Type specifies how the color behaves in a document.
	Type ColorType
}

// Group is a named, ordered collection of colors. Ordering is
// significant and preserved through a round trip.
type Group struct {
	Name   string
	Blocks []ColorBlock
}
