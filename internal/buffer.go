// Package internal holds the byte-level primitives shared by the ase
// encoder and decoder.
package internal

import (
	"encoding/binary"
	"math"
	"unicode/utf16"
)

var be = binary.BigEndian

// Buffer is an append-only byte sink with typed write operations. All
// integers and floats are written in big-endian byte order.
type Buffer struct {
	data []byte
}

// NewBuffer creates a Buffer pre-sized to capacity bytes.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity)}
}

// WriteSlice appends src verbatim.
func (b *Buffer) WriteSlice(src []byte) {
	b.data = append(b.data, src...)
}

// WriteU16 appends v as two big-endian bytes.
func (b *Buffer) WriteU16(v uint16) {
	b.data = be.AppendUint16(b.data, v)
}

// WriteU32 appends v as four big-endian bytes.
func (b *Buffer) WriteU32(v uint32) {
	b.data = be.AppendUint32(b.data, v)
}

// WriteF32 appends the IEEE 754 bits of v as four big-endian bytes.
func (b *Buffer) WriteF32(v float32) {
	b.data = be.AppendUint32(b.data, math.Float32bits(v))
}

// WriteUTF16String appends s as big-endian UTF-16 code units followed
// by a null terminator.
func (b *Buffer) WriteUTF16String(s string) {
	for _, u := range utf16.Encode([]rune(s)) {
		b.WriteU16(u)
	}
	b.WriteU16(0)
}

// Bytes returns the written bytes.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.data) }
