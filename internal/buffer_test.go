package internal

import (
	"bytes"
	"testing"
)

func TestBufferWritesBigEndian(t *testing.T) {
	buf := NewBuffer(16)
	buf.WriteU16(0xC001)
	buf.WriteU32(0x00010000)
	buf.WriteF32(0.5)
	buf.WriteSlice([]byte{'G', 'r', 'a', 'y'})

	want := []byte{
		0xC0, 0x01,
		0x00, 0x01, 0x00, 0x00,
		0x3F, 0x00, 0x00, 0x00,
		'G', 'r', 'a', 'y',
	}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("buffer mismatch:\n got: %v\nwant: %v", got, want)
	}
	if buf.Len() != len(want) {
		t.Fatalf("Len: got %d want %d", buf.Len(), len(want))
	}
}

func TestBufferWriteUTF16String(t *testing.T) {
	buf := NewBuffer(0)
	buf.WriteUTF16String("name")
	want := []byte{0, 'n', 0, 'a', 0, 'm', 0, 'e', 0, 0}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("utf16 mismatch:\n got: %v\nwant: %v", got, want)
	}
}

func TestBufferWriteUTF16SurrogatePair(t *testing.T) {
	buf := NewBuffer(0)
	buf.WriteUTF16String("\U0001F3A8") // ARTIST PALETTE
	want := []byte{0xD8, 0x3C, 0xDF, 0xA8, 0, 0}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("surrogate pair mismatch:\n got: %v\nwant: %v", got, want)
	}
}
