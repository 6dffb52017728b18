package ase

import "fmt"

// ErrorKind classifies decoding errors.
type ErrorKind int

const (
	// ErrIO wraps a failure of the underlying byte source.
	ErrIO ErrorKind = iota + 1
	// ErrFileSignature means the file does not start with "ASEF".
	ErrFileSignature
	// ErrFileVersion means the file version is not 1.0.
	ErrFileVersion
	// ErrGroupEnd means the group structure is inconsistent: an
	// unmatched GroupEnd, a group opened inside another group, or a
	// fully-built group that never closed.
	ErrGroupEnd
	// ErrColorFormat means an unrecognized 4-byte color format tag.
	ErrColorFormat
	// ErrColorType means a color type byte outside {0, 1, 2}.
	ErrColorType
	// ErrBlockType means a block tag outside the three known values.
	ErrBlockType
	// ErrUTF16 means a name contains a malformed UTF-16 sequence.
	ErrUTF16
	// ErrTruncated means the input is shorter than a field declares.
	ErrTruncated
)

func (k ErrorKind) String() string {
	switch k {
	case ErrIO:
		return "io failure"
	case ErrFileSignature:
		return "invalid file signature"
	case ErrFileVersion:
		return "unsupported file version"
	case ErrGroupEnd:
		return "unterminated or unmatched group"
	case ErrColorFormat:
		return "unknown color format"
	case ErrColorType:
		return "invalid color type"
	case ErrBlockType:
		return "invalid block type"
	case ErrUTF16:
		return "malformed UTF-16"
	case ErrTruncated:
		return "truncated input"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error carries classification and detail for better diagnostics.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error // underlying cause, if any
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("ase: %v: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("ase: %v: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }
