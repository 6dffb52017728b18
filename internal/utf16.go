package internal

import (
	"errors"
	"unicode/utf16"
)

// UTF16Len returns the number of UTF-16 code units needed for s, null
// terminator excluded. Runes outside the BMP take two units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}

// DecodeUTF16 converts UTF-16 code units to a string. Unlike the
// stdlib utf16.Decode it rejects unpaired surrogates instead of
// substituting U+FFFD, so malformed names surface as errors.
func DecodeUTF16(units []uint16) (string, error) {
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return "", errors.New("unpaired high surrogate")
			}
			runes = append(runes, utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		case u >= 0xDC00 && u <= 0xDFFF:
			return "", errors.New("unpaired low surrogate")
		default:
			runes = append(runes, rune(u))
		}
	}
	return string(runes), nil
}
