package token

// Character classification helpers, adapted from the byte-indexed predicates
// used throughout the scanner. They operate on the re-encoded UTF-8 buffer
// the reader produces, so callers always have the trailing bytes of a
// multi-byte sequence available.

func IsAlphaAt(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9' || b[i] >= 'A' && b[i] <= 'Z' || b[i] >= 'a' && b[i] <= 'z' || b[i] == '_' || b[i] == '-'
}

func IsDigitAt(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9'
}

func AsDigitAt(b []byte, i int) int {
	return int(b[i]) - '0'
}

func IsHexAt(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9' || b[i] >= 'A' && b[i] <= 'F' || b[i] >= 'a' && b[i] <= 'f'
}

func AsHexAt(b []byte, i int) int {
	c := b[i]
	switch {
	case c >= 'A' && c <= 'F':
		return int(c) - 'A' + 10
	case c >= 'a' && c <= 'f':
		return int(c) - 'a' + 10
	default:
		return int(c) - '0'
	}
}

// IsPrintable reports whether the character starting at b[0] may be printed
// unescaped: #x9 | #xA | [#x20-#x7E] | [#xA0-#xD7FF] | [#xE000-#xFFFD]
// excluding #xFEFF, expressed directly over the UTF-8 byte sequence. #x85
// and characters above #xFFFF are not accepted.
func IsPrintable(b []byte) bool {
	return (b[0] == 0x09) ||
		(b[0] == 0x0A) ||
		(b[0] >= 0x20 && b[0] <= 0x7E) ||
		(b[0] == 0xC2 && b[1] >= 0xA0) ||
		(b[0] > 0xC2 && b[0] < 0xED) ||
		(b[0] == 0xED && b[1] < 0xA0) ||
		(b[0] == 0xEE) ||
		(b[0] == 0xEF &&
			!(b[1] == 0xBB && b[2] == 0xBF) &&
			!(b[1] == 0xBF && (b[2] == 0xBE || b[2] == 0xBF)))
}

func IsZeroAt(b []byte, i int) bool {
	return b[i] == 0x00
}

func IsBOM(b []byte) bool {
	return len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF
}

func IsSpaceAt(b []byte, i int) bool {
	return b[i] == ' '
}

func IsTabAt(b []byte, i int) bool {
	return b[i] == '\t'
}

func IsBlankAt(b []byte, i int) bool {
	return b[i] == ' ' || b[i] == '\t'
}

func IsBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

// IsBreakAt reports a line break at b[i]: CR, LF, NEL, LS or PS.
func IsBreakAt(b []byte, i int) bool {
	return b[i] == '\r' ||
		b[i] == '\n' ||
		b[i] == 0xC2 && b[i+1] == 0x85 ||
		b[i] == 0xE2 && b[i+1] == 0x80 && b[i+2] == 0xA8 ||
		b[i] == 0xE2 && b[i+1] == 0x80 && b[i+2] == 0xA9
}

func IsBreak(b []byte) bool {
	return b[0] == '\r' ||
		b[0] == '\n' ||
		b[0] == 0xC2 && b[1] == 0x85 ||
		b[0] == 0xE2 && b[1] == 0x80 && b[2] == 0xA8 ||
		b[0] == 0xE2 && b[1] == 0x80 && b[2] == 0xA9
}

func IsCRLFAt(b []byte, i int) bool {
	return b[i] == '\r' && b[i+1] == '\n'
}

func IsBreakZAt(b []byte, i int) bool {
	return IsBreakAt(b, i) || b[i] == 0
}

func IsSpaceZAt(b []byte, i int) bool {
	return b[i] == ' ' || IsBreakZAt(b, i)
}

func IsBlankZAt(b []byte, i int) bool {
	return b[i] == ' ' || b[i] == '\t' || IsBreakZAt(b, i)
}

func IsBlankZ(b []byte) bool {
	return b[0] == ' ' || b[0] == '\t' || IsBreak(b) || b[0] == 0
}

// Width returns the byte width of a UTF-8 sequence given its leading byte,
// or 0 if the byte cannot start a valid sequence.
func Width(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}
