// Package reader turns an arbitrary-encoded byte stream into a flat UTF-8
// buffer. Given token.AnyEncoding it autodetects UTF-8, UTF-16 (LE/BE) and
// UTF-32 (LE/BE): first from a leading BOM, and failing that from the
// zero-byte pattern a document's first few bytes would show if it started
// (as almost every YAML document does) with an ASCII-range character. Given
// any other Encoding, autodetection is skipped and the buffer is decoded
// under that encoding unconditionally. The scanner operates entirely off
// the decoded buffer; streaming across buffer boundaries is not a goal of
// this package, so decoding happens once, eagerly, at construction.
package reader

import (
	"bytes"
	"io"

	"github.com/ctrlflow-yaml/yamlevents/internal/token"
)

// Decode reads all of src under enc, or autodetects the encoding when enc
// is token.AnyEncoding, and returns the content re-encoded as UTF-8, with a
// terminating NUL appended the way the scanner expects.
func Decode(src io.Reader, enc token.Encoding) ([]byte, token.Encoding, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, token.AnyEncoding, token.NewError(token.ReaderError, token.NoErrorCode, "input error: "+err.Error(), token.Mark{Line: 1, Column: 1})
	}

	skip := 0
	if enc == token.AnyEncoding {
		enc, skip = determineEncoding(raw)
	}
	raw = raw[skip:]

	out := make([]byte, 0, len(raw)+1)
	pos := 0
	mark := token.Mark{Line: 1, Column: 1}
	var prev rune
	for pos < len(raw) {
		value, width, err := decodeOne(enc, raw[pos:])
		if err != nil {
			if yerr, ok := err.(*token.Error); ok {
				yerr.Mark = mark
			}
			return nil, enc, err
		}
		if err := checkAllowed(value); err != nil {
			return nil, enc, token.NewError(token.ReaderError, token.InvalidEncoding, err.Error(), mark)
		}
		var tmp [4]byte
		n := encodeUTF8(tmp[:], value)
		out = append(out, tmp[:n]...)
		pos += width
		mark.Offset = len(out)
		switch {
		case value == '\n' && prev == '\r':
		case value == '\n', value == '\r', value == 0x85, value == 0x2028, value == 0x2029:
			mark.Line++
			mark.Column = 1
		default:
			mark.Column++
		}
		prev = value
	}
	out = append(out, 0)
	return out, enc, nil
}

// DecodeBytes is a convenience wrapper around Decode for in-memory input.
func DecodeBytes(b []byte, enc token.Encoding) ([]byte, token.Encoding, error) {
	return Decode(bytes.NewReader(b), enc)
}

var (
	bomUTF8    = [...]byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = [...]byte{0xFF, 0xFE}
	bomUTF16BE = [...]byte{0xFE, 0xFF}
	bomUTF32LE = [...]byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = [...]byte{0x00, 0x00, 0xFE, 0xFF}
)

// determineEncoding inspects the first four bytes of the stream. A BOM, if
// present, is definitive. Otherwise it falls back to the zero-byte-position
// heuristic: a document assumed to begin with an ASCII-range scalar will
// show a distinctive pattern of zero and non-zero bytes depending on its
// width and byte order.
//
// UTF-32 BOMs and zero patterns must be checked before the UTF-16 ones: the
// UTF-16LE BOM is a byte-for-byte prefix of the UTF-32LE BOM, and a UTF-32LE
// "xx 00 00 00" pattern would also match the UTF-16LE "xx 00 ..." pattern if
// checked out of order.
func determineEncoding(buf []byte) (token.Encoding, int) {
	switch {
	case len(buf) >= 4 && bytes.Equal(buf[:4], bomUTF32LE[:]):
		return token.UTF32LEEncoding, 4
	case len(buf) >= 4 && bytes.Equal(buf[:4], bomUTF32BE[:]):
		return token.UTF32BEEncoding, 4
	case len(buf) >= 2 && bytes.Equal(buf[:2], bomUTF16LE[:]):
		return token.UTF16LEEncoding, 2
	case len(buf) >= 2 && bytes.Equal(buf[:2], bomUTF16BE[:]):
		return token.UTF16BEEncoding, 2
	case len(buf) >= 3 && bytes.Equal(buf[:3], bomUTF8[:]):
		return token.UTF8Encoding, 3
	}
	if enc, ok := detectByZeroBytePosition(buf); ok {
		return enc, 0
	}
	return token.UTF8Encoding, 0
}

// detectByZeroBytePosition guesses a BOM-less encoding from the zero/
// non-zero shape of the first four bytes, per the official autodetection
// table: 00 00 00 xx is utf32-be, xx 00 00 00 is utf32-le, 00 xx is
// utf16-be, xx 00 is utf16-le, anything else is utf8.
func detectByZeroBytePosition(buf []byte) (token.Encoding, bool) {
	b := func(i int) byte {
		if i < len(buf) {
			return buf[i]
		}
		return 1 // pad with a non-zero byte past the end of short input
	}
	switch {
	case b(0) == 0 && b(1) == 0 && b(2) == 0 && b(3) != 0:
		return token.UTF32BEEncoding, true
	case b(0) != 0 && b(1) == 0 && b(2) == 0 && b(3) == 0:
		return token.UTF32LEEncoding, true
	case b(0) == 0 && b(1) != 0:
		return token.UTF16BEEncoding, true
	case b(0) != 0 && b(1) == 0:
		return token.UTF16LEEncoding, true
	}
	return token.AnyEncoding, false
}

func decodeOne(enc token.Encoding, buf []byte) (value rune, width int, err error) {
	switch enc {
	case token.UTF8Encoding:
		return decodeUTF8(buf)
	case token.UTF16LEEncoding, token.UTF16BEEncoding:
		return decodeUTF16(enc, buf)
	case token.UTF32LEEncoding, token.UTF32BEEncoding:
		return decodeUTF32(enc, buf)
	default:
		panic("reader: unknown encoding")
	}
}

func newErr(problem string) error {
	return token.NewError(token.ReaderError, token.InvalidEncoding, problem, token.Mark{Line: 1, Column: 1})
}

func decodeUTF8(buf []byte) (rune, int, error) {
	octet := buf[0]
	var width int
	switch {
	case octet&0x80 == 0x00:
		width = 1
	case octet&0xE0 == 0xC0:
		width = 2
	case octet&0xF0 == 0xE0:
		width = 3
	case octet&0xF8 == 0xF0:
		width = 4
	default:
		return 0, 0, newErr("invalid leading UTF-8 octet")
	}
	if width > len(buf) {
		return 0, 0, newErr("incomplete UTF-8 octet sequence")
	}

	var value rune
	switch width {
	case 1:
		value = rune(octet & 0x7F)
	case 2:
		value = rune(octet & 0x1F)
	case 3:
		value = rune(octet & 0x0F)
	case 4:
		value = rune(octet & 0x07)
	}
	for k := 1; k < width; k++ {
		octet = buf[k]
		if octet&0xC0 != 0x80 {
			return 0, 0, newErr("invalid trailing UTF-8 octet")
		}
		value = (value << 6) + rune(octet&0x3F)
	}

	switch {
	case width == 1:
	case width == 2 && value >= 0x80:
	case width == 3 && value >= 0x800:
	case width == 4 && value >= 0x10000:
	default:
		return 0, 0, newErr("invalid length of a UTF-8 sequence")
	}
	if value >= 0xD800 && value <= 0xDFFF || value > 0x10FFFF {
		return 0, 0, newErr("invalid Unicode character")
	}
	return value, width, nil
}

func decodeUTF16(enc token.Encoding, buf []byte) (rune, int, error) {
	low, high := 0, 1
	if enc == token.UTF16BEEncoding {
		low, high = 1, 0
	}
	if len(buf) < 2 {
		return 0, 0, newErr("incomplete UTF-16 character")
	}
	value := rune(buf[low]) + rune(buf[high])<<8
	if value&0xFC00 == 0xDC00 {
		return 0, 0, newErr("unexpected low surrogate area")
	}
	if value&0xFC00 == 0xD800 {
		if len(buf) < 4 {
			return 0, 0, newErr("incomplete UTF-16 surrogate pair")
		}
		value2 := rune(buf[low+2]) + rune(buf[high+2])<<8
		if value2&0xFC00 != 0xDC00 {
			return 0, 0, newErr("expected low surrogate area")
		}
		value = 0x10000 + ((value & 0x3FF) << 10) + (value2 & 0x3FF)
		return value, 4, nil
	}
	return value, 2, nil
}

func decodeUTF32(enc token.Encoding, buf []byte) (rune, int, error) {
	if len(buf) < 4 {
		return 0, 0, newErr("incomplete UTF-32 character")
	}
	var value uint32
	if enc == token.UTF32LEEncoding {
		value = uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	} else {
		value = uint32(buf[3]) | uint32(buf[2])<<8 | uint32(buf[1])<<16 | uint32(buf[0])<<24
	}
	if value > 0x10FFFF || (value >= 0xD800 && value <= 0xDFFF) {
		return 0, 0, newErr("invalid Unicode character")
	}
	return rune(value), 4, nil
}

// checkAllowed enforces the YAML character range:
//
//	#x9 | #xA | #xD | [#x20-#x7E] | #x85 | [#xA0-#xD7FF]
//	| [#xE000-#xFFFD] | [#x10000-#x10FFFF]
func checkAllowed(value rune) error {
	switch {
	case value == 0x09:
	case value == 0x0A:
	case value == 0x0D:
	case value >= 0x20 && value <= 0x7E:
	case value == 0x85:
	case value >= 0xA0 && value <= 0xD7FF:
	case value >= 0xE000 && value <= 0xFFFD:
	case value >= 0x10000 && value <= 0x10FFFF:
	default:
		return staticError("control characters are not allowed")
	}
	return nil
}

type staticError string

func (e staticError) Error() string { return string(e) }

func encodeUTF8(dst []byte, value rune) int {
	switch {
	case value <= 0x7F:
		dst[0] = byte(value)
		return 1
	case value <= 0x7FF:
		dst[0] = byte(0xC0 + (value >> 6))
		dst[1] = byte(0x80 + (value & 0x3F))
		return 2
	case value <= 0xFFFF:
		dst[0] = byte(0xE0 + (value >> 12))
		dst[1] = byte(0x80 + ((value >> 6) & 0x3F))
		dst[2] = byte(0x80 + (value & 0x3F))
		return 3
	default:
		dst[0] = byte(0xF0 + (value >> 18))
		dst[1] = byte(0x80 + ((value >> 12) & 0x3F))
		dst[2] = byte(0x80 + ((value >> 6) & 0x3F))
		dst[3] = byte(0x80 + (value & 0x3F))
		return 4
	}
}
