package scanner

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

func (s *Scanner) fetchFlowScalar(style token.ScalarStyle) error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	start := s.mark

	var value string
	var err error
	if style == token.SingleQuotedScalarStyle {
		value, err = s.scanSingleQuotedScalar()
	} else {
		value, err = s.scanDoubleQuotedScalar()
	}
	if err != nil {
		return err
	}
	s.insertToken(-1, token.Token{
		Kind: token.ScalarToken, Start: start, End: s.mark,
		Value: value, ScalarStyle: style, Comment: s.takeComments(),
	})
	return nil
}

func (s *Scanner) scanSingleQuotedScalar() (string, error) {
	s.advance(1) // opening '
	var out []byte
	var whitespace []byte
	leadingBlanks := false
	for {
		for !s.isBlankZ(0) {
			if s.byteAt(0) == '\'' && s.byteAt(1) == '\'' {
				out = appendFold(out, whitespace, leadingBlanks)
				whitespace, leadingBlanks = nil, false
				out = append(out, '\'')
				s.advance(2)
				continue
			}
			if s.byteAt(0) == '\'' {
				s.advance(1)
				return string(appendFold(out, whitespace, leadingBlanks)), nil
			}
			if s.atEnd() {
				return "", s.newError(token.EndOfStream, "while scanning a single-quoted scalar, found unexpected end of stream")
			}
			out = appendFold(out, whitespace, leadingBlanks)
			whitespace, leadingBlanks = nil, false
			out = append(out, s.byteAt(0))
			s.advance(1)
		}
		var trailing []byte
		for s.isBlank(0) || s.isBreak(0) {
			if s.isBlank(0) {
				trailing = append(trailing, s.byteAt(0))
				s.advance(1)
			} else {
				trailing = append(trailing, '\n')
				s.advance(1)
				leadingBlanks = true
			}
		}
		if s.atEnd() {
			return "", s.newError(token.EndOfStream, "while scanning a single-quoted scalar, found unexpected end of stream")
		}
		whitespace = trailing
	}
}

func appendFold(out, whitespace []byte, leadingBlanks bool) []byte {
	if len(whitespace) == 0 {
		return out
	}
	if !leadingBlanks {
		return append(out, whitespace...)
	}
	breaks := 0
	for _, b := range whitespace {
		if b == '\n' {
			breaks++
		}
	}
	if breaks == 0 {
		return append(out, whitespace...)
	}
	if breaks == 1 {
		return append(out, ' ')
	}
	for i := 1; i < breaks; i++ {
		out = append(out, '\n')
	}
	return out
}

var simpleEscapes = map[byte]byte{
	'0': 0, 'a': '\a', 'b': '\b', 't': '\t', 'n': '\n', 'v': '\v', 'f': '\f',
	'r': '\r', 'e': 0x1B, ' ': ' ', '"': '"', '\\': '\\', '/': '/',
	'N': 0, '_': 0xA0, 'L': 0, 'P': 0,
}

func (s *Scanner) scanDoubleQuotedScalar() (string, error) {
	s.advance(1) // opening "
	var out []byte
	var whitespace []byte
	leadingBlanks := false
	for {
		for !s.isBlankZ(0) {
			if s.byteAt(0) == '"' {
				s.advance(1)
				return string(appendFold(out, whitespace, leadingBlanks)), nil
			}
			if s.byteAt(0) == '\\' {
				out = appendFold(out, whitespace, leadingBlanks)
				whitespace, leadingBlanks = nil, false
				esc, err := s.scanDoubleQuotedEscape()
				if err != nil {
					return "", err
				}
				out = append(out, esc...)
				continue
			}
			if s.atEnd() {
				return "", s.newError(token.EndOfStream, "while scanning a double-quoted scalar, found unexpected end of stream")
			}
			out = appendFold(out, whitespace, leadingBlanks)
			whitespace, leadingBlanks = nil, false
			out = append(out, s.byteAt(0))
			s.advance(1)
		}
		var trailing []byte
		for s.isBlank(0) || s.isBreak(0) {
			if s.isBlank(0) {
				trailing = append(trailing, s.byteAt(0))
				s.advance(1)
			} else {
				trailing = append(trailing, '\n')
				s.advance(1)
				leadingBlanks = true
			}
		}
		if s.atEnd() {
			return "", s.newError(token.EndOfStream, "while scanning a double-quoted scalar, found unexpected end of stream")
		}
		whitespace = trailing
	}
}

// scanDoubleQuotedEscape handles the character right after a backslash: a
// simple single-letter escape, a \xXX/\uXXXX/\UXXXXXXXX numeric escape, or
// an escaped line break (which is simply elided, joining the two lines with
// no space or break at all).
func (s *Scanner) scanDoubleQuotedEscape() ([]byte, error) {
	escStart := s.mark
	c := s.byteAt(1)
	if repl, ok := simpleEscapes[c]; ok && c != 'x' && c != 'u' && c != 'U' {
		s.advance(2)
		if c == 'N' || c == 'L' || c == 'P' {
			return unicodeNamedEscape(c), nil
		}
		return []byte{repl}, nil
	}
	var width int
	switch c {
	case 'x':
		width = 2
	case 'u':
		width = 4
	case 'U':
		width = 8
	}
	if width > 0 {
		s.advance(2)
		var value rune
		for i := 0; i < width; i++ {
			if !token.IsHexAt(s.window(1), 0) {
				return nil, token.NewError(token.ScannerError, token.InvalidEscape, "while parsing a quoted scalar, did not find expected hexadecimal number", escStart)
			}
			value = value<<4 + rune(token.AsHexAt(s.window(1), 0))
			s.advance(1)
		}
		var tmp [4]byte
		n := encodeRune(tmp[:], value)
		return tmp[:n], nil
	}
	if s.isBreak(1) {
		s.advance(1)
		s.skipLineBreak()
		return nil, nil
	}
	return nil, s.newError(token.InvalidEscape, "while parsing a quoted scalar, found unknown escape character")
}

func unicodeNamedEscape(c byte) []byte {
	switch c {
	case 'N':
		return []byte{0xC2, 0x85}
	case 'L':
		return []byte{0xE2, 0x80, 0xA8}
	case 'P':
		return []byte{0xE2, 0x80, 0xA9}
	}
	return nil
}

func encodeRune(dst []byte, value rune) int {
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
