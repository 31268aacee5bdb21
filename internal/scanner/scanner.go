// Package scanner turns a decoded UTF-8 byte buffer into a stream of
// tokens: structural indicators, directives, anchors, tags and scalars,
// with indentation folded into explicit block-start/block-end tokens the
// way the parser's grammar expects.
package scanner

import (
	"io"

	"github.com/ctrlflow-yaml/yamlevents/internal/token"
)

// Scanner produces tokens one at a time from a fully decoded input buffer.
// It looks ahead as far as a pending simple key requires, inserting the Key
// token retroactively once a ':' confirms it.
type Scanner struct {
	buf []byte
	pos int
	end int // index of the terminating NUL
	mark token.Mark

	streamStartProduced bool
	streamEndProduced   bool

	flowLevel int

	tokens       []token.Token // pending queue, not yet returned to the caller
	tokensParsed int          // count of tokens already returned (absolute index base)

	indent  int
	indents []int

	simpleKeyAllowed bool
	simpleKeys       []token.SimpleKeyCandidate
	simpleKeysByTok  map[int]int

	headComments []string // comment lines gathered since the last non-comment token

	err error
}

// New creates a Scanner over a buffer produced by reader.Decode.
func New(buf []byte) *Scanner {
	end := len(buf)
	for end > 0 && buf[end-1] == 0 {
		end--
	}
	return &Scanner{
		buf:             buf,
		end:             end,
		mark:            token.Mark{Line: 1, Column: 1},
		indent:          -1,
		simpleKeysByTok: map[int]int{},
	}
}

func (s *Scanner) newError(code token.ErrorCode, problem string) error {
	return token.NewError(token.ScannerError, code, problem, s.mark)
}

// --- cursor helpers ---

// byteAt returns the byte i positions past the cursor, or 0 past the end.
func (s *Scanner) byteAt(i int) byte {
	p := s.pos + i
	if p >= len(s.buf) {
		return 0
	}
	return s.buf[p]
}

func (s *Scanner) isZ(i int) bool      { return token.IsZeroAt(s.window(i+1), i) }
func (s *Scanner) isBreak(i int) bool  { return token.IsBreakAt(s.window(i+3), i) }
func (s *Scanner) isBreakZ(i int) bool { return s.isBreak(i) || s.isZ(i) }
func (s *Scanner) isBlank(i int) bool  { return token.IsBlankAt(s.window(i+1), i) }
func (s *Scanner) isBlankZ(i int) bool { return s.isBlank(i) || s.isBreakZ(i) }
func (s *Scanner) isSpace(i int) bool  { return token.IsSpaceAt(s.window(i+1), i) }
func (s *Scanner) isTab(i int) bool    { return token.IsTabAt(s.window(i+1), i) }

// window returns a byte slice starting at the cursor with at least n bytes
// of room (reading past end is safe: the buffer is NUL padded by Decode).
func (s *Scanner) window(n int) []byte {
	p := s.pos
	if p+n > len(s.buf) {
		return append(append([]byte(nil), s.buf[p:]...), make([]byte, n)...)
	}
	return s.buf[p:]
}

func (s *Scanner) charWidth(i int) int {
	p := s.pos + i
	if p >= s.end {
		return 1
	}
	w := token.Width(s.buf[p])
	if w == 0 || p+w > len(s.buf) {
		return 1
	}
	return w
}

// advance moves the cursor forward by n unicode scalar values, updating
// line/column bookkeeping.
func (s *Scanner) advance(n int) {
	for ; n > 0; n-- {
		w := s.charWidth(0)
		if s.isBreak(0) {
			s.mark.Line++
			s.mark.Column = 1
		} else if !s.isZ(0) {
			s.mark.Column++
		}
		s.mark.Offset += w
		s.pos += w
	}
}

// skipLineBreak advances past a single line break at the cursor (CR, LF,
// CRLF, NEL, LS or PS), if there is one, and reports whether it did.
func (s *Scanner) skipLineBreak() bool {
	if s.byteAt(0) == '\r' && s.byteAt(1) == '\n' {
		s.advance(1)
		s.pos += 1 // consume the LF byte without a second line bump
		s.mark.Offset += 1
		return true
	}
	if s.isBreak(0) {
		s.advance(1)
		return true
	}
	return false
}

func (s *Scanner) atEnd() bool { return s.pos >= s.end }

// --- public API ---

// Next returns the next token, or a zero Token with io.EOF-equivalent
// signalling once StreamEndToken has already been returned.
func (s *Scanner) Next() (token.Token, error) {
	if s.err != nil {
		return token.Token{}, s.err
	}
	if s.streamEndProduced && len(s.tokens) == 0 {
		return token.Token{}, io.EOF
	}
	for len(s.tokens) == 0 || s.needMoreTokens() {
		if err := s.fetchMoreTokens(); err != nil {
			s.err = err
			return token.Token{}, err
		}
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	s.tokensParsed++
	return tok, nil
}

// needMoreTokens reports whether the queue must grow before the head token
// can be safely handed out: we keep fetching while a simple key could still
// land before the current head.
func (s *Scanner) needMoreTokens() bool {
	if len(s.tokens) == 0 {
		return true
	}
	s.staleSimpleKeys()
	for _, sk := range s.simpleKeys {
		if sk.Possible && sk.TokenNumber == s.tokensParsed {
			return true
		}
	}
	return false
}

// insertToken inserts tok at absolute token index pos (pos < 0 appends at
// the tail of the pending queue). This is how a confirmed simple key gets
// its KeyToken spliced in after the fact, once the ':' that confirms it is
// seen several tokens later.
func (s *Scanner) insertToken(pos int, tok token.Token) {
	var local int
	if pos < 0 {
		local = len(s.tokens)
	} else {
		local = pos - s.tokensParsed
	}
	s.tokens = append(s.tokens, token.Token{})
	copy(s.tokens[local+1:], s.tokens[local:])
	s.tokens[local] = tok
}

func (s *Scanner) nextTokenNumber() int {
	return s.tokensParsed + len(s.tokens)
}
