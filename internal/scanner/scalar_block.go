package scanner

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

// chompMode is the block scalar final-line-break handling: clip (default,
// single trailing break), strip ('-', no trailing break) or keep ('+', all
// trailing breaks preserved).
type chompMode int

const (
	chompClip chompMode = iota
	chompStrip
	chompKeep
)

func (s *Scanner) fetchBlockScalar(style token.ScalarStyle) error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = true
	start := s.mark
	s.advance(1) // '|' or '>'

	chomp := chompClip
	explicitIndent := 0
	for i := 0; i < 2; i++ {
		switch s.byteAt(0) {
		case '-':
			chomp = chompStrip
			s.advance(1)
		case '+':
			chomp = chompKeep
			s.advance(1)
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			explicitIndent = token.AsDigitAt(s.window(1), 0)
			s.advance(1)
		}
	}
	for s.isBlank(0) {
		s.advance(1)
	}
	if s.byteAt(0) == '#' {
		s.scanCommentText()
	}
	if !s.isBreakZ(0) {
		return s.newError(token.ExpectedWhitespace, "while scanning a block scalar, did not find expected comment or line break")
	}
	if !s.atEnd() {
		s.skipLineBreak()
	}

	value, err := s.scanBlockScalarBody(explicitIndent, chomp, style == token.FoldedScalarStyle)
	if err != nil {
		return err
	}
	s.insertToken(-1, token.Token{
		Kind: token.ScalarToken, Start: start, End: s.mark,
		Value: value, ScalarStyle: style,
	})
	return nil
}

// scanBlockScalarBody consumes a block scalar's content lines, already
// positioned just past the header's line break. For literal style every
// line break is preserved; for folded style a single break between two
// lines at exactly the block's own indentation folds to a space, while a
// break adjacent to a more-indented line (or a blank line) stays literal.
func (s *Scanner) scanBlockScalarBody(explicitIndent int, chomp chompMode, folded bool) (string, error) {
	blockIndent := explicitIndent
	if blockIndent > 0 {
		blockIndent += s.indent + 1
		if blockIndent < 1 {
			blockIndent = 1
		}
	}

	var out []byte
	trailingBreaks := 0
	previousMoreIndented := false
	sawLine := false

	for {
		if blockIndent == 0 {
			// Auto-detect indentation from the first non-empty line.
			col := 0
			for s.isSpace(col) {
				col++
			}
			if !s.isBreakZ(col) {
				blockIndent = col
				if blockIndent < s.indent+1 {
					blockIndent = s.indent + 1
				}
			} else {
				for s.isSpace(0) {
					s.advance(1)
				}
				if s.isBreakZ(0) {
					if !s.atEnd() {
						trailingBreaks++
						s.skipLineBreak()
					}
					continue
				}
			}
		}

		for i := 0; i < blockIndent && s.isSpace(0); i++ {
			s.advance(1)
		}
		if s.mark.Column-1 < blockIndent && s.isTab(0) {
			return "", s.newError(token.InvalidIndentation, "while scanning a block scalar, found a tab character where an indentation space is expected")
		}
		if s.atEnd() {
			break
		}
		if s.mark.Column-1 < blockIndent && !s.isBreakZ(0) {
			break
		}

		blank := s.isBreakZ(0)
		moreIndented := s.isSpace(0)

		// A blank line is never folded and never decides fold state on its
		// own: defer the decision to the next real content line, which
		// will see the accumulated break count.
		if !blank {
			if !sawLine {
				// First content line: nothing to fold against yet.
				for i := 0; i < trailingBreaks; i++ {
					out = append(out, '\n')
				}
			} else if !folded || moreIndented || previousMoreIndented {
				for i := 0; i < trailingBreaks; i++ {
					out = append(out, '\n')
				}
			} else if trailingBreaks == 1 {
				out = append(out, ' ')
			} else {
				for i := 0; i < trailingBreaks-1; i++ {
					out = append(out, '\n')
				}
			}
			trailingBreaks = 0
			sawLine = true
			previousMoreIndented = moreIndented
		}

		lineStart := s.pos
		for !s.isBreakZ(0) {
			s.advance(1)
		}
		out = append(out, s.buf[lineStart:s.pos]...)

		if s.atEnd() {
			break
		}
		s.skipLineBreak()
		trailingBreaks++

		// Stop when the next line is indented less than the block's own
		// indentation (and isn't blank).
		col := 0
		for s.isSpace(col) {
			col++
		}
		if !s.isBreakZ(col) && col < blockIndent {
			break
		}
	}

	switch chomp {
	case chompKeep:
		for i := 0; i < trailingBreaks; i++ {
			out = append(out, '\n')
		}
	case chompClip:
		if trailingBreaks > 0 && len(out) > 0 {
			out = append(out, '\n')
		}
	case chompStrip:
	}
	return string(out), nil
}
