package scanner

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

func (s *Scanner) fetchPlainScalar() error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	start := s.mark

	value, err := s.scanPlainScalar()
	if err != nil {
		return err
	}
	s.insertToken(-1, token.Token{
		Kind: token.ScalarToken, Start: start, End: s.mark,
		Value: value, ScalarStyle: token.PlainScalarStyle, Comment: s.takeComments(),
	})
	return nil
}

// scanPlainScalar scans a plain (unquoted) scalar, folding single line
// breaks into spaces and multiple ones into that many minus one newlines,
// the way block-style folding works throughout YAML.
func (s *Scanner) scanPlainScalar() (string, error) {
	var out []byte
	var whitespace []byte
	var leadingBlanks bool
	indent := s.indent + 1

	for {
		if s.mark.Column == 1 && (s.hasPrefix("---") || s.hasPrefix("...")) && s.isBlankZ(3) {
			break
		}
		if s.byteAt(0) == '#' && len(whitespace) > 0 {
			break
		}
		if s.isBreakZ(0) {
			break
		}

		runStart := s.pos
		for !s.isBlankZ(0) {
			if s.byteAt(0) == ':' && (s.isBlankZ(1) || (s.flowLevel > 0 && isFlowIndicator(s.byteAt(1)))) {
				break
			}
			if s.flowLevel > 0 && isFlowIndicator(s.byteAt(0)) {
				break
			}
			s.advance(1)
		}
		if s.pos == runStart {
			// Nothing consumed: a terminator indicator sits right here.
			break
		}
		if len(whitespace) > 0 {
			if leadingBlanks {
				out = s.foldBreaks(out, whitespace)
			} else {
				out = append(out, whitespace...)
			}
			whitespace = nil
			leadingBlanks = false
		}
		out = append(out, s.buf[runStart:s.pos]...)

		var trailing []byte
		for s.isBlank(0) || s.isBreak(0) {
			if s.isBlank(0) {
				trailing = append(trailing, s.byteAt(0))
				s.advance(1)
				continue
			}
			trailing = append(trailing, '\n')
			s.advance(1)
			leadingBlanks = true
		}
		if s.flowLevel == 0 && s.mark.Column < indent+1 && !s.isBlankZ(0) {
			break
		}
		whitespace = trailing
	}
	if leadingBlanks {
		// The scalar consumed a line break: a simple key may start the next line.
		s.simpleKeyAllowed = true
	}
	return string(out), nil
}

func isFlowIndicator(c byte) bool {
	switch c {
	case ',', '[', ']', '{', '}':
		return true
	}
	return false
}

// foldBreaks applies YAML line-fold rules to a run of collected whitespace
// that contained at least one break: a lone break becomes a single space,
// and each break beyond the first becomes a literal newline.
func (s *Scanner) foldBreaks(out, whitespace []byte) []byte {
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
