package scanner

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

// fetchMoreTokens is the main scanner loop: it emits StreamStart the first
// time it is called, StreamEnd once the input is exhausted, and otherwise
// advances past whitespace/comments to the next significant character and
// dispatches to the fetcher for whatever indicator is there.
func (s *Scanner) fetchMoreTokens() error {
	if !s.streamStartProduced {
		return s.fetchStreamStart()
	}

	if err := s.scanToNextToken(); err != nil {
		return err
	}
	if err := s.staleSimpleKeys(); err != nil {
		return err
	}
	s.unrollIndent(s.columnOfCursor()-1, s.mark)

	if s.atEnd() {
		return s.fetchStreamEnd()
	}

	switch {
	case s.mark.Column == 1 && s.byteAt(0) == '%':
		return s.fetchDirective()
	case s.mark.Column == 1 && s.hasPrefix("---") && s.isBlankZ(3):
		return s.fetchDocumentIndicator(token.DocumentStartToken)
	case s.mark.Column == 1 && s.hasPrefix("...") && s.isBlankZ(3):
		return s.fetchDocumentIndicator(token.DocumentEndToken)
	case s.byteAt(0) == '[':
		return s.fetchFlowCollectionStart(token.FlowSequenceStartToken)
	case s.byteAt(0) == '{':
		return s.fetchFlowCollectionStart(token.FlowMappingStartToken)
	case s.byteAt(0) == ']':
		return s.fetchFlowCollectionEnd(token.FlowSequenceEndToken)
	case s.byteAt(0) == '}':
		return s.fetchFlowCollectionEnd(token.FlowMappingEndToken)
	case s.byteAt(0) == ',':
		return s.fetchFlowEntry()
	case s.byteAt(0) == '-' && s.isBlankZ(1):
		return s.fetchBlockEntry()
	case s.byteAt(0) == '?' && (s.flowLevel > 0 || s.isBlankZ(1)):
		return s.fetchKey()
	case s.byteAt(0) == ':' && (s.flowLevel > 0 || s.isBlankZ(1)):
		return s.fetchValue()
	case s.byteAt(0) == '*':
		return s.fetchAnchorOrAlias(token.AliasToken, '*')
	case s.byteAt(0) == '&':
		return s.fetchAnchorOrAlias(token.AnchorToken, '&')
	case s.byteAt(0) == '!':
		return s.fetchTag()
	case s.byteAt(0) == '|' && s.flowLevel == 0:
		return s.fetchBlockScalar(token.LiteralScalarStyle)
	case s.byteAt(0) == '>' && s.flowLevel == 0:
		return s.fetchBlockScalar(token.FoldedScalarStyle)
	case s.byteAt(0) == '\'':
		return s.fetchFlowScalar(token.SingleQuotedScalarStyle)
	case s.byteAt(0) == '"':
		return s.fetchFlowScalar(token.DoubleQuotedScalarStyle)
	case s.isPlainStart():
		return s.fetchPlainScalar()
	default:
		return s.newError(token.InvalidToken, "found character that cannot start any token")
	}
}

func (s *Scanner) columnOfCursor() int { return s.mark.Column }

func (s *Scanner) hasPrefix(p string) bool {
	for i := 0; i < len(p); i++ {
		if s.byteAt(i) != p[i] {
			return false
		}
	}
	return true
}

// isPlainStart reports whether the cursor is at a character allowed to
// begin a plain scalar: anything but the indicators that begin other token
// kinds, and (in flow context) the flow delimiters.
func (s *Scanner) isPlainStart() bool {
	c := s.byteAt(0)
	switch c {
	case '-':
		return !s.isBlankZ(1)
	case '?', ':':
		if s.flowLevel > 0 {
			return false
		}
		return !s.isBlankZ(1)
	case ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return false
	}
	return !s.isBlankZ(0)
}

func (s *Scanner) fetchStreamStart() error {
	s.indent = -1
	s.simpleKeyAllowed = true
	s.streamStartProduced = true
	s.tokens = append(s.tokens, token.Token{Kind: token.StreamStartToken, Start: s.mark, End: s.mark})
	return nil
}

func (s *Scanner) fetchStreamEnd() error {
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	s.unrollIndent(-1, s.mark)
	s.streamEndProduced = true
	s.insertToken(-1, token.Token{Kind: token.StreamEndToken, Start: s.mark, End: s.mark, Comment: s.takeComments()})
	return nil
}

func (s *Scanner) fetchDocumentIndicator(kind token.Kind) error {
	if err := s.unrollIndentAndRemoveKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	start := s.mark
	s.advance(3)
	s.insertToken(-1, token.Token{Kind: kind, Start: start, End: s.mark})
	return nil
}

func (s *Scanner) unrollIndentAndRemoveKey() error {
	s.unrollIndent(-1, s.mark)
	return s.removeSimpleKey()
}

func (s *Scanner) fetchFlowCollectionStart(kind token.Kind) error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.increaseFlowLevel()
	s.simpleKeyAllowed = true
	start := s.mark
	s.advance(1)
	s.insertToken(-1, token.Token{Kind: kind, Start: start, End: s.mark})
	return nil
}

func (s *Scanner) fetchFlowCollectionEnd(kind token.Kind) error {
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.decreaseFlowLevel()
	s.simpleKeyAllowed = false
	start := s.mark
	s.advance(1)
	s.insertToken(-1, token.Token{Kind: kind, Start: start, End: s.mark})
	return nil
}

func (s *Scanner) fetchFlowEntry() error {
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = true
	start := s.mark
	s.advance(1)
	s.insertToken(-1, token.Token{Kind: token.FlowEntryToken, Start: start, End: s.mark})
	return nil
}

func (s *Scanner) fetchBlockEntry() error {
	if s.flowLevel == 0 {
		if !s.simpleKeyAllowed {
			return s.newError(token.InvalidIndentation, "block sequence entries are not allowed in this context")
		}
		s.rollIndent(s.mark.Column-1, -1, token.BlockSequenceStartToken, s.mark)
	}
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = true
	start := s.mark
	s.advance(1)
	s.insertToken(-1, token.Token{Kind: token.BlockEntryToken, Start: start, End: s.mark})
	return nil
}

func (s *Scanner) fetchKey() error {
	if s.flowLevel == 0 {
		if !s.simpleKeyAllowed {
			return s.newError(token.UnexpectedKey, "mapping keys are not allowed in this context")
		}
		s.rollIndent(s.mark.Column-1, -1, token.BlockMappingStartToken, s.mark)
	}
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = s.flowLevel == 0
	start := s.mark
	s.advance(1)
	s.insertToken(-1, token.Token{Kind: token.KeyToken, Start: start, End: s.mark})
	return nil
}

func (s *Scanner) fetchValue() error {
	if len(s.simpleKeys) > 0 {
		sk := &s.simpleKeys[len(s.simpleKeys)-1]
		if sk.Possible {
			s.insertToken(sk.TokenNumber, token.Token{Kind: token.KeyToken, Start: sk.Mark, End: sk.Mark})
			if s.flowLevel == 0 {
				s.rollIndent(sk.Mark.Column-1, sk.TokenNumber, token.BlockMappingStartToken, sk.Mark)
			}
			sk.Possible = false
			s.simpleKeyAllowed = false
			start := s.mark
			s.advance(1)
			s.insertToken(-1, token.Token{Kind: token.ValueToken, Start: start, End: s.mark})
			return nil
		}
	}
	if s.flowLevel == 0 {
		if !s.simpleKeyAllowed {
			return s.newError(token.UnexpectedValue, "mapping values are not allowed in this context")
		}
		s.rollIndent(s.mark.Column-1, -1, token.BlockMappingStartToken, s.mark)
	}
	s.simpleKeyAllowed = s.flowLevel == 0
	start := s.mark
	s.advance(1)
	s.insertToken(-1, token.Token{Kind: token.ValueToken, Start: start, End: s.mark})
	return nil
}
