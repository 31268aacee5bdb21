package scanner

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

func (s *Scanner) fetchDirective() error {
	if err := s.unrollIndentAndRemoveKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	start := s.mark
	s.advance(1) // '%'

	name := s.scanName()
	switch name {
	case "YAML":
		return s.scanVersionDirective(start)
	case "TAG":
		return s.scanTagDirective(start)
	default:
		s.skipToLineEnd()
		return nil
	}
}

func (s *Scanner) scanName() string {
	start := s.pos
	for token.IsAlphaAt(s.window(1), 0) {
		s.advance(1)
	}
	return string(s.buf[start:s.pos])
}

func (s *Scanner) skipToLineEnd() {
	for s.isBlank(0) {
		s.advance(1)
	}
	for !s.isBreakZ(0) {
		s.advance(1)
	}
}

func (s *Scanner) scanVersionDirective(start token.Mark) error {
	for s.isBlank(0) {
		s.advance(1)
	}
	major, err := s.scanVersionNumber()
	if err != nil {
		return err
	}
	if s.byteAt(0) != '.' {
		return s.newError(token.DirectiveFormat, "while scanning a %YAML directive, did not find expected digit or '.' character")
	}
	s.advance(1)
	minor, err := s.scanVersionNumber()
	if err != nil {
		return err
	}
	s.skipToLineEnd()
	s.insertToken(-1, token.Token{
		Kind: token.VersionDirectiveToken, Start: start, End: s.mark,
		Major: int8(major), Minor: int8(minor),
	})
	return nil
}

func (s *Scanner) scanVersionNumber() (int, error) {
	start := s.pos
	value := 0
	for token.IsDigitAt(s.window(1), 0) {
		value = value*10 + token.AsDigitAt(s.window(1), 0)
		s.advance(1)
	}
	if s.pos == start {
		return 0, s.newError(token.DirectiveFormat, "while scanning a %YAML directive, did not find expected version number")
	}
	return value, nil
}

func (s *Scanner) scanTagDirective(start token.Mark) error {
	for s.isBlank(0) {
		s.advance(1)
	}
	handle, err := s.scanTagHandle(true)
	if err != nil {
		return err
	}
	if !s.isBlank(0) {
		return s.newError(token.ExpectedWhitespace, "while scanning a %TAG directive, did not find expected whitespace")
	}
	for s.isBlank(0) {
		s.advance(1)
	}
	prefix, err := s.scanTagURI()
	if err != nil {
		return err
	}
	if !s.isBlankZ(0) {
		return s.newError(token.ExpectedWhitespace, "while scanning a %TAG directive, did not find expected whitespace or line break")
	}
	s.skipToLineEnd()
	s.insertToken(-1, token.Token{
		Kind: token.TagDirectiveToken, Start: start, End: s.mark,
		Handle: handle, Prefix: prefix,
	})
	return nil
}
