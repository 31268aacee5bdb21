package scanner

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

func (s *Scanner) fetchAnchorOrAlias(kind token.Kind, indicator byte) error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	start := s.mark
	s.advance(1) // '&' or '*'

	namestart := s.pos
	for token.IsAlphaAt(s.window(1), 0) {
		s.advance(1)
	}
	if s.pos == namestart {
		return s.newError(token.AnchorFormat, "while scanning an anchor or alias, did not find expected alphabetic or numeric character")
	}
	name := string(s.buf[namestart:s.pos])
	s.insertToken(-1, token.Token{Kind: kind, Start: start, End: s.mark, Anchor: name, Comment: s.takeComments()})
	return nil
}

func (s *Scanner) fetchTag() error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	start := s.mark

	handle, suffix, err := s.scanTag()
	if err != nil {
		return err
	}
	s.insertToken(-1, token.Token{
		Kind: token.TagToken, Start: start, End: s.mark,
		Handle: handle, Prefix: suffix, Comment: s.takeComments(),
	})
	return nil
}

// scanTag scans a tag token: either a verbatim "!<uri>", a shorthand
// "!handle!suffix", a lone "!!" secondary handle, or a bare "!" non-specific
// tag, returning (handle, suffix).
func (s *Scanner) scanTag() (handle, suffix string, err error) {
	if s.byteAt(1) == '<' {
		s.advance(2)
		suffix, err = s.scanTagURI()
		if err != nil {
			return "", "", err
		}
		if s.byteAt(0) != '>' {
			return "", "", s.newError(token.TagFormat, "while scanning a tag, did not find the expected '>'")
		}
		s.advance(1)
		return "", suffix, nil
	}

	if s.isBlankZ(1) {
		s.advance(1)
		return "", "!", nil
	}

	// Look ahead for a second '!' to decide between shorthand and bare "!".
	length := 1
	useHandle := false
	for !s.isBlankZ(length) {
		if s.byteAt(length) == '!' {
			useHandle = true
			break
		}
		length++
	}
	if useHandle {
		handle, err = s.scanTagHandle(false)
		if err != nil {
			return "", "", err
		}
	} else {
		s.advance(1)
		handle = "!"
	}
	suffix, err = s.scanTagURI()
	if err != nil {
		return "", "", err
	}
	return handle, suffix, nil
}

// scanTagHandle scans "!", "!!" or "!name!", starting at the leading '!'.
func (s *Scanner) scanTagHandle(directive bool) (string, error) {
	if s.byteAt(0) != '!' {
		return "", s.newError(token.TagFormat, "while scanning a tag, did not find expected '!'")
	}
	start := s.pos
	s.advance(1)
	for token.IsAlphaAt(s.window(1), 0) {
		s.advance(1)
	}
	if s.byteAt(0) == '!' {
		s.advance(1)
	} else if directive && !(s.pos == start+1) {
		return "", s.newError(token.DirectiveFormat, "while parsing a tag directive, did not find expected '!'")
	}
	return string(s.buf[start:s.pos]), nil
}

// scanTagURI scans the URI portion of a tag: alphanumerics, URI-safe
// punctuation, and %XX escapes.
func (s *Scanner) scanTagURI() (string, error) {
	var out []byte
	for token.IsAlphaAt(s.window(1), 0) || isURIChar(s.byteAt(0)) {
		if s.byteAt(0) == '%' {
			esc, err := s.scanURIEscape()
			if err != nil {
				return "", err
			}
			out = append(out, esc...)
			continue
		}
		out = append(out, s.byteAt(0))
		s.advance(1)
	}
	if len(out) == 0 {
		return "", s.newError(token.TagFormat, "while parsing a tag, did not find expected tag URI")
	}
	return string(out), nil
}

func isURIChar(c byte) bool {
	switch c {
	case ';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '_', '.', '!', '~', '*', '\'', '(', ')', '[', ']', '%', '-', '#':
		return true
	}
	return false
}

func (s *Scanner) scanURIEscape() ([]byte, error) {
	var out []byte
	for s.byteAt(0) == '%' {
		s.advance(1)
		if !token.IsHexAt(s.window(1), 0) || !token.IsHexAt(s.window(2), 1) {
			return nil, s.newError(token.TagFormat, "while parsing a tag, did not find URI escape sequence")
		}
		b := byte(token.AsHexAt(s.window(1), 0)<<4 | token.AsHexAt(s.window(2), 1))
		out = append(out, b)
		s.advance(2)
	}
	return out, nil
}
