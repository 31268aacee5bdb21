package scanner

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

// scanToNextToken skips blanks, line breaks and comments, gathering any
// comment text as a head comment for whatever token comes next. It is also
// where the indentation column for the upcoming token gets established.
//
// Comments that trail a token on its own line are not distinguished from
// standalone ones here: both become Before comments on the next scalar,
// anchor, alias, tag or stream-end token, the only kinds that take them. A
// faithful head/line/foot split, as the teacher's scan_comments does, would
// need to look back into tokens already handed to the caller.
func (s *Scanner) scanToNextToken() error {
	for {
		for s.isBlank(0) {
			s.advance(1)
		}
		if s.byteAt(0) == '#' {
			s.headComments = append(s.headComments, s.scanCommentText())
		}
		if !s.isBreakZ(0) {
			break
		}
		if s.atEnd() {
			break
		}
		s.skipLineBreak()
		if s.flowLevel == 0 {
			s.simpleKeyAllowed = true
		}
	}
	return nil
}

// scanCommentText consumes a '#' comment to end of line and returns its
// text, without the leading '#' or trailing line break.
func (s *Scanner) scanCommentText() string {
	s.advance(1) // '#'
	start := s.pos
	for !s.isBreakZ(0) {
		s.advance(1)
	}
	return string(s.buf[start:s.pos])
}

// takeComments returns and clears the comments gathered since the last
// token, for attachment to the token about to be emitted.
func (s *Scanner) takeComments() token.Comment {
	c := token.Comment{Before: s.headComments}
	s.headComments = nil
	return c
}
