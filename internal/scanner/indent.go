package scanner

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

// rollIndent pushes a new, strictly greater indentation level and emits the
// matching block-sequence or block-mapping start token at tokenPos (or at
// the tail of the queue if tokenPos < 0).
func (s *Scanner) rollIndent(column, tokenPos int, kind token.Kind, mark token.Mark) {
	if s.flowLevel > 0 {
		return
	}
	if s.indent >= column {
		return
	}
	s.indents = append(s.indents, s.indent)
	s.indent = column
	s.insertToken(tokenPos, token.Token{Kind: kind, Start: mark, End: mark})
}

// unrollIndent pops indentation levels back down to column, emitting a
// BlockEndToken for each one closed.
func (s *Scanner) unrollIndent(column int, mark token.Mark) {
	if s.flowLevel > 0 {
		return
	}
	for s.indent > column {
		s.indent = s.indents[len(s.indents)-1]
		s.indents = s.indents[:len(s.indents)-1]
		s.insertToken(-1, token.Token{Kind: token.BlockEndToken, Start: mark, End: mark})
	}
}
