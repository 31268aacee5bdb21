// Package token holds the vocabulary shared by the reader, scanner and
// parser stages: positions, encodings, character classification, and the
// Token/Event wire types that pass between stages.
package token

import "strconv"

// Mark identifies a position in the input stream.
type Mark struct {
	Offset int // byte offset from the start of the stream
	Line   int // 1-based line number
	Column int // 1-based column, counted in unicode scalar values
}

func (m Mark) String() string {
	return strconv.Itoa(m.Line) + ":" + strconv.Itoa(m.Column)
}
