package yamlevents

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

// Error is returned by Parser.Next when the reader, scanner or parser stage
// rejects the input. It always carries the Mark the problem was found at.
type Error = token.Error

// ErrorKind classifies which stage raised an Error.
type ErrorKind = token.ErrorKind

const (
	ReaderErrorKind  = token.ReaderError
	ScannerErrorKind = token.ScannerError
	ParserErrorKind  = token.ParserError
)

// ErrorCode identifies the specific problem an Error carries.
type ErrorCode = token.ErrorCode

const (
	EndOfStreamCode         = token.EndOfStream
	InvalidEncodingCode     = token.InvalidEncoding
	InvalidVersionCode      = token.InvalidVersion
	InvalidTokenCode        = token.InvalidToken
	InvalidIndentationCode  = token.InvalidIndentation
	InvalidEscapeCode       = token.InvalidEscape
	ExpectedKeyCode         = token.ExpectedKey
	ExpectedValueCode       = token.ExpectedValue
	ExpectedWhitespaceCode  = token.ExpectedWhitespace
	UnexpectedKeyCode       = token.UnexpectedKey
	UnexpectedValueCode     = token.UnexpectedValue
	UnexpectedDirectiveCode = token.UnexpectedDirective
	DirectiveFormatCode     = token.DirectiveFormat
	TagFormatCode           = token.TagFormat
	AnchorFormatCode        = token.AnchorFormat
)

// IsEndOfStream reports whether err is the typed error a Parser returns once
// the stream's terminal documentEnd has already been produced. Per the
// event surface, this is the normal way a caller detects the end of input:
// there is no StreamEnd event to watch for instead.
func IsEndOfStream(err error) bool {
	yerr, ok := err.(*Error)
	return ok && yerr.Code == EndOfStreamCode
}
