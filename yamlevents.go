package yamlevents

import (
	"io"

	"github.com/ctrlflow-yaml/yamlevents/internal/parser"
	"github.com/ctrlflow-yaml/yamlevents/internal/reader"
	"github.com/ctrlflow-yaml/yamlevents/internal/scanner"
	"github.com/ctrlflow-yaml/yamlevents/internal/token"
)

// Kind identifies the structural role of an Event.
type Kind = token.EventKind

const (
	DocumentStart = token.DocumentStartEvent
	DocumentEnd   = token.DocumentEndEvent
	Alias         = token.AliasEvent
	Scalar        = token.ScalarEvent
	SequenceStart = token.SequenceStartEvent
	SequenceEnd   = token.SequenceEndEvent
	MappingStart  = token.MappingStartEvent
	MappingEnd    = token.MappingEndEvent
)

// ScalarStyle records how a scalar was written in the source document.
type ScalarStyle = token.ScalarStyle

const (
	AnyScalarStyle = token.AnyScalarStyle
	Plain          = token.PlainScalarStyle
	SingleQuoted   = token.SingleQuotedScalarStyle
	DoubleQuoted   = token.DoubleQuotedScalarStyle
	Literal        = token.LiteralScalarStyle
	Folded         = token.FoldedScalarStyle
)

// CollectionStyle records whether a sequence or mapping was written in flow
// or block form.
type CollectionStyle = token.CollectionStyle

const (
	AnyCollectionStyle = token.AnyCollectionStyle
	Block              = token.BlockCollectionStyle
	Flow               = token.FlowCollectionStyle
)

// Encoding identifies the byte encoding of the input stream.
type Encoding = token.Encoding

const (
	// AnyEncoding tells NewParser and its siblings to autodetect the
	// encoding from a leading BOM or zero-byte pattern, rather than assume
	// one.
	AnyEncoding = token.AnyEncoding
	UTF8        = token.UTF8Encoding
	UTF16LE     = token.UTF16LEEncoding
	UTF16BE     = token.UTF16BEEncoding
	UTF32LE     = token.UTF32LEEncoding
	UTF32BE     = token.UTF32BEEncoding
)

// Mark identifies a position in the source stream.
type Mark = token.Mark

// VersionDirective is a parsed %YAML directive.
type VersionDirective = token.VersionDirective

// TagDirective is a parsed %TAG directive.
type TagDirective = token.TagDirective

// Comment carries comment text gathered around an event's position.
type Comment = token.Comment

// Event is a single item of the flat structural stream a Parser yields.
type Event = token.Event

// Parser pulls a flat stream of Events out of a YAML byte stream.
type Parser struct {
	p *parser.Parser
}

// NewParser creates a Parser reading from src, autodetecting its encoding.
// The entire stream is decoded into memory up front (this package does not
// support resuming a parse across separate reads of a partial buffer).
func NewParser(src io.Reader) (*Parser, error) {
	return NewParserWithEncoding(src, AnyEncoding)
}

// NewParserWithEncoding creates a Parser reading from src under an explicit
// Encoding, bypassing autodetection. Pass AnyEncoding for the same
// autodetecting behavior as NewParser.
func NewParserWithEncoding(src io.Reader, enc Encoding) (*Parser, error) {
	buf, _, err := reader.Decode(src, enc)
	if err != nil {
		return nil, err
	}
	return newParserFromBuffer(buf), nil
}

// NewParserBytes creates a Parser over an in-memory document, autodetecting
// its encoding.
func NewParserBytes(b []byte) (*Parser, error) {
	return NewParserBytesWithEncoding(b, AnyEncoding)
}

// NewParserBytesWithEncoding creates a Parser over an in-memory document
// under an explicit Encoding, bypassing autodetection.
func NewParserBytesWithEncoding(b []byte, enc Encoding) (*Parser, error) {
	buf, _, err := reader.DecodeBytes(b, enc)
	if err != nil {
		return nil, err
	}
	return newParserFromBuffer(buf), nil
}

// NewParserString creates a Parser over an in-memory document given as a
// string, autodetecting its encoding. Since an explicit Encoding is only
// ever useful for a raw byte source, there is no string-typed
// WithEncoding sibling: callers with known non-UTF-8 bytes should go
// through NewParserBytesWithEncoding instead.
func NewParserString(s string) (*Parser, error) {
	return NewParserBytes([]byte(s))
}

func newParserFromBuffer(buf []byte) *Parser {
	sc := scanner.New(buf)
	return &Parser{p: parser.New(sc)}
}

// Next returns the next Event in the stream. Once the terminal documentEnd
// has been produced, every subsequent call returns an *Error whose Code is
// EndOfStreamCode (checkable with IsEndOfStream): that error, not a
// sentinel event, is this package's end-of-stream signal.
func (p *Parser) Next() (Event, error) {
	return p.p.Next()
}

// Events drains the parser into a slice, stopping at the first error. If
// that error is the EndOfStreamCode error Next returns once the stream is
// exhausted, Events treats it as successful completion and returns a nil
// error; any other error is returned to the caller. It is meant for tests
// and small documents; production callers should generally prefer the
// pull-based Next API.
func (p *Parser) Events() ([]Event, error) {
	var out []Event
	for {
		ev, err := p.Next()
		if err != nil {
			if IsEndOfStream(err) {
				return out, nil
			}
			return out, err
		}
		out = append(out, ev)
	}
}
