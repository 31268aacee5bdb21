package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ctrlflow-yaml/yamlevents/internal/parser"
	"github.com/ctrlflow-yaml/yamlevents/internal/token"
)

// fakeSource replays a canned token list, letting parser-level state
// transitions be tested without going through the scanner.
type fakeSource struct {
	toks []token.Token
	pos  int
}

func (f *fakeSource) Next() (token.Token, error) {
	tok := f.toks[f.pos]
	if f.pos < len(f.toks)-1 {
		f.pos++
	}
	return tok, nil
}

func mark(line, col int) token.Mark { return token.Mark{Line: line, Column: col} }

// isEndOfStream reports whether err is the typed error the parser returns
// once its terminal documentEnd has already been produced.
func isEndOfStream(err error) bool {
	terr, ok := err.(*token.Error)
	return ok && terr.Code == token.EndOfStream
}

func TestParserEmptyStreamProducesOnlyImplicitDocumentPair(t *testing.T) {
	src := &fakeSource{toks: []token.Token{
		{Kind: token.StreamStartToken, Start: mark(1, 1)},
		{Kind: token.StreamEndToken, Start: mark(1, 1)},
	}}
	p := parser.New(src)

	ev, err := p.Next()
	require.NoError(t, err)
	require.Equal(t, token.DocumentStartEvent, ev.Kind)
	require.True(t, ev.IsImplicit)

	ev, err = p.Next()
	require.NoError(t, err)
	require.Equal(t, token.DocumentEndEvent, ev.Kind)
	require.True(t, ev.IsImplicit)

	_, err = p.Next()
	require.Error(t, err)
	require.True(t, isEndOfStream(err))
}

func TestParserScalarDocument(t *testing.T) {
	src := &fakeSource{toks: []token.Token{
		{Kind: token.StreamStartToken, Start: mark(1, 1)},
		{Kind: token.ScalarToken, Start: mark(1, 1), End: mark(1, 4), Value: "foo", ScalarStyle: token.PlainScalarStyle},
		{Kind: token.StreamEndToken, Start: mark(2, 1)},
	}}
	p := parser.New(src)

	var kinds []token.EventKind
	var scalarValue string
	for {
		ev, err := p.Next()
		if err != nil {
			require.True(t, isEndOfStream(err))
			break
		}
		kinds = append(kinds, ev.Kind)
		if ev.Kind == token.ScalarEvent {
			scalarValue = ev.Value
		}
	}
	require.Equal(t, []token.EventKind{
		token.DocumentStartEvent, token.ScalarEvent, token.DocumentEndEvent,
	}, kinds)
	require.Equal(t, "foo", scalarValue)
}

func TestParserBlockMapping(t *testing.T) {
	src := &fakeSource{toks: []token.Token{
		{Kind: token.StreamStartToken, Start: mark(1, 1)},
		{Kind: token.BlockMappingStartToken, Start: mark(1, 1)},
		{Kind: token.KeyToken, Start: mark(1, 1)},
		{Kind: token.ScalarToken, Start: mark(1, 1), Value: "a", ScalarStyle: token.PlainScalarStyle},
		{Kind: token.ValueToken, Start: mark(1, 2)},
		{Kind: token.ScalarToken, Start: mark(1, 4), Value: "1", ScalarStyle: token.PlainScalarStyle},
		{Kind: token.BlockEndToken, Start: mark(2, 1)},
		{Kind: token.StreamEndToken, Start: mark(2, 1)},
	}}
	p := parser.New(src)

	var kinds []token.EventKind
	for {
		ev, err := p.Next()
		if err != nil {
			require.True(t, isEndOfStream(err))
			break
		}
		kinds = append(kinds, ev.Kind)
	}
	require.Equal(t, []token.EventKind{
		token.DocumentStartEvent, token.MappingStartEvent,
		token.ScalarEvent, token.ScalarEvent, token.MappingEndEvent,
		token.DocumentEndEvent,
	}, kinds)
}

func TestParserRejectsMissingStreamStart(t *testing.T) {
	src := &fakeSource{toks: []token.Token{
		{Kind: token.ScalarToken, Start: mark(1, 1)},
	}}
	p := parser.New(src)
	_, err := p.Next()
	require.Error(t, err)
	require.Contains(t, err.Error(), "did not find expected <stream-start>")
}
