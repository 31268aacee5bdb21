package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ctrlflow-yaml/yamlevents/internal/reader"
	"github.com/ctrlflow-yaml/yamlevents/internal/scanner"
	"github.com/ctrlflow-yaml/yamlevents/internal/token"
)

func scanAll(t *testing.T, doc string) []token.Token {
	t.Helper()
	buf, _, err := reader.DecodeBytes([]byte(doc), token.AnyEncoding)
	require.NoError(t, err)
	sc := scanner.New(buf)
	var toks []token.Token
	for {
		tok, err := sc.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.StreamEndToken {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanEmptyDocument(t *testing.T) {
	toks := scanAll(t, "")
	require.Equal(t, []token.Kind{token.StreamStartToken, token.StreamEndToken}, kinds(toks))
}

func TestScanPlainScalar(t *testing.T) {
	toks := scanAll(t, "hello world\n")
	require.Equal(t, []token.Kind{token.StreamStartToken, token.ScalarToken, token.StreamEndToken}, kinds(toks))
	require.Equal(t, "hello world", toks[1].Value)
	require.Equal(t, token.PlainScalarStyle, toks[1].ScalarStyle)
}

func TestScanBlockSequence(t *testing.T) {
	toks := scanAll(t, "- a\n- b\n")
	require.Equal(t, []token.Kind{
		token.StreamStartToken,
		token.BlockSequenceStartToken,
		token.BlockEntryToken, token.ScalarToken,
		token.BlockEntryToken, token.ScalarToken,
		token.BlockEndToken,
		token.StreamEndToken,
	}, kinds(toks))
}

func TestScanBlockMapping(t *testing.T) {
	toks := scanAll(t, "a: 1\nb: 2\n")
	require.Equal(t, []token.Kind{
		token.StreamStartToken,
		token.BlockMappingStartToken,
		token.KeyToken, token.ScalarToken, token.ValueToken, token.ScalarToken,
		token.KeyToken, token.ScalarToken, token.ValueToken, token.ScalarToken,
		token.BlockEndToken,
		token.StreamEndToken,
	}, kinds(toks))
}

func TestScanFlowSequence(t *testing.T) {
	toks := scanAll(t, "[a, b]\n")
	require.Equal(t, []token.Kind{
		token.StreamStartToken,
		token.FlowSequenceStartToken,
		token.ScalarToken, token.FlowEntryToken, token.ScalarToken,
		token.FlowSequenceEndToken,
		token.StreamEndToken,
	}, kinds(toks))
}

func TestScanSingleQuotedScalarEscape(t *testing.T) {
	toks := scanAll(t, "'it''s'\n")
	require.Equal(t, "it's", toks[1].Value)
}

func TestScanDoubleQuotedScalarEscape(t *testing.T) {
	toks := scanAll(t, "\"a\\nb\"\n")
	require.Equal(t, "a\nb", toks[1].Value)
}

func TestScanAnchorAliasAndTag(t *testing.T) {
	toks := scanAll(t, "&x !!str foo\n")
	require.Equal(t, []token.Kind{
		token.StreamStartToken, token.AnchorToken, token.TagToken, token.ScalarToken, token.StreamEndToken,
	}, kinds(toks))
	require.Equal(t, "x", toks[1].Anchor)
	require.Equal(t, "!!", toks[2].Handle)
	require.Equal(t, "str", toks[2].Prefix)
}

func TestScanVersionDirective(t *testing.T) {
	toks := scanAll(t, "%YAML 1.2\n---\nfoo\n")
	require.Equal(t, token.VersionDirectiveToken, toks[1].Kind)
	require.EqualValues(t, 1, toks[1].Major)
	require.EqualValues(t, 2, toks[1].Minor)
	require.Equal(t, token.DocumentStartToken, toks[2].Kind)
}

func TestScanBlockLiteralScalar(t *testing.T) {
	toks := scanAll(t, "key: |\n  line one\n  line two\n")
	var scalar token.Token
	for _, tok := range toks {
		if tok.Kind == token.ScalarToken && tok.ScalarStyle == token.LiteralScalarStyle {
			scalar = tok
		}
	}
	require.Equal(t, "line one\nline two\n", scalar.Value)
}

func TestSimpleKeyRequiresColonOnSameLine(t *testing.T) {
	_, _, err := decodeAndScanFully(t, "key\n  : value\n")
	require.NoError(t, err)
}

func decodeAndScanFully(t *testing.T, doc string) ([]token.Token, []token.Kind, error) {
	t.Helper()
	buf, _, err := reader.DecodeBytes([]byte(doc), token.AnyEncoding)
	require.NoError(t, err)
	sc := scanner.New(buf)
	var toks []token.Token
	for {
		tok, err := sc.Next()
		if err != nil {
			return toks, kinds(toks), err
		}
		toks = append(toks, tok)
		if tok.Kind == token.StreamEndToken {
			return toks, kinds(toks), nil
		}
	}
}
