package yamlevents_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ctrlflow-yaml/yamlevents"
)

func drain(t *testing.T, doc string) []yamlevents.Event {
	t.Helper()
	p, err := yamlevents.NewParserString(doc)
	require.NoError(t, err)
	events, err := p.Events()
	require.NoError(t, err)
	return events
}

func TestEmptyStreamIsWellFormed(t *testing.T) {
	events := drain(t, "")
	require.Len(t, events, 2)
	require.Equal(t, yamlevents.DocumentStart, events[0].Kind)
	require.True(t, events[0].IsImplicit)
	require.Equal(t, yamlevents.DocumentEnd, events[1].Kind)
	require.True(t, events[1].IsImplicit)
}

func TestEmptyStreamEndsWithEndOfStreamError(t *testing.T) {
	p, err := yamlevents.NewParserString("")
	require.NoError(t, err)

	_, err = p.Next() // documentStart(implicit)
	require.NoError(t, err)
	_, err = p.Next() // documentEnd(implicit)
	require.NoError(t, err)

	_, err = p.Next()
	require.True(t, yamlevents.IsEndOfStream(err))
}

func TestFlatSequenceOfScalars(t *testing.T) {
	events := drain(t, "- one\n- two\n- three\n")
	var values []string
	for _, ev := range events {
		if ev.Kind == yamlevents.Scalar {
			values = append(values, ev.Value)
		}
	}
	require.Equal(t, []string{"one", "two", "three"}, values)
}

func TestNestedMapping(t *testing.T) {
	doc := "name: app\nconfig:\n  debug: true\n  level: 3\n"
	events := drain(t, doc)

	var starts, ends int
	for _, ev := range events {
		switch ev.Kind {
		case yamlevents.MappingStart:
			starts++
		case yamlevents.MappingEnd:
			ends++
		}
	}
	require.Equal(t, 2, starts)
	require.Equal(t, starts, ends)
}

func TestFlowCollections(t *testing.T) {
	events := drain(t, "{a: 1, b: [2, 3]}\n")
	var mappingStarts, sequenceStarts int
	for _, ev := range events {
		switch ev.Kind {
		case yamlevents.MappingStart:
			mappingStarts++
			require.Equal(t, yamlevents.Flow, ev.CollectionStyle)
		case yamlevents.SequenceStart:
			sequenceStarts++
			require.Equal(t, yamlevents.Flow, ev.CollectionStyle)
		}
	}
	require.Equal(t, 1, mappingStarts)
	require.Equal(t, 1, sequenceStarts)
}

func TestAnchorAndAlias(t *testing.T) {
	doc := "base: &b\n  x: 1\nextra: *b\n"
	events := drain(t, doc)

	var anchor string
	var aliasSeen bool
	for _, ev := range events {
		if ev.Kind == yamlevents.MappingStart && ev.Anchor != "" {
			anchor = ev.Anchor
		}
		if ev.Kind == yamlevents.Alias {
			require.Equal(t, anchor, ev.Anchor)
			aliasSeen = true
		}
	}
	require.True(t, aliasSeen)
}

func TestTagResolution(t *testing.T) {
	events := drain(t, "%TAG !e! tag:example.com,2000:\n---\n!e!foo bar\n")
	var found bool
	for _, ev := range events {
		if ev.Kind == yamlevents.Scalar && ev.Value == "bar" {
			require.Equal(t, "tag:example.com,2000:foo", ev.Tag)
			found = true
		}
	}
	require.True(t, found)
}

func TestBlockLiteralScalarPreservesNewlines(t *testing.T) {
	events := drain(t, "text: |\n  line one\n  line two\n")
	for _, ev := range events {
		if ev.Kind == yamlevents.Scalar && ev.ScalarStyle == yamlevents.Literal {
			require.Equal(t, "line one\nline two\n", ev.Value)
		}
	}
}

func TestBlockFoldedScalarFoldsSingleBreaksToSpaces(t *testing.T) {
	doc := "text: >\n  line one\n  line two\n\n  line three\n"
	events := drain(t, doc)
	var found bool
	for _, ev := range events {
		if ev.Kind == yamlevents.Scalar && ev.ScalarStyle == yamlevents.Folded {
			require.Equal(t, "line one line two\nline three\n", ev.Value)
			found = true
		}
	}
	require.True(t, found)
}

func TestBlockFoldedScalarPreservesMoreIndentedLines(t *testing.T) {
	doc := "text: >\n  normal\n    indented\n  normal again\n"
	events := drain(t, doc)
	var found bool
	for _, ev := range events {
		if ev.Kind == yamlevents.Scalar && ev.ScalarStyle == yamlevents.Folded {
			require.Equal(t, "normal\n  indented\nnormal again\n", ev.Value)
			found = true
		}
	}
	require.True(t, found)
}

func TestMultipleDocuments(t *testing.T) {
	events := drain(t, "---\na\n---\nb\n")
	var starts int
	for _, ev := range events {
		if ev.Kind == yamlevents.DocumentStart {
			starts++
		}
	}
	require.Equal(t, 2, starts)
}

func TestInvalidEncodingSurfacesReaderError(t *testing.T) {
	_, err := yamlevents.NewParserBytes([]byte{0x01})
	require.Error(t, err)
	var yerr *yamlevents.Error
	require.ErrorAs(t, err, &yerr)
	require.Equal(t, yamlevents.ReaderErrorKind, yerr.Kind)
	require.Equal(t, yamlevents.InvalidEncodingCode, yerr.Code)
}

func TestExplicitEncodingBypassesAutodetection(t *testing.T) {
	raw := []byte{'a', 0, ':', 0, ' ', 0, '1', 0}
	p, err := yamlevents.NewParserBytesWithEncoding(raw, yamlevents.UTF16LE)
	require.NoError(t, err)
	events, err := p.Events()
	require.NoError(t, err)
	var found bool
	for _, ev := range events {
		if ev.Kind == yamlevents.Scalar && ev.Value == "1" {
			found = true
		}
	}
	require.True(t, found)
}

// A real, token-backed node's IsImplicit reflects only whether it was
// synthesized, never whether it carried an explicit tag.
func TestAnchoredScalarIsNotImplicit(t *testing.T) {
	doc := "First: &a Value\nSecond: *a"
	events := drain(t, doc)

	var anchoredSeen bool
	for _, ev := range events {
		if ev.Kind == yamlevents.Scalar && ev.Anchor == "a" {
			require.Equal(t, "Value", ev.Value)
			require.False(t, ev.IsImplicit)
			anchoredSeen = true
		}
	}
	require.True(t, anchoredSeen)
}

// Only the synthesized document wrappers and missing-node placeholders are
// implicit; a block mapping's real keys and values are not.
func TestBlockMappingValuesAreNotImplicit(t *testing.T) {
	doc := "name: app\n"
	events := drain(t, doc)
	for _, ev := range events {
		if ev.Kind == yamlevents.Scalar {
			require.False(t, ev.IsImplicit)
		}
	}
}
