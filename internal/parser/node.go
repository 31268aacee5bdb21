package parser

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

// parseNode implements the "node" production: an optional alias, or an
// optional anchor/tag pair (in either order) followed by a scalar, a flow
// or block collection, or nothing at all (an empty/null node).
func (p *Parser) parseNode(block, indentlessSequence bool) (token.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}

	if tok.Kind == token.AliasToken {
		p.advance()
		p.state = p.pop()
		return token.Event{Kind: token.AliasEvent, Start: tok.Start, End: tok.End, Anchor: tok.Anchor}, nil
	}

	start := tok.Start
	var anchor string
	var tagHandle, tagSuffix string
	haveTag := false

	for tok.Kind == token.AnchorToken || tok.Kind == token.TagToken {
		if tok.Kind == token.AnchorToken {
			anchor = tok.Anchor
		} else {
			tagHandle, tagSuffix = tok.Handle, tok.Prefix
			haveTag = true
		}
		p.advance()
		tok, err = p.peek()
		if err != nil {
			return token.Event{}, err
		}
	}

	tag := ""
	if haveTag {
		if tagHandle == "" && tagSuffix == "" {
			tag = "!"
		} else {
			tag, err = p.resolveTag(tagHandle, tagSuffix)
			if err != nil {
				return token.Event{}, err
			}
		}
	}

	// IsImplicit marks an event synthesized without a corresponding source
	// token (spec glossary). Every event-producing branch below except the
	// anchor/tag-only one is backed by a real token the scanner emitted;
	// lacking an explicit tag does not make
	// a real scalar or collection-start event implicit.
	switch {
	case tok.Kind == token.ScalarToken:
		p.advance()
		p.state = p.pop()
		return token.Event{
			Kind: token.ScalarEvent, Start: start, End: tok.End,
			Anchor: anchor, Tag: tag, Value: tok.Value, ScalarStyle: tok.ScalarStyle,
			Comment: tok.Comment,
		}, nil

	case tok.Kind == token.FlowSequenceStartToken:
		p.state = stateFlowSequenceFirstEntry
		return token.Event{
			Kind: token.SequenceStartEvent, Start: start, End: tok.End,
			Anchor: anchor, Tag: tag, CollectionStyle: token.FlowCollectionStyle,
		}, nil

	case tok.Kind == token.FlowMappingStartToken:
		p.state = stateFlowMappingFirstKey
		return token.Event{
			Kind: token.MappingStartEvent, Start: start, End: tok.End,
			Anchor: anchor, Tag: tag, CollectionStyle: token.FlowCollectionStyle,
		}, nil

	case block && tok.Kind == token.BlockSequenceStartToken:
		p.state = stateBlockSequenceFirstEntry
		return token.Event{
			Kind: token.SequenceStartEvent, Start: start, End: tok.End,
			Anchor: anchor, Tag: tag, CollectionStyle: token.BlockCollectionStyle,
		}, nil

	case block && indentlessSequence && tok.Kind == token.BlockEntryToken:
		p.state = stateIndentlessSequenceEntry
		return token.Event{
			Kind: token.SequenceStartEvent, Start: start, End: tok.End,
			Anchor: anchor, Tag: tag, CollectionStyle: token.BlockCollectionStyle,
		}, nil

	case block && tok.Kind == token.BlockMappingStartToken:
		p.state = stateBlockMappingFirstKey
		return token.Event{
			Kind: token.MappingStartEvent, Start: start, End: tok.End,
			Anchor: anchor, Tag: tag, CollectionStyle: token.BlockCollectionStyle,
		}, nil

	case anchor != "" || haveTag:
		// Anchor/tag present but no node content follows: synthesize the
		// empty scalar the node production requires.
		p.state = p.pop()
		return token.Event{
			Kind: token.ScalarEvent, Start: start, End: tok.Start,
			Anchor: anchor, Tag: tag, ScalarStyle: token.PlainScalarStyle, IsImplicit: true,
		}, nil

	default:
		what := "block"
		if !block {
			what = "flow"
		}
		return token.Event{}, p.newError(token.InvalidToken, "did not find expected node content ("+what+")")
	}
}
