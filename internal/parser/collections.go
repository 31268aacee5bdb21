package parser

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

func (p *Parser) parseBlockSequenceEntry(first bool) (token.Event, error) {
	if first {
		tok, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		p.pushMark(tok.Start)
		p.advance()
	}
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	switch tok.Kind {
	case token.BlockEntryToken:
		p.advance()
		next, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		if next.Kind == token.BlockEntryToken || next.Kind == token.BlockEndToken {
			p.state = stateBlockSequenceEntry
			return p.processEmptyScalar(next.Start), nil
		}
		p.push(stateBlockSequenceEntry)
		return p.parseNode(true, false)
	case token.BlockEndToken:
		p.advance()
		p.state = p.pop()
		p.popMark()
		return token.Event{Kind: token.SequenceEndEvent, Start: tok.Start, End: tok.End}, nil
	default:
		return token.Event{}, p.newError(token.InvalidToken, "did not find expected '-' indicator")
	}
}

func (p *Parser) parseIndentlessSequenceEntry() (token.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	if tok.Kind != token.BlockEntryToken {
		p.state = p.pop()
		return token.Event{Kind: token.SequenceEndEvent, Start: tok.Start, End: tok.Start}, nil
	}
	p.advance()
	next, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	switch next.Kind {
	case token.BlockEntryToken, token.KeyToken, token.ValueToken, token.BlockEndToken:
		p.state = stateIndentlessSequenceEntry
		return p.processEmptyScalar(next.Start), nil
	}
	p.push(stateIndentlessSequenceEntry)
	return p.parseNode(true, false)
}

func (p *Parser) parseBlockMappingKey(first bool) (token.Event, error) {
	if first {
		tok, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		p.pushMark(tok.Start)
		p.advance()
	}
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	switch tok.Kind {
	case token.KeyToken:
		p.advance()
		next, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		if next.Kind == token.KeyToken || next.Kind == token.ValueToken || next.Kind == token.BlockEndToken {
			p.state = stateBlockMappingValue
			return p.processEmptyScalar(next.Start), nil
		}
		p.push(stateBlockMappingValue)
		return p.parseNode(true, true)
	case token.BlockEndToken:
		p.advance()
		p.state = p.pop()
		p.popMark()
		return token.Event{Kind: token.MappingEndEvent, Start: tok.Start, End: tok.End}, nil
	default:
		return token.Event{}, p.newError(token.ExpectedKey, "did not find expected key")
	}
}

func (p *Parser) parseBlockMappingValue() (token.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	if tok.Kind != token.ValueToken {
		p.state = stateBlockMappingKey
		return p.processEmptyScalar(tok.Start), nil
	}
	p.advance()
	next, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	if next.Kind == token.KeyToken || next.Kind == token.ValueToken || next.Kind == token.BlockEndToken {
		p.state = stateBlockMappingKey
		return p.processEmptyScalar(next.Start), nil
	}
	p.push(stateBlockMappingKey)
	return p.parseNode(true, true)
}

func (p *Parser) parseFlowSequenceEntry(first bool) (token.Event, error) {
	if first {
		tok, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		p.pushMark(tok.Start)
		p.advance()
	} else {
		tok, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		if tok.Kind != token.FlowSequenceEndToken {
			if tok.Kind != token.FlowEntryToken {
				return token.Event{}, p.newError(token.InvalidToken, "did not find expected ',' or ']'")
			}
			p.advance()
		}
	}

	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	if tok.Kind == token.FlowSequenceEndToken {
		p.advance()
		p.state = p.pop()
		p.popMark()
		return token.Event{Kind: token.SequenceEndEvent, Start: tok.Start, End: tok.End}, nil
	}
	if tok.Kind == token.KeyToken {
		p.state = stateFlowSequenceEntryMappingKey
		p.advance()
		return token.Event{
			Kind: token.MappingStartEvent, Start: tok.Start, End: tok.End,
			CollectionStyle: token.FlowCollectionStyle, IsImplicit: true,
		}, nil
	}
	p.push(stateFlowSequenceEntry)
	return p.parseNode(false, false)
}

func (p *Parser) parseFlowSequenceEntryMappingKey() (token.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	switch tok.Kind {
	case token.ValueToken, token.FlowEntryToken, token.FlowSequenceEndToken:
		p.state = stateFlowSequenceEntryMappingValue
		return p.processEmptyScalar(tok.Start), nil
	default:
		p.push(stateFlowSequenceEntryMappingValue)
		return p.parseNode(false, false)
	}
}

func (p *Parser) parseFlowSequenceEntryMappingValue() (token.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	if tok.Kind == token.ValueToken {
		p.advance()
		next, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		if next.Kind == token.FlowEntryToken || next.Kind == token.FlowSequenceEndToken {
			p.state = stateFlowSequenceEntryMappingEnd
			return p.processEmptyScalar(next.Start), nil
		}
		p.push(stateFlowSequenceEntryMappingEnd)
		return p.parseNode(false, false)
	}
	p.state = stateFlowSequenceEntryMappingEnd
	return p.processEmptyScalar(tok.Start), nil
}

func (p *Parser) parseFlowSequenceEntryMappingEnd() (token.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	p.state = stateFlowSequenceEntry
	return token.Event{Kind: token.MappingEndEvent, Start: tok.Start, End: tok.Start}, nil
}

func (p *Parser) parseFlowMappingKey(first bool) (token.Event, error) {
	if first {
		tok, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		p.pushMark(tok.Start)
		p.advance()
	} else {
		tok, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		if tok.Kind != token.FlowMappingEndToken {
			if tok.Kind != token.FlowEntryToken {
				return token.Event{}, p.newError(token.InvalidToken, "did not find expected ',' or '}'")
			}
			p.advance()
		}
	}

	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	if tok.Kind == token.FlowMappingEndToken {
		p.advance()
		p.state = p.pop()
		p.popMark()
		return token.Event{Kind: token.MappingEndEvent, Start: tok.Start, End: tok.End}, nil
	}
	if tok.Kind == token.KeyToken {
		p.advance()
		next, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		if next.Kind == token.ValueToken || next.Kind == token.FlowEntryToken || next.Kind == token.FlowMappingEndToken {
			p.state = stateFlowMappingValue
			return p.processEmptyScalar(next.Start), nil
		}
		p.push(stateFlowMappingValue)
		return p.parseNode(false, false)
	}
	// An entry with no key token: the node read here is the key, and its
	// value is the empty scalar.
	p.push(stateFlowMappingEmptyValue)
	return p.parseNode(false, false)
}

func (p *Parser) parseFlowMappingValue(empty bool) (token.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	if empty {
		p.state = stateFlowMappingKey
		return p.processEmptyScalar(tok.Start), nil
	}
	if tok.Kind == token.ValueToken {
		p.advance()
		next, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		if next.Kind != token.FlowEntryToken && next.Kind != token.FlowMappingEndToken {
			p.push(stateFlowMappingKey)
			return p.parseNode(false, false)
		}
		p.state = stateFlowMappingKey
		return p.processEmptyScalar(next.Start), nil
	}
	p.state = stateFlowMappingKey
	return p.processEmptyScalar(tok.Start), nil
}
