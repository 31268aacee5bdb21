package parser

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

func (p *Parser) parseDocumentStart(implicit bool) (token.Event, error) {
	for {
		tok, err := p.peek()
		if err != nil {
			return token.Event{}, err
		}
		if tok.Kind != token.DocumentEndToken {
			break
		}
		p.advance()
	}

	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}

	if tok.Kind == token.StreamEndToken {
		if !p.documentSeen {
			// A stream with no document content at all still gets the
			// implicit documentStart/documentEnd wrapper pair; only the
			// second time around (nothing left to wrap) does the stream
			// actually end.
			p.documentSeen = true
			p.state = stateDocumentEnd
			return token.Event{Kind: token.DocumentStartEvent, Start: tok.Start, End: tok.Start, IsImplicit: true}, nil
		}
		p.advance()
		p.state = stateEnd
		p.endMark = tok.Start
		return token.Event{}, token.NewError(token.ParserError, token.EndOfStream, "end of stream", tok.Start)
	}

	p.resetTags()
	var version *token.VersionDirective
	start := tok.Start

	if tok.Kind == token.VersionDirectiveToken || tok.Kind == token.TagDirectiveToken {
		for tok.Kind == token.VersionDirectiveToken || tok.Kind == token.TagDirectiveToken {
			if tok.Kind == token.VersionDirectiveToken {
				if version != nil {
					return token.Event{}, p.newError(token.UnexpectedDirective, "found duplicate %YAML directive")
				}
				version = &token.VersionDirective{Major: tok.Major, Minor: tok.Minor}
			} else {
				if err := p.appendTagDirective(token.TagDirective{Handle: tok.Handle, Prefix: tok.Prefix}, false); err != nil {
					return token.Event{}, err
				}
			}
			p.advance()
			tok, err = p.peek()
			if err != nil {
				return token.Event{}, err
			}
		}
	}

	if tok.Kind != token.DocumentStartToken && implicit && version == nil && len(p.tagDirectives) == 0 {
		p.documentSeen = true
		p.push(stateDocumentEnd)
		p.state = stateBlockNode
		return token.Event{
			Kind: token.DocumentStartEvent, Start: tok.Start, End: tok.Start,
			IsImplicit: true,
		}, nil
	}

	if tok.Kind != token.DocumentStartToken {
		return token.Event{}, p.newError(token.InvalidToken, "did not find expected <document start>")
	}

	p.advance()
	end, err := p.peekMark()
	if err != nil {
		return token.Event{}, err
	}
	p.documentSeen = true
	p.push(stateDocumentEnd)
	p.state = stateDocumentContent
	return token.Event{
		Kind: token.DocumentStartEvent, Start: start, End: end,
		Version: version, TagDirectives: append([]token.TagDirective(nil), p.tagDirectives...),
	}, nil
}

func (p *Parser) peekMark() (token.Mark, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Mark{}, err
	}
	return tok.Start, nil
}

func (p *Parser) parseDocumentContent() (token.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	switch tok.Kind {
	case token.VersionDirectiveToken, token.TagDirectiveToken, token.DocumentStartToken,
		token.DocumentEndToken, token.StreamEndToken:
		p.state = p.pop()
		return p.processEmptyScalar(tok.Start), nil
	}
	return p.parseNode(true, false)
}

func (p *Parser) parseDocumentEnd() (token.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	start := tok.Start
	end := tok.Start
	implicit := true
	if tok.Kind == token.DocumentEndToken {
		end = tok.End
		implicit = false
		p.advance()
	}
	p.state = stateImplicitDocumentStart
	return token.Event{Kind: token.DocumentEndEvent, Start: start, End: end, IsImplicit: implicit}, nil
}
