// Package parser turns a scanner's token stream into a flat sequence of
// structural events: document boundaries, sequence/mapping start and end,
// scalars and aliases. It is a push-down automaton over the grammar each
// YAML token implies, generalized over a pluggable token source so it never
// needs to know how tokens themselves were produced.
package parser

import (
	"github.com/ctrlflow-yaml/yamlevents/internal/token"
)

// TokenSource is whatever can hand the parser one token at a time. The
// scanner package satisfies it; tests can substitute a canned token list.
type TokenSource interface {
	Next() (token.Token, error)
}

// Parser consumes a TokenSource and yields structural events.
type Parser struct {
	src TokenSource

	tok    token.Token
	peeked bool

	state  state
	states []state
	marks  []token.Mark

	tags          map[string]string
	seenHandles   map[string]bool
	tagDirectives []token.TagDirective

	documentSeen bool
	endMark      token.Mark
	err          error
}

func New(src TokenSource) *Parser {
	return &Parser{src: src, state: stateStreamStart}
}

func (p *Parser) mark() token.Mark {
	if p.peeked {
		return p.tok.Start
	}
	return token.Mark{Line: 1, Column: 1}
}

func (p *Parser) newError(code token.ErrorCode, problem string) error {
	return token.NewError(token.ParserError, code, problem, p.mark())
}

func (p *Parser) peek() (token.Token, error) {
	if !p.peeked {
		tok, err := p.src.Next()
		if err != nil {
			return token.Token{}, err
		}
		p.tok = tok
		p.peeked = true
	}
	return p.tok, nil
}

func (p *Parser) advance() { p.peeked = false }

func (p *Parser) push(s state) { p.states = append(p.states, s) }

func (p *Parser) pop() state {
	s := p.states[len(p.states)-1]
	p.states = p.states[:len(p.states)-1]
	return s
}

func (p *Parser) pushMark(m token.Mark) { p.marks = append(p.marks, m) }

func (p *Parser) popMark() token.Mark {
	m := p.marks[len(p.marks)-1]
	p.marks = p.marks[:len(p.marks)-1]
	return m
}

// Next returns the next event in the stream.
func (p *Parser) Next() (token.Event, error) {
	if p.err != nil {
		return token.Event{}, p.err
	}
	ev, err := p.stateMachine()
	if err != nil {
		p.err = err
	}
	return ev, err
}

func (p *Parser) stateMachine() (token.Event, error) {
	switch p.state {
	case stateStreamStart:
		return p.parseStreamStart()
	case stateImplicitDocumentStart:
		return p.parseDocumentStart(true)
	case stateDocumentStart:
		return p.parseDocumentStart(false)
	case stateDocumentContent:
		return p.parseDocumentContent()
	case stateDocumentEnd:
		return p.parseDocumentEnd()
	case stateBlockNode:
		return p.parseNode(true, false)
	case stateBlockNodeOrIndentlessSequence:
		return p.parseNode(true, true)
	case stateFlowNode:
		return p.parseNode(false, false)
	case stateBlockSequenceFirstEntry:
		return p.parseBlockSequenceEntry(true)
	case stateBlockSequenceEntry:
		return p.parseBlockSequenceEntry(false)
	case stateIndentlessSequenceEntry:
		return p.parseIndentlessSequenceEntry()
	case stateBlockMappingFirstKey:
		return p.parseBlockMappingKey(true)
	case stateBlockMappingKey:
		return p.parseBlockMappingKey(false)
	case stateBlockMappingValue:
		return p.parseBlockMappingValue()
	case stateFlowSequenceFirstEntry:
		return p.parseFlowSequenceEntry(true)
	case stateFlowSequenceEntry:
		return p.parseFlowSequenceEntry(false)
	case stateFlowSequenceEntryMappingKey:
		return p.parseFlowSequenceEntryMappingKey()
	case stateFlowSequenceEntryMappingValue:
		return p.parseFlowSequenceEntryMappingValue()
	case stateFlowSequenceEntryMappingEnd:
		return p.parseFlowSequenceEntryMappingEnd()
	case stateFlowMappingFirstKey:
		return p.parseFlowMappingKey(true)
	case stateFlowMappingKey:
		return p.parseFlowMappingKey(false)
	case stateFlowMappingValue:
		return p.parseFlowMappingValue(false)
	case stateFlowMappingEmptyValue:
		return p.parseFlowMappingValue(true)
	case stateEnd:
		return token.Event{}, token.NewError(token.ParserError, token.EndOfStream, "stream already ended", p.endMark)
	}
	panic("parser: unknown state")
}

func (p *Parser) parseStreamStart() (token.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Event{}, err
	}
	if tok.Kind != token.StreamStartToken {
		return token.Event{}, p.newError(token.InvalidToken, "did not find expected <stream-start>")
	}
	p.advance()
	p.state = stateImplicitDocumentStart
	return p.parseDocumentStart(true)
}

func (p *Parser) processEmptyScalar(mark token.Mark) token.Event {
	return token.Event{
		Kind: token.ScalarEvent, Start: mark, End: mark,
		ScalarStyle: token.PlainScalarStyle, IsImplicit: true,
	}
}
