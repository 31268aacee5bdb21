package parser

import (
	"github.com/ctrlflow-yaml/yamlevents/internal/token"
)

// defaultTagDirectives seeds every document's tag handle table before any
// %TAG directives for that document are applied.
var defaultTagDirectives = []token.TagDirective{
	{Handle: "!", Prefix: "!"},
	{Handle: "!!", Prefix: "tag:yaml.org,2002:"},
}

// resolveTag expands a handle+suffix tag pair into its full URI using the
// handle table in effect for the current document. A verbatim tag (empty
// handle) passes its suffix through unchanged.
func (p *Parser) resolveTag(handle, suffix string) (string, error) {
	if handle == "" {
		return suffix, nil
	}
	if prefix, ok := p.tags[handle]; ok {
		return prefix + suffix, nil
	}
	return "", token.NewError(token.ParserError, token.TagFormat, "found undefined tag handle '"+handle+"'", p.mark())
}

// appendTagDirective merges a %TAG directive into the handle table for the
// document being parsed, rejecting a handle redefined within the same
// document unless allowDuplicates is set.
func (p *Parser) appendTagDirective(d token.TagDirective, allowDuplicates bool) error {
	if !allowDuplicates {
		if _, exists := p.seenHandles[d.Handle]; exists {
			return token.NewError(token.ParserError, token.UnexpectedDirective, "found duplicate %TAG directive", p.mark())
		}
	}
	p.seenHandles[d.Handle] = true
	p.tags[d.Handle] = d.Prefix
	p.tagDirectives = append(p.tagDirectives, d)
	return nil
}

// resetTags restores the default tag handle table at the start of a new
// document.
func (p *Parser) resetTags() {
	p.tags = map[string]string{}
	p.seenHandles = map[string]bool{}
	p.tagDirectives = nil
	for _, d := range defaultTagDirectives {
		p.tags[d.Handle] = d.Prefix
	}
}
