package token

// Kind identifies the lexical class of a Token.
type Kind int

const (
	NoToken Kind = iota
	StreamStartToken
	StreamEndToken
	VersionDirectiveToken
	TagDirectiveToken
	DocumentStartToken
	DocumentEndToken
	BlockSequenceStartToken
	BlockMappingStartToken
	BlockEndToken
	FlowSequenceStartToken
	FlowSequenceEndToken
	FlowMappingStartToken
	FlowMappingEndToken
	BlockEntryToken
	FlowEntryToken
	KeyToken
	ValueToken
	AliasToken
	AnchorToken
	TagToken
	ScalarToken
	CommentToken
)

func (k Kind) String() string {
	switch k {
	case NoToken:
		return "NoToken"
	case StreamStartToken:
		return "StreamStartToken"
	case StreamEndToken:
		return "StreamEndToken"
	case VersionDirectiveToken:
		return "VersionDirectiveToken"
	case TagDirectiveToken:
		return "TagDirectiveToken"
	case DocumentStartToken:
		return "DocumentStartToken"
	case DocumentEndToken:
		return "DocumentEndToken"
	case BlockSequenceStartToken:
		return "BlockSequenceStartToken"
	case BlockMappingStartToken:
		return "BlockMappingStartToken"
	case BlockEndToken:
		return "BlockEndToken"
	case FlowSequenceStartToken:
		return "FlowSequenceStartToken"
	case FlowSequenceEndToken:
		return "FlowSequenceEndToken"
	case FlowMappingStartToken:
		return "FlowMappingStartToken"
	case FlowMappingEndToken:
		return "FlowMappingEndToken"
	case BlockEntryToken:
		return "BlockEntryToken"
	case FlowEntryToken:
		return "FlowEntryToken"
	case KeyToken:
		return "KeyToken"
	case ValueToken:
		return "ValueToken"
	case AliasToken:
		return "AliasToken"
	case AnchorToken:
		return "AnchorToken"
	case TagToken:
		return "TagToken"
	case ScalarToken:
		return "ScalarToken"
	case CommentToken:
		return "CommentToken"
	}
	return "<unknown token kind>"
}

// ScalarStyle records how a scalar was written in the source.
type ScalarStyle int

const (
	AnyScalarStyle ScalarStyle = iota
	PlainScalarStyle
	SingleQuotedScalarStyle
	DoubleQuotedScalarStyle
	LiteralScalarStyle
	FoldedScalarStyle
)

func (s ScalarStyle) String() string {
	switch s {
	case PlainScalarStyle:
		return "plain"
	case SingleQuotedScalarStyle:
		return "single-quoted"
	case DoubleQuotedScalarStyle:
		return "double-quoted"
	case LiteralScalarStyle:
		return "literal"
	case FoldedScalarStyle:
		return "folded"
	}
	return "any"
}

// CollectionStyle records whether a sequence or mapping was written in flow
// or block form.
type CollectionStyle int

const (
	AnyCollectionStyle CollectionStyle = iota
	BlockCollectionStyle
	FlowCollectionStyle
)

func (s CollectionStyle) String() string {
	switch s {
	case BlockCollectionStyle:
		return "block"
	case FlowCollectionStyle:
		return "flow"
	}
	return "any"
}
