package parser

// state names the parser's push-down automaton positions.
type state int

const (
	stateStreamStart state = iota
	stateImplicitDocumentStart
	stateDocumentStart
	stateDocumentContent
	stateDocumentEnd
	stateBlockNode
	stateBlockNodeOrIndentlessSequence
	stateFlowNode
	stateBlockSequenceFirstEntry
	stateBlockSequenceEntry
	stateIndentlessSequenceEntry
	stateBlockMappingFirstKey
	stateBlockMappingKey
	stateBlockMappingValue
	stateFlowSequenceFirstEntry
	stateFlowSequenceEntry
	stateFlowSequenceEntryMappingKey
	stateFlowSequenceEntryMappingValue
	stateFlowSequenceEntryMappingEnd
	stateFlowMappingFirstKey
	stateFlowMappingKey
	stateFlowMappingValue
	stateFlowMappingEmptyValue
	stateEnd
)

func (st state) String() string {
	switch st {
	case stateStreamStart:
		return "stateStreamStart"
	case stateImplicitDocumentStart:
		return "stateImplicitDocumentStart"
	case stateDocumentStart:
		return "stateDocumentStart"
	case stateDocumentContent:
		return "stateDocumentContent"
	case stateDocumentEnd:
		return "stateDocumentEnd"
	case stateBlockNode:
		return "stateBlockNode"
	case stateBlockNodeOrIndentlessSequence:
		return "stateBlockNodeOrIndentlessSequence"
	case stateFlowNode:
		return "stateFlowNode"
	case stateBlockSequenceFirstEntry:
		return "stateBlockSequenceFirstEntry"
	case stateBlockSequenceEntry:
		return "stateBlockSequenceEntry"
	case stateIndentlessSequenceEntry:
		return "stateIndentlessSequenceEntry"
	case stateBlockMappingFirstKey:
		return "stateBlockMappingFirstKey"
	case stateBlockMappingKey:
		return "stateBlockMappingKey"
	case stateBlockMappingValue:
		return "stateBlockMappingValue"
	case stateFlowSequenceFirstEntry:
		return "stateFlowSequenceFirstEntry"
	case stateFlowSequenceEntry:
		return "stateFlowSequenceEntry"
	case stateFlowSequenceEntryMappingKey:
		return "stateFlowSequenceEntryMappingKey"
	case stateFlowSequenceEntryMappingValue:
		return "stateFlowSequenceEntryMappingValue"
	case stateFlowSequenceEntryMappingEnd:
		return "stateFlowSequenceEntryMappingEnd"
	case stateFlowMappingFirstKey:
		return "stateFlowMappingFirstKey"
	case stateFlowMappingKey:
		return "stateFlowMappingKey"
	case stateFlowMappingValue:
		return "stateFlowMappingValue"
	case stateFlowMappingEmptyValue:
		return "stateFlowMappingEmptyValue"
	case stateEnd:
		return "stateEnd"
	}
	return "<unknown parser state>"
}
