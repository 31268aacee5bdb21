package token

// EventKind identifies the kind of structural event produced by the parser.
type EventKind int

const (
	NoEvent EventKind = iota
	DocumentStartEvent
	DocumentEndEvent
	AliasEvent
	ScalarEvent
	SequenceStartEvent
	SequenceEndEvent
	MappingStartEvent
	MappingEndEvent
)

func (k EventKind) String() string {
	switch k {
	case NoEvent:
		return "NoEvent"
	case DocumentStartEvent:
		return "DocumentStartEvent"
	case DocumentEndEvent:
		return "DocumentEndEvent"
	case AliasEvent:
		return "AliasEvent"
	case ScalarEvent:
		return "ScalarEvent"
	case SequenceStartEvent:
		return "SequenceStartEvent"
	case SequenceEndEvent:
		return "SequenceEndEvent"
	case MappingStartEvent:
		return "MappingStartEvent"
	case MappingEndEvent:
		return "MappingEndEvent"
	}
	return "<unknown event kind>"
}

// Event is one item of the flat structural stream the parser yields.
type Event struct {
	Kind  EventKind
	Start Mark
	End   Mark

	// DocumentStartEvent
	Version       *VersionDirective
	TagDirectives []TagDirective

	// SequenceStartEvent, MappingStartEvent, ScalarEvent, AliasEvent
	Anchor string
	Tag    string

	// ScalarEvent
	Value       string
	ScalarStyle ScalarStyle

	// SequenceStartEvent, MappingStartEvent
	CollectionStyle CollectionStyle

	// IsImplicit is true when the event was synthesized without a
	// corresponding source token: the initial documentStart before any
	// token is seen, a documentEnd with no explicit "...", the empty
	// scalar that stands in for a node a production required but the
	// document omitted, and the mappingStart of a single key/value pair
	// written directly inside a flow sequence ("[a: b]"), which has no '{'.
	// It says nothing about whether a tag was written.
	IsImplicit bool

	Comment Comment
}
