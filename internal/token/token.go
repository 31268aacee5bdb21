package token

// VersionDirective is a parsed %YAML directive.
type VersionDirective struct {
	Major int8
	Minor int8
}

// TagDirective is a parsed %TAG directive.
type TagDirective struct {
	Handle string
	Prefix string
}

// Comment carries the free comments gathered around a token. Before holds
// every comment seen since the previous comment-carrying token, whether it
// stood on its own line or trailed another token on the same line. The
// scanner never sets After: a trailing same-line comment lands in the Before
// of a later token instead.
type Comment struct {
	Before []string
	After  string
}

// Token is a single lexical unit produced by the scanner.
type Token struct {
	Kind  Kind
	Start Mark
	End   Mark

	// VersionDirectiveToken
	Major int8
	Minor int8

	// TagDirectiveToken, TagToken
	Handle string
	Prefix string

	// AnchorToken, AliasToken
	Anchor string

	// ScalarToken
	Value       string
	ScalarStyle ScalarStyle

	Comment Comment
}

// SimpleKeyCandidate records a position in the token stream that might still
// turn out to be a mapping key, pending confirmation by a following ':'.
type SimpleKeyCandidate struct {
	Possible    bool
	Required    bool
	TokenNumber int
	Mark        Mark
}
