// Package yamlevents is a streaming YAML 1.2 reader. It exposes a Parser
// that pulls a flat sequence of structural events — document boundaries,
// sequence and mapping start/end, scalars and aliases — out of a byte
// stream, lazily, one event at a time, without ever building a node tree or
// resolving anchors, tags or merge keys on the caller's behalf.
package yamlevents
