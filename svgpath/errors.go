package svgpath

import "fmt"

// ErrKind classifies the ways a path string can be rejected.
type ErrKind uint8

const (
	// UnsupportedCommand reports a command letter outside the supported
	// set {M,L,H,V,C,S,Q,T,Z}, notably the elliptical arc commands A/a.
	UnsupportedCommand ErrKind = iota
	// MalformedArguments reports argument text which does not lex to
	// numbers, or a number count which is not a multiple of the
	// command arity.
	MalformedArguments
)

func (k ErrKind) String() string {
	switch k {
	case UnsupportedCommand:
		return "unsupported path command"
	case MalformedArguments:
		return "malformed path arguments"
	default:
		return "<unknown ErrKind>"
	}
}

// ParseError describes why a path string was rejected. Any error
// aborts the whole parse: a skipped segment would corrupt the state
// every following command depends on.
type ParseError struct {
	Kind    ErrKind
	Segment string // text of the offending command segment
	Pos     int    // byte offset of the offence in the source string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s in path segment %q at offset %d", e.Kind, e.Segment, e.Pos)
}
