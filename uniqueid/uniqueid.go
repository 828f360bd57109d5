// uniqueid/uniqueid.go
package uniqueid

import (
	"errors"
	"hash/fnv"
	"slices"
	"strings"
)

// engineSegmentType marks a segment that identifies a test engine.
const engineSegmentType = "engine"

// ID is an ordered, immutable sequence of Segments uniquely identifying a
// test artifact. The first segment is the root; every Append returns a new
// ID backed by its own segment slice, so earlier IDs are never affected by
// later derivations.
//
// The zero value ID{} has no segments. The public constructors never produce
// it; accessors treat it as empty rather than panicking.
type ID struct {
	segments []Segment
}

// Parse creates an ID from its canonical string representation using the
// default format. It returns a *FormatError if the text is empty, blank, or
// does not conform to the identifier grammar.
func Parse(text string) (ID, error) {
	if isBlank(text) {
		return ID{}, &FormatError{Input: text, Reason: "input must not be empty or blank"}
	}
	return DefaultFormat().Parse(text)
}

// MustParse is like Parse but panics on error. It simplifies initialization
// of identifiers known to be well-formed.
func MustParse(text string) ID {
	id, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return id
}

// ForEngine creates an engine's root ID from its engine id. It returns a
// *ValidationError if engineID is empty or blank.
func ForEngine(engineID string) (ID, error) {
	if isBlank(engineID) {
		return ID{}, &ValidationError{Argument: "engineID"}
	}
	return Root(engineSegmentType, engineID)
}

// Root creates a single-segment ID from the supplied segment type and value.
// It returns a *ValidationError if either argument is empty or blank.
func Root(segmentType, value string) (ID, error) {
	if isBlank(segmentType) {
		return ID{}, &ValidationError{Argument: "segmentType"}
	}
	if isBlank(value) {
		return ID{}, &ValidationError{Argument: "value"}
	}
	return ID{segments: []Segment{NewSegment(segmentType, value)}}, nil
}

// Append derives a new ID whose segments are the receiver's plus one more
// built from the supplied type and value. The receiver is not modified.
// It returns a *ValidationError if either argument is empty or blank.
func (id ID) Append(segmentType, value string) (ID, error) {
	if isBlank(segmentType) {
		return ID{}, &ValidationError{Argument: "segmentType"}
	}
	if isBlank(value) {
		return ID{}, &ValidationError{Argument: "value"}
	}
	return id.appendSegment(NewSegment(segmentType, value)), nil
}

// AppendSegment derives a new ID with the supplied segment at the end. The
// segment's fields must pass the same validation as Root would apply.
func (id ID) AppendSegment(seg Segment) (ID, error) {
	if isBlank(seg.Type()) {
		return ID{}, &ValidationError{Argument: "segmentType"}
	}
	if isBlank(seg.Value()) {
		return ID{}, &ValidationError{Argument: "value"}
	}
	return id.appendSegment(seg), nil
}

// AppendEngine derives a new ID with an engine segment for the supplied
// engine id at the end, for engines that run nested under another artifact.
func (id ID) AppendEngine(engineID string) (ID, error) {
	if isBlank(engineID) {
		return ID{}, &ValidationError{Argument: "engineID"}
	}
	return id.appendSegment(NewSegment(engineSegmentType, engineID)), nil
}

func (id ID) appendSegment(seg Segment) ID {
	segments := make([]Segment, len(id.segments)+1)
	copy(segments, id.segments)
	segments[len(segments)-1] = seg
	return ID{segments: segments}
}

// RootSegment returns the first segment. The boolean is false only for the
// zero value, which the public constructors never produce.
func (id ID) RootSegment() (Segment, bool) {
	if len(id.segments) == 0 {
		return Segment{}, false
	}
	return id.segments[0], true
}

// LastSegment returns the leaf segment, if any.
func (id ID) LastSegment() (Segment, bool) {
	if len(id.segments) == 0 {
		return Segment{}, false
	}
	return id.segments[len(id.segments)-1], true
}

// RemoveLastSegment returns the ID of the receiver's parent artifact. It
// fails when the receiver is a root (or zero) ID.
func (id ID) RemoveLastSegment() (ID, error) {
	if len(id.segments) <= 1 {
		return ID{}, errors.New("cannot remove the last segment of a root identifier")
	}
	return ID{segments: slices.Clone(id.segments[:len(id.segments)-1])}, nil
}

// EngineID returns the engine id encoded in the root segment, if the root
// segment identifies a test engine.
func (id ID) EngineID() (string, bool) {
	root, ok := id.RootSegment()
	if !ok || root.Type() != engineSegmentType {
		return "", false
	}
	return root.Value(), true
}

// Segments returns a copy of the segment sequence. Callers are free to
// modify the returned slice.
func (id ID) Segments() []Segment {
	return slices.Clone(id.segments)
}

// Len returns the number of segments.
func (id ID) Len() int {
	return len(id.segments)
}

// HasPrefix reports whether the receiver's segment sequence starts with all
// of prefix's segments. Every ID is a prefix of itself.
func (id ID) HasPrefix(prefix ID) bool {
	if len(prefix.segments) > len(id.segments) {
		return false
	}
	return slices.Equal(id.segments[:len(prefix.segments)], prefix.segments)
}

// Equal reports structural equality: both IDs hold the same segments in the
// same order. The bound format is irrelevant to equality.
func (id ID) Equal(other ID) bool {
	return slices.Equal(id.segments, other.segments)
}

// Hash returns a stable hash over the segment sequence. Equal IDs always
// hash equal. Field and segment boundaries are marked with separator bytes
// so that moving characters across a boundary changes the hash.
func (id ID) Hash() uint64 {
	h := fnv.New64a()
	for _, seg := range id.segments {
		h.Write([]byte(seg.Type()))
		h.Write([]byte{0x1f})
		h.Write([]byte(seg.Value()))
		h.Write([]byte{0x1e})
	}
	return h.Sum64()
}

// String returns the canonical string representation of this ID using the
// default format. The zero value renders as the empty string.
func (id ID) String() string {
	return DefaultFormat().Format(id)
}

// isBlank reports whether s is empty or consists only of whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
