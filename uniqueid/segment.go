// uniqueid/segment.go
package uniqueid

import (
	"fmt"
	"hash/fnv"
)

// Segment is one typed level of a hierarchical identifier, e.g. the pair
// ("class", "com.example.Foo"). Segments store their strings verbatim;
// reserved formatting characters are only rejected or escaped on the
// format/parse path, never here.
type Segment struct {
	segmentType string
	value       string
}

// NewSegment creates a new segment from the supplied type and value.
func NewSegment(segmentType, value string) Segment {
	return Segment{segmentType: segmentType, value: value}
}

// Type returns the type of this segment.
func (s Segment) Type() string {
	return s.segmentType
}

// Value returns the value of this segment.
func (s Segment) Value() string {
	return s.value
}

// Hash returns a stable hash over both fields. Equal segments always hash
// equal; the type and value are separated by a NUL byte so that shifting
// characters between the two fields changes the hash.
func (s Segment) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(s.segmentType))
	h.Write([]byte{0})
	h.Write([]byte(s.value))
	return h.Sum64()
}

// String returns a diagnostic rendering of the segment. It is not the
// canonical wire form; use Format for that.
func (s Segment) String() string {
	return fmt.Sprintf("Segment(type=%q, value=%q)", s.segmentType, s.value)
}
