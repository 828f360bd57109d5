// uniqueid/format.go
package uniqueid

import (
	"fmt"
	"strings"
)

// Format is the stateless codec converting an ID to and from its canonical
// string form. Each segment renders as `type:[value]` and segments are
// joined with `/`; reserved characters occurring inside a type or value are
// escaped with a backslash so the encoding is uniquely invertible.
//
// A Format holds only its fixed delimiter configuration, so a single
// instance is safe for concurrent use.
type Format struct {
	segmentSep   byte
	typeValueSep byte
	openValue    byte
	closeValue   byte
	escapeChar   byte
}

// defaultFormat is the process-wide default codec. The delimiters are fixed
// for interoperability: every consumer of the wire format must agree on them.
var defaultFormat = &Format{
	segmentSep:   '/',
	typeValueSep: ':',
	openValue:    '[',
	closeValue:   ']',
	escapeChar:   '\\',
}

// DefaultFormat returns the shared default codec. ID.String and Parse are
// bound to this instance.
func DefaultFormat() *Format {
	return defaultFormat
}

// NewFormat creates a codec with alternate delimiters. All five delimiters
// must be distinct ASCII characters. Identifiers encoded with an alternate
// format must be decoded with an equally configured one; equality of IDs is
// unaffected by the format that produced them.
func NewFormat(segmentSep, typeValueSep, openValue, closeValue, escapeChar byte) (*Format, error) {
	delims := []byte{segmentSep, typeValueSep, openValue, closeValue, escapeChar}
	for i, c := range delims {
		if c >= 0x80 {
			return nil, fmt.Errorf("delimiter %q is not an ASCII character", string(c))
		}
		for _, d := range delims[i+1:] {
			if c == d {
				return nil, fmt.Errorf("delimiters must be distinct, got %q twice", string(c))
			}
		}
	}
	return &Format{
		segmentSep:   segmentSep,
		typeValueSep: typeValueSep,
		openValue:    openValue,
		closeValue:   closeValue,
		escapeChar:   escapeChar,
	}, nil
}

// Format serializes the ID into its canonical string representation. The
// zero-value ID renders as the empty string.
func (f *Format) Format(id ID) string {
	var sb strings.Builder
	for i, seg := range id.segments {
		if i > 0 {
			sb.WriteByte(f.segmentSep)
		}
		f.appendEscaped(&sb, seg.Type())
		sb.WriteByte(f.typeValueSep)
		sb.WriteByte(f.openValue)
		f.appendEscaped(&sb, seg.Value())
		sb.WriteByte(f.closeValue)
	}
	return sb.String()
}

// Parse decodes a canonical string into an ID. It returns a *FormatError,
// carrying the byte offset of the violation, when the text is empty or does
// not conform to the grammar.
func (f *Format) Parse(text string) (ID, error) {
	if isBlank(text) {
		return ID{}, &FormatError{Input: text, Reason: "input must not be empty or blank"}
	}
	var segments []Segment
	start := 0
	for {
		end := len(text)
		if idx := f.indexUnescaped(text[start:], f.segmentSep); idx >= 0 {
			end = start + idx
		}
		seg, err := f.parseSegment(text, start, end)
		if err != nil {
			return ID{}, err
		}
		segments = append(segments, seg)
		if end == len(text) {
			break
		}
		start = end + 1
	}
	return ID{segments: segments}, nil
}

// parseSegment decodes one `type:[value]` piece spanning text[start:end].
func (f *Format) parseSegment(text string, start, end int) (Segment, error) {
	piece := text[start:end]
	if piece == "" {
		return Segment{}, &FormatError{Input: text, Offset: start, Reason: "empty segment"}
	}
	sep := f.indexUnescaped(piece, f.typeValueSep)
	if sep < 0 {
		return Segment{}, &FormatError{
			Input:  text,
			Offset: start,
			Reason: fmt.Sprintf("segment %q is missing the %q type/value separator", piece, string(f.typeValueSep)),
		}
	}
	if sep+1 >= len(piece) || piece[sep+1] != f.openValue {
		return Segment{}, &FormatError{
			Input:  text,
			Offset: start + sep + 1,
			Reason: fmt.Sprintf("segment value must open with %q", string(f.openValue)),
		}
	}
	body := piece[sep+2:]
	closing := f.indexUnescaped(body, f.closeValue)
	if closing < 0 {
		return Segment{}, &FormatError{
			Input:  text,
			Offset: end,
			Reason: fmt.Sprintf("segment value is missing the closing %q", string(f.closeValue)),
		}
	}
	if closing != len(body)-1 {
		return Segment{}, &FormatError{
			Input:  text,
			Offset: start + sep + 2 + closing + 1,
			Reason: "unexpected text after segment value",
		}
	}

	segmentType, err := f.unescape(text, start, piece[:sep])
	if err != nil {
		return Segment{}, err
	}
	value, err := f.unescape(text, start+sep+2, body[:closing])
	if err != nil {
		return Segment{}, err
	}
	if segmentType == "" {
		return Segment{}, &FormatError{Input: text, Offset: start, Reason: "empty segment type"}
	}
	if value == "" {
		return Segment{}, &FormatError{Input: text, Offset: start + sep + 2, Reason: "empty segment value"}
	}
	return NewSegment(segmentType, value), nil
}

// unescape decodes the escape sequences in raw, which begins at the given
// byte offset of the original input. Only reserved characters may be
// escaped, and reserved characters must be escaped; anything else makes the
// encoding ambiguous and is rejected.
func (f *Format) unescape(text string, offset int, raw string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == f.escapeChar {
			i++
			if i >= len(raw) {
				return "", &FormatError{Input: text, Offset: offset + i, Reason: "dangling escape character"}
			}
			if !f.reserved(raw[i]) {
				return "", &FormatError{
					Input:  text,
					Offset: offset + i - 1,
					Reason: fmt.Sprintf("invalid escape sequence %q", raw[i-1:i+1]),
				}
			}
			sb.WriteByte(raw[i])
			continue
		}
		if f.reserved(c) {
			return "", &FormatError{
				Input:  text,
				Offset: offset + i,
				Reason: fmt.Sprintf("unescaped reserved character %q", string(c)),
			}
		}
		sb.WriteByte(c)
	}
	return sb.String(), nil
}

// appendEscaped writes s to sb with every reserved character preceded by the
// escape character. All delimiters are ASCII, so byte-wise scanning never
// splits a multi-byte rune.
func (f *Format) appendEscaped(sb *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		if f.reserved(s[i]) {
			sb.WriteByte(f.escapeChar)
		}
		sb.WriteByte(s[i])
	}
}

// reserved reports whether c is one of the structural delimiter characters.
func (f *Format) reserved(c byte) bool {
	return c == f.segmentSep || c == f.typeValueSep ||
		c == f.openValue || c == f.closeValue || c == f.escapeChar
}

// indexUnescaped returns the index of the first unescaped occurrence of
// target in s, or -1 if there is none.
func (f *Format) indexUnescaped(s string, target byte) int {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == f.escapeChar:
			escaped = true
		case s[i] == target:
			return i
		}
	}
	return -1
}
