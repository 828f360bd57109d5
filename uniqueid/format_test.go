// uniqueid/format_test.go
package uniqueid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_KnownRepresentation(t *testing.T) {
	id := mustAppend(t, mustAppend(t, mustRoot(t, "engine", "demo-engine"),
		"class", "com.example.Foo"), "method", "bar()")

	// Parentheses are not reserved and pass through unescaped.
	assert.Equal(t, "engine:[demo-engine]/class:[com.example.Foo]/method:[bar()]", id.String())

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	assert.True(t, id.Equal(parsed))
}

func TestFormat_RoundTrip(t *testing.T) {
	testCases := []struct {
		name        string
		segmentType string
		value       string
	}{
		{name: "plain", segmentType: "class", value: "com.example.Foo"},
		{name: "segment separator", segmentType: "path", value: "a/b/c"},
		{name: "type value separator", segmentType: "t:t", value: "a:b"},
		{name: "brackets", segmentType: "[t]", value: "array[0]"},
		{name: "escape character", segmentType: "t", value: `back\slash`},
		{name: "only escape character", segmentType: "t", value: `\`},
		{name: "every reserved character", segmentType: `/:[]\`, value: `\][:/`},
		{name: "whitespace inside", segmentType: "display name", value: "a test ()"},
		{name: "multibyte runes", segmentType: "тип", value: "значение✓"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id := mustAppend(t, mustRoot(t, tc.segmentType, tc.value), tc.segmentType, tc.value)

			parsed, err := Parse(id.String())
			require.NoError(t, err)

			assert.True(t, id.Equal(parsed), "round trip changed the ID: %s", id)
			want := []Segment{
				NewSegment(tc.segmentType, tc.value),
				NewSegment(tc.segmentType, tc.value),
			}
			if diff := cmp.Diff(want, parsed.Segments(), cmp.AllowUnexported(Segment{})); diff != "" {
				t.Errorf("parsed segments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormat_EscapesReservedCharacters(t *testing.T) {
	id := mustRoot(t, "t/y", `a:b[c]d\e`)

	assert.Equal(t, `t\/y:[a\:b\[c\]d\\e]`, id.String())
}

func TestParse_CanonicalFormIsStable(t *testing.T) {
	// Parsing a codec-produced string and re-formatting must reproduce it
	// byte for byte.
	canonical := []string{
		"engine:[demo-engine]",
		"engine:[demo-engine]/class:[com.example.Foo]/method:[bar()]",
		`t\/y:[a\:b\[c\]d\\e]`,
		`suite:[S]/engine:[nested]`,
	}

	for _, text := range canonical {
		t.Run(text, func(t *testing.T) {
			id, err := Parse(text)
			require.NoError(t, err)
			assert.Equal(t, text, id.String())
		})
	}
}

func TestParse_MalformedInput(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{name: "missing type value separator", text: "engine[x]"},
		{name: "missing closing bracket", text: "engine:[x"},
		{name: "missing opening bracket", text: "engine:x]"},
		{name: "empty value", text: "t:[]"},
		{name: "empty type", text: ":[x]"},
		{name: "trailing segment separator", text: "t:[v]/"},
		{name: "leading segment separator", text: "/t:[v]"},
		{name: "empty middle segment", text: "a:[b]//c:[d]"},
		{name: "text after closing bracket", text: "t:[v]x"},
		{name: "escaped closing bracket", text: `t:[v\]`},
		{name: "invalid escape sequence", text: `t:[\a]`},
		{name: "trailing escape character", text: `t\`},
		{name: "unescaped bracket in type", text: "ta]il:[v]"},
		{name: "bare separator", text: "/"},
		{name: "whitespace only", text: "   "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tc.text, formatErr.Input)
		})
	}
}

func TestParse_ErrorCarriesOffset(t *testing.T) {
	_, err := Parse("t:[v]x")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 5, formatErr.Offset)
	assert.Contains(t, formatErr.Error(), "unexpected text")
}

func TestNewFormat_AlternateDelimiters(t *testing.T) {
	alt, err := NewFormat('.', '=', '(', ')', '^')
	require.NoError(t, err)

	id := mustAppend(t, mustRoot(t, "class", "Foo.Bar"), "method", "baz")

	encoded := alt.Format(id)
	assert.Equal(t, "class=(Foo^.Bar).method=(baz)", encoded)

	parsed, err := alt.Parse(encoded)
	require.NoError(t, err)
	assert.True(t, id.Equal(parsed), "equality must not depend on the format used")

	// The default codec cannot read an alternate encoding.
	_, err = DefaultFormat().Parse(encoded)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestNewFormat_RejectsBadDelimiters(t *testing.T) {
	_, err := NewFormat('/', ':', '[', '[', '\\')
	require.Error(t, err)

	_, err = NewFormat(0xFF, ':', '[', ']', '\\')
	require.Error(t, err)
}
