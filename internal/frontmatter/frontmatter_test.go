package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitNoFrontMatter(t *testing.T) {
	content := []byte("# Hello\n\nBody text\n")

	raw, body, had, err := Split(content)
	require.NoError(t, err)
	assert.False(t, had)
	assert.Nil(t, raw)
	assert.Equal(t, content, body)
}

func TestSplitWithFrontMatter(t *testing.T) {
	content := []byte("---\ntitle: Hello\nlayout: minima\n---\n# Body\n")

	raw, body, had, err := Split(content)
	require.NoError(t, err)
	assert.True(t, had)
	assert.Equal(t, "title: Hello\nlayout: minima\n", string(raw))
	assert.Equal(t, "# Body\n", string(body))
}

func TestSplitCRLFFrontMatter(t *testing.T) {
	content := []byte("---\r\ntitle: Hello\r\nlayout: custom\r\n---\r\n# Body\r\n")

	raw, body, had, err := Split(content)
	require.NoError(t, err)
	assert.True(t, had)
	assert.Equal(t, "title: Hello\r\nlayout: custom\r\n", string(raw))
	assert.Equal(t, "# Body\r\n", string(body))

	fields, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Hello", fields["title"])
	assert.Equal(t, "custom", fields["layout"])
}

func TestSplitCRLFEmptyFrontMatter(t *testing.T) {
	raw, body, had, err := Split([]byte("---\r\n---\r\nbody\r\n"))
	require.NoError(t, err)
	assert.True(t, had)
	assert.Empty(t, raw)
	assert.Equal(t, "body\r\n", string(body))
}

func TestSplitCRLFClosingDelimiterAtEOF(t *testing.T) {
	raw, body, had, err := Split([]byte("---\r\ntitle: Hello\r\n---"))
	require.NoError(t, err)
	assert.True(t, had)
	assert.Equal(t, "title: Hello\r\n", string(raw))
	assert.Empty(t, body)
}

func TestSplitEmptyFrontMatter(t *testing.T) {
	content := []byte("---\n---\nbody\n")

	raw, body, had, err := Split(content)
	require.NoError(t, err)
	assert.True(t, had)
	assert.Empty(t, raw)
	assert.Equal(t, "body\n", string(body))
}

func TestSplitMissingClosingDelimiter(t *testing.T) {
	_, _, _, err := Split([]byte("---\ntitle: Broken\n"))
	assert.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestSplitClosingDelimiterAtEOF(t *testing.T) {
	raw, body, had, err := Split([]byte("---\ntitle: Hello\n---"))
	require.NoError(t, err)
	assert.True(t, had)
	assert.Equal(t, "title: Hello\n", string(raw))
	assert.Empty(t, body)
}

func TestParseEmpty(t *testing.T) {
	fields, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestSerializeKeyOrder(t *testing.T) {
	fields := map[string]any{
		"zebra":  "last",
		"layout": "cayman",
		"author": "someone",
		"title":  "My Page",
	}

	out, err := Serialize(fields)
	require.NoError(t, err)
	assert.Equal(t, "title: My Page\nlayout: cayman\nauthor: someone\nzebra: last\n", string(out))
}

func TestSerializeDeterministic(t *testing.T) {
	fields := map[string]any{
		"title":  "Page",
		"layout": "minima",
		"tags":   []string{"a", "b"},
		"nested": map[string]any{"b": 2, "a": 1},
	}

	first, err := Serialize(fields)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Serialize(fields)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSerializeEmpty(t *testing.T) {
	out, err := Serialize(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoundTrip(t *testing.T) {
	original := []byte("---\ntitle: Keep Me\ncustom: value\n---\nBody stays.\n")

	raw, body, had, err := Split(original)
	require.NoError(t, err)
	require.True(t, had)

	fields, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Keep Me", fields["title"])
	assert.Equal(t, "value", fields["custom"])

	serialized, err := Serialize(fields)
	require.NoError(t, err)
	rejoined := Join(serialized, body)
	assert.Equal(t, "---\ntitle: Keep Me\ncustom: value\n---\nBody stays.\n", string(rejoined))
}
