package results

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAllKeepsOnlyMatchesInOrder(t *testing.T) {
	input := strings.Join([]string{
		`{"type":"begin","data":{"path":{"text":"a.rs"}}}`,
		`{"data":{"path":{"text":"a.rs"},"line_number":3}}`,
		`{"type":"summary"}`,
		`not even json`,
		`{"data":{"path":{"text":"b.rs"},"line_number":9}}`,
		`{"type":"end","data":{"path":{"text":"b.rs"}}}`,
	}, "\n")

	store, err := ReadAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	first, ok := store.Get(0)
	require.True(t, ok)
	assert.Equal(t, Match{Path: "a.rs", LineNumber: 3}, first)

	second, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, Match{Path: "b.rs", LineNumber: 9}, second)

	assert.Equal(t, []string{"a.rs", "b.rs"}, store.Paths())
}

func TestReadAllEmptyStream(t *testing.T) {
	store, err := ReadAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Paths())
}

func TestReadAllNoiseOnlyStream(t *testing.T) {
	input := "{\"type\":\"summary\"}\ngarbage\n\n"
	store, err := ReadAll(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestReadAllLongLines(t *testing.T) {
	// Matched source lines can far exceed the default bufio buffer.
	long := `{"data":{"path":{"text":"big.txt"},"line_number":7,"lines":{"text":"` +
		strings.Repeat("x", 128*1024) + `"}}}`
	store, err := ReadAll(strings.NewReader(long))
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())
	m, ok := store.Get(0)
	require.True(t, ok)
	assert.Equal(t, "big.txt", m.Path)
	assert.Equal(t, 7, m.LineNumber)
}

func TestReadAllOversizedNoiseLine(t *testing.T) {
	// A multi-megabyte junk line (a match against a minified bundle,
	// say) must not take the whole ingestion down with it.
	input := strings.Repeat("x", 2*1024*1024) + "\n" +
		`{"data":{"path":{"text":"a.rs"},"line_number":3}}`
	store, err := ReadAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())
	m, ok := store.Get(0)
	require.True(t, ok)
	assert.Equal(t, Match{Path: "a.rs", LineNumber: 3}, m)
}

func TestGetOutOfRange(t *testing.T) {
	store, err := ReadAll(strings.NewReader(`{"data":{"path":{"text":"a.rs"},"line_number":1}}`))
	require.NoError(t, err)

	_, ok := store.Get(-1)
	assert.False(t, ok)
	_, ok = store.Get(1)
	assert.False(t, ok)
}
