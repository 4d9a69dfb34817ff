package jsonarray

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderCompact(t *testing.T) {
	var buf bytes.Buffer
	encoder := &Encoder{Writer: &buf, IndentSize: -1}

	require.NoError(t, encoder.Encode(Object{"b": 2.0, "a": "x"}))
	require.NoError(t, encoder.Encode(Object{"c": true}))

	assert.Equal(t, "{\"a\": \"x\",\"b\": 2}\n{\"c\": true}\n", buf.String())
}

func TestEncoderIndented(t *testing.T) {
	var buf bytes.Buffer
	encoder := &Encoder{Writer: &buf, IndentSize: 2}

	require.NoError(t, encoder.Encode(Object{
		"a": 1.0,
		"b": map[string]any{"c": nil},
		"d": []any{1.0, "two"},
	}))

	expected := `{
  "a": 1,
  "b": {
    "c": null
  },
  "d": [
    1,
    "two"
  ]
}
`
	assert.Equal(t, expected, buf.String())
}

func TestEncoderEmptyCollections(t *testing.T) {
	var buf bytes.Buffer
	encoder := &Encoder{Writer: &buf, IndentSize: 2}
	require.NoError(t, encoder.Encode(Object{"o": map[string]any{}, "a": []any{}}))
	assert.Equal(t, "{\n  \"a\": [],\n  \"o\": {}\n}\n", buf.String())
}

// Encoder output must be valid JSON that decodes back to the object.
func TestEncoderRoundTrip(t *testing.T) {
	obj := Object{
		"s":   "quote \" backslash \\ brace }",
		"n":   1.5,
		"arr": []any{nil, true, map[string]any{"k": "v"}},
	}
	for _, indent := range []int{-1, 0, 2} {
		var buf bytes.Buffer
		encoder := &Encoder{Writer: &buf, IndentSize: indent}
		require.NoError(t, encoder.Encode(obj))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, map[string]any(obj), decoded)
	}
}

func TestEncoderColors(t *testing.T) {
	var buf bytes.Buffer
	encoder := &Encoder{
		Writer:     &buf,
		IndentSize: -1,
		Colorizer: &Colorizer{
			KeyColorCode:     []byte("<K>"),
			StringColorCode:  []byte("<S>"),
			NumberColorCode:  []byte("<N>"),
			LiteralColorCode: []byte("<L>"),
			ResetCode:        []byte("<R>"),
		},
	}
	require.NoError(t, encoder.Encode(Object{"a": "x", "b": 1.0, "c": nil}))
	assert.Equal(t,
		"{<K>\"a\"<R>: <S>\"x\"<R>,<K>\"b\"<R>: <N>1<R>,<K>\"c\"<R>: <L>null<R>}\n",
		buf.String())
}

func TestEncoderConsume(t *testing.T) {
	decoder := NewDecoder(NewSliceLineStream([]string{
		"[",
		`{"a": 1},`,
		`{"s": "x}y"}`,
		"]",
	}))
	var buf bytes.Buffer
	encoder := &Encoder{Writer: &buf, IndentSize: -1}
	require.NoError(t, ConsumeStream(StartStream(decoder, nil), encoder))
	assert.Equal(t, "{\"a\": 1}\n{\"s\": \"x}y\"}\n", buf.String())
}
