package jsonarray

import (
	"encoding/json"
	"io"
	"sort"
)

// An Encoder is a Sink which writes each object it receives as a JSON
// document, one after the other.  With a negative IndentSize each
// document occupies a single line, so the output is JSON Lines.
//
// Object keys are written in sorted order to make the output
// deterministic.
type Encoder struct {
	io.Writer
	IndentSize int
	Colorizer  *Colorizer

	indentLevel int
	err         error
}

var _ Sink = &Encoder{}

// Consume writes every object received from the stream, returning the
// first write error encountered.
func (e *Encoder) Consume(in <-chan Object) error {
	for obj := range in {
		if err := e.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes a single object followed by a newline.
func (e *Encoder) Encode(obj Object) error {
	e.writeObject(obj)
	e.write(newLineBytes)
	return e.err
}

func (e *Encoder) writeValue(value any) {
	switch v := value.(type) {
	case map[string]any:
		e.writeObject(v)
	case []any:
		e.writeArray(v)
	default:
		e.writeScalar(v, false)
	}
}

func (e *Encoder) writeObject(obj map[string]any) {
	e.write(openObjectBytes)
	if len(obj) > 0 {
		keys := make([]string, 0, len(obj))
		for key := range obj {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		e.indent()
		for i, key := range keys {
			if i > 0 {
				e.write(itemSeparatorBytes)
				e.newLine()
			}
			e.writeScalar(key, true)
			e.write(keyValueSeparatorBytes)
			e.writeValue(obj[key])
		}
		e.dedent()
	}
	e.write(closeObjectBytes)
}

func (e *Encoder) writeArray(values []any) {
	e.write(openArrayBytes)
	if len(values) > 0 {
		e.indent()
		for i, value := range values {
			if i > 0 {
				e.write(itemSeparatorBytes)
				e.newLine()
			}
			e.writeValue(value)
		}
		e.dedent()
	}
	e.write(closeArrayBytes)
}

// writeScalar writes a string, number, boolean or null, optionally
// wrapped in the colorizer's ANSI codes.
func (e *Encoder) writeScalar(value any, isKey bool) {
	b, err := json.Marshal(value)
	if err != nil {
		// Decoded objects only contain JSON-representable values.
		panic(err)
	}
	if e.Colorizer != nil {
		e.write(e.Colorizer.scalarCode(value, isKey))
		e.write(b)
		e.write(e.Colorizer.ResetCode)
	} else {
		e.write(b)
	}
}

// newLine starts a new line at the current indentation level.  With a
// negative IndentSize it does nothing, keeping everything on one line.
func (e *Encoder) newLine() {
	if e.IndentSize < 0 {
		return
	}
	e.write(newLineBytes)
	for i := e.IndentSize * e.indentLevel; i > 0; i-- {
		e.write(spaceBytes)
	}
}

func (e *Encoder) indent() {
	e.indentLevel++
	e.newLine()
}

func (e *Encoder) dedent() {
	e.indentLevel--
	e.newLine()
}

// write sends bytes to the output, remembering the first error so the
// rest of the document is skipped cheaply.
func (e *Encoder) write(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.Writer.Write(b)
}

// A Colorizer holds the ANSI codes an Encoder uses to colorize its
// output.  A nil *Colorizer disables coloring.
type Colorizer struct {
	KeyColorCode     []byte
	StringColorCode  []byte
	NumberColorCode  []byte
	LiteralColorCode []byte // true, false and null
	ResetCode        []byte
}

func (c *Colorizer) scalarCode(value any, isKey bool) []byte {
	if isKey {
		return c.KeyColorCode
	}
	switch value.(type) {
	case string:
		return c.StringColorCode
	case float64:
		return c.NumberColorCode
	default:
		return c.LiteralColorCode
	}
}

var (
	openObjectBytes        = []byte("{")
	closeObjectBytes       = []byte("}")
	openArrayBytes         = []byte("[")
	closeArrayBytes        = []byte("]")
	itemSeparatorBytes     = []byte(",")
	keyValueSeparatorBytes = []byte(": ")
	newLineBytes           = []byte("\n")
	spaceBytes             = []byte(" ")
)
