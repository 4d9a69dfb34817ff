package jsonarray

import (
	"io"
	"strings"

	"go.uber.org/zap"
)

// A Decoder reads text lines containing a pretty-printed JSON array and
// decodes the array's top-level objects one at a time.
//
// Characters found at nesting depth 0 (array punctuation, whitespace,
// stray non-object elements) are skipped without error.  The decoder is
// permissive by design: it extracts the '{...}' elements of the array
// and validates those, nothing more.
type Decoder struct {
	lines LineStream

	scan    scanState
	started bool     // leading '[' has been found
	queue   []string // raw text of completed objects not yet decoded
	err     error    // sticky; io.EOF after a clean end of input

	strictEnd bool
	logger    *zap.Logger
}

// NewDecoder sets up a new Decoder instance reading from the given line
// stream.  The line stream is consumed as objects are requested, one
// object ahead at most, so the consumer's pace gates how much input is
// read.
func NewDecoder(lines LineStream, opts ...Option) *Decoder {
	d := &Decoder{lines: lines, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var _ Source = &Decoder{}

// Decode returns the next top-level object in the array, or io.EOF once
// the input is exhausted.  Any other error is final: subsequent calls
// return the same error.
//
// Objects returned by earlier calls remain valid after an error; an
// error only stops production of further ones.
func (d *Decoder) Decode() (Object, error) {
	if d.err != nil {
		return nil, d.err
	}
	obj, err := d.decode()
	if err != nil {
		d.err = err
	}
	return obj, err
}

func (d *Decoder) decode() (Object, error) {
	if !d.started {
		if err := d.findArrayStart(); err != nil {
			return nil, err
		}
	}
	for len(d.queue) == 0 {
		line, ok := d.lines.Next()
		if !ok {
			return nil, d.endOfStream()
		}
		d.scan.feed(line, d.enqueue)
	}
	text := d.queue[0]
	d.queue = d.queue[1:]
	obj, err := decodeObject(text)
	if err != nil {
		return nil, &MalformedObjectError{Err: err, Text: text}
	}
	return obj, nil
}

func (d *Decoder) enqueue(text string) {
	d.queue = append(d.queue, text)
}

// findArrayStart consumes lines until one starts with '[' after
// trimming, then feeds the remainder of that line to the scanner so no
// characters are lost.  Lines before the array start, blank or not, are
// skipped; if the input runs out first the stream is malformed.
func (d *Decoder) findArrayStart() error {
	var skipped int
	for {
		line, ok := d.lines.Next()
		if !ok {
			return &MalformedStreamError{Lines: skipped}
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			d.started = true
			d.scan.feed(trimmed[1:], d.enqueue)
			return nil
		}
		skipped++
	}
}

func (d *Decoder) endOfStream() error {
	if d.scan.depth != 0 {
		if d.strictEnd {
			return &TruncatedStreamError{Depth: d.scan.depth}
		}
		d.logger.Warn("stream ended inside an object, data may be incomplete",
			zap.Int("depth", d.scan.depth))
	}
	return io.EOF
}

// Produce decodes objects and sends them to out until the input is
// exhausted, making the Decoder usable as a pipeline Source (see
// StartStream).
func (d *Decoder) Produce(out chan<- Object) error {
	for {
		obj, err := d.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		out <- obj
	}
}

// Iter returns a pull iterator over the remaining objects.
func (d *Decoder) Iter() *Iterator {
	return &Iterator{decoder: d}
}

// scanState is the brace-tracking state machine at the heart of the
// decoder.  It walks characters one at a time, accumulating the current
// top-level object into buf, and is oblivious to line boundaries: state
// carries over from one feed call to the next.
type scanState struct {
	buf      []byte
	depth    int  // open '{' not yet closed; 0 means between objects
	inString bool // inside a string literal; only while depth > 0
	escaped  bool // previous character was an unconsumed backslash
}

// feed scans one line, calling complete with the raw text of each
// top-level object the line completes.  There may be none (the object is
// still open at the end of the line) or several (multiple elements on
// one line).
//
// The cases are ordered so that escapes and string boundaries are
// resolved before any brace is treated as structural: a '{' or '}'
// inside a string never changes the nesting depth, and depth can only
// change outside string context.
func (s *scanState) feed(line string, complete func(string)) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case s.escaped:
			s.append(c)
			s.escaped = false
		case c == '\\':
			s.append(c)
			s.escaped = true
		case c == '"' && s.depth > 0:
			s.inString = !s.inString
			s.append(c)
		case s.inString:
			s.append(c)
		default:
			if c == '{' {
				if s.depth == 0 {
					s.buf = s.buf[:0]
				}
				s.depth++
			}
			s.append(c)
			if c == '}' && s.depth > 0 {
				s.depth--
				if s.depth == 0 && len(s.buf) > 0 {
					complete(string(s.buf))
					s.buf = s.buf[:0]
					s.inString = false
				}
			}
		}
	}
}

// append collects c into the object buffer; characters outside any
// top-level object are dropped.
func (s *scanState) append(c byte) {
	if s.depth > 0 {
		s.buf = append(s.buf, c)
	}
}
