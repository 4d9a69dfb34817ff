package jsonarray

import (
	"bufio"
	"io"
)

// A LineStream produces the text lines to be parsed, in order.  It is
// read-once and forward-only: Next returns the next line and true, or
// the empty string and false once the stream is exhausted.
//
// Lines carry no terminator.  They need not align with JSON tokens in
// any way: an object, a string or even an escape sequence may be split
// across any number of lines.
type LineStream interface {
	Next() (string, bool)
}

// A ChannelLineStream reads its lines from a channel, so the producer
// can run in its own goroutine (e.g. pumping a network response).
type ChannelLineStream <-chan string

var _ LineStream = make(ChannelLineStream)

func (r ChannelLineStream) Next() (string, bool) {
	line, ok := <-r
	return line, ok
}

// A SliceLineStream reads its lines from a slice.
type SliceLineStream struct {
	lines []string
}

var _ LineStream = &SliceLineStream{}

func NewSliceLineStream(lines []string) *SliceLineStream {
	return &SliceLineStream{lines: lines}
}

func (r *SliceLineStream) Next() (line string, ok bool) {
	if len(r.lines) > 0 {
		line = r.lines[0]
		r.lines = r.lines[1:]
		ok = true
	}
	return
}

// A ReaderLineStream splits an io.Reader into lines.  A read failure
// ends the stream; it can be retrieved with Err afterwards.
type ReaderLineStream struct {
	scanner *bufio.Scanner
}

var _ LineStream = &ReaderLineStream{}

// Lines returns a LineStream reading from in.  Lines longer than
// maxLineSize end the stream with an error.
func Lines(in io.Reader) *ReaderLineStream {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &ReaderLineStream{scanner: scanner}
}

func (r *ReaderLineStream) Next() (string, bool) {
	if r.scanner.Scan() {
		return r.scanner.Text(), true
	}
	return "", false
}

// Err returns the error that ended the stream, if any.  Reaching the end
// of the input is not an error.
func (r *ReaderLineStream) Err() error {
	return r.scanner.Err()
}

const maxLineSize = 16 * 1024 * 1024
