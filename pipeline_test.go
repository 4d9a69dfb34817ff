package jsonarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectSink gathers every object it receives.
type collectSink struct {
	objs []Object
}

var _ Sink = &collectSink{}

func (s *collectSink) Consume(in <-chan Object) error {
	for obj := range in {
		s.objs = append(s.objs, obj)
	}
	return nil
}

func TestStartStream(t *testing.T) {
	decoder := NewDecoder(NewSliceLineStream([]string{
		"[",
		`{"a": 1},`,
		`{"b": 2}`,
		"]",
	}))

	var streamErr error
	stream := StartStream(decoder, func(err error) {
		streamErr = err
	})

	var objs []Object
	for obj := range stream {
		objs = append(objs, obj)
	}
	require.NoError(t, streamErr)
	assert.Equal(t, []Object{{"a": 1.0}, {"b": 2.0}}, objs)
}

func TestStartStreamError(t *testing.T) {
	decoder := NewDecoder(NewSliceLineStream([]string{
		"[",
		`{"a": 1},`,
		`{"bad": 2,}`,
		"]",
	}))

	var streamErr error
	stream := StartStream(decoder, func(err error) {
		streamErr = err
	})

	// Objects before the failing one are still delivered.
	var objs []Object
	for obj := range stream {
		objs = append(objs, obj)
	}
	assert.Equal(t, []Object{{"a": 1.0}}, objs)

	var objErr *MalformedObjectError
	require.ErrorAs(t, streamErr, &objErr)
}

func TestConsumeStream(t *testing.T) {
	decoder := NewDecoder(NewSliceLineStream([]string{
		`[{"a": 1}, {"b": 2}, {"c": 3}]`,
	}))
	sink := &collectSink{}
	err := ConsumeStream(StartStream(decoder, nil), sink)
	require.NoError(t, err)
	assert.Equal(t, []Object{{"a": 1.0}, {"b": 2.0}, {"c": 3.0}}, sink.objs)
}

// keepKey drops objects without the given key.
type keepKey string

func (k keepKey) Transform(in <-chan Object, out chan<- Object) {
	for obj := range in {
		if _, ok := obj[string(k)]; ok {
			out <- obj
		}
	}
}

func TestTransformStream(t *testing.T) {
	decoder := NewDecoder(NewSliceLineStream([]string{
		`[{"a": 1}, {"b": 2}, {"a": 3}]`,
	}))
	stream := TransformStream(StartStream(decoder, nil), keepKey("a"))
	sink := &collectSink{}
	require.NoError(t, ConsumeStream(stream, sink))
	assert.Equal(t, []Object{{"a": 1.0}, {"a": 3.0}}, sink.objs)
}

// The channel driver and the pull driver must produce identical output
// for the same input.
func TestChannelLineStream(t *testing.T) {
	lines := []string{"[", `{"a": 1},`, `{"s": "b}c"},`, `{"d": [1, 2]}`, "]"}

	ch := make(chan string)
	go func() {
		defer close(ch)
		for _, line := range lines {
			ch <- line
		}
	}()

	var fromChannel []Object
	for obj := range StartStream(NewDecoder(ChannelLineStream(ch)), nil) {
		fromChannel = append(fromChannel, obj)
	}

	fromSlice, err := parseLines(t, lines)
	require.NoError(t, err)
	assert.Equal(t, fromSlice, fromChannel)
}

// Abandoning the stream early must not deadlock the producer once the
// consumer stops receiving: the test just checks partial consumption
// works and the objects received so far are correct.
func TestStreamPartialConsumption(t *testing.T) {
	decoder := NewDecoder(NewSliceLineStream([]string{
		`[{"i": 0}, {"i": 1}, {"i": 2}, {"i": 3}]`,
	}))
	stream := StartStream(decoder, nil)
	first := <-stream
	second := <-stream
	assert.Equal(t, Object{"i": 0.0}, first)
	assert.Equal(t, Object{"i": 1.0}, second)
}
