// Package jsonarray implements incremental parsing of a pretty-printed
// JSON array delivered as a sequence of text lines.
//
// The input is a stream of lines (e.g. from a chunked HTTP response or a
// very large file) whose content is a JSON array of objects.  The parser
// extracts the top-level objects one by one as their closing brace
// arrives, so the whole array is never held in memory: memory usage is
// proportional to the size of a single object, not to the size of the
// stream.  This makes it suitable for consuming unbounded API dumps or
// log exports where loading the full payload is infeasible.
//
// The core is a Decoder which can be driven in two ways.
//
// Pull iteration, which blocks on each line fetch:
//
//	it := jsonarray.NewDecoder(jsonarray.Lines(resp.Body)).Iter()
//	for it.Advance() {
//		handle(it.CurrentObject())
//	}
//	err := it.Err()
//
// Or a channel pipeline, where objects are produced in a goroutine and
// the only suspension points are fetching a line and sending an object:
//
//	stream := jsonarray.StartStream(decoder, handleError)
//	err := jsonarray.ConsumeStream(stream, sink)
//
// Both drivers run the same scanning state machine, which tracks brace
// nesting and string/escape context across line boundaries, so braces or
// quotes inside string values never confuse it.
//
// The companion command line utility is in the directory cmd/ja.  You can
// install it with:
//
//	go install github.com/arnodel/jsonarray/cmd/ja
package jsonarray
