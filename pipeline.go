package jsonarray

// A Transformer can transform an object stream into another.  Use the
// TransformStream function to apply it.
type Transformer interface {
	Transform(in <-chan Object, out chan<- Object)
}

// A Source produces a stream of objects.  Decoder is the main
// implementation.
type Source interface {
	Produce(chan<- Object) error
}

// A Sink consumes a stream of objects until it is closed.
type Sink interface {
	Consume(<-chan Object) error
}

// TransformStream applies the transformer to the incoming object stream,
// returning a new object stream.  This is always fast because the
// transformer is computed in a goroutine.
func TransformStream(in <-chan Object, transformer Transformer) <-chan Object {
	out := make(chan Object)
	go func() {
		defer close(out)
		transformer.Transform(in, out)
	}()
	return out
}

// StartStream uses the source to start producing objects and returns a
// new stream where these objects are produced.  This is always fast
// because the source is computed in a goroutine.
//
// As a source can produce errors, a handleError function can be
// provided.  It is called from the producing goroutine, before the
// returned stream is closed.
func StartStream(source Source, handleError func(error)) <-chan Object {
	out := make(chan Object)
	go func() {
		defer close(out)
		err := source.Produce(out)
		if err != nil && handleError != nil {
			handleError(err)
		}
	}()
	return out
}

func ConsumeStream(in <-chan Object, sink Sink) error {
	return sink.Consume(in)
}
