package jsonarray

import "io"

// An Iterator drives a Decoder by pull iteration, blocking on each line
// fetch:
//
//	it := decoder.Iter()
//	for it.Advance() {
//		handle(it.CurrentObject())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// Abandoning the iterator before exhaustion is always safe; the only
// resource held is the in-memory buffer for the current object.
type Iterator struct {
	decoder *Decoder
	current Object
	err     error
}

// Advance moves to the next object in the array, reporting whether there
// was one.  Once it has returned false, Err tells normal exhaustion and
// failure apart.
func (i *Iterator) Advance() bool {
	obj, err := i.decoder.Decode()
	if err != nil {
		i.current = nil
		if err != io.EOF {
			i.err = err
		}
		return false
	}
	i.current = obj
	return true
}

// CurrentObject returns the object Advance moved to, or nil if Advance
// has not been called or returned false.
func (i *Iterator) CurrentObject() Object {
	return i.current
}

// Err returns the error that stopped iteration, if any.  Exhausting the
// input normally is not an error.
func (i *Iterator) Err() error {
	return i.err
}
