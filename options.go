package jsonarray

import "go.uber.org/zap"

// An Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for diagnostics, currently only the
// warning emitted when the input ends inside an object.  The default is
// a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// StrictArrayEnd makes Decode fail with a *TruncatedStreamError when the
// input ends while an object is still open.  The default is best-effort:
// log a warning and deliver the objects that did complete.
func StrictArrayEnd() Option {
	return func(d *Decoder) {
		d.strictEnd = true
	}
}
