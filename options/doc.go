// Package options holds the per-operation option values and their
// encoders. Every value is immutable and built through constructor
// functions; Encode renders it into the attribute/value-mark fragment the
// server reads positionally. A nil options pointer encodes as the default
// shape.
package options
