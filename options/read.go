package options

import "github.com/dan-strohschein/linkar-go/protocol"

// ReadFlags are the read-back switches shared by read, update, new and
// select.
type ReadFlags struct {
	// Calculated returns the resulting values from the calculated
	// dictionaries.
	Calculated bool
	// Conversion executes the defined conversions in the dictionaries
	// before returning.
	Conversion bool
	// FormatSpec executes the defined formats in the dictionaries before
	// returning.
	FormatSpec bool
	// OriginalRecords returns a copy of the records in MV format as they
	// were read, for a later optimistic-lock write.
	OriginalRecords bool
}

func (f ReadFlags) fields() []string {
	return []string{
		protocol.Flag(f.Calculated),
		protocol.Flag(f.Conversion),
		protocol.Flag(f.FormatSpec),
		protocol.Flag(f.OriginalRecords),
	}
}

// ReadOptions configures Read.
type ReadOptions struct {
	flags ReadFlags
}

// DefaultReadOptions has every flag off.
func DefaultReadOptions() *ReadOptions {
	return &ReadOptions{}
}

// NewReadOptions builds read options.
func NewReadOptions(calculated, conversion, formatSpec, originalRecords bool) *ReadOptions {
	return &ReadOptions{flags: ReadFlags{
		Calculated:      calculated,
		Conversion:      conversion,
		FormatSpec:      formatSpec,
		OriginalRecords: originalRecords,
	}}
}

// Flags returns the read-back switches.
func (o *ReadOptions) Flags() ReadFlags {
	if o == nil {
		return ReadFlags{}
	}
	return o.flags
}

// Encode renders calculated AM conversion AM formatSpec AM originalRecords.
func (o *ReadOptions) Encode() string {
	return protocol.JoinFields(o.Flags().fields()...)
}

// Validate always succeeds; every combination of flags is legal.
func (o *ReadOptions) Validate() error { return nil }
