package options

import "github.com/dan-strohschein/linkar-go/protocol"

// UpdateOptions configures Update and UpdatePartial.
type UpdateOptions struct {
	optimisticLock bool
	readAfter      bool
	flags          ReadFlags
}

// DefaultUpdateOptions has no lock and no read-back.
func DefaultUpdateOptions() *UpdateOptions {
	return &UpdateOptions{}
}

// UpdateWithLock sets only the optimistic lock flag.
func UpdateWithLock(optimisticLock bool) *UpdateOptions {
	return &UpdateOptions{optimisticLock: optimisticLock}
}

// NewUpdateOptions builds update options. The read-back flags only apply
// when readAfter is set and are forced off otherwise.
func NewUpdateOptions(optimisticLock, readAfter, calculated, conversion, formatSpec, originalRecords bool) *UpdateOptions {
	o := &UpdateOptions{optimisticLock: optimisticLock, readAfter: readAfter}
	if readAfter {
		o.flags = ReadFlags{
			Calculated:      calculated,
			Conversion:      conversion,
			FormatSpec:      formatSpec,
			OriginalRecords: originalRecords,
		}
	}
	return o
}

// OptimisticLock reports whether the write must match the supplied
// original records.
func (o *UpdateOptions) OptimisticLock() bool { return o != nil && o.optimisticLock }

// ReadAfter reports whether the written records are read back.
func (o *UpdateOptions) ReadAfter() bool { return o != nil && o.readAfter }

// Flags returns the read-back switches.
func (o *UpdateOptions) Flags() ReadFlags {
	if o == nil {
		return ReadFlags{}
	}
	return o.flags
}

// Encode renders optimisticLock AM readAfter AM calculated AM conversion AM
// formatSpec AM originalRecords.
func (o *UpdateOptions) Encode() string {
	fields := append([]string{
		protocol.Flag(o.OptimisticLock()),
		protocol.Flag(o.ReadAfter()),
	}, o.Flags().fields()...)
	return protocol.JoinFields(fields...)
}

// Validate always succeeds.
func (o *UpdateOptions) Validate() error { return nil }
