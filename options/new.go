package options

import (
	"strconv"

	"github.com/dan-strohschein/linkar-go/protocol"
)

// RecordIDType is how the server assigns ids to new records. At most one
// of the three policies is active; NoRecordID means the ids come in the
// records payload.
type RecordIDType struct {
	linkar     bool
	prefix     string
	separator  string
	formatSpec string

	random  bool
	numeric bool
	length  int

	custom bool
}

// NoRecordID leaves id assignment to the caller.
func NoRecordID() RecordIDType { return RecordIDType{} }

// LinkarRecordID uses the server's sequential counter. The prefix and
// separator are prepended, formatSpec is applied to the counter.
func LinkarRecordID(prefix, separator, formatSpec string) RecordIDType {
	return RecordIDType{linkar: true, prefix: prefix, separator: separator, formatSpec: formatSpec}
}

// RandomRecordID generates random ids of the given length, digits only when
// numeric is set.
func RandomRecordID(numeric bool, length int) RecordIDType {
	return RecordIDType{random: true, numeric: numeric, length: length}
}

// CustomRecordID calls the SUB.GETNEXTID subroutine on the server.
func CustomRecordID() RecordIDType { return RecordIDType{custom: true} }

func (r RecordIDType) Linkar() bool       { return r.linkar }
func (r RecordIDType) Prefix() string     { return r.prefix }
func (r RecordIDType) Separator() string  { return r.separator }
func (r RecordIDType) FormatSpec() string { return r.formatSpec }
func (r RecordIDType) Random() bool       { return r.random }
func (r RecordIDType) Numeric() bool      { return r.numeric }
func (r RecordIDType) Length() int        { return r.length }
func (r RecordIDType) Custom() bool       { return r.custom }

// Encode renders linkar VM prefix VM separator VM formatSpec AM random VM
// numeric VM length AM custom.
func (r RecordIDType) Encode() string {
	return protocol.JoinFields(
		protocol.JoinValues(protocol.Flag(r.linkar), r.prefix, r.separator, r.formatSpec),
		protocol.JoinValues(protocol.Flag(r.random), protocol.Flag(r.numeric), strconv.Itoa(r.length)),
		protocol.Flag(r.custom),
	)
}

func (r RecordIDType) validate() error {
	if r.random && r.length < 1 {
		return &ConfigError{Option: "NewOptions", Field: "RecordIdType_Length", Value: r.length, Reason: "must be greater than 0"}
	}
	return nil
}

// NewOptions configures New.
type NewOptions struct {
	recordIDType RecordIDType
	readAfter    bool
	flags        ReadFlags
}

// DefaultNewOptions takes ids from the payload and reads nothing back.
func DefaultNewOptions() *NewOptions {
	return &NewOptions{}
}

// NewNewOptions builds new-record options. The read-back flags only apply
// when readAfter is set.
func NewNewOptions(recordIDType RecordIDType, readAfter, calculated, conversion, formatSpec, originalRecords bool) *NewOptions {
	o := &NewOptions{recordIDType: recordIDType, readAfter: readAfter}
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

// RecordIDType returns the id assignment policy.
func (o *NewOptions) RecordIDType() RecordIDType {
	if o == nil {
		return NoRecordID()
	}
	return o.recordIDType
}

// ReadAfter reports whether the new records are read back.
func (o *NewOptions) ReadAfter() bool { return o != nil && o.readAfter }

// Flags returns the read-back switches.
func (o *NewOptions) Flags() ReadFlags {
	if o == nil {
		return ReadFlags{}
	}
	return o.flags
}

// Encode renders recordIdType AM readAfter AM calculated AM conversion AM
// formatSpec AM originalRecords.
func (o *NewOptions) Encode() string {
	fields := append([]string{
		o.RecordIDType().Encode(),
		protocol.Flag(o.ReadAfter()),
	}, o.Flags().fields()...)
	return protocol.JoinFields(fields...)
}

// Validate checks the record id policy.
func (o *NewOptions) Validate() error {
	return o.RecordIDType().validate()
}
