package options

import "github.com/dan-strohschein/linkar-go/protocol"

// SelectOptions configures Select.
type SelectOptions struct {
	onlyRecordID bool
	pagination   Pagination
	flags        ReadFlags
}

// DefaultSelectOptions returns full records without pagination.
func DefaultSelectOptions() *SelectOptions {
	return &SelectOptions{pagination: NoPagination()}
}

// NewSelectOptions builds select options. When onlyRecordID is set only
// record ids come back, so the read-back flags are forced off.
func NewSelectOptions(onlyRecordID bool, pagination Pagination, calculated, conversion, formatSpec, originalRecords bool) *SelectOptions {
	o := &SelectOptions{onlyRecordID: onlyRecordID, pagination: pagination.orDefault()}
	if !onlyRecordID {
		o.flags = ReadFlags{
			Calculated:      calculated,
			Conversion:      conversion,
			FormatSpec:      formatSpec,
			OriginalRecords: originalRecords,
		}
	}
	return o
}

// orDefault maps nil to the defaults and fills the zero pagination of a
// literal &SelectOptions{} the same way.
func (o *SelectOptions) orDefault() *SelectOptions {
	if o == nil {
		return DefaultSelectOptions()
	}
	n := *o
	n.pagination = n.pagination.orDefault()
	return &n
}

// OnlyRecordID reports whether only record ids are returned.
func (o *SelectOptions) OnlyRecordID() bool { return o.orDefault().onlyRecordID }

// Pagination returns the paging settings.
func (o *SelectOptions) Pagination() Pagination { return o.orDefault().pagination }

// Flags returns the read-back switches.
func (o *SelectOptions) Flags() ReadFlags { return o.orDefault().flags }

// Encode renders onlyRecordId AM pagination AM calculated AM conversion AM
// formatSpec AM originalRecords.
func (o *SelectOptions) Encode() string {
	o = o.orDefault()
	fields := append([]string{
		protocol.Flag(o.onlyRecordID),
		o.pagination.Encode(),
	}, o.flags.fields()...)
	return protocol.JoinFields(fields...)
}

// Validate checks the pagination values.
func (o *SelectOptions) Validate() error {
	if o == nil {
		return nil
	}
	return o.orDefault().pagination.Validate("SelectOptions")
}
