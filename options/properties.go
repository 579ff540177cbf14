package options

import "github.com/dan-strohschein/linkar-go/protocol"

// PropertiesOptions selects what LkProperties returns.
type PropertiesOptions struct {
	rowProperties    bool
	onlyVisibles     bool
	usePropertyNames bool
	rowHeader        RowHeaders
	pagination       Pagination
}

// DefaultProperties lists every property with main-label headings.
func DefaultProperties() *PropertiesOptions {
	return LkProperties(MainLabel, false, false, false, NoPagination())
}

// LkProperties builds options for LKSCHEMAS property listings.
func LkProperties(rowHeader RowHeaders, rowProperties, onlyVisibles, usePropertyNames bool, pagination Pagination) *PropertiesOptions {
	return &PropertiesOptions{
		rowProperties:    rowProperties,
		onlyVisibles:     onlyVisibles,
		usePropertyNames: usePropertyNames,
		rowHeader:        rowHeader,
		pagination:       pagination.orDefault(),
	}
}

// SQLModeProperties builds options for SQLMODE property listings: no
// headings, a property-name row, and property names instead of labels.
func SQLModeProperties(onlyVisibles bool, pagination Pagination) *PropertiesOptions {
	return &PropertiesOptions{
		rowProperties:    true,
		onlyVisibles:     onlyVisibles,
		usePropertyNames: true,
		rowHeader:        NoHeaders,
		pagination:       pagination.orDefault(),
	}
}

func (o *PropertiesOptions) RowProperties() bool    { return o.orDefault().rowProperties }
func (o *PropertiesOptions) OnlyVisibles() bool     { return o.orDefault().onlyVisibles }
func (o *PropertiesOptions) UsePropertyNames() bool { return o.orDefault().usePropertyNames }
func (o *PropertiesOptions) RowHeader() RowHeaders  { return o.orDefault().rowHeader }
func (o *PropertiesOptions) Pagination() Pagination { return o.orDefault().pagination }

// orDefault maps nil to the defaults. A zero literal gets the default
// heading and pagination too.
func (o *PropertiesOptions) orDefault() *PropertiesOptions {
	if o == nil {
		return DefaultProperties()
	}
	n := *o
	if n.rowHeader == 0 {
		n.rowHeader = MainLabel
	}
	n.pagination = n.pagination.orDefault()
	return &n
}

// Encode renders rowProperties AM onlyVisibles AM usePropertyNames AM
// rowHeader AM pagination.
func (o *PropertiesOptions) Encode() string {
	o = o.orDefault()
	return protocol.JoinFields(
		protocol.Flag(o.rowProperties),
		protocol.Flag(o.onlyVisibles),
		protocol.Flag(o.usePropertyNames),
		o.rowHeader.encode(),
		o.pagination.Encode(),
	)
}

// Validate reports values the server would reject.
func (o *PropertiesOptions) Validate() error {
	if o == nil {
		return nil
	}
	o = o.orDefault()
	if !o.rowHeader.valid() {
		return &ConfigError{Option: "LkPropertiesOptions", Field: "RowHeader", Value: int(o.rowHeader), Reason: "unknown row header"}
	}
	return o.pagination.Validate("LkPropertiesOptions")
}
