package options

import (
	"strconv"

	"github.com/dan-strohschein/linkar-go/protocol"
)

const (
	// DefaultRegPage is the page size used when none is given.
	DefaultRegPage = 10
	// DefaultNumPage is the first page.
	DefaultNumPage = 1
)

// Pagination is the (enabled, records per page, page number) group shared by
// select, schema and property listings.
type Pagination struct {
	enabled bool
	regPage int
	numPage int
}

// NoPagination returns the default: disabled, 10 records, page 1.
func NoPagination() Pagination {
	return Pagination{regPage: DefaultRegPage, numPage: DefaultNumPage}
}

// Paginate enables pagination. Both values must be at least 1.
func Paginate(regPage, numPage int) Pagination {
	return Pagination{enabled: true, regPage: regPage, numPage: numPage}
}

func (p Pagination) Enabled() bool { return p.enabled }
func (p Pagination) RegPage() int  { return p.regPage }
func (p Pagination) NumPage() int  { return p.numPage }

// Encode renders flag VM regPage VM numPage.
func (p Pagination) Encode() string {
	return protocol.JoinValues(protocol.Flag(p.enabled), strconv.Itoa(p.regPage), strconv.Itoa(p.numPage))
}

// Validate checks the page values when pagination is enabled.
func (p Pagination) Validate(option string) error {
	if !p.enabled {
		return nil
	}
	if p.regPage < 1 {
		return &ConfigError{Option: option, Field: "Pagination_RegPage", Value: p.regPage, Reason: "must be greater than 0"}
	}
	if p.numPage < 1 {
		return &ConfigError{Option: option, Field: "Pagination_NumPage", Value: p.numPage, Reason: "must be greater than 0"}
	}
	return nil
}

// orDefault maps the zero value to NoPagination so callers can pass
// Pagination{} for "no pagination".
func (p Pagination) orDefault() Pagination {
	if p == (Pagination{}) {
		return NoPagination()
	}
	return p
}
