package options

import (
	"strconv"

	"github.com/dan-strohschein/linkar-go/protocol"
)

// SchemasOptions selects what LkSchemas returns. It has three shapes, each
// built by its own constructor, and the fields a shape pins cannot be
// changed:
//
//	shape          type          sqlMode  rowHeader  rowProperties  onlyVisibles
//	LkSchemas      LKSCHEMAS     false    caller     caller         caller
//	SQLMode        LKSCHEMAS     true     NONE       true           caller
//	Dictionaries   DICTIONARIES  false    caller     true           true
//
// A nil SchemasOptions encodes as DefaultSchemas().
type SchemasOptions interface {
	SchemaType() SchemaType
	SQLMode() bool
	RowHeader() RowHeaders
	RowProperties() bool
	OnlyVisibles() bool
	Pagination() Pagination

	// Encode renders the options fragment.
	Encode() string

	// Validate reports values the server would reject.
	Validate() error

	isSchemasOptions()
}

// schemaFields is shared by every shape.
type schemaFields struct {
	rowHeader     RowHeaders
	rowProperties bool
	onlyVisibles  bool
	pagination    Pagination
}

func (f schemaFields) RowHeader() RowHeaders  { return f.rowHeader }
func (f schemaFields) RowProperties() bool    { return f.rowProperties }
func (f schemaFields) OnlyVisibles() bool     { return f.onlyVisibles }
func (f schemaFields) Pagination() Pagination { return f.pagination }

// lkSchemasShape is the full LKSCHEMAS listing.
type lkSchemasShape struct{ schemaFields }

// sqlModeShape is the SQLMODE listing.
type sqlModeShape struct{ schemaFields }

// dictionariesShape lists schemas built from file dictionaries.
type dictionariesShape struct{ schemaFields }

// DefaultSchemas is LKSCHEMAS with main-label headings, no property row, all
// schemas and no pagination.
func DefaultSchemas() SchemasOptions {
	return LkSchemas(MainLabel, false, false, NoPagination())
}

// LkSchemas requests LKSCHEMAS type schemas.
func LkSchemas(rowHeader RowHeaders, rowProperties, onlyVisibles bool, pagination Pagination) SchemasOptions {
	return &lkSchemasShape{schemaFields{
		rowHeader:     rowHeader,
		rowProperties: rowProperties,
		onlyVisibles:  onlyVisibles,
		pagination:    pagination.orDefault(),
	}}
}

// SQLModeSchemas requests SQLMODE type schemas.
func SQLModeSchemas(onlyVisibles bool, pagination Pagination) SchemasOptions {
	return &sqlModeShape{schemaFields{
		rowHeader:     NoHeaders,
		rowProperties: true,
		onlyVisibles:  onlyVisibles,
		pagination:    pagination.orDefault(),
	}}
}

// DictionariesSchemas requests DICTIONARIES type schemas.
func DictionariesSchemas(rowHeader RowHeaders, pagination Pagination) SchemasOptions {
	return &dictionariesShape{schemaFields{
		rowHeader:     rowHeader,
		rowProperties: true,
		onlyVisibles:  true,
		pagination:    pagination.orDefault(),
	}}
}

func (*lkSchemasShape) SchemaType() SchemaType    { return LkSchemasType }
func (*sqlModeShape) SchemaType() SchemaType      { return LkSchemasType }
func (*dictionariesShape) SchemaType() SchemaType { return DictionariesType }

func (*lkSchemasShape) SQLMode() bool    { return false }
func (*sqlModeShape) SQLMode() bool      { return true }
func (*dictionariesShape) SQLMode() bool { return false }

func (*lkSchemasShape) isSchemasOptions()    {}
func (*sqlModeShape) isSchemasOptions()      {}
func (*dictionariesShape) isSchemasOptions() {}

func (s *lkSchemasShape) Encode() string    { return encodeSchemas(s) }
func (s *sqlModeShape) Encode() string      { return encodeSchemas(s) }
func (s *dictionariesShape) Encode() string { return encodeSchemas(s) }

func (s *lkSchemasShape) Validate() error    { return validateSchemas(s) }
func (s *sqlModeShape) Validate() error      { return validateSchemas(s) }
func (s *dictionariesShape) Validate() error { return validateSchemas(s) }

// EncodeSchemas encodes o, falling back to DefaultSchemas for nil.
func EncodeSchemas(o SchemasOptions) string {
	if o == nil {
		o = DefaultSchemas()
	}
	return o.Encode()
}

// ValidateSchemas validates o; nil is always valid.
func ValidateSchemas(o SchemasOptions) error {
	if o == nil {
		return nil
	}
	return o.Validate()
}

func encodeSchemas(o SchemasOptions) string {
	return protocol.JoinFields(
		strconv.Itoa(int(o.SchemaType())),
		protocol.Flag(o.SQLMode()),
		protocol.Flag(o.RowProperties()),
		protocol.Flag(o.OnlyVisibles()),
		o.RowHeader().encode(),
		o.Pagination().Encode(),
	)
}

func validateSchemas(o SchemasOptions) error {
	if !o.RowHeader().valid() {
		return &ConfigError{Option: "LkSchemasOptions", Field: "RowHeader", Value: int(o.RowHeader()), Reason: "unknown row header"}
	}
	return o.Pagination().Validate("LkSchemasOptions")
}
