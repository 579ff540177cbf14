package options

import (
	"fmt"
	"strconv"
)

// RowHeaders selects the heading row of schema and property listings.
type RowHeaders int

const (
	MainLabel  RowHeaders = 1
	ShortLabel RowHeaders = 2
	NoHeaders  RowHeaders = 3
)

func (r RowHeaders) String() string {
	switch r {
	case MainLabel:
		return "MAINLABEL"
	case ShortLabel:
		return "SHORTLABEL"
	case NoHeaders:
		return "NONE"
	}
	return fmt.Sprintf("ROWHEADERS(%d)", int(r))
}

func (r RowHeaders) valid() bool {
	return r >= MainLabel && r <= NoHeaders
}

func (r RowHeaders) encode() string {
	return strconv.Itoa(int(r))
}

// ParseRowHeaders accepts MAINLABEL, SHORTLABEL or NONE.
func ParseRowHeaders(s string) (RowHeaders, error) {
	switch s {
	case "MAINLABEL", "mainlabel", "main":
		return MainLabel, nil
	case "SHORTLABEL", "shortlabel", "short":
		return ShortLabel, nil
	case "NONE", "none":
		return NoHeaders, nil
	}
	return 0, &ConfigError{Option: "RowHeaders", Field: "value", Value: s, Reason: "expected MAINLABEL, SHORTLABEL or NONE"}
}

// SchemaType is the family of schema returned by LkSchemas.
type SchemaType int

const (
	LkSchemasType    SchemaType = 1
	SQLModeType      SchemaType = 2
	DictionariesType SchemaType = 3
)

func (s SchemaType) String() string {
	switch s {
	case LkSchemasType:
		return "LKSCHEMAS"
	case SQLModeType:
		return "SQLMODE"
	case DictionariesType:
		return "DICTIONARIES"
	}
	return fmt.Sprintf("SCHEMATYPE(%d)", int(s))
}

// ConversionType is the direction of a Conversion call.
type ConversionType string

const (
	ConversionInput  ConversionType = "I"
	ConversionOutput ConversionType = "O"
)

// Valid reports whether c is INPUT or OUTPUT.
func (c ConversionType) Valid() bool {
	return c == ConversionInput || c == ConversionOutput
}

// ParseConversionType accepts INPUT/OUTPUT or I/O.
func ParseConversionType(s string) (ConversionType, error) {
	switch s {
	case "I", "INPUT", "input", "i":
		return ConversionInput, nil
	case "O", "OUTPUT", "output", "o":
		return ConversionOutput, nil
	}
	return "", &ConfigError{Option: "ConversionType", Field: "value", Value: s, Reason: "expected INPUT or OUTPUT"}
}
