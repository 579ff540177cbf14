// Package format maps the output format a caller asks for onto the code the
// transport expects. The code spaces differ per operation family, so there
// is one selector per family and each keeps its own table.
package format

import (
	"fmt"
	"strings"
)

// Format is the requested output representation. The zero value is XML,
// the default of every operation.
type Format int

const (
	XML Format = iota
	XMLDict
	XMLSch
	JSON
	JSONDict
	JSONSch
)

// Family is the serialization family of a requested format.
type Family int

const (
	XMLFamily Family = iota
	JSONFamily
)

// Style is the annotation style of a requested format.
type Style int

const (
	PlainStyle Style = iota
	DictionaryStyle
	SchemaStyle
)

var names = [...]string{
	XML:      "XML",
	XMLDict:  "XML_DICT",
	XMLSch:   "XML_SCH",
	JSON:     "JSON",
	JSONDict: "JSON_DICT",
	JSONSch:  "JSON_SCH",
}

func (f Format) String() string {
	if f.Valid() {
		return names[f]
	}
	return fmt.Sprintf("FORMAT(%d)", int(f))
}

// Valid reports whether f is one of the six requested formats.
func (f Format) Valid() bool {
	return f >= XML && f <= JSONSch
}

// Family returns XMLFamily or JSONFamily. Unknown values fall back to XML.
func (f Format) Family() Family {
	switch f {
	case JSON, JSONDict, JSONSch:
		return JSONFamily
	}
	return XMLFamily
}

// Style returns PlainStyle, DictionaryStyle or SchemaStyle.
func (f Format) Style() Style {
	switch f {
	case XMLDict, JSONDict:
		return DictionaryStyle
	case XMLSch, JSONSch:
		return SchemaStyle
	}
	return PlainStyle
}

// Parse accepts the names printed by String, case-insensitively.
func Parse(s string) (Format, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range names {
		if n == key {
			return Format(i), nil
		}
	}
	return XML, fmt.Errorf("unknown format %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("unknown format %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so formats can be
// read from configuration files and flags.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
