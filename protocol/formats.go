package protocol

import "fmt"

// FormatCode is a value from one of the server's format code spaces.
// The spaces overlap numerically, so a code is only meaningful together
// with its space.
type FormatCode interface {
	Code() int
	Space() string
}

// DataFormat is the code space for input bodies and plain outputs.
type DataFormat int

const (
	DataFormatMV   DataFormat = 1
	DataFormatXML  DataFormat = 2
	DataFormatJSON DataFormat = 3
)

func (f DataFormat) Code() int     { return int(f) }
func (f DataFormat) Space() string { return "DATAFORMAT" }
func (f DataFormat) String() string {
	switch f {
	case DataFormatMV:
		return "MV"
	case DataFormatXML:
		return "XML"
	case DataFormatJSON:
		return "JSON"
	}
	return fmt.Sprintf("DATAFORMAT(%d)", int(f))
}

// DataFormatCRU is the output code space of read, update, new and select.
type DataFormatCRU int

const (
	DataFormatCRUMV       DataFormatCRU = 1
	DataFormatCRUXML      DataFormatCRU = 2
	DataFormatCRUXMLDict  DataFormatCRU = 3
	DataFormatCRUXMLSch   DataFormatCRU = 4
	DataFormatCRUJSON     DataFormatCRU = 5
	DataFormatCRUJSONDict DataFormatCRU = 6
	DataFormatCRUJSONSch  DataFormatCRU = 7
)

func (f DataFormatCRU) Code() int     { return int(f) }
func (f DataFormatCRU) Space() string { return "DATAFORMATCRU" }
func (f DataFormatCRU) String() string {
	switch f {
	case DataFormatCRUMV:
		return "MV"
	case DataFormatCRUXML:
		return "XML"
	case DataFormatCRUXMLDict:
		return "XML_DICT"
	case DataFormatCRUXMLSch:
		return "XML_SCH"
	case DataFormatCRUJSON:
		return "JSON"
	case DataFormatCRUJSONDict:
		return "JSON_DICT"
	case DataFormatCRUJSONSch:
		return "JSON_SCH"
	}
	return fmt.Sprintf("DATAFORMATCRU(%d)", int(f))
}

// DataFormatSch is the output code space of LkSchemas.
type DataFormatSch int

const (
	DataFormatSchMV    DataFormatSch = 1
	DataFormatSchXML   DataFormatSch = 2
	DataFormatSchJSON  DataFormatSch = 3
	DataFormatSchTable DataFormatSch = 4
)

func (f DataFormatSch) Code() int     { return int(f) }
func (f DataFormatSch) Space() string { return "DATAFORMATSCH" }
func (f DataFormatSch) String() string {
	switch f {
	case DataFormatSchMV:
		return "MV"
	case DataFormatSchXML:
		return "XML"
	case DataFormatSchJSON:
		return "JSON"
	case DataFormatSchTable:
		return "TABLE"
	}
	return fmt.Sprintf("DATAFORMATSCH(%d)", int(f))
}

// DataFormatSchProp is the output code space of LkProperties.
type DataFormatSchProp int

const (
	DataFormatSchPropMV       DataFormatSchProp = 1
	DataFormatSchPropXML      DataFormatSchProp = 2
	DataFormatSchPropJSON     DataFormatSchProp = 3
	DataFormatSchPropTable    DataFormatSchProp = 4
	DataFormatSchPropXMLDict  DataFormatSchProp = 5
	DataFormatSchPropXMLSch   DataFormatSchProp = 6
	DataFormatSchPropJSONDict DataFormatSchProp = 7
	DataFormatSchPropJSONSch  DataFormatSchProp = 8
)

func (f DataFormatSchProp) Code() int     { return int(f) }
func (f DataFormatSchProp) Space() string { return "DATAFORMATSCHPROP" }
func (f DataFormatSchProp) String() string {
	switch f {
	case DataFormatSchPropMV:
		return "MV"
	case DataFormatSchPropXML:
		return "XML"
	case DataFormatSchPropJSON:
		return "JSON"
	case DataFormatSchPropTable:
		return "TABLE"
	case DataFormatSchPropXMLDict:
		return "XML_DICT"
	case DataFormatSchPropXMLSch:
		return "XML_SCH"
	case DataFormatSchPropJSONDict:
		return "JSON_DICT"
	case DataFormatSchPropJSONSch:
		return "JSON_SCH"
	}
	return fmt.Sprintf("DATAFORMATSCHPROP(%d)", int(f))
}
