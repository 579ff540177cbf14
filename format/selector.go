package format

import "github.com/dan-strohschein/linkar-go/protocol"

// Input selects the code of a request body. Only the family matters.
func Input(f Format) protocol.DataFormat {
	if f.Family() == JSONFamily {
		return protocol.DataFormatJSON
	}
	return protocol.DataFormatXML
}

// Plain selects the output code of operations whose response is not a
// record set: delete, subroutine, conversion, format, dictionaries, execute,
// version and reset. The annotation style is ignored.
func Plain(f Format) protocol.DataFormat {
	return Input(f)
}

// dataCodes is the output table of read, update, new and select.
var dataCodes = map[Format]protocol.DataFormatCRU{
	XML:      protocol.DataFormatCRUXML,
	XMLDict:  protocol.DataFormatCRUXMLDict,
	XMLSch:   protocol.DataFormatCRUXMLSch,
	JSON:     protocol.DataFormatCRUJSON,
	JSONDict: protocol.DataFormatCRUJSONDict,
	JSONSch:  protocol.DataFormatCRUJSONSch,
}

// Data selects the output code of read, update, new and select.
func Data(f Format) protocol.DataFormatCRU {
	if c, ok := dataCodes[f]; ok {
		return c
	}
	return protocol.DataFormatCRUXML
}

// Schemas selects the output code of LkSchemas. Schemas are always
// schema-coded, so only the family matters.
func Schemas(f Format) protocol.DataFormatSch {
	if f.Family() == JSONFamily {
		return protocol.DataFormatSchJSON
	}
	return protocol.DataFormatSchXML
}

// propertyCodes is the output table of LkProperties. It must stay separate
// from dataCodes: the numbers overlap with different meanings.
var propertyCodes = map[Format]protocol.DataFormatSchProp{
	XML:      protocol.DataFormatSchPropXML,
	XMLDict:  protocol.DataFormatSchPropXMLDict,
	XMLSch:   protocol.DataFormatSchPropXMLSch,
	JSON:     protocol.DataFormatSchPropJSON,
	JSONDict: protocol.DataFormatSchPropJSONDict,
	JSONSch:  protocol.DataFormatSchPropJSONSch,
}

// Properties selects the output code of LkProperties.
func Properties(f Format) protocol.DataFormatSchProp {
	if c, ok := propertyCodes[f]; ok {
		return c
	}
	return protocol.DataFormatSchPropXML
}
