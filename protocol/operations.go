package protocol

import "fmt"

// OperationCode identifies the server-side routine a request is routed to.
type OperationCode int

const (
	OpRead              OperationCode = 2
	OpUpdate            OperationCode = 3
	OpNew               OperationCode = 4
	OpDelete            OperationCode = 5
	OpConversion        OperationCode = 6
	OpFormat            OperationCode = 7
	OpVersion           OperationCode = 9
	OpSelect            OperationCode = 10
	OpSubroutine        OperationCode = 11
	OpExecute           OperationCode = 12
	OpDictionaries      OperationCode = 13
	OpLkSchemas         OperationCode = 14
	OpLkProperties      OperationCode = 15
	OpResetCommonBlocks OperationCode = 17
	OpUpdatePartial     OperationCode = 18
)

var operationNames = map[OperationCode]string{
	OpRead:              "READ",
	OpUpdate:            "UPDATE",
	OpNew:               "NEW",
	OpDelete:            "DELETE",
	OpConversion:        "CONVERSION",
	OpFormat:            "FORMAT",
	OpVersion:           "VERSION",
	OpSelect:            "SELECT",
	OpSubroutine:        "SUBROUTINE",
	OpExecute:           "EXECUTE",
	OpDictionaries:      "DICTIONARIES",
	OpLkSchemas:         "LKSCHEMAS",
	OpLkProperties:      "LKPROPERTIES",
	OpResetCommonBlocks: "RESETCOMMONBLOCKS",
	OpUpdatePartial:     "UPDATEPARTIAL",
}

// String returns the operation name.
func (o OperationCode) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OPERATION(%d)", int(o))
}

// Valid reports whether o is part of the operation catalogue.
func (o OperationCode) Valid() bool {
	_, ok := operationNames[o]
	return ok
}

// Operations returns the full catalogue in code order.
func Operations() []OperationCode {
	return []OperationCode{
		OpRead, OpUpdate, OpNew, OpDelete, OpConversion, OpFormat, OpVersion,
		OpSelect, OpSubroutine, OpExecute, OpDictionaries, OpLkSchemas,
		OpLkProperties, OpResetCommonBlocks, OpUpdatePartial,
	}
}
