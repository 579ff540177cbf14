package protocol

import (
	"bytes"
	"strconv"
	"sync"
)

// Codec renders a request into the operation arguments section a Linkar
// transport places inside its frame. Framing itself belongs to the
// transport.
type Codec interface {
	// Compose renders the arguments section of req.
	Compose(req *Request) string
}

// ArgumentsCodec implements Codec
type ArgumentsCodec struct {
	// Buffer pool for encoding operations
	bufferPool sync.Pool
}

// NewCodec creates a new arguments codec
func NewCodec() Codec {
	return &ArgumentsCodec{
		bufferPool: sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
}

var defaultCodec = NewCodec()

// ComposeArguments renders req with the default codec.
func ComposeArguments(req *Request) string {
	return defaultCodec.Compose(req)
}

// Compose implements Codec
func (c *ArgumentsCodec) Compose(req *Request) string {
	buf := c.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer c.bufferPool.Put(buf)

	switch req.Operation {
	case OpVersion, OpResetCommonBlocks:
		return ""

	case OpRead:
		writeSections(buf, req.CustomVars, req.Options)
		writeItems(buf, req.Filename, req.Payload, req.Clause(0))

	case OpUpdate, OpDelete:
		writeSections(buf, req.CustomVars, req.Options)
		writeItems(buf, req.Filename, req.Payload, req.Snapshot)

	case OpUpdatePartial:
		writeSections(buf, req.CustomVars, req.Options)
		writeItems(buf, req.Filename, req.Payload, req.Snapshot, req.Clause(0))

	case OpNew:
		writeSections(buf, req.CustomVars, req.Options)
		writeItems(buf, req.Filename, req.Payload)

	case OpSelect:
		writeSections(buf, req.CustomVars, req.Options)
		writeItems(buf, req.Filename, req.Clause(0), req.Clause(1), req.Clause(2), req.Clause(3))

	case OpSubroutine:
		writeSections(buf, req.CustomVars)
		writeItems(buf, req.Clause(0), req.Clause(1), req.Payload)

	case OpConversion:
		writeSections(buf, req.CustomVars)
		writeItems(buf, req.Clause(0), req.Payload, req.Clause(1))

	case OpFormat:
		writeSections(buf, req.CustomVars)
		writeItems(buf, req.Payload, req.Clause(0))

	case OpDictionaries:
		writeSections(buf, req.CustomVars)
		buf.WriteString(req.Filename)

	case OpExecute:
		writeSections(buf, req.CustomVars)
		buf.WriteString(req.Payload)

	case OpLkSchemas:
		buf.WriteString(req.CustomVars)
		buf.WriteByte(US)
		buf.WriteString(req.Options)

	case OpLkProperties:
		writeSections(buf, req.CustomVars, req.Options)
		buf.WriteString(req.Filename)

	default:
		return ""
	}

	return buf.String()
}

// Header renders the fixed request header fields (operation, formats,
// timeout) as US-separated decimal codes.
func Header(req *Request) string {
	in := ""
	if req.InputFormat != nil {
		in = strconv.Itoa(req.InputFormat.Code())
	}
	out := ""
	if req.OutputFormat != nil {
		out = strconv.Itoa(req.OutputFormat.Code())
	}
	return strconv.Itoa(int(req.Operation)) + string(rune(US)) +
		in + string(rune(US)) +
		out + string(rune(US)) +
		strconv.Itoa(req.ReceiveTimeout)
}

// writeSections writes each section followed by US.
func writeSections(buf *bytes.Buffer, sections ...string) {
	for _, s := range sections {
		buf.WriteString(s)
		buf.WriteByte(US)
	}
}

// writeItems writes items separated by RS.
func writeItems(buf *bytes.Buffer, items ...string) {
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(RS)
		}
		buf.WriteString(item)
	}
}
