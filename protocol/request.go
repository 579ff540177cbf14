package protocol

import "time"

// Request is everything a transport needs to execute one operation. It is
// built once per call by the dispatcher and never shared.
type Request struct {
	// ID uniquely identifies the call in logs and hooks.
	ID string

	Operation  OperationCode
	Credential Credential

	// Filename is the target file, empty for operations without one.
	Filename string

	// Payload is the opaque body: records, statement, expression or
	// subroutine arguments depending on the operation.
	Payload string

	// Clauses are the auxiliary fields in the fixed per-operation order
	// (dictionaries; select/sort/dict/preselect clauses; subroutine name and
	// argument count; conversion type and code; format spec).
	Clauses []string

	// Snapshot carries the original records for optimistic locking. It is
	// forwarded verbatim and may be empty.
	Snapshot string

	// Options is the encoded options fragment.
	Options string

	// InputFormat is nil for operations that send no formatted body.
	InputFormat  FormatCode
	OutputFormat FormatCode

	CustomVars string

	// ReceiveTimeout in seconds, 0 waits indefinitely.
	ReceiveTimeout int
}

// Timeout returns the receive timeout as a duration; 0 means unbounded.
func (r *Request) Timeout() time.Duration {
	if r.ReceiveTimeout <= 0 {
		return 0
	}
	return time.Duration(r.ReceiveTimeout) * time.Second
}

// Clause returns the i-th auxiliary field or "" when absent.
func (r *Request) Clause(i int) string {
	if i < 0 || i >= len(r.Clauses) {
		return ""
	}
	return r.Clauses[i]
}
