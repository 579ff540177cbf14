// Package protocol defines the Linkar wire vocabulary shared by the client
// and transport layers: multivalue delimiters, operation codes, format code
// spaces, credentials and the request handed to a transport.
package protocol

import "strings"

const (
	// AttributeMark separates top-level fields of an encoded options value.
	AttributeMark rune = 'þ'

	// ValueMark separates the members of a grouped field (e.g. pagination).
	ValueMark rune = 'ý'

	// SubValueMark separates sub-values inside a value.
	SubValueMark rune = 'ü'

	// US separates the sections of an operation arguments string.
	US byte = 0x1F

	// RS separates the payload items inside a section.
	RS byte = 0x1E
)

// String forms of the multivalue marks.
var (
	AM  = string(AttributeMark)
	VM  = string(ValueMark)
	SVM = string(SubValueMark)
)

// JoinFields joins top-level fields with the attribute mark.
func JoinFields(fields ...string) string {
	return strings.Join(fields, AM)
}

// JoinValues joins grouped values with the value mark.
func JoinValues(values ...string) string {
	return strings.Join(values, VM)
}

// Flag renders a boolean the way the server expects it.
func Flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Visible replaces the marks with printable placeholders (^ ] \) so encoded
// fragments can be shown on a terminal.
func Visible(s string) string {
	r := strings.NewReplacer(AM, "^", VM, "]", SVM, "\\", string(rune(US)), "<US>", string(rune(RS)), "<RS>")
	return r.Replace(s)
}
