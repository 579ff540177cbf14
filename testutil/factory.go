package testutil

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync/atomic"
	"time"
)

// Record is one database record: an id plus dictionary values.
type Record struct {
	ID     string
	Fields map[string]string
}

// Option modifies a record built by a factory.
type Option func(*Record)

// WithID sets the record id.
func WithID(id string) Option {
	return func(r *Record) { r.ID = id }
}

// WithField sets a specific dictionary value.
func WithField(name, value string) Option {
	return func(r *Record) { r.Fields[name] = value }
}

// WithFields sets multiple dictionary values.
func WithFields(fields map[string]string) Option {
	return func(r *Record) {
		for k, v := range fields {
			r.Fields[k] = v
		}
	}
}

// RecordFactory builds records from defaults.
type RecordFactory struct {
	defaults map[string]string
}

// NewRecordFactory creates a factory whose records start with defaults.
func NewRecordFactory(defaults map[string]string) *RecordFactory {
	return &RecordFactory{defaults: defaults}
}

// NewCustomerFactory creates a factory for the CUSTOMERS demo file.
func NewCustomerFactory() *RecordFactory {
	return NewRecordFactory(map[string]string{
		"NAME":    "Test Customer",
		"ADDR":    "1 Main Street",
		"PHONE":   "555-0100",
		"COUNTRY": "ES",
	})
}

// Build creates a single record with a fresh sequence id.
func (f *RecordFactory) Build(opts ...Option) Record {
	r := Record{ID: SequenceID(), Fields: make(map[string]string, len(f.defaults))}
	for k, v := range f.defaults {
		r.Fields[k] = v
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// BuildList creates count records.
func (f *RecordFactory) BuildList(count int, opts ...Option) []Record {
	records := make([]Record, count)
	for i := range records {
		records[i] = f.Build(opts...)
	}
	return records
}

var idSequence uint64

// SequenceID generates unique record ids.
func SequenceID() string {
	return fmt.Sprintf("%d", atomic.AddUint64(&idSequence, 1))
}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandomString generates a random string of the specified length.
func RandomString(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rng.Intn(len(charset))]
	}
	return string(b)
}

// IDs renders the ids of records in the form Read and Delete expect for
// the XML format.
func IDs(records []Record) string {
	var b strings.Builder
	b.WriteString("<RECORDS>")
	for _, r := range records {
		b.WriteString("<RECORD><LKITEMID>")
		xml.EscapeText(&b, []byte(r.ID))
		b.WriteString("</LKITEMID></RECORD>")
	}
	b.WriteString("</RECORDS>")
	return b.String()
}

// XML renders records as an XML input body.
func XML(records []Record) string {
	var b strings.Builder
	b.WriteString("<RECORDS>")
	for _, r := range records {
		b.WriteString("<RECORD><LKITEMID>")
		xml.EscapeText(&b, []byte(r.ID))
		b.WriteString("</LKITEMID>")
		for _, k := range sortedKeys(r.Fields) {
			b.WriteString("<" + k + ">")
			xml.EscapeText(&b, []byte(r.Fields[k]))
			b.WriteString("</" + k + ">")
		}
		b.WriteString("</RECORD>")
	}
	b.WriteString("</RECORDS>")
	return b.String()
}

// JSON renders records as a JSON input body.
func JSON(records []Record) string {
	rows := make([]map[string]string, len(records))
	for i, r := range records {
		row := make(map[string]string, len(r.Fields)+1)
		for k, v := range r.Fields {
			row[k] = v
		}
		row["LKITEMID"] = r.ID
		rows[i] = row
	}
	b, _ := json.Marshal(map[string]interface{}{"RECORDS": rows})
	return string(b)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
