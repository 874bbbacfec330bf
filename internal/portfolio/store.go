// Package portfolio holds the in-memory portfolio dataset and the read-only
// queries served over MCP.
//
// A Store is built once at startup from an already-decoded slice of records
// and never changes afterwards, so queries need no locking and may run from
// any number of goroutines.
package portfolio

// Well-known category values. The fixed-category queries (Contact, TechStack)
// compare against these exactly, case included.
const (
	CategoryContact   = "Contact"
	CategoryTechStack = "Tech Stack"
)

// allFilter is echoed back in results when an optional filter was not given.
const allFilter = "all"

// Record is a single portfolio fact: a profile line, a contact channel,
// a skill group, a job or a degree.
type Record struct {
	ID          int64    `json:"id" yaml:"id"`
	Category    string   `json:"category" yaml:"category"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}

// Store is the immutable, ordered collection of records for the process lifetime.
type Store struct {
	records []Record
}

// NewStore creates a Store holding a private copy of records. Insertion order
// is preserved and is the order of every query result. Nil keyword lists are
// replaced by empty ones so they serialize as [] rather than null.
func NewStore(records []Record) *Store {
	cp := make([]Record, len(records))
	for i, r := range records {
		kw := make([]string, len(r.Keywords))
		copy(kw, r.Keywords)
		r.Keywords = kw
		cp[i] = r
	}
	return &Store{records: cp}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of all records in store order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// filter returns the records accepted by keep, in store order. The result
// is never nil.
func (s *Store) filter(keep func(Record) bool) []Record {
	out := []Record{}
	for _, r := range s.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
