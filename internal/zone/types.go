// Package zone classifies and parses zone-transfer output into typed,
// validated records. It handles exactly five record types (A, CNAME, MX,
// TXT, SRV) in the single-line presentation format produced by AXFR and
// dig; it is not a general zone-file parser.
package zone

// RecordType identifies one of the record types the migrator handles.
type RecordType string

const (
	TypeA     RecordType = "A"
	TypeCNAME RecordType = "CNAME"
	TypeMX    RecordType = "MX"
	TypeTXT   RecordType = "TXT"
	TypeSRV   RecordType = "SRV"
)

// classifyOrder is the fixed priority order for marker matching. The first
// matching type wins.
var classifyOrder = []RecordType{TypeA, TypeCNAME, TypeMX, TypeTXT, TypeSRV}

// Record is one parsed resource-record line. Valid is fixed at parse time
// and never re-derived; submission uses it purely as a gate. The named
// fields are populated only when the record is valid, Source is always the
// original line verbatim.
type Record struct {
	Type   RecordType
	Source string
	Valid  bool

	Owner string
	TTL   string
	Data  string

	Priority *uint64 // MX, SRV
	Weight   *uint64 // SRV
	Port     *uint64 // SRV
}

// RecordSet holds every considered line of one zone transfer: per-type
// record lists in insertion order, counters, and the lines that matched no
// known type.
type RecordSet struct {
	byType map[RecordType][]Record
	order  []RecordType

	Considered   int
	ValidCount   int
	InvalidCount int
	Unclassified []string
}

func newRecordSet() *RecordSet {
	return &RecordSet{byType: make(map[RecordType][]Record, len(classifyOrder))}
}

func (s *RecordSet) add(r Record) {
	if _, ok := s.byType[r.Type]; !ok {
		s.order = append(s.order, r.Type)
	}
	s.byType[r.Type] = append(s.byType[r.Type], r)
	if r.Valid {
		s.ValidCount++
	} else {
		s.InvalidCount++
	}
}

// Types returns the record types in the order they were first seen.
func (s *RecordSet) Types() []RecordType { return s.order }

// Records returns the records of one type in the order they were parsed.
func (s *RecordSet) Records(t RecordType) []Record { return s.byType[t] }
