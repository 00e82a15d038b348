package store

// RecordLog is a generic append-only ordered sequence of records. Unlike
// KeyedRepository it imposes no uniqueness constraint: every append succeeds,
// and the only mutations are appending a record or replacing the whole
// sequence (used when restoring from a snapshot).
type RecordLog[V any] struct {
	records []V
}

// NewRecordLog creates an empty record log.
func NewRecordLog[V any]() *RecordLog[V] {
	return &RecordLog[V]{records: make([]V, 0)}
}

// Append adds a record to the end of the sequence.
func (l *RecordLog[V]) Append(record V) {
	l.records = append(l.records, record)
}

// Snapshot returns a copy of the full sequence in append order.
// Mutating the returned slice does not affect the log.
func (l *RecordLog[V]) Snapshot() []V {
	out := make([]V, len(l.records))
	copy(out, l.records)
	return out
}

// Replace swaps the in-memory sequence wholesale for the given records.
// The log keeps its own copy of the slice.
func (l *RecordLog[V]) Replace(records []V) {
	l.records = make([]V, len(records))
	copy(l.records, records)
}

// Len returns the number of records in the log.
func (l *RecordLog[V]) Len() int {
	return len(l.records)
}
