package history

import (
	"math"
	"strconv"
	"strings"
)

// Record is the immutable textual form of one completed calculation,
// e.g. "add 10.0 5.0 = 15.0". Created once, never mutated.
type Record string

// NewRecord formats a calculation into a Record
func NewRecord(operation string, a, b, result float64) Record {
	var sb strings.Builder
	sb.WriteString(operation)
	sb.WriteByte(' ')
	sb.WriteString(FormatNumber(a))
	sb.WriteByte(' ')
	sb.WriteString(FormatNumber(b))
	sb.WriteString(" = ")
	sb.WriteString(FormatNumber(result))
	return Record(sb.String())
}

// FormatNumber renders a float64 with the shortest representation that
// keeps at least one fractional digit, so integer-valued operands and
// results still read as floating-point (15 -> "15.0"). Infinities and
// NaN render as-is.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Log is an ordered, in-memory sequence of Records for one session.
// Insertion order is chronological order. A zero maxSize means the
// log is unbounded; otherwise the oldest records are trimmed.
type Log struct {
	records []Record
	maxSize int
}

// NewLog creates an empty Log. A maxSize of zero or less means unbounded.
func NewLog(maxSize int) *Log {
	if maxSize < 0 {
		maxSize = 0
	}
	return &Log{
		records: []Record{},
		maxSize: maxSize,
	}
}

// Append adds a record to the end of the log. It always succeeds.
func (l *Log) Append(r Record) {
	l.records = append(l.records, r)
	if l.maxSize > 0 && len(l.records) > l.maxSize {
		excess := len(l.records) - l.maxSize
		l.records = l.records[excess:]
	}
}

// Clear removes all records. Clearing an empty log is a no-op.
func (l *Log) Clear() {
	l.records = l.records[:0]
}

// UndoLast removes and returns the most recently appended record.
// On an empty log it returns false and takes no action; the caller
// owns any user-facing notice.
func (l *Log) UndoLast() (Record, bool) {
	if len(l.records) == 0 {
		return "", false
	}
	last := l.records[len(l.records)-1]
	l.records = l.records[:len(l.records)-1]
	return last, true
}

// All returns a copy of the records, oldest first. It does not mutate
// the log and returns the same sequence until the log changes.
func (l *Log) All() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of stored records
func (l *Log) Len() int {
	return len(l.records)
}
