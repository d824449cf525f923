package session

import (
	"github.com/rgould/calcsh/internal/calc"
	"github.com/rgould/calcsh/internal/history"
	"github.com/rgould/calcsh/pkg/types"
)

var _ types.Session = &Session{}

// Session owns the history log for one calculator run and dispatches
// calculations to the operation set. It is single-threaded; callers
// must not share it across goroutines.
type Session struct {
	log *history.Log
}

// NewSession creates a session with an empty history log.
// A historyLimit of zero means unbounded history.
func NewSession(historyLimit int) *Session {
	return &Session{
		log: history.NewLog(historyLimit),
	}
}

// Calculate applies the named operation to the operands. On success it
// appends a record to the history and returns it along with the result.
// On failure (unknown operation, division by zero) nothing is recorded.
func (s *Session) Calculate(operation string, a, b float64) (history.Record, float64, error) {
	op := calc.NewOperation(operation)
	if op == calc.OperationUnknown {
		return "", 0, &calc.UnknownOperationError{Name: operation}
	}

	result, err := calc.Apply(op, a, b)
	if err != nil {
		return "", 0, err
	}

	record := history.NewRecord(string(op), a, b, result)
	s.log.Append(record)

	return record, result, nil
}

// History returns all records, oldest first
func (s *Session) History() []history.Record {
	return s.log.All()
}

// Clear empties the history log
func (s *Session) Clear() {
	s.log.Clear()
}

// Undo removes the most recent record. It returns false when the log
// is already empty; reporting that to the user is the caller's job.
func (s *Session) Undo() (history.Record, bool) {
	return s.log.UndoLast()
}
