package types

import "github.com/rgould/calcsh/internal/history"

// Session defines the calculator operations shared by every front end.
// One session owns one history log; a failed calculation is never
// recorded.
type Session interface {
	Calculate(operation string, a, b float64) (history.Record, float64, error)
	History() []history.Record
	Clear()
	Undo() (history.Record, bool)
}
