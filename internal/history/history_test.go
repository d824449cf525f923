package history

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "integer value keeps one fractional digit",
			input:    15,
			expected: "15.0",
		},
		{
			name:     "zero",
			input:    0,
			expected: "0.0",
		},
		{
			name:     "negative integer value",
			input:    -5,
			expected: "-5.0",
		},
		{
			name:     "fractional value is unchanged",
			input:    10.5,
			expected: "10.5",
		},
		{
			name:     "small fraction",
			input:    0.25,
			expected: "0.25",
		},
		{
			name:     "positive infinity renders as-is",
			input:    math.Inf(1),
			expected: "+Inf",
		},
		{
			name:     "negative infinity renders as-is",
			input:    math.Inf(-1),
			expected: "-Inf",
		},
		{
			name:     "NaN renders as-is",
			input:    math.NaN(),
			expected: "NaN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatNumber(tt.input)
			assert.Equal(t, tt.expected, result, "FormatNumber(%v) should return %q", tt.input, tt.expected)
		})
	}
}

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		a         float64
		b         float64
		result    float64
		expected  Record
	}{
		{
			name:      "addition record",
			operation: "add",
			a:         10,
			b:         5,
			result:    15,
			expected:  Record("add 10.0 5.0 = 15.0"),
		},
		{
			name:      "division record with fractional result",
			operation: "divide",
			a:         1,
			b:         4,
			result:    0.25,
			expected:  Record("divide 1.0 4.0 = 0.25"),
		},
		{
			name:      "subtraction record with negative result",
			operation: "subtract",
			a:         5,
			b:         10,
			result:    -5,
			expected:  Record("subtract 5.0 10.0 = -5.0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewRecord(tt.operation, tt.a, tt.b, tt.result)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLogAppendRoundTrip(t *testing.T) {
	log := NewLog(0)

	records := []Record{
		"add 10.0 5.0 = 15.0",
		"multiply 2.0 3.0 = 6.0",
		"divide 10.0 4.0 = 2.5",
	}
	for _, r := range records {
		log.Append(r)
	}

	assert.Equal(t, len(records), log.Len())
	assert.Equal(t, records, log.All(), "All() should return records in insertion order")
	assert.Equal(t, records, log.All(), "All() should be repeatable until the log changes")
}

func TestLogAllReturnsCopy(t *testing.T) {
	log := NewLog(0)
	log.Append("add 1.0 2.0 = 3.0")

	all := log.All()
	all[0] = "mutated"

	assert.Equal(t, []Record{"add 1.0 2.0 = 3.0"}, log.All())
}

func TestLogClearIsIdempotent(t *testing.T) {
	log := NewLog(0)
	log.Append("add 1.0 2.0 = 3.0")
	log.Append("add 3.0 4.0 = 7.0")

	log.Clear()
	assert.Equal(t, 0, log.Len())

	log.Clear()
	assert.Equal(t, 0, log.Len(), "clearing an empty log should be a no-op")
	assert.Empty(t, log.All())
}

func TestLogUndoLast(t *testing.T) {
	log := NewLog(0)
	log.Append("add 10.0 5.0 = 15.0")
	log.Append("multiply 2.0 3.0 = 6.0")

	record, ok := log.UndoLast()
	assert.True(t, ok)
	assert.Equal(t, Record("multiply 2.0 3.0 = 6.0"), record)
	assert.Equal(t, []Record{"add 10.0 5.0 = 15.0"}, log.All())
}

func TestLogUndoLastOnEmptyLog(t *testing.T) {
	log := NewLog(0)

	record, ok := log.UndoLast()
	assert.False(t, ok, "undo on an empty log should report false, not fail")
	assert.Equal(t, Record(""), record)
	assert.Equal(t, 0, log.Len())
}

func TestLogMaxSizeTrimsOldest(t *testing.T) {
	log := NewLog(3)
	for i := 0; i < 5; i++ {
		log.Append(Record(fmt.Sprintf("add %d.0 1.0 = %d.0", i, i+1)))
	}

	assert.Equal(t, 3, log.Len())
	assert.Equal(t, []Record{
		"add 2.0 1.0 = 3.0",
		"add 3.0 1.0 = 4.0",
		"add 4.0 1.0 = 5.0",
	}, log.All(), "oldest records should be trimmed first")
}
