package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rgould/calcsh/internal/calc"
	"github.com/rgould/calcsh/internal/history"
	"github.com/rgould/calcsh/pkg/project"
	"github.com/rgould/calcsh/pkg/types"
)

// Prompt is printed before every input line
const Prompt = "> "

// Command tokens recognized by the loop, case-insensitive
const (
	cmdExit    = "exit"
	cmdHelp    = "help"
	cmdHistory = "history"
	cmdClear   = "clear"
	cmdUndo    = "undo"
)

// Loop is the interactive read-eval-print loop. It reads one line per
// iteration, dispatches commands against the session, and keeps running
// on every malformed input. Only the exit command (or EOF) ends it.
type Loop struct {
	session types.Session
	in      io.Reader
	out     io.Writer
}

// NewLoop creates a REPL loop reading from in and writing to out
func NewLoop(session types.Session, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		session: session,
		in:      in,
		out:     out,
	}
}

// Run blocks until the user types exit or the input is exhausted
func (l *Loop) Run() error {
	fmt.Fprintf(l.out, "%s %s | type 'help' for commands, 'exit' to quit\n", project.Name, project.Version)

	scanner := bufio.NewScanner(l.in)
	for {
		fmt.Fprint(l.out, Prompt)
		if !scanner.Scan() {
			break
		}
		if done := l.handleLine(scanner.Text()); done {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// handleLine processes one input line and reports whether the loop
// should terminate
func (l *Loop) handleLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	switch strings.ToLower(trimmed) {
	case cmdExit:
		fmt.Fprintln(l.out, "Goodbye.")
		return true
	case cmdHelp:
		l.printHelp()
		return false
	case cmdHistory:
		l.printHistory()
		return false
	case cmdClear:
		l.session.Clear()
		fmt.Fprintln(l.out, "History cleared.")
		return false
	case cmdUndo:
		if record, ok := l.session.Undo(); ok {
			fmt.Fprintf(l.out, "Removed: %s\n", record)
		} else {
			fmt.Fprintln(l.out, "History is already empty.")
		}
		return false
	}

	l.handleCalculation(trimmed)
	return false
}

// handleCalculation parses "<operation> <num1> <num2>" and evaluates it.
// Every failure prints a message and returns control to the prompt.
func (l *Loop) handleCalculation(line string) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		fmt.Fprintln(l.out, "Invalid input. Expected: <operation> <num1> <num2>")
		return
	}

	a, errA := strconv.ParseFloat(fields[1], 64)
	b, errB := strconv.ParseFloat(fields[2], 64)
	if errA != nil || errB != nil {
		fmt.Fprintln(l.out, "Invalid input. Expected: <operation> <num1> <num2>")
		return
	}

	_, result, err := l.session.Calculate(fields[0], a, b)
	if err != nil {
		fmt.Fprintf(l.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(l.out, "Result: %s\n", history.FormatNumber(result))
}

func (l *Loop) printHelp() {
	fmt.Fprintln(l.out, "Calculations: <operation> <num1> <num2>")
	fmt.Fprintf(l.out, "Operations: %s\n", calc.SupportedNames())
	fmt.Fprintln(l.out, "Commands: help, history, clear, undo, exit")
}

func (l *Loop) printHistory() {
	records := l.session.History()
	if len(records) == 0 {
		fmt.Fprintln(l.out, "History is empty.")
		return
	}
	for _, record := range records {
		fmt.Fprintln(l.out, string(record))
	}
}
