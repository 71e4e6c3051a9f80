// Package callsite resolves the source statement that invoked a function so
// reports can be labelled with the expression that was inspected.
package callsite

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"
	"unicode"
)

// Unknown is returned by Label when the calling statement cannot be read.
const Unknown = "<unknown>"

// Frame describes a caller on the stack.
type Frame struct {
	File     string
	Line     int
	Function string
}

// Caller returns the frame skip levels above the caller of Caller.
func Caller(skip int) (Frame, error) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Frame{}, fmt.Errorf("no caller at depth %d", skip)
	}
	frame := Frame{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		frame.Function = fn.Name()
	}
	return frame, nil
}

// Statement returns the trimmed source line executing skip levels above the
// caller of Statement. Only the first line of a multi-line statement is
// returned.
func Statement(skip int) (string, error) {
	frame, err := Caller(skip + 1)
	if err != nil {
		return "", err
	}
	return sourceLine(frame.File, frame.Line)
}

func sourceLine(path string, line int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open source %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		if n == line {
			return strings.TrimSpace(scanner.Text()), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read source %s: %w", path, err)
	}
	return "", fmt.Errorf("line %d not found in %s", line, path)
}

// Arguments extracts the argument expressions of a call statement: the text
// between the first '(' and the last ')', with all whitespace removed, split
// on commas that are not nested inside brackets or string literals.
func Arguments(statement string) []string {
	first := strings.Index(statement, "(")
	last := strings.LastIndex(statement, ")")
	if first < 0 || last <= first {
		return nil
	}
	inner := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, statement[first+1:last])
	if inner == "" {
		return nil
	}

	var (
		args    []string
		depth   int
		quote   rune
		start   int
		escaped bool // previous rune was an unescaped backslash
	)
	for i, r := range inner {
		switch {
		case quote != 0:
			switch {
			case escaped:
				escaped = false
			case r == '\\' && quote != '`':
				escaped = true
			case r == quote:
				quote = 0
			}
		case r == '"' || r == '\'' || r == '`':
			quote = r
		case r == '(' || r == '[' || r == '{':
			depth++
		case r == ')' || r == ']' || r == '}':
			depth--
		case r == ',' && depth == 0:
			args = append(args, inner[start:i])
			start = i + 1
		}
	}
	return append(args, inner[start:])
}

// Label describes the arguments of the statement executing skip levels above
// the caller of Label, joined by ", ". It returns Unknown when the source is
// unavailable.
func Label(skip int) string {
	stmt, err := Statement(skip + 1)
	if err != nil {
		return Unknown
	}
	args := Arguments(stmt)
	if len(args) == 0 {
		return stmt
	}
	return strings.Join(args, ", ")
}
