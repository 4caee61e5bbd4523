// Package trace parses the line-oriented GET/PUT trace text format this
// simulator consumes, grounded on
// original_source/core/src/trace_parser.cpp.
package trace

import (
	"bufio"
	"fmt"
	"strings"

	cachesim "github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator"
)

// ParseResult is the outcome of parsing one trace. A failing parse may
// still carry the operations that did parse successfully; callers must
// check Success before handing Operations to a driver.
type ParseResult struct {
	Operations []cachesim.TraceOp
	Errors     []string
	Success    bool
}

// Parse tokenizes traceText into a sequence of GET/PUT operations.
//
// Lines are separated by '\n'; a trailing '\r' is trimmed. A line that is
// blank, or whose first non-whitespace character is '#', is skipped. Every
// other line must be "GET <key>" or "PUT <key> <value...>" (the value is
// the remainder of the line, trimmed); anything else is a line-level error,
// reported as "Line N: <reason>" with N 1-based. Parsing continues past a
// bad line.
func Parse(traceText string) ParseResult {
	result := ParseResult{Success: true}

	scanner := bufio.NewScanner(strings.NewReader(traceText))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		op, err := parseLine(trimmed)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: %s", lineNumber, err))
			result.Success = false
			continue
		}
		result.Operations = append(result.Operations, op)
	}

	return result
}

func parseLine(line string) (cachesim.TraceOp, error) {
	verb, rest, hasRest := strings.Cut(line, " ")
	rest = strings.TrimLeft(rest, " \t")

	switch verb {
	case "GET":
		if !hasRest || rest == "" {
			return cachesim.TraceOp{}, fmt.Errorf("GET requires a key")
		}
		key, extra, hasExtra := strings.Cut(rest, " ")
		if hasExtra && strings.TrimSpace(extra) != "" {
			return cachesim.TraceOp{}, fmt.Errorf("GET should not have a value")
		}
		return cachesim.TraceOp{Kind: cachesim.OpGet, Key: key}, nil

	case "PUT":
		if !hasRest || rest == "" {
			return cachesim.TraceOp{}, fmt.Errorf("PUT requires a key")
		}
		key, value, _ := strings.Cut(rest, " ")
		value = strings.TrimSpace(value)
		if value == "" {
			return cachesim.TraceOp{}, fmt.Errorf("PUT requires a value")
		}
		return cachesim.TraceOp{Kind: cachesim.OpPut, Key: key, Value: value}, nil

	default:
		return cachesim.TraceOp{}, fmt.Errorf("Unknown operation: %s (expected GET or PUT)", verb)
	}
}
