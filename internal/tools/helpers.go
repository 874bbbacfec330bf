// Package tools implements the MCP tool handlers for the portfolio dataset.
//
// Each tool is a struct holding the store it reads (injected through its
// constructor), with Definition() returning the mcp.Tool schema and Handle()
// serving calls. Handlers never mutate the store.
//
// Expected failures (a missing argument, an unknown id) come back as tool
// results flagged isError with a nil Go error. A non-nil Go error means
// something unexpected happened and is reported to the client as an
// internal error.
package tools

import (
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// numberArg converts a decoded JSON argument to float64. JSON numbers arrive
// as float64; integer types are accepted for in-process callers.
func numberArg(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing, null or not a number. Numeric strings are
// not parsed. Fractions are truncated.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := numberArg(req.GetArguments()[key])
	if !ok || math.IsNaN(v) {
		return defaultVal
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int(v)
}

// exactInt64 reports whether v holds an integral number representable as
// int64, and returns it.
func exactInt64(v any) (int64, bool) {
	f, ok := numberArg(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.Exp2(63) || f < -math.Exp2(63) {
		return 0, false
	}
	return int64(f), true
}

// hasArg reports whether key was supplied at all.
func hasArg(req mcp.CallToolRequest, key string) bool {
	_, ok := req.GetArguments()[key]
	return ok
}

// displayArg renders a raw argument for messages. JSON null prints as "null".
func displayArg(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}
