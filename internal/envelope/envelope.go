// Package envelope wraps query results in the uniform MCP tool result shape:
// a single text content block holding the result as indented JSON.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Format renders v as JSON with two-space indentation. HTML characters are
// left unescaped and no trailing newline is added.
func Format(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// Wrap formats v and returns it as a tool result with one text block.
func Wrap(v any) (*mcp.CallToolResult, error) {
	text, err := Format(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

// Failure returns a tool result flagged as an error, carrying message as its
// single text block.
func Failure(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}
