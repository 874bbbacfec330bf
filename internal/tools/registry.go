package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
)

// Operation identifies one of the fixed portfolio tools. Its value is the
// MCP tool name.
type Operation string

const (
	OpSearch     Operation = "search_portfolio"
	OpCategories Operation = "get_portfolio_categories"
	OpItem       Operation = "get_portfolio_item"
	OpContact    Operation = "get_contact_info"
	OpTechStack  Operation = "get_tech_stack"
)

// Operations lists every operation in registration order.
var Operations = []Operation{OpSearch, OpCategories, OpItem, OpContact, OpTechStack}

// Tool is implemented by every handler in this package.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Entry pairs an operation with its handler.
type Entry struct {
	Op   Operation
	Tool Tool
}

// New returns the handler for op, reading store.
func New(op Operation, store *portfolio.Store) (Tool, error) {
	switch op {
	case OpSearch:
		return NewSearchTool(store), nil
	case OpCategories:
		return NewCategoriesTool(store), nil
	case OpItem:
		return NewItemTool(store), nil
	case OpContact:
		return NewContactTool(store), nil
	case OpTechStack:
		return NewTechStackTool(store), nil
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

// Table builds the dispatch table: one entry per operation, in
// Operations order.
func Table(store *portfolio.Store) ([]Entry, error) {
	entries := make([]Entry, 0, len(Operations))
	for _, op := range Operations {
		tool, err := New(op, store)
		if err != nil {
			return nil, err
		}
		if name := tool.Definition().Name; name != string(op) {
			return nil, fmt.Errorf("operation %q registered under tool name %q", op, name)
		}
		entries = append(entries, Entry{Op: op, Tool: tool})
	}
	return entries, nil
}
