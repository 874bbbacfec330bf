package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/portfolio-mcp/internal/envelope"
	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
)

// ContactTool handles the get_contact_info MCP tool.
type ContactTool struct {
	store *portfolio.Store
}

// NewContactTool creates a ContactTool.
func NewContactTool(store *portfolio.Store) *ContactTool {
	return &ContactTool{store: store}
}

// Definition returns the MCP tool definition for get_contact_info.
func (t *ContactTool) Definition() mcp.Tool {
	return mcp.NewTool(string(OpContact),
		mcp.WithDescription("Get all contact information for the portfolio owner"),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle processes the get_contact_info tool call.
func (t *ContactTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return envelope.Wrap(t.store.Contact())
}
