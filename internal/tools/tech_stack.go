package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/portfolio-mcp/internal/envelope"
	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
)

// TechStackTool handles the get_tech_stack MCP tool.
type TechStackTool struct {
	store *portfolio.Store
}

// NewTechStackTool creates a TechStackTool.
func NewTechStackTool(store *portfolio.Store) *TechStackTool {
	return &TechStackTool{store: store}
}

// Definition returns the MCP tool definition for get_tech_stack.
func (t *TechStackTool) Definition() mcp.Tool {
	return mcp.NewTool(string(OpTechStack),
		mcp.WithDescription("Get detailed information about the portfolio owner's technical skills and tools"),
		mcp.WithString("type",
			mcp.Description(`Filter by specific tech type (e.g., "Programming Languages", "Cloud Platforms")`),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle processes the get_tech_stack tool call.
func (t *TechStackTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return envelope.Wrap(t.store.TechStack(req.GetString("type", "")))
}
