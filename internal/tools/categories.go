package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/portfolio-mcp/internal/envelope"
	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
)

// CategoriesTool handles the get_portfolio_categories MCP tool.
type CategoriesTool struct {
	store *portfolio.Store
}

// NewCategoriesTool creates a CategoriesTool.
func NewCategoriesTool(store *portfolio.Store) *CategoriesTool {
	return &CategoriesTool{store: store}
}

// Definition returns the MCP tool definition for get_portfolio_categories.
func (t *CategoriesTool) Definition() mcp.Tool {
	return mcp.NewTool(string(OpCategories),
		mcp.WithDescription("Get all available categories in the portfolio data"),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle processes the get_portfolio_categories tool call.
func (t *CategoriesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return envelope.Wrap(t.store.Categories())
}
