package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/portfolio-mcp/internal/envelope"
	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
)

// SearchTool handles the search_portfolio MCP tool.
type SearchTool struct {
	store *portfolio.Store
}

// NewSearchTool creates a SearchTool.
func NewSearchTool(store *portfolio.Store) *SearchTool {
	return &SearchTool{store: store}
}

// Definition returns the MCP tool definition for search_portfolio.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool(string(OpSearch),
		mcp.WithDescription(
			"Search through the portfolio data by keywords, category, or content. "+
				"Matches are case-insensitive substrings of the title, description and keywords.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query to find relevant portfolio information"),
		),
		mcp.WithString("category",
			mcp.Description(`Filter by specific category (e.g., "Tech Stack", "Experience", "Education")`),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (default: 10)"),
			mcp.DefaultNumber(portfolio.DefaultSearchLimit),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle processes the search_portfolio tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !hasArg(req, "query") {
		return envelope.Failure("'query' is required"), nil
	}
	query, ok := req.GetArguments()["query"].(string)
	if !ok {
		return envelope.Failure("'query' must be a string"), nil
	}

	category := req.GetString("category", "")
	limit := intArg(req, "limit", portfolio.DefaultSearchLimit)

	return envelope.Wrap(t.store.Search(query, category, limit))
}
