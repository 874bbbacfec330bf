package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/portfolio-mcp/internal/envelope"
	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
)

// ItemTool handles the get_portfolio_item MCP tool.
type ItemTool struct {
	store *portfolio.Store
}

// NewItemTool creates an ItemTool.
func NewItemTool(store *portfolio.Store) *ItemTool {
	return &ItemTool{store: store}
}

// Definition returns the MCP tool definition for get_portfolio_item.
func (t *ItemTool) Definition() mcp.Tool {
	return mcp.NewTool(string(OpItem),
		mcp.WithDescription("Get a specific portfolio item by ID"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("The ID of the portfolio item to retrieve"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle processes the get_portfolio_item tool call. An id that is not an
// integer can never equal a stored id and is reported as not found.
func (t *ItemTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !hasArg(req, "id") {
		return envelope.Failure("'id' is required"), nil
	}

	raw := req.GetArguments()["id"]
	id, ok := exactInt64(raw)
	if !ok {
		return envelope.Failure(fmt.Sprintf("Portfolio item with ID %s not found", displayArg(raw))), nil
	}

	rec, err := t.store.Item(id)
	if errors.Is(err, portfolio.ErrNotFound) {
		return envelope.Failure(err.Error()), nil
	}
	if err != nil {
		return nil, err
	}
	return envelope.Wrap(rec)
}
