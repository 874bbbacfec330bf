// Package resources implements MCP resource handlers for the portfolio
// dataset.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (portfolio://...) following MCP conventions.
package resources

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/portfolio-mcp/internal/envelope"
	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
)

// URIs of the registered resources.
const (
	ItemsURI      = "portfolio://items"
	CategoriesURI = "portfolio://categories"
)

const mimeJSON = "application/json"

// Handler serves portfolio resources.
type Handler struct {
	store *portfolio.Store
}

// NewHandler creates a resource Handler over store.
func NewHandler(store *portfolio.Store) *Handler {
	return &Handler{store: store}
}

// ItemsResource returns the MCP resource definition for the full dataset.
func (h *Handler) ItemsResource() mcp.Resource {
	return mcp.NewResource(
		ItemsURI,
		"Portfolio Items",
		mcp.WithResourceDescription("Every portfolio record, in dataset order"),
		mcp.WithMIMEType(mimeJSON),
	)
}

// CategoriesResource returns the MCP resource definition for the category list.
func (h *Handler) CategoriesResource() mcp.Resource {
	return mcp.NewResource(
		CategoriesURI,
		"Portfolio Categories",
		mcp.WithResourceDescription("Distinct categories and the total record count"),
		mcp.WithMIMEType(mimeJSON),
	)
}

// HandleItems returns all records as JSON.
func (h *Handler) HandleItems(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, h.store.Records())
}

// HandleCategories returns the category listing as JSON.
func (h *Handler) HandleCategories(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, h.store.Categories())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	text, err := envelope.Format(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     text,
		},
	}, nil
}
