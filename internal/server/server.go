// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it receives the loaded store and injects it
// into the tools, prompts and resources. No query logic lives here, only
// wiring.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/HendryAvila/portfolio-mcp/internal/config"
	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
	"github.com/HendryAvila/portfolio-mcp/internal/prompts"
	"github.com/HendryAvila/portfolio-mcp/internal/resources"
	"github.com/HendryAvila/portfolio-mcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered against store.
func New(cfg config.Config, store *portfolio.Store, logger *zap.Logger) (*server.MCPServer, error) {
	if store == nil {
		return nil, fmt.Errorf("creating server: nil store")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := tools.Table(store)
	if err != nil {
		return nil, fmt.Errorf("building tool table: %w", err)
	}

	s := server.NewMCPServer(
		cfg.ServerName,
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
		server.WithToolHandlerMiddleware(toolLogging(logger)),
	)

	// ─── Tools ───

	for _, e := range entries {
		s.AddTool(e.Tool.Definition(), e.Tool.Handle)
	}

	// ─── Prompts ───

	overview := prompts.NewOverviewPrompt()
	s.AddPrompt(overview.Definition(), overview.Handle)

	contact := prompts.NewContactPrompt()
	s.AddPrompt(contact.Definition(), contact.Handle)

	// ─── Resources ───

	rh := resources.NewHandler(store)
	s.AddResource(rh.ItemsResource(), rh.HandleItems)
	s.AddResource(rh.CategoriesResource(), rh.HandleCategories)

	logger.Debug("server configured",
		zap.String("name", cfg.ServerName),
		zap.Int("tools", len(entries)),
		zap.Int("records", store.Len()),
	)
	return s, nil
}

// toolLogging logs every tool call and wraps unexpected handler errors with
// the tool name. Tool-level failures (isError results) pass through untouched.
func toolLogging(logger *zap.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			res, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("tool", req.Params.Name),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Error("tool failed", append(fields, zap.Error(err))...)
				return nil, fmt.Errorf("executing tool %s: %w", req.Params.Name, err)
			}
			logger.Debug("tool call", append(fields, zap.Bool("isError", res != nil && res.IsError))...)
			return res, nil
		}
	}
}

// serverInstructions returns the system instructions that tell the AI
// how to use the portfolio tools.
func serverInstructions() string {
	return `You have access to a read-only portfolio server describing one person:
profile, experience, education, tech stack and contact channels.

## Tools
- get_portfolio_categories: list the categories and the total item count. Start here.
- search_portfolio: case-insensitive substring search over title, description and
  keywords. Pass an empty query with a category to list that category.
- get_portfolio_item: fetch one record by its numeric id.
- get_contact_info: every record in the "Contact" category.
- get_tech_stack: the "Tech Stack" records, optionally filtered by a word that
  must appear in the record title, such as "cloud" or "languages".

## Rules
- Only state facts present in tool results. If a search returns nothing, say so.
- get_contact_info and get_tech_stack match their category exactly, case included;
  use get_portfolio_categories to see the names actually present.
- The data is fixed for the life of the server; repeated calls return the same answer.`
}
