// Package prompts implements MCP prompt handlers for the portfolio server.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to run a specific sequence of tool calls. Unlike tools
// (which the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// OverviewPrompt handles the portfolio-overview MCP prompt.
// It asks the AI to introduce the portfolio owner from the dataset.
type OverviewPrompt struct{}

// NewOverviewPrompt creates an OverviewPrompt.
func NewOverviewPrompt() *OverviewPrompt {
	return &OverviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *OverviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("portfolio-overview",
		mcp.WithPromptDescription(
			"Introduce the portfolio owner: profile, current role, experience, "+
				"education and tech stack, drawn only from the portfolio data.",
		),
		mcp.WithArgument("focus",
			mcp.ArgumentDescription(`Optional topic to emphasize, e.g. "cloud" or "python"`),
		),
	)
}

// Handle processes the portfolio-overview prompt request.
func (p *OverviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	focus := ""
	if args := req.Params.Arguments; args != nil {
		focus = strings.TrimSpace(args["focus"])
	}

	var b strings.Builder
	b.WriteString("Please give me an overview of this portfolio.\n\n")
	b.WriteString("1. Run `get_portfolio_categories` to see what the dataset covers\n")
	b.WriteString("2. Run `search_portfolio` with category=\"Profile Summary\" and an empty query\n")
	b.WriteString("3. Run `get_tech_stack` for the technical skills\n")
	if focus != "" {
		fmt.Fprintf(&b, "4. Run `search_portfolio` with query=%q and highlight what you find\n", focus)
	}
	b.WriteString("\nOnly state facts present in the tool results.")

	description := "Portfolio overview"
	if focus != "" {
		description = fmt.Sprintf("Portfolio overview focused on %s", focus)
	}

	return &mcp.GetPromptResult{
		Description: description,
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(b.String()),
			},
		},
	}, nil
}
