package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ContactPrompt handles the portfolio-contact MCP prompt.
// It instructs the AI to read and present the contact channels.
type ContactPrompt struct{}

// NewContactPrompt creates a ContactPrompt.
func NewContactPrompt() *ContactPrompt {
	return &ContactPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ContactPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("portfolio-contact",
		mcp.WithPromptDescription("Show how to get in touch with the portfolio owner."),
	)
}

// Handle processes the portfolio-contact prompt request.
func (p *ContactPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Portfolio contact information",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `get_contact_info`.\n\n" +
						"Then:\n" +
						"1. List each contact channel with its value\n" +
						"2. Render URLs as links\n" +
						"3. If no contact records exist, say so plainly",
				),
			},
		},
	}, nil
}
