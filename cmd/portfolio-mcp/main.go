// portfolio-mcp: a read-only MCP server over a personal portfolio dataset.
//
// Usage:
//
//	portfolio-mcp serve                    # stdio transport
//	portfolio-mcp serve --transport http   # streamable HTTP on :8080/mcp
//	portfolio-mcp validate --data db/portfolio-data/ai-portfolio.json
//	portfolio-mcp version --check
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
