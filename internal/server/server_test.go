package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/HendryAvila/portfolio-mcp/internal/config"
	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
	"github.com/HendryAvila/portfolio-mcp/internal/portfolio/portfoliotest"
	"github.com/HendryAvila/portfolio-mcp/internal/tools"
)

// --- Test helpers ---

func newTestServer(t *testing.T, store *portfolio.Store) *mcpserver.MCPServer {
	t.Helper()
	s, err := New(config.Default(), store, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// call sends one JSON-RPC request through the server and returns the
// decoded response object.
func call(t *testing.T, s *mcpserver.MCPServer, id int, method string, params any) map[string]any {
	t.Helper()
	msg := map[string]any{"jsonrpc": "2.0", "id": id, "method": method}
	if params != nil {
		msg["params"] = params
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	resp := s.HandleMessage(context.Background(), raw)
	if resp == nil {
		t.Fatalf("%s: no response", method)
	}
	out, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return decoded
}

func callTool(t *testing.T, s *mcpserver.MCPServer, name string, args map[string]any) (text string, isError bool) {
	t.Helper()
	resp := call(t, s, 2, "tools/call", map[string]any{"name": name, "arguments": args})
	result, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("%s: no result in response: %v", name, resp)
	}
	content, _ := result["content"].([]any)
	if len(content) == 0 {
		t.Fatalf("%s: empty content", name)
	}
	first, _ := content[0].(map[string]any)
	text, _ = first["text"].(string)
	isError, _ = result["isError"].(bool)
	return text, isError
}

// --- New ---

func TestNew_RejectsNilStore(t *testing.T) {
	if _, err := New(config.Default(), nil, nil); err == nil {
		t.Fatal("expected error for nil store")
	}
}

func TestNew_NilLoggerFallsBackToNop(t *testing.T) {
	if _, err := New(config.Default(), portfoliotest.Store(), nil); err != nil {
		t.Fatalf("New: %v", err)
	}
}

// --- End to end ---

func TestServer_ListsEveryTool(t *testing.T) {
	s := newTestServer(t, portfoliotest.Store())

	resp := call(t, s, 1, "tools/list", map[string]any{})
	result, _ := resp["result"].(map[string]any)
	list, _ := result["tools"].([]any)

	got := map[string]int{}
	for _, item := range list {
		tool, _ := item.(map[string]any)
		name, _ := tool["name"].(string)
		got[name]++
	}

	if len(got) != len(tools.Operations) {
		t.Errorf("got %d tools, want %d: %v", len(got), len(tools.Operations), got)
	}
	for _, op := range tools.Operations {
		if got[string(op)] != 1 {
			t.Errorf("tool %s registered %d times", op, got[string(op)])
		}
	}
}

func TestServer_SearchCloud(t *testing.T) {
	s := newTestServer(t, portfoliotest.Store())

	text, isErr := callTool(t, s, "search_portfolio", map[string]any{"query": "cloud"})
	if isErr {
		t.Fatalf("unexpected error result: %s", text)
	}

	var result struct {
		ResultsCount int `json:"resultsCount"`
		Results      []struct {
			ID int64 `json:"id"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if result.ResultsCount != 3 || len(result.Results) != 3 {
		t.Fatalf("resultsCount = %d, len = %d, want 3", result.ResultsCount, len(result.Results))
	}
	for i, want := range []int64{1, 6, 7} {
		if result.Results[i].ID != want {
			t.Errorf("results[%d].id = %d, want %d", i, result.Results[i].ID, want)
		}
	}
}

func TestServer_ItemNotFoundIsToolError(t *testing.T) {
	s := newTestServer(t, portfoliotest.Store())

	text, isErr := callTool(t, s, "get_portfolio_item", map[string]any{"id": 999})
	if !isErr {
		t.Fatalf("expected isError result, got %s", text)
	}
	if text != "Portfolio item with ID 999 not found" {
		t.Errorf("text = %q", text)
	}
}

func TestServer_EmptyStore(t *testing.T) {
	s := newTestServer(t, portfolio.NewStore(nil))

	text, isErr := callTool(t, s, "get_portfolio_categories", map[string]any{})
	if isErr {
		t.Fatalf("unexpected error: %s", text)
	}
	if !strings.Contains(text, `"totalItems": 0`) || !strings.Contains(text, `"categories": []`) {
		t.Errorf("unexpected envelope:\n%s", text)
	}
}

func TestServer_UnknownToolIsRejected(t *testing.T) {
	s := newTestServer(t, portfoliotest.Store())

	resp := call(t, s, 3, "tools/call", map[string]any{"name": "no_such_tool", "arguments": map[string]any{}})
	if _, ok := resp["error"]; !ok {
		t.Errorf("expected JSON-RPC error, got %v", resp)
	}
}

func TestServer_ReadsItemsResource(t *testing.T) {
	s := newTestServer(t, portfoliotest.Store())

	resp := call(t, s, 4, "resources/read", map[string]any{"uri": "portfolio://items"})
	result, _ := resp["result"].(map[string]any)
	contents, _ := result["contents"].([]any)
	if len(contents) != 1 {
		t.Fatalf("contents = %v", resp)
	}
	first, _ := contents[0].(map[string]any)
	text, _ := first["text"].(string)

	var records []portfolio.Record
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		t.Fatalf("decode resource: %v", err)
	}
	if len(records) != 8 {
		t.Errorf("got %d records, want 8", len(records))
	}
}

func TestServer_ListsPrompts(t *testing.T) {
	s := newTestServer(t, portfoliotest.Store())

	resp := call(t, s, 5, "prompts/list", map[string]any{})
	out, _ := json.Marshal(resp["result"])
	for _, name := range []string{"portfolio-overview", "portfolio-contact"} {
		if !strings.Contains(string(out), name) {
			t.Errorf("prompt %s not listed: %s", name, out)
		}
	}
}

// --- toolLogging ---

func TestToolLogging_WrapsHandlerError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mw := toolLogging(zap.New(core))

	cause := errors.New("boom")
	h := mw(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, cause
	})

	req := mcp.CallToolRequest{}
	req.Params.Name = "search_portfolio"
	_, err := h(context.Background(), req)
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want wrapping %v", err, cause)
	}
	if err.Error() != "executing tool search_portfolio: boom" {
		t.Errorf("err = %q", err.Error())
	}
	if logs.FilterMessage("tool failed").Len() != 1 {
		t.Errorf("expected one 'tool failed' entry, got %v", logs.All())
	}
}

func TestToolLogging_PassesToolErrorsThrough(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mw := toolLogging(zap.New(core))

	h := mw(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultError("nope"), nil
	})

	req := mcp.CallToolRequest{}
	req.Params.Name = "get_portfolio_item"
	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || !res.IsError {
		t.Fatal("expected isError result to pass through")
	}

	entries := logs.FilterMessage("tool call").All()
	if len(entries) != 1 {
		t.Fatalf("expected one 'tool call' entry, got %d", len(entries))
	}
	if got := fmt.Sprint(entries[0].ContextMap()["isError"]); got != "true" {
		t.Errorf("isError field = %s", got)
	}
}
