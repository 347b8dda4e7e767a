package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myjobmatch/recommender/tools"
)

type echoTool struct {
	fail bool
}

func (t echoTool) Name() string        { return "echo" }
func (t echoTool) Description() string { return "Echo the input" }
func (t echoTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}

func (t echoTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	if t.fail {
		return nil, errors.New("boom")
	}
	if strings.Contains(string(input), "reject") {
		return tools.NewErrorResult("rejected")
	}
	return tools.NewSuccessResult(json.RawMessage(input))
}

func newTestRouter(tool tools.Tool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	registry := tools.NewToolRegistry()
	registry.Register(tool)

	router := gin.New()
	NewServer(registry, "test", nil).RegisterRoutes(router.Group("/api"))
	return router
}

func post(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeRPC(t *testing.T, w *httptest.ResponseRecorder, result interface{}) MCPResponse {
	t.Helper()
	var raw struct {
		MCPResponse
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	if result != nil && len(raw.Result) > 0 {
		require.NoError(t, json.Unmarshal(raw.Result, result))
	}
	return raw.MCPResponse
}

func TestHandleMCP_Initialize(t *testing.T) {
	router := newTestRouter(echoTool{})

	w := post(t, router, "/api/mcp", `{"jsonrpc": "2.0", "id": 1, "method": "initialize"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var result InitializeResult
	resp := decodeRPC(t, w, &result)
	assert.Nil(t, resp.Error)
	assert.Equal(t, protocolVersion, result.ProtocolVersion)
	assert.Equal(t, "test", result.ServerInfo.Version)
}

func TestHandleMCP_ToolsList(t *testing.T) {
	router := newTestRouter(echoTool{})

	w := post(t, router, "/api/mcp", `{"jsonrpc": "2.0", "id": "a", "method": "tools/list"}`)

	var result ToolsListResult
	resp := decodeRPC(t, w, &result)
	assert.Equal(t, "a", resp.ID)
	require.Len(t, result.Tools, 1)
	assert.Equal(t, "echo", result.Tools[0].Name)
}

func TestHandleMCP_ToolsCall(t *testing.T) {
	tests := []struct {
		name    string
		tool    echoTool
		params  string
		isError bool
		text    string
	}{
		{name: "success", params: `{"name": "echo", "arguments": {"x": 1}}`, text: `"success":true`},
		{name: "tool envelope error", params: `{"name": "echo", "arguments": {"reject": true}}`, isError: true, text: "rejected"},
		{name: "execution error", tool: echoTool{fail: true}, params: `{"name": "echo"}`, isError: true, text: "boom"},
		{name: "unknown tool", params: `{"name": "missing"}`, isError: true, text: "tool not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.tool)

			w := post(t, router, "/api/mcp", `{"jsonrpc": "2.0", "id": 7, "method": "tools/call", "params": `+tt.params+`}`)

			var result ToolCallResult
			resp := decodeRPC(t, w, &result)
			require.Nil(t, resp.Error)
			assert.Equal(t, tt.isError, result.IsError)
			require.Len(t, result.Content, 1)
			assert.Contains(t, result.Content[0].Text, tt.text)
		})
	}
}

func TestHandleMCP_Errors(t *testing.T) {
	router := newTestRouter(echoTool{})

	w := post(t, router, "/api/mcp", `not json`)
	resp := decodeRPC(t, w, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeParseError, resp.Error.Code)

	w = post(t, router, "/api/mcp", `{"jsonrpc": "2.0", "id": 2, "method": "resources/list"}`)
	resp = decodeRPC(t, w, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeMethodNotFound, resp.Error.Code)

	w = post(t, router, "/api/mcp", `{"jsonrpc": "2.0", "id": 3, "method": "tools/call", "params": "nope"}`)
	resp = decodeRPC(t, w, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeInvalidParams, resp.Error.Code)
}

func TestRESTRoutes(t *testing.T) {
	router := newTestRouter(echoTool{})

	w := post(t, router, "/api/mcp/tools/list", ``)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"echo"`)

	w = post(t, router, "/api/mcp/tools/call", `{"name": "echo", "arguments": {}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `success`)

	w = post(t, router, "/api/mcp/tools/call", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
