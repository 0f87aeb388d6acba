package main

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binaryPath is set by TestMain after building the binary.
var binaryPath string

func TestMain(m *testing.M) {
	if os.Getenv("INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	// Build the binary once for all integration tests.
	tmp, err := os.MkdirTemp("", "uimanifest-integration-*")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(tmp, "uimanifest")
	build := exec.Command("go", "build", "-o", binaryPath, ".")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		os.RemoveAll(tmp)
		panic("failed to build binary: " + err.Error())
	}

	code := m.Run()
	os.RemoveAll(tmp)
	os.Exit(code)
}

// --- helpers ---

func skipIfNotIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("INTEGRATION") == "" {
		t.Skip("set INTEGRATION=1 to run integration tests")
	}
}

// runBinary runs the built CLI and fails the test on a non-zero exit.
func runBinary(t *testing.T, args ...string) string {
	t.Helper()
	out, err := exec.Command(binaryPath, args...).CombinedOutput()
	require.NoError(t, err, "uimanifest %v: %s", args, out)
	return string(out)
}

// startServer generates both manifests for a fresh workspace, launches
// `uimanifest serve` as a subprocess, and returns an initialized MCP client
// plus the path of its tool-call log.
func startServer(t *testing.T) (*client.Client, string) {
	t.Helper()

	ui := writeWorkspace(t)
	runBinary(t, "manifest", "--root", ui, "-q")
	runBinary(t, "tokens", "--root", ui, "-q")

	callLog := filepath.Join(ui, "logs", "calls.jsonl")
	c, err := client.NewStdioMCPClient(binaryPath, nil, "serve", "--root", ui, "--log-file", callLog)
	require.NoError(t, err, "failed to start MCP server")
	t.Cleanup(func() {
		c.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "uimanifest-integration-test",
		Version: "1.0.0",
	}

	result, err := c.Initialize(ctx, initReq)
	require.NoError(t, err, "failed to initialize MCP session")
	assert.Equal(t, "uimanifest", result.ServerInfo.Name)

	return c, callLog
}

func callToolHelper(t *testing.T, c *client.Client, toolName string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req := mcp.CallToolRequest{}
	req.Params.Name = toolName
	if args != nil {
		req.Params.Arguments = args
	}

	result, err := c.CallTool(ctx, req)
	require.NoError(t, err, "CallTool(%s) failed", toolName)
	return result
}

func extractJSON(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content, "expected content in result")
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

// --- integration tests ---

func TestIntegration_ListTools(t *testing.T) {
	skipIfNotIntegration(t)
	c, _ := startServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	require.NoError(t, err)

	toolNames := make([]string, len(tools.Tools))
	for i, tool := range tools.Tools {
		toolNames[i] = tool.Name
	}
	assert.ElementsMatch(t, []string{"list_components", "get_component", "get_tokens", "get_stats"}, toolNames)
}

func TestIntegration_Components(t *testing.T) {
	skipIfNotIntegration(t)
	c, _ := startServer(t)

	t.Run("list by category", func(t *testing.T) {
		result := callToolHelper(t, c, "list_components", map[string]any{"category": "overlay"})
		assert.False(t, result.IsError)

		var resp struct {
			Components []map[string]any `json:"components"`
			Total      int              `json:"total"`
		}
		require.NoError(t, json.Unmarshal([]byte(extractJSON(t, result)), &resp))
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "Dialog", resp.Components[0]["name"])
	})

	t.Run("export resolves to component", func(t *testing.T) {
		result := callToolHelper(t, c, "get_component", map[string]any{"name": "buttonVariants"})
		assert.False(t, result.IsError)

		var comp map[string]any
		require.NoError(t, json.Unmarshal([]byte(extractJSON(t, result)), &comp))
		assert.Equal(t, "Button", comp["name"])
		assert.Equal(t, true, comp["hasVariants"])
	})

	t.Run("sub-part is not published", func(t *testing.T) {
		result := callToolHelper(t, c, "get_component", map[string]any{"name": "DialogContent"})
		assert.True(t, result.IsError)
	})
}

func TestIntegration_TokensAndStats(t *testing.T) {
	skipIfNotIntegration(t)
	c, callLog := startServer(t)

	result := callToolHelper(t, c, "get_tokens", map[string]any{"type": "radius"})
	assert.False(t, result.IsError)
	assert.Contains(t, extractJSON(t, result), `"cssVar":"var(--radius)"`)

	result = callToolHelper(t, c, "get_stats", nil)
	assert.False(t, result.IsError)

	var stats map[string]any
	require.NoError(t, json.Unmarshal([]byte(extractJSON(t, result)), &stats))
	assert.Equal(t, "@acme/ui", stats["package"])
	assert.Equal(t, "2.0.1", stats["version"])

	// Every call above is recorded in the JSONL log.
	f, err := os.Open(callLog)
	require.NoError(t, err)
	defer f.Close()

	var tools []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		tools = append(tools, entry["tool"].(string))
	}
	assert.Equal(t, []string{"get_tokens", "get_stats"}, tools)
}
