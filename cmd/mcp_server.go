package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/HullComputing/uisnap/internal/capture"
	"github.com/HullComputing/uisnap/internal/model"
	"github.com/HullComputing/uisnap/internal/platform"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider   *platform.Provider
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

func newMCPServer() (*mcpServer, error) {
	s := &mcpServer{}
	s.mcp = mcpserver.NewMCPServer("uisnap", "1.0.0")
	s.registerTools()
	return s, nil
}

func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("capture",
			mcp.WithDescription("Capture a snapshot of the live UI element tree. Returns the rendered tree and optionally writes the encoded binary stream to a file."),
			mcp.WithString("component", mcp.Description("Owning component identity to capture"), mcp.Required()),
			mcp.WithString("out", mcp.Description("File to write the encoded stream to (omit to skip writing)")),
		),
		s.handleCapture,
	)

	s.mcp.AddTool(
		mcp.NewTool("dump",
			mcp.WithDescription("Decode a previously captured snapshot stream and return the rendered element tree."),
			mcp.WithString("file", mcp.Description("Path to the encoded snapshot file"), mcp.Required()),
		),
		s.handleDump,
	)
}

// liveProvider lazily resolves the platform provider so dump-only clients
// work on hosts without a registered backend.
func (s *mcpServer) liveProvider() (*platform.Provider, error) {
	if s.provider == nil {
		p, err := platform.NewProvider()
		if err != nil {
			return nil, err
		}
		s.provider = p
	}
	return s.provider, nil
}

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func (s *mcpServer) handleCapture(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	component := stringParam(params, "component", "")
	out := stringParam(params, "out", "")
	if component == "" {
		return mcp.NewToolResultError("component is required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	provider, err := s.liveProvider()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snap, err := capture.Capture(provider, component)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if out != "" {
		data, err := snap.Encode()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	var b strings.Builder
	snap.Dump(&b)
	return mcp.NewToolResultText(b.String()), nil
}

func (s *mcpServer) handleDump(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	file := stringParam(params, "file", "")
	if file == "" {
		return mcp.NewToolResultError("file is required"), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snap, err := model.DecodeSnapshot(data)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var b strings.Builder
	snap.Dump(&b)
	return mcp.NewToolResultText(b.String()), nil
}
