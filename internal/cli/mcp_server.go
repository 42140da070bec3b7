package cli

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/rheard/netauto/internal/version"
)

// mcpServer exposes element search and pattern invocation as MCP tools.
// It is stateless: every tool call resolves its elements fresh, so handles
// never go stale between calls.
type mcpServer struct {
	mcp *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

func newMCPServer() *mcpServer {
	s := &mcpServer{}
	s.mcp = mcpserver.NewMCPServer("netauto", version.Version)
	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
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
	// find
	s.mcp.AddTool(
		mcp.NewTool("find",
			mcp.WithDescription("Search the UI Automation tree for elements matching property conditions. Properties are snake_case key=value pairs, e.g. name=Calculator or is_window=true."),
			mcp.WithArray("props", mcp.Description("key=value property conditions, all must match"), mcp.Required()),
			mcp.WithString("scope", mcp.Description("Search scope: element, children, descendants (default), subtree")),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to keep retrying an empty search")),
			mcp.WithNumber("min_searches", mcp.Description("Minimum native searches before giving up")),
			mcp.WithBoolean("all", mcp.Description("Return every match instead of the first")),
		),
		s.handleFind,
	)

	// invoke
	s.mcp.AddTool(
		mcp.NewTool("invoke",
			mcp.WithDescription("Find an element and fire its Invoke pattern (press a button)"),
			mcp.WithArray("props", mcp.Description("key=value property conditions identifying the element"), mcp.Required()),
			mcp.WithString("scope", mcp.Description("Search scope")),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait for the element")),
		),
		s.handleInvoke,
	)

	// set_value
	s.mcp.AddTool(
		mcp.NewTool("set_value",
			mcp.WithDescription("Find an element and write a value through its Value or RangeValue pattern"),
			mcp.WithArray("props", mcp.Description("key=value property conditions identifying the element"), mcp.Required()),
			mcp.WithString("value", mcp.Description("String value for the Value pattern")),
			mcp.WithNumber("range", mcp.Description("Numeric value for the RangeValue pattern")),
			mcp.WithString("scope", mcp.Description("Search scope")),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait for the element")),
		),
		s.handleSetValue,
	)

	// wait
	s.mcp.AddTool(
		mcp.NewTool("wait",
			mcp.WithDescription("Wait for an element to appear, or with gone=true to disappear"),
			mcp.WithArray("props", mcp.Description("key=value property conditions identifying the element"), mcp.Required()),
			mcp.WithBoolean("gone", mcp.Description("Invert: wait until no element matches")),
			mcp.WithBoolean("keep_offscreen", mcp.Description("Treat offscreen elements as still present")),
			mcp.WithString("scope", mcp.Description("Search scope")),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait (default 30)")),
		),
		s.handleWait,
	)

	// patterns
	s.mcp.AddTool(
		mcp.NewTool("patterns",
			mcp.WithDescription("List the property catalog: patterns, properties, nickname shortcuts, and colliding names that need a pattern__ prefix"),
			mcp.WithString("pattern", mcp.Description("Limit output to one pattern")),
		),
		s.handlePatterns,
	)
}
