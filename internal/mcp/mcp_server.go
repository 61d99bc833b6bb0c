// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agilekit/flowlens/internal/contract"
)

// NewMCPServer initializes and configures the Flowlens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Flowlens Metrics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: compute_flow_metrics ---
	s.AddTool(mcp.NewTool("compute_flow_metrics",
		mcp.WithDescription("Compute cycle time and work item age per issue from a status-history export (CSV or Excel)."),
		mcp.WithString("input_path", mcp.Description("Path to the issue-history export file."), mcp.Required()),
		mcp.WithString("timezone", mcp.Description("IANA timezone for calendar-day arithmetic. Defaults to the server configuration.")),
		mcp.WithString("in_progress", mcp.Description("Comma-separated status values that count as the start of work.")),
		mcp.WithString("done", mcp.Description("Comma-separated status values that count as completed.")),
		mcp.WithString("today", mcp.Description("Override 'today' (ISO date) for deterministic work item age.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of result rows returned.")),
	), h.handleComputeFlowMetrics)

	// --- 2. Tool: list_status_values ---
	s.AddTool(mcp.NewTool("list_status_values",
		mcp.WithDescription("List the distinct status values found in a status-history export, with counts and their classification."),
		mcp.WithString("input_path", mcp.Description("Path to the issue-history export file."), mcp.Required()),
		mcp.WithString("in_progress", mcp.Description("Comma-separated status values that count as the start of work.")),
		mcp.WithString("done", mcp.Description("Comma-separated status values that count as completed.")),
	), h.handleListStatusValues)

	return s
}

// StartMCPServer starts the Flowlens MCP server on stdio.
func StartMCPServer(baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
