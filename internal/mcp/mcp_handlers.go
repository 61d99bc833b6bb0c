package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/agilekit/flowlens/core"
	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/internal/tabfile"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// requestConfig layers tool-call arguments over the base configuration.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	overrides := contract.Overrides{
		Timezone:   request.GetString("timezone", ""),
		InProgress: request.GetString("in_progress", ""),
		Done:       request.GetString("done", ""),
		Today:      request.GetString("today", ""),
	}
	if l := request.GetInt("limit", 0); l > 0 {
		overrides.Limit = &l
	}
	return contract.ApplyOverrides(h.baseCfg, overrides)
}

func (h *toolHandler) handleComputeFlowMetrics(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath := request.GetString("input_path", "")
	if inputPath == "" {
		return mcp.NewToolResultError("input_path is required"), nil
	}

	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	table, err := tabfile.Read(inputPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read input: %v", err)), nil
	}
	report, err := core.BuildReport(table, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListStatusValues(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath := request.GetString("input_path", "")
	if inputPath == "" {
		return mcp.NewToolResultError("input_path is required"), nil
	}

	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	table, err := tabfile.Read(inputPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read input: %v", err)), nil
	}
	statuses, err := core.CollectStatuses(table, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("status scan failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(statuses, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
