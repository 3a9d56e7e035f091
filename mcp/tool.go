package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viant/designsuite/mcp/tool"
	"github.com/viant/fluxor/runtime/execution"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Tools returns every published tool in registration order.
func (s *Service) Tools() serverproto.Tools {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(serverproto.Tools, 0, len(s.mcpTools))
	for _, e := range s.mcpTools {
		result = append(result, e.proto())
	}
	return result
}

// MatchTools returns the tools matching pattern: "*" for all, a service
// prefix such as "portal/", or an exact tool name.
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	result := make(serverproto.Tools, 0)
	for _, entry := range s.Tools() {
		if matchAny([]string{pattern}, entry.Metadata.Name) {
			result = append(result, entry)
		}
	}
	return result
}

// LookupTool returns the published tool with the given name. Both the tool
// name ("portal-status") and the action path ("portal/status") are accepted.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	e, ok := s.toolEntryByName(tool.Canonical(name))
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	return e.proto(), nil
}

func (e *toolEntry) proto() *serverproto.ToolEntry {
	description := e.description
	return &serverproto.ToolEntry{
		Metadata: mcpschema.Tool{
			Name:        e.name,
			Description: &description,
			InputSchema: e.inputSchema,
		},
		Handler: e.handler,
	}
}

// ExecuteTool schedules the action behind a tool on the Fluxor runtime and
// waits for its output.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}, timeout time.Duration) (interface{}, error) {
	toolName := tool.Name(tool.Canonical(name))
	if _, ok := s.toolEntryByName(toolName.String()); !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}

	exec, err := execution.NewAtHocExecution(toolName.Service(), toolName.Method(), args)
	if err != nil {
		return "", err
	}
	waitFn, err := s.Runtime.ScheduleExecution(ctx, exec)
	if err != nil {
		return "", err
	}
	anExec, err := waitFn(timeout)
	if err != nil {
		return "", err
	}
	if anExec.Error != "" {
		errorResponse, _ := json.Marshal(map[string]interface{}{"error": anExec.Error})
		return string(errorResponse), nil
	}
	return anExec.Output, nil
}
