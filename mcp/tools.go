package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	iconv "github.com/viant/designsuite/internal/conv"
	"github.com/viant/designsuite/mcp/matcher"
	"github.com/viant/designsuite/mcp/tool"
	conv "github.com/viant/designsuite/mcp/tool/conversion"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// toolEntry holds metadata and execution handler for one MCP tool derived
// from a Fluxor action method.
type toolEntry struct {
	name        string
	description string
	inputSchema mcpschema.ToolInputSchema
	handler     func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error)
}

// addToolEntries appends tool entries to the cache, skipping duplicates.
func (s *Service) addToolEntries(entries []toolEntry) {
	if len(entries) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]struct{}, len(s.mcpTools))
	for _, e := range s.mcpTools {
		existing[e.name] = struct{}{}
	}
	for _, e := range entries {
		if _, dup := existing[e.name]; dup {
			continue // keep first definition encountered
		}
		s.mcpTools = append(s.mcpTools, e)
		existing[e.name] = struct{}{}
	}
}

// buildMcpToolRegistry converts every action method selected by the
// configured tool patterns into a tool entry.
func (s *Service) buildMcpToolRegistry() {
	if s.Workflow.Service == nil {
		return
	}
	actions := s.Workflow.Service.Actions()
	for _, key := range actions.Services() {
		activeService := actions.Lookup(key)
		if activeService == nil {
			continue
		}
		var selected []toolEntry
		for _, entry := range serviceToToolEntries(activeService) {
			if matchAny(s.config.Tools, entry.name) {
				selected = append(selected, entry)
			}
		}
		s.addToolEntries(selected)
	}
}

// matchAny reports whether a tool name satisfies any pattern. Patterns are
// evaluated against both the tool name and its service/method path.
func matchAny(patterns []string, name string) bool {
	toolName := tool.Name(name)
	path := toolName.Service() + "/" + toolName.Method()
	for _, pattern := range patterns {
		if matcher.Match(pattern, name) || matcher.Match(pattern, path) {
			return true
		}
	}
	return false
}

// serviceToToolEntries converts a single Fluxor service to tool entries.
func serviceToToolEntries(svc types.Service) []toolEntry {
	entries := make([]toolEntry, 0, len(svc.Methods()))
	for _, sig := range svc.Methods() {
		methodName := tool.NewName(svc.Name(), sig.Name).String()
		toolMeta, buildErr := conv.BuildSchema(&sig)
		if buildErr != nil {
			// Fallback: derive only the input schema via reflection.
			var inputSchema mcpschema.ToolInputSchema
			if sig.Input != nil {
				_ = inputSchema.Load(newValue(sig.Input))
			}
			if inputSchema.Type == "" {
				inputSchema.Type = "object"
			}
			toolMeta = mcpschema.Tool{
				Description: &sig.Description,
				InputSchema: inputSchema,
			}
		}
		toolMeta.Name = methodName
		if toolMeta.Description == nil {
			toolMeta.Description = &sig.Description
		}

		svcCopy := svc
		sigCopy := sig
		handler := func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			var inVal interface{}
			if sigCopy.Input != nil {
				inVal = newValue(sigCopy.Input)
				if len(req.Params.Arguments) > 0 {
					data, err := json.Marshal(req.Params.Arguments)
					if err == nil {
						err = json.Unmarshal(data, inVal)
					}
					if err != nil {
						return nil, jsonrpc.NewError(jsonrpc.InvalidParams, fmt.Sprintf("invalid arguments for %s: %v", methodName, err), nil)
					}
				}
			}
			var outVal interface{}
			if sigCopy.Output != nil {
				outVal = newValue(sigCopy.Output)
			}

			exec, err := svcCopy.Method(sigCopy.Name)
			if err != nil {
				return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
			}
			if err := exec(ctx, inVal, outVal); err != nil {
				return &mcpschema.CallToolResult{
					IsError: iconv.Pointer(true),
					Content: []mcpschema.CallToolResultContentElem{{Type: "text", Text: err.Error()}},
				}, nil
			}

			var text string
			if outVal != nil {
				if data, err := json.Marshal(outVal); err == nil {
					text = string(data)
				}
			}
			return &mcpschema.CallToolResult{Content: []mcpschema.CallToolResultContentElem{{
				Type: "text",
				Text: text,
			}}}, nil
		}

		entries = append(entries, toolEntry{
			name:        toolMeta.Name,
			description: iconv.Dereference[string](toolMeta.Description),
			inputSchema: toolMeta.InputSchema,
			handler:     handler,
		})
	}
	return entries
}

// newValue returns a pointer to a new zero value of t (or of t's element for
// pointer types).
func newValue(t reflect.Type) interface{} {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}
