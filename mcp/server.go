package mcp

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	serverproto "github.com/viant/mcp-protocol/server"
)

// NewHandler returns a server handler exposing the published tools. Every
// connection shares the tool entries built once during bootstrap.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, tool := range s.Tools() {
		impl.Registry.ToolRegistry.Put(tool.Metadata.Name, tool)
	}
	return impl, nil
}
