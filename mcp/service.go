package mcp

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/viant/designsuite/portal/config"
	"github.com/viant/designsuite/portal/module"
	"github.com/viant/fluxor"
)

// Service bundles configuration, the module registry and a Fluxor workflow
// engine hosting the portal actions. It publishes those actions as MCP tools.
// Bootstrap lives in bootstrap.go to keep this file focused on the public
// surface.
type Service struct {
	Workflow
	started  int32
	config   *config.Config
	registry *module.Registry

	// guard concurrent modifications.
	mu sync.RWMutex
	// Cached MCP tool definitions built from Fluxor actions.
	mcpTools []toolEntry
}

// Workflow holds the Fluxor engine hosting the portal actions.
type Workflow struct {
	Runtime *fluxor.Runtime
	Service *fluxor.Service
}

// WorkflowService returns the Fluxor service instance that exposes all
// actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration. Callers must treat it as
// read-only.
func (s *Service) Config() *config.Config { return s.config }

// ToolNames returns all MCP tool names registered on the service. The slice
// is a copy.
func (s *Service) ToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.mcpTools))
	for i, e := range s.mcpTools {
		names[i] = e.name
	}
	return names
}

// toolEntryByName returns the internal entry with the given name.
func (s *Service) toolEntryByName(name string) (*toolEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, e := range s.mcpTools {
		if e.name == name {
			return &s.mcpTools[i], true
		}
	}
	return nil, false
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets the configuration. When omitted config.New() is used.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithRegistry overrides the registry otherwise resolved from the
// configuration.
func WithRegistry(registry *module.Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// New constructs and starts a service.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Start launches the underlying Fluxor runtime. Repeated calls are ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown terminates the Fluxor runtime. Calls after the first one have no
// effect.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
