package mcp

import (
	"context"
	"reflect"

	"github.com/viant/designsuite/mcp/action"
	"github.com/viant/designsuite/mcp/tool/conversion"
	"github.com/viant/designsuite/portal/config"
	"github.com/viant/fluxor"
	"github.com/viant/x"
)

// init orchestrates the bootstrap steps once all options have been applied.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast.
	if err := s.config.Validate(); err != nil {
		return err
	}

	s.initWorkflowService()
	s.buildMcpToolRegistry()

	return s.Start(ctx)
}

// initDefaults applies fall-back values for dependencies not supplied through
// options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = config.New()
	}
	if s.registry == nil {
		s.registry = s.config.Registry()
	}
}

// initWorkflowService assembles the Fluxor options and instantiates the
// engine with the portal actions installed.
func (s *Service) initWorkflowService() {
	portal := action.New(s.registry)
	var extensionTypes []*x.Type
	for _, sig := range portal.Methods() {
		for _, t := range []reflect.Type{sig.Input, sig.Output} {
			if xType := conversion.ExtensionType(t); xType != nil {
				extensionTypes = append(extensionTypes, xType)
			}
		}
	}
	s.Workflow.Service = fluxor.New(
		fluxor.WithExtensionTypes(extensionTypes...),
		fluxor.WithExtensionServices(portal),
	)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
