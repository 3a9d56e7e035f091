package action

import (
	"context"
	"reflect"

	"github.com/viant/designsuite/internal/conv"
	"github.com/viant/designsuite/internal/syncmap"
	"github.com/viant/designsuite/portal/module"
	"github.com/viant/fluxor/model/types"
)

// Name is the fluxor service name of the portal actions.
const Name = "portal"

// ModulesInput is the (empty) input of the modules action.
type ModulesInput struct{}

// ModulesOutput lists the gate result of every module.
type ModulesOutput struct {
	Modules []module.Status `json:"modules"`
}

// StatusInput selects one module.
type StatusInput struct {
	ID string `json:"id" description:"module id, e.g. interviewer or analyzer" required:"true"`
}

// StatusOutput holds the gate result of one module.
type StatusOutput struct {
	Module module.Status `json:"module"`
}

// Service exposes the portal module directory as Fluxor actions so that it
// can be executed from workflows or published as MCP tools.
type Service struct {
	registry  *module.Registry
	sigs      types.Signatures
	executors *syncmap.Map[types.Executable]
}

// New builds the action service over the supplied registry.
func New(registry *module.Registry) *Service {
	s := &Service{registry: registry, executors: syncmap.New[types.Executable]()}
	s.register(types.Signature{
		Name:        "modules",
		Description: "List portal modules with their launch URL, or a warning when the module is not configured",
		Input:       reflect.TypeOf(&ModulesInput{}),
		Output:      reflect.TypeOf(&ModulesOutput{}),
	}, s.modules)
	s.register(types.Signature{
		Name:        "status",
		Description: "Show whether one portal module is configured and where it launches",
		Input:       reflect.TypeOf(&StatusInput{}),
		Output:      reflect.TypeOf(&StatusOutput{}),
	}, s.status)
	return s
}

func (s *Service) register(sig types.Signature, exec types.Executable) {
	s.sigs = append(s.sigs, sig)
	s.executors.Set(sig.Name, exec)
}

func (s *Service) modules(ctx context.Context, input, output interface{}) error {
	return setOutput(output, &ModulesOutput{Modules: s.registry.Statuses()})
}

func (s *Service) status(ctx context.Context, input, output interface{}) error {
	in, ok := input.(*StatusInput)
	if !ok {
		in = &StatusInput{}
		if err := conv.Convert(input, in); err != nil {
			return err
		}
	}
	m, err := s.registry.Lookup(in.ID)
	if err != nil {
		return err
	}
	return setOutput(output, &StatusOutput{Module: m.Status()})
}

func setOutput[T any](output interface{}, result *T) error {
	switch out := output.(type) {
	case nil:
		return nil
	case *T:
		*out = *result
		return nil
	case *interface{}:
		*out = result
		return nil
	default:
		return conv.Convert(result, output)
	}
}

// ------------------------------------------------------------------
// types.Service implementation
// ------------------------------------------------------------------

func (s *Service) Name() string { return Name }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors.Lookup(name); ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}
