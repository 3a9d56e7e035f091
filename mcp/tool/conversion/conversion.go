package conversion

import (
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	schema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/x"
)

// BuildSchema derives the MCP tool definition (input and output JSON
// schemas) from a Fluxor action signature.
func BuildSchema(sig *types.Signature) (schema.Tool, error) {
	if sig.Input == nil || sig.Output == nil {
		return schema.Tool{}, fmt.Errorf("signature %s: input and output types are required", sig.Name)
	}
	var inputSchema schema.ToolInputSchema
	if err := inputSchema.Load(reflect.New(elem(sig.Input)).Interface()); err != nil {
		return schema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", sig.Name, err)
	}
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}
	props, required := schema.StructToProperties(elem(sig.Output))
	outputSchema := &schema.ToolOutputSchema{Properties: props, Required: required, Type: "object"}
	desc := sig.Description
	return schema.Tool{Name: sig.Name, Description: &desc, InputSchema: inputSchema, OutputSchema: outputSchema}, nil
}

// ExtensionType describes a Go type for the Fluxor type registry. Pointer
// types are described by their element type.
func ExtensionType(t reflect.Type, options ...x.Option) *x.Type {
	if t == nil {
		return nil
	}
	return x.NewType(elem(t), options...)
}

func elem(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}
