package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/viant/designsuite/internal/conv"
)

// ToolCmd prints metadata and input schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name (portal-status or portal/status)" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

type toolDetail struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema interface{} `json:"inputSchema"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	entry, err := svc.LookupTool(c.Name)
	if err != nil {
		return fmt.Errorf("tool %q not found", c.Name)
	}
	found := &toolDetail{
		Name:        entry.Metadata.Name,
		Description: conv.Dereference(entry.Metadata.Description),
		InputSchema: entry.Metadata.InputSchema,
	}

	if c.JSON {
		data, _ := json.MarshalIndent(found, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	fmt.Fprintf(stdout, "Name : %s\n", found.Name)
	fmt.Fprintf(stdout, "Desc : %s\n", found.Description)
	js, _ := json.MarshalIndent(found.InputSchema, "", "  ")
	fmt.Fprintf(stdout, "InputSchema:\n%s\n", string(js))
	return nil
}
