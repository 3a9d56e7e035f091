package cmd

import (
	"fmt"
	"sort"
)

// ListToolsCmd prints every published tool with its description.
type ListToolsCmd struct{}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	tools := svc.Tools()
	sort.Slice(tools, func(i, j int) bool { return tools[i].Metadata.Name < tools[j].Metadata.Name })
	for _, t := range tools {
		desc := ""
		if t.Metadata.Description != nil {
			desc = *t.Metadata.Description
		}
		fmt.Fprintf(stdout, "%s\t%s\n", t.Metadata.Name, desc)
	}
	return nil
}
